package csvfile

import (
	"strings"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
)

// Explicit column→setter mapping tables, one per entity, built once at
// package load. Mapping by table rather than reflection keeps the
// missing-column behavior auditable: a column absent from the file (or
// empty in a row) simply leaves the attribute at its default.

func applyColumns[T any](entity *T, row Row, columns map[string]func(*T, string)) {
	for name, set := range columns {
		if v, ok := row[name]; ok && v != "" {
			set(entity, v)
		}
	}
}

// decodeBase maps the shared columns; the tenant value honors the
// configured legacy fallback column.
func (f *Files) decodeBase(b *model.BaseEntity, row Row) {
	b.ID = model.Flex(row.Get("id"))
	b.CreatedDate = model.ParseTimestamp(row.Get("created_date"))
	b.UpdatedDate = model.ParseTimestamp(row.Get("updated_date"))
	b.CreatedByID = model.Flex(row.Get("created_by_id"))
	b.CreatedBy = model.Flex(row.Get(f.tenantColumns...))
	b.IsSample = model.Flex(row.Get("is_sample"))
}

var productColumns = map[string]func(*model.Product, string){
	"name":                    func(p *model.Product, v string) { p.Name = model.Flex(v) },
	"url":                     func(p *model.Product, v string) { p.URL = model.Flex(v) },
	"retailer":                func(p *model.Product, v string) { p.Retailer = model.Flex(v) },
	"purchased_date":          func(p *model.Product, v string) { p.PurchasedDate = model.Flex(v) },
	"current_price":           func(p *model.Product, v string) { p.CurrentPrice = model.Flex(v) },
	"original_price":          func(p *model.Product, v string) { p.OriginalPrice = model.Flex(v) },
	"target_price":            func(p *model.Product, v string) { p.TargetPrice = model.Flex(v) },
	"target_price_type":       func(p *model.Product, v string) { p.TargetPriceType = model.Flex(v) },
	"target_price_percentage": func(p *model.Product, v string) { p.TargetPricePercentage = model.Flex(v) },
	"image_url":               func(p *model.Product, v string) { p.ImageURL = model.Flex(v) },
	"category":                func(p *model.Product, v string) { p.Category = model.Flex(v) },
	"is_active":               func(p *model.Product, v string) { p.IsActive = model.Flex(v) },
	"deleted":                 func(p *model.Product, v string) { p.Deleted = model.Flex(v) },
	"deleted_at":              func(p *model.Product, v string) { p.DeletedAt = model.Flex(v) },
	"last_checked":            func(p *model.Product, v string) { p.LastChecked = model.Flex(v) },
	"memory_size":             func(p *model.Product, v string) { p.MemorySize = model.Flex(v) },
	"storage_size":            func(p *model.Product, v string) { p.StorageSize = model.Flex(v) },
	"processor_type":          func(p *model.Product, v string) { p.ProcessorType = model.Flex(v) },
	"screen_size":             func(p *model.Product, v string) { p.ScreenSize = model.Flex(v) },
}

func (f *Files) decodeProduct(row Row) model.Product {
	var p model.Product
	f.decodeBase(&p.BaseEntity, row)
	applyColumns(&p, row, productColumns)
	return p
}

var alertColumns = map[string]func(*model.Alert, string){
	"product_id":     func(a *model.Alert, v string) { a.ProductID = model.Flex(v) },
	"user_id":        func(a *model.Alert, v string) { a.UserID = model.Flex(v) },
	"alert_type":     func(a *model.Alert, v string) { a.AlertType = model.Flex(v) },
	"trigger_price":  func(a *model.Alert, v string) { a.TriggerPrice = model.Flex(v) },
	"previous_price": func(a *model.Alert, v string) { a.PreviousPrice = model.Flex(v) },
	"message":        func(a *model.Alert, v string) { a.Message = model.Flex(v) },
	"email_sent":     func(a *model.Alert, v string) { a.EmailSent = model.Flex(v) },
	"sms_sent":       func(a *model.Alert, v string) { a.SmsSent = model.Flex(v) },
	"sent_at":        func(a *model.Alert, v string) { a.SentAt = model.Flex(v) },
}

func (f *Files) decodeAlert(row Row) model.Alert {
	var a model.Alert
	f.decodeBase(&a.BaseEntity, row)
	applyColumns(&a, row, alertColumns)
	return a
}

var retailerColumns = map[string]func(*model.Retailer, string){
	"name":                 func(r *model.Retailer, v string) { r.Name = model.Flex(v) },
	"label":                func(r *model.Retailer, v string) { r.Label = model.Flex(v) },
	"price_guarantee_days": func(r *model.Retailer, v string) { r.PriceGuaranteeDays = model.Flex(v) },
}

func (f *Files) decodeRetailer(row Row) model.Retailer {
	var r model.Retailer
	f.decodeBase(&r.BaseEntity, row)
	applyColumns(&r, row, retailerColumns)
	return r
}

var reviewColumns = map[string]func(*model.Review, string){
	"title":         func(r *model.Review, v string) { r.Title = model.Flex(v) },
	"content":       func(r *model.Review, v string) { r.Content = model.Flex(v) },
	"rating":        func(r *model.Review, v string) { r.Rating = model.Flex(v) },
	"user_name":     func(r *model.Review, v string) { r.UserName = model.Flex(v) },
	"user_location": func(r *model.Review, v string) { r.UserLocation = model.Flex(v) },
	"is_verified":   func(r *model.Review, v string) { r.IsVerified = model.Flex(v) },
	"helpful_count": func(r *model.Review, v string) { r.HelpfulCount = model.Flex(v) },
}

func (f *Files) decodeReview(row Row) model.Review {
	var r model.Review
	f.decodeBase(&r.BaseEntity, row)
	applyColumns(&r, row, reviewColumns)
	return r
}

var priceHistoryColumns = map[string]func(*model.PriceHistory, string){
	"product_id":        func(h *model.PriceHistory, v string) { h.ProductID = model.Flex(v) },
	"price":             func(h *model.PriceHistory, v string) { h.Price = model.Flex(v) },
	"date":              func(h *model.PriceHistory, v string) { h.Date = model.Flex(v) },
	"change_percentage": func(h *model.PriceHistory, v string) { h.ChangePercentage = model.Flex(v) },
}

func (f *Files) decodePriceHistory(row Row) model.PriceHistory {
	var h model.PriceHistory
	f.decodeBase(&h.BaseEntity, row)
	applyColumns(&h, row, priceHistoryColumns)
	return h
}

var priceCacheColumns = map[string]func(*model.PriceCache, string){
	"url":                 func(c *model.PriceCache, v string) { c.URL = model.Flex(v) },
	"price":               func(c *model.PriceCache, v string) { c.Price = model.Flex(v) },
	"original_price":      func(c *model.PriceCache, v string) { c.OriginalPrice = model.Flex(v) },
	"discount_amount":     func(c *model.PriceCache, v string) { c.DiscountAmount = model.Flex(v) },
	"calculation_details": func(c *model.PriceCache, v string) { c.CalculationDetails = model.Flex(v) },
	"product_name_found":  func(c *model.PriceCache, v string) { c.ProductNameFound = model.Flex(v) },
	"last_checked":        func(c *model.PriceCache, v string) { c.LastChecked = model.Flex(v) },
}

func (f *Files) decodePriceCache(row Row) model.PriceCache {
	var c model.PriceCache
	f.decodeBase(&c.BaseEntity, row)
	applyColumns(&c, row, priceCacheColumns)
	return c
}

var userColumns = map[string]func(*model.User, string){
	"id":           func(u *model.User, v string) { u.ID = model.Flex(v) },
	"partitionKey": func(u *model.User, v string) { u.PartitionKey = model.Flex(v) },
	"sub":          func(u *model.User, v string) { u.Sub = model.Flex(v) },
	"provider":     func(u *model.User, v string) { u.Provider = model.Flex(v) },
	"email":        func(u *model.User, v string) { u.Email = model.Flex(v) },
	"email_verified": func(u *model.User, v string) {
		b, ok := model.Flex(v).Bool()
		u.EmailVerified = ok && b
	},
	"name":        func(u *model.User, v string) { u.Name = model.Flex(v) },
	"given_name":  func(u *model.User, v string) { u.GivenName = model.Flex(v) },
	"family_name": func(u *model.User, v string) { u.FamilyName = model.Flex(v) },
	"picture":     func(u *model.User, v string) { u.Picture = model.Flex(v) },
	"locale":      func(u *model.User, v string) { u.Locale = model.Flex(v) },
	"created_at":  func(u *model.User, v string) { u.CreatedAt = model.ParseTimestamp(v) },
	"last_login":  func(u *model.User, v string) { u.LastLogin = model.ParseTimestamp(v) },
	"is_active": func(u *model.User, v string) {
		b, ok := model.Flex(v).Bool()
		u.IsActive = !ok || b
	},
	"token_expires_at": func(u *model.User, v string) { u.TokenExpiresAt = model.ParseTimestamp(v) },
}

func decodeUser(row Row) model.User {
	// Identity exports default to active when the column is absent.
	u := model.User{IsActive: true}
	applyColumns(&u, row, userColumns)
	return u
}

// equalsFold is the case-insensitive equality all name-like lookups use.
func equalsFold(a model.Flex, b string) bool {
	return strings.EqualFold(string(a), b)
}

// containsFold is the case-insensitive substring match used where the
// document provider uses an unanchored pattern.
func containsFold(a model.Flex, b string) bool {
	return strings.Contains(strings.ToLower(string(a)), strings.ToLower(b))
}
