// Package repository defines the storage contract every provider
// (flat-file, document store, partition-keyed store, relational stub)
// implements identically, plus the entity-specific query extensions.
//
// Every operation on commerce entities is scoped to a tenant: the opaque
// identity string of the authenticated caller. The contract never treats
// "no matching records" as an error; only a targeted update against a
// record that does not exist for that caller is loud.
package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
)

// Repository is the generic operation set shared by every entity.
type Repository[T any] interface {
	// GetAll returns every record owned by tenant. An absent backing
	// store yields an empty slice, not an error.
	GetAll(ctx context.Context, tenant string) ([]T, error)

	// GetByID returns the record matching both id and tenant, or nil
	// when either does not match.
	GetByID(ctx context.Context, id, tenant string) (*T, error)

	// Create assigns an identifier when absent, stamps both timestamps
	// with the current UTC time and persists the record. The caller is
	// responsible for setting the tenant field beforehand.
	Create(ctx context.Context, entity *T) (*T, error)

	// Update re-stamps updated_date and replaces the record matching
	// both id and tenant. No match reports ErrUpdateConflict so the
	// caller can tell "updated" from "silently did nothing".
	Update(ctx context.Context, entity *T) (*T, error)

	// Delete reports whether a matching record existed and was removed;
	// false is a normal outcome, not an error.
	Delete(ctx context.Context, id, tenant string) (bool, error)

	// Exists is defined by GetByID semantics.
	Exists(ctx context.Context, id, tenant string) (bool, error)

	// Count returns the number of records owned by tenant.
	Count(ctx context.Context, tenant string) (int, error)
}

// ProductRepository adds the product query surface. Name-like lookups are
// case-insensitive; price filters operate on the parsed value of the
// string-typed field and silently exclude unparsable records.
type ProductRepository interface {
	Repository[model.Product]

	GetByRetailer(ctx context.Context, retailer, tenant string) ([]model.Product, error)
	GetByCategory(ctx context.Context, category, tenant string) ([]model.Product, error)
	GetActiveProducts(ctx context.Context, tenant string) ([]model.Product, error)
	GetByCreatedByID(ctx context.Context, createdByID, tenant string) ([]model.Product, error)
	GetByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal, tenant string) ([]model.Product, error)
	GetByURL(ctx context.Context, url, tenant string) (*model.Product, error)
}

type AlertRepository interface {
	Repository[model.Alert]

	GetByProductID(ctx context.Context, productID, tenant string) ([]model.Alert, error)
	GetByUserID(ctx context.Context, userID, tenant string) ([]model.Alert, error)
	GetByAlertType(ctx context.Context, alertType, tenant string) ([]model.Alert, error)
	GetSentAlerts(ctx context.Context, tenant string) ([]model.Alert, error)
	GetRecentAlerts(ctx context.Context, days int, tenant string) ([]model.Alert, error)
}

type RetailerRepository interface {
	Repository[model.Retailer]

	GetByName(ctx context.Context, name, tenant string) (*model.Retailer, error)
	GetByPriceGuaranteeDays(ctx context.Context, minDays int, tenant string) ([]model.Retailer, error)
}

type ReviewRepository interface {
	Repository[model.Review]

	GetByRating(ctx context.Context, rating int, tenant string) ([]model.Review, error)
	GetVerifiedReviews(ctx context.Context, tenant string) ([]model.Review, error)
	GetByUserName(ctx context.Context, userName, tenant string) ([]model.Review, error)
	GetTopRatedReviews(ctx context.Context, minRating int, tenant string) ([]model.Review, error)
}

type PriceHistoryRepository interface {
	Repository[model.PriceHistory]

	// GetByProductID returns history newest-first.
	GetByProductID(ctx context.Context, productID, tenant string) ([]model.PriceHistory, error)
	GetByDateRange(ctx context.Context, start, end time.Time, tenant string) ([]model.PriceHistory, error)
	GetPriceDrops(ctx context.Context, tenant string) ([]model.PriceHistory, error)
	GetLatestPrice(ctx context.Context, productID, tenant string) (*model.PriceHistory, error)
}

type PriceCacheRepository interface {
	Repository[model.PriceCache]

	GetByURL(ctx context.Context, url, tenant string) (*model.PriceCache, error)
	GetByProductName(ctx context.Context, productName, tenant string) ([]model.PriceCache, error)
	GetRecentlyChecked(ctx context.Context, hours int, tenant string) ([]model.PriceCache, error)
	GetDiscountedItems(ctx context.Context, tenant string) ([]model.PriceCache, error)
}

// UserRepository manages identity records. Users are not tenant-scoped, so
// its operations take no tenant argument.
type UserRepository interface {
	GetAll(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	Create(ctx context.Context, user *model.User) (*model.User, error)
	Update(ctx context.Context, user *model.User) (*model.User, error)
	Delete(ctx context.Context, id string) (bool, error)
	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)

	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetBySub(ctx context.Context, sub string) (*model.User, error)
	GetByProvider(ctx context.Context, provider string) ([]model.User, error)
	GetActiveUsers(ctx context.Context) ([]model.User, error)
	GetRecentLogins(ctx context.Context, days int) ([]model.User, error)

	// GetByPartitionKey is a direct point lookup bypassing the query
	// path; only the partition-keyed provider implements it.
	GetByPartitionKey(ctx context.Context, id, partitionKey string) (*model.User, error)
}

// EntityPtr constrains a type parameter to "pointer to an entity built on
// model.BaseEntity", letting provider bases share one implementation per
// storage technology.
type EntityPtr[T any] interface {
	*T
	model.Entity
}
