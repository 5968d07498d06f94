package csvfile

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
	"github.com/agrover-luv/SlashAlert-API/internal/repository"
)

// The entity repositories wrap the generic table and answer the query
// extensions by listing the tenant's rows and filtering in memory, the
// same place the tenant filter itself runs.

type productRepo struct {
	*table[model.Product, *model.Product]
}

func (r *productRepo) GetByRetailer(ctx context.Context, retailer, tenant string) ([]model.Product, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	out := make([]model.Product, 0, len(all))
	for _, p := range all {
		if equalsFold(p.Retailer, retailer) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *productRepo) GetByCategory(ctx context.Context, category, tenant string) ([]model.Product, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	out := make([]model.Product, 0, len(all))
	for _, p := range all {
		if equalsFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *productRepo) GetActiveProducts(ctx context.Context, tenant string) ([]model.Product, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	out := make([]model.Product, 0, len(all))
	for _, p := range all {
		if p.Active() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *productRepo) GetByCreatedByID(ctx context.Context, createdByID, tenant string) ([]model.Product, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	out := make([]model.Product, 0, len(all))
	for _, p := range all {
		if string(p.CreatedByID) == createdByID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *productRepo) GetByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal, tenant string) ([]model.Product, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	return repository.ProductsInPriceRange(all, minPrice, maxPrice), nil
}

func (r *productRepo) GetByURL(ctx context.Context, url, tenant string) (*model.Product, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if string(all[i].URL) == url {
			return &all[i], nil
		}
	}
	return nil, nil
}

type alertRepo struct {
	*table[model.Alert, *model.Alert]
}

func (r *alertRepo) GetByProductID(ctx context.Context, productID, tenant string) ([]model.Alert, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	out := make([]model.Alert, 0, len(all))
	for _, a := range all {
		if string(a.ProductID) == productID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *alertRepo) GetByUserID(ctx context.Context, userID, tenant string) ([]model.Alert, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	out := make([]model.Alert, 0, len(all))
	for _, a := range all {
		if string(a.UserID) == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *alertRepo) GetByAlertType(ctx context.Context, alertType, tenant string) ([]model.Alert, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	out := make([]model.Alert, 0, len(all))
	for _, a := range all {
		if equalsFold(a.AlertType, alertType) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *alertRepo) GetSentAlerts(ctx context.Context, tenant string) ([]model.Alert, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	out := make([]model.Alert, 0, len(all))
	for _, a := range all {
		if sent, ok := a.EmailSent.Bool(); ok && sent {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *alertRepo) GetRecentAlerts(ctx context.Context, days int, tenant string) ([]model.Alert, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	out := make([]model.Alert, 0, len(all))
	for _, a := range all {
		if a.CreatedDate != nil && !a.CreatedDate.Before(cutoff) {
			out = append(out, a)
		}
	}
	return out, nil
}

type retailerRepo struct {
	*table[model.Retailer, *model.Retailer]
}

func (r *retailerRepo) GetByName(ctx context.Context, name, tenant string) (*model.Retailer, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if equalsFold(all[i].Name, name) {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (r *retailerRepo) GetByPriceGuaranteeDays(ctx context.Context, minDays int, tenant string) ([]model.Retailer, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	return repository.RetailersWithGuaranteeDays(all, minDays), nil
}

type reviewRepo struct {
	*table[model.Review, *model.Review]
}

func (r *reviewRepo) GetByRating(ctx context.Context, rating int, tenant string) ([]model.Review, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	out := make([]model.Review, 0, len(all))
	for _, rv := range all {
		if n, ok := rv.Rating.Int(); ok && n == rating {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *reviewRepo) GetVerifiedReviews(ctx context.Context, tenant string) ([]model.Review, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	out := make([]model.Review, 0, len(all))
	for _, rv := range all {
		if verified, ok := rv.IsVerified.Bool(); ok && verified {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *reviewRepo) GetByUserName(ctx context.Context, userName, tenant string) ([]model.Review, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	out := make([]model.Review, 0, len(all))
	for _, rv := range all {
		if equalsFold(rv.UserName, userName) {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *reviewRepo) GetTopRatedReviews(ctx context.Context, minRating int, tenant string) ([]model.Review, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	return repository.ReviewsWithMinRating(all, minRating), nil
}

type priceHistoryRepo struct {
	*table[model.PriceHistory, *model.PriceHistory]
}

func (r *priceHistoryRepo) GetByProductID(ctx context.Context, productID, tenant string) ([]model.PriceHistory, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	out := make([]model.PriceHistory, 0, len(all))
	for _, h := range all {
		if string(h.ProductID) == productID {
			out = append(out, h)
		}
	}
	repository.SortHistoriesNewestFirst(out)
	return out, nil
}

func (r *priceHistoryRepo) GetByDateRange(ctx context.Context, start, end time.Time, tenant string) ([]model.PriceHistory, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	return repository.HistoriesInDateRange(all, start, end), nil
}

func (r *priceHistoryRepo) GetPriceDrops(ctx context.Context, tenant string) ([]model.PriceHistory, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	return repository.HistoriesWithPriceDrop(all), nil
}

func (r *priceHistoryRepo) GetLatestPrice(ctx context.Context, productID, tenant string) (*model.PriceHistory, error) {
	histories, err := r.GetByProductID(ctx, productID, tenant)
	if err != nil {
		return nil, err
	}
	if len(histories) == 0 {
		return nil, nil
	}
	return &histories[0], nil
}

type priceCacheRepo struct {
	*table[model.PriceCache, *model.PriceCache]
}

func (r *priceCacheRepo) GetByURL(ctx context.Context, url, tenant string) (*model.PriceCache, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if string(all[i].URL) == url {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (r *priceCacheRepo) GetByProductName(ctx context.Context, productName, tenant string) ([]model.PriceCache, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	out := make([]model.PriceCache, 0, len(all))
	for _, c := range all {
		if containsFold(c.ProductNameFound, productName) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *priceCacheRepo) GetRecentlyChecked(ctx context.Context, hours int, tenant string) ([]model.PriceCache, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	cutoff := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
	return repository.CachesCheckedSince(all, cutoff), nil
}

func (r *priceCacheRepo) GetDiscountedItems(ctx context.Context, tenant string) ([]model.PriceCache, error) {
	all, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	return repository.CachesWithDiscount(all), nil
}
