package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
)

// Not-implemented repositories back the provider/entity combinations that
// exist in the contract but have no implementation for the selected
// provider. Every call reports ErrNotImplemented so a missing capability
// can never be mistaken for "no data".

type notImplemented[T any] struct{}

func (notImplemented[T]) GetAll(context.Context, string) ([]T, error) {
	return nil, ErrNotImplemented
}

func (notImplemented[T]) GetByID(context.Context, string, string) (*T, error) {
	return nil, ErrNotImplemented
}

func (notImplemented[T]) Create(context.Context, *T) (*T, error) {
	return nil, ErrNotImplemented
}

func (notImplemented[T]) Update(context.Context, *T) (*T, error) {
	return nil, ErrNotImplemented
}

func (notImplemented[T]) Delete(context.Context, string, string) (bool, error) {
	return false, ErrNotImplemented
}

func (notImplemented[T]) Exists(context.Context, string, string) (bool, error) {
	return false, ErrNotImplemented
}

func (notImplemented[T]) Count(context.Context, string) (int, error) {
	return 0, ErrNotImplemented
}

type NotImplementedProducts struct{ notImplemented[model.Product] }

func (NotImplementedProducts) GetByRetailer(context.Context, string, string) ([]model.Product, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedProducts) GetByCategory(context.Context, string, string) ([]model.Product, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedProducts) GetActiveProducts(context.Context, string) ([]model.Product, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedProducts) GetByCreatedByID(context.Context, string, string) ([]model.Product, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedProducts) GetByPriceRange(context.Context, decimal.Decimal, decimal.Decimal, string) ([]model.Product, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedProducts) GetByURL(context.Context, string, string) (*model.Product, error) {
	return nil, ErrNotImplemented
}

type NotImplementedAlerts struct{ notImplemented[model.Alert] }

func (NotImplementedAlerts) GetByProductID(context.Context, string, string) ([]model.Alert, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedAlerts) GetByUserID(context.Context, string, string) ([]model.Alert, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedAlerts) GetByAlertType(context.Context, string, string) ([]model.Alert, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedAlerts) GetSentAlerts(context.Context, string) ([]model.Alert, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedAlerts) GetRecentAlerts(context.Context, int, string) ([]model.Alert, error) {
	return nil, ErrNotImplemented
}

type NotImplementedRetailers struct{ notImplemented[model.Retailer] }

func (NotImplementedRetailers) GetByName(context.Context, string, string) (*model.Retailer, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedRetailers) GetByPriceGuaranteeDays(context.Context, int, string) ([]model.Retailer, error) {
	return nil, ErrNotImplemented
}

type NotImplementedReviews struct{ notImplemented[model.Review] }

func (NotImplementedReviews) GetByRating(context.Context, int, string) ([]model.Review, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedReviews) GetVerifiedReviews(context.Context, string) ([]model.Review, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedReviews) GetByUserName(context.Context, string, string) ([]model.Review, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedReviews) GetTopRatedReviews(context.Context, int, string) ([]model.Review, error) {
	return nil, ErrNotImplemented
}

type NotImplementedPriceHistories struct{ notImplemented[model.PriceHistory] }

func (NotImplementedPriceHistories) GetByProductID(context.Context, string, string) ([]model.PriceHistory, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedPriceHistories) GetByDateRange(context.Context, time.Time, time.Time, string) ([]model.PriceHistory, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedPriceHistories) GetPriceDrops(context.Context, string) ([]model.PriceHistory, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedPriceHistories) GetLatestPrice(context.Context, string, string) (*model.PriceHistory, error) {
	return nil, ErrNotImplemented
}

type NotImplementedPriceCaches struct{ notImplemented[model.PriceCache] }

func (NotImplementedPriceCaches) GetByURL(context.Context, string, string) (*model.PriceCache, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedPriceCaches) GetByProductName(context.Context, string, string) ([]model.PriceCache, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedPriceCaches) GetRecentlyChecked(context.Context, int, string) ([]model.PriceCache, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedPriceCaches) GetDiscountedItems(context.Context, string) ([]model.PriceCache, error) {
	return nil, ErrNotImplemented
}

// NotImplementedUsers covers the user collection for providers without a
// user store.
type NotImplementedUsers struct{}

func (NotImplementedUsers) GetAll(context.Context) ([]model.User, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedUsers) GetByID(context.Context, string) (*model.User, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedUsers) Create(context.Context, *model.User) (*model.User, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedUsers) Update(context.Context, *model.User) (*model.User, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedUsers) Delete(context.Context, string) (bool, error) {
	return false, ErrNotImplemented
}

func (NotImplementedUsers) Exists(context.Context, string) (bool, error) {
	return false, ErrNotImplemented
}

func (NotImplementedUsers) Count(context.Context) (int, error) {
	return 0, ErrNotImplemented
}

func (NotImplementedUsers) GetByEmail(context.Context, string) (*model.User, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedUsers) GetBySub(context.Context, string) (*model.User, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedUsers) GetByProvider(context.Context, string) ([]model.User, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedUsers) GetActiveUsers(context.Context) ([]model.User, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedUsers) GetRecentLogins(context.Context, int) ([]model.User, error) {
	return nil, ErrNotImplemented
}

func (NotImplementedUsers) GetByPartitionKey(context.Context, string, string) (*model.User, error) {
	return nil, ErrNotImplemented
}
