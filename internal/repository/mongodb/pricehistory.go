package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
	"github.com/agrover-luv/SlashAlert-API/internal/repository"
)

type priceHistoryRepo struct {
	*base[model.PriceHistory, *model.PriceHistory]
}

func (r *priceHistoryRepo) GetByProductID(ctx context.Context, productID, tenant string) ([]model.PriceHistory, error) {
	pred := bson.D{{Key: "product_id", Value: productID}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return r.find(ctx, pred, tenant, opts)
}

// GetByDateRange parses the string-stored date client-side; a record
// whose date does not parse never matches.
func (r *priceHistoryRepo) GetByDateRange(ctx context.Context, start, end time.Time, tenant string) ([]model.PriceHistory, error) {
	histories, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	return repository.HistoriesInDateRange(histories, start, end), nil
}

// GetPriceDrops matches a leading minus on change_percentage, the source
// data's drop marker.
func (r *priceHistoryRepo) GetPriceDrops(ctx context.Context, tenant string) ([]model.PriceHistory, error) {
	pred := bson.D{{Key: "change_percentage", Value: primitive.Regex{Pattern: "^-"}}}
	return r.find(ctx, pred, tenant)
}

func (r *priceHistoryRepo) GetLatestPrice(ctx context.Context, productID, tenant string) (*model.PriceHistory, error) {
	pred := bson.D{{Key: "product_id", Value: productID}}
	opts := options.FindOne().SetSort(bson.D{{Key: "date", Value: -1}})
	return r.findOne(ctx, pred, tenant, opts)
}

type priceCacheRepo struct {
	*base[model.PriceCache, *model.PriceCache]
}

func (r *priceCacheRepo) GetByURL(ctx context.Context, url, tenant string) (*model.PriceCache, error) {
	return r.findOne(ctx, bson.D{{Key: "url", Value: url}}, tenant)
}

func (r *priceCacheRepo) GetByProductName(ctx context.Context, productName, tenant string) ([]model.PriceCache, error) {
	return r.find(ctx, containsCI("product_name_found", productName), tenant)
}

// GetRecentlyChecked parses the string-stored last_checked client-side.
func (r *priceCacheRepo) GetRecentlyChecked(ctx context.Context, hours int, tenant string) ([]model.PriceCache, error) {
	caches, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	cutoff := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
	return repository.CachesCheckedSince(caches, cutoff), nil
}

func (r *priceCacheRepo) GetDiscountedItems(ctx context.Context, tenant string) ([]model.PriceCache, error) {
	pred := bson.D{{Key: "$and", Value: bson.A{
		bson.D{{Key: "discount_amount", Value: bson.D{{Key: "$ne", Value: nil}}}},
		bson.D{{Key: "discount_amount", Value: bson.D{{Key: "$ne", Value: ""}}}},
		bson.D{{Key: "discount_amount", Value: bson.D{{Key: "$ne", Value: "0"}}}},
	}}}
	return r.find(ctx, pred, tenant)
}
