package mongodb

import (
	"context"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
	"github.com/agrover-luv/SlashAlert-API/internal/repository"
)

type productRepo struct {
	*base[model.Product, *model.Product]
}

func (r *productRepo) GetByRetailer(ctx context.Context, retailer, tenant string) ([]model.Product, error) {
	return r.find(ctx, containsCI("retailer", retailer), tenant)
}

func (r *productRepo) GetByCategory(ctx context.Context, category, tenant string) ([]model.Product, error) {
	return r.find(ctx, containsCI("category", category), tenant)
}

// GetActiveProducts also matches records that predate the is_active
// column: absence counts as active.
func (r *productRepo) GetActiveProducts(ctx context.Context, tenant string) ([]model.Product, error) {
	pred := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "is_active", Value: "true"}},
		bson.D{{Key: "is_active", Value: ""}},
		bson.D{{Key: "is_active", Value: bson.D{{Key: "$exists", Value: false}}}},
	}}}
	return r.find(ctx, pred, tenant)
}

func (r *productRepo) GetByCreatedByID(ctx context.Context, createdByID, tenant string) ([]model.Product, error) {
	return r.find(ctx, bson.D{{Key: "created_by_id", Value: createdByID}}, tenant)
}

// GetByPriceRange fetches the tenant's products and applies the range on
// the parsed price client-side, so prices stored as strings and as native
// numbers coerce the same way.
func (r *productRepo) GetByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal, tenant string) ([]model.Product, error) {
	products, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	return repository.ProductsInPriceRange(products, minPrice, maxPrice), nil
}

func (r *productRepo) GetByURL(ctx context.Context, url, tenant string) (*model.Product, error) {
	return r.findOne(ctx, bson.D{{Key: "url", Value: url}}, tenant)
}
