package cosmos

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"github.com/shopspring/decimal"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
	"github.com/agrover-luv/SlashAlert-API/internal/repository"
)

type productRepo struct {
	base *base[model.Product, *model.Product]
}

func (r *productRepo) GetAll(ctx context.Context, tenant string) ([]model.Product, error) {
	return r.base.GetAll(ctx, tenant)
}

func (r *productRepo) GetByID(ctx context.Context, id, tenant string) (*model.Product, error) {
	return r.base.GetByID(ctx, id, tenant)
}

func (r *productRepo) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	return r.base.Create(ctx, p)
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	return r.base.Update(ctx, p)
}

func (r *productRepo) Delete(ctx context.Context, id, tenant string) (bool, error) {
	return r.base.Delete(ctx, id, tenant)
}

func (r *productRepo) Exists(ctx context.Context, id, tenant string) (bool, error) {
	return r.base.Exists(ctx, id, tenant)
}

func (r *productRepo) Count(ctx context.Context, tenant string) (int, error) {
	return r.base.Count(ctx, tenant)
}

func (r *productRepo) GetByRetailer(ctx context.Context, retailer, tenant string) ([]model.Product, error) {
	return r.base.queryItems(ctx,
		"SELECT * FROM c WHERE STRINGEQUALS(c.retailer, @retailer, true) AND "+tenantClause,
		append(tenantParam(tenant), azcosmos.QueryParameter{Name: "@retailer", Value: retailer}))
}

func (r *productRepo) GetByCategory(ctx context.Context, category, tenant string) ([]model.Product, error) {
	return r.base.queryItems(ctx,
		"SELECT * FROM c WHERE STRINGEQUALS(c.category, @category, true) AND "+tenantClause,
		append(tenantParam(tenant), azcosmos.QueryParameter{Name: "@category", Value: category}))
}

// GetActiveProducts treats a missing or empty is_active as active, the
// same reading every provider gives that field.
func (r *productRepo) GetActiveProducts(ctx context.Context, tenant string) ([]model.Product, error) {
	return r.base.queryItems(ctx,
		`SELECT * FROM c WHERE (c.is_active = "true" OR NOT IS_DEFINED(c.is_active) OR c.is_active = "") AND `+tenantClause,
		tenantParam(tenant))
}

func (r *productRepo) GetByCreatedByID(ctx context.Context, createdByID, tenant string) ([]model.Product, error) {
	return r.base.queryItems(ctx,
		"SELECT * FROM c WHERE c.created_by_id = @created_by_id AND "+tenantClause,
		append(tenantParam(tenant), azcosmos.QueryParameter{Name: "@created_by_id", Value: createdByID}))
}

// GetByPriceRange compares the parsed value of the string-typed price,
// which the store cannot do server-side.
func (r *productRepo) GetByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal, tenant string) ([]model.Product, error) {
	all, err := r.base.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	return repository.ProductsInPriceRange(all, minPrice, maxPrice), nil
}

func (r *productRepo) GetByURL(ctx context.Context, url, tenant string) (*model.Product, error) {
	return r.base.queryOne(ctx,
		"SELECT * FROM c WHERE c.url = @url AND "+tenantClause,
		append(tenantParam(tenant), azcosmos.QueryParameter{Name: "@url", Value: url}))
}
