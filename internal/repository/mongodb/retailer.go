package mongodb

import (
	"context"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
	"github.com/agrover-luv/SlashAlert-API/internal/repository"
)

type retailerRepo struct {
	*base[model.Retailer, *model.Retailer]
}

func (r *retailerRepo) GetByName(ctx context.Context, name, tenant string) (*model.Retailer, error) {
	return r.findOne(ctx, equalsCI("name", name), tenant)
}

// GetByPriceGuaranteeDays parses the string-stored day count client-side;
// records that do not parse are excluded.
func (r *retailerRepo) GetByPriceGuaranteeDays(ctx context.Context, minDays int, tenant string) ([]model.Retailer, error) {
	retailers, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	return repository.RetailersWithGuaranteeDays(retailers, minDays), nil
}
