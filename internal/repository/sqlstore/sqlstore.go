// Package sqlstore reserves the relational provider slot. The connection
// is opened and pooled so the wiring is proven, but the entity
// repositories are stubs until the relational schema lands; every
// operation reports repository.ErrNotImplemented at call time so an
// environment pointed at SQL fails loudly per request, not at startup.
package sqlstore

import (
	"gorm.io/gorm"

	"github.com/agrover-luv/SlashAlert-API/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for health checks.
func (s *Store) DB() *gorm.DB { return s.db }

func (s *Store) Products() repository.ProductRepository {
	return repository.NotImplementedProducts{}
}

func (s *Store) Alerts() repository.AlertRepository {
	return repository.NotImplementedAlerts{}
}

func (s *Store) Retailers() repository.RetailerRepository {
	return repository.NotImplementedRetailers{}
}

func (s *Store) Reviews() repository.ReviewRepository {
	return repository.NotImplementedReviews{}
}

func (s *Store) PriceHistories() repository.PriceHistoryRepository {
	return repository.NotImplementedPriceHistories{}
}

func (s *Store) PriceCaches() repository.PriceCacheRepository {
	return repository.NotImplementedPriceCaches{}
}

func (s *Store) Users() repository.UserRepository {
	return repository.NotImplementedUsers{}
}
