// Package factory selects and constructs the storage provider named by
// configuration. Handlers only ever see the repository interfaces, so
// swapping providers is a config change, not a code change.
package factory

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/agrover-luv/SlashAlert-API/internal/repository"
	"github.com/agrover-luv/SlashAlert-API/internal/repository/cosmos"
	"github.com/agrover-luv/SlashAlert-API/internal/repository/csvfile"
	"github.com/agrover-luv/SlashAlert-API/internal/repository/mongodb"
	"github.com/agrover-luv/SlashAlert-API/internal/repository/sqlstore"
)

// Recognized provider names, matched case-insensitively.
const (
	ProviderCSV      = "csv"
	ProviderMongoDB  = "mongodb"
	ProviderCosmosDB = "cosmosdb"
	ProviderSQL      = "sql"
)

// Provider is the accessor set every storage backend exposes.
type Provider interface {
	Products() repository.ProductRepository
	Alerts() repository.AlertRepository
	Retailers() repository.RetailerRepository
	Reviews() repository.ReviewRepository
	PriceHistories() repository.PriceHistoryRepository
	PriceCaches() repository.PriceCacheRepository
	Users() repository.UserRepository
}

// Config carries the descriptor for each backend; only the one matching
// Provider is consulted.
type Config struct {
	Provider string

	CSVBasePath       string
	LegacyTenantField string

	Mongo  mongodb.Config
	Cosmos cosmos.Config

	// SQLDB is the pre-opened relational handle; the caller owns its
	// lifecycle.
	SQLDB *gorm.DB
}

// New constructs the configured provider. An unrecognized provider name
// is a construction error so a typo fails at startup rather than
// surfacing as empty results.
func New(ctx context.Context, cfg Config) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderCSV:
		return csvfile.New(cfg.CSVBasePath, cfg.LegacyTenantField), nil
	case ProviderMongoDB:
		return mongodb.Connect(ctx, cfg.Mongo)
	case ProviderCosmosDB:
		return cosmos.Connect(cfg.Cosmos)
	case ProviderSQL:
		return sqlstore.New(cfg.SQLDB), nil
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}
