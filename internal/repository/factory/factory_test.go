package factory

import (
	"context"
	"errors"
	"testing"

	"github.com/agrover-luv/SlashAlert-API/internal/repository"
)

func TestNewRejectsUnknownProvider(t *testing.T) {
	_, err := New(context.Background(), Config{Provider: "dynamo"})
	if err == nil {
		t.Fatal("unknown provider must fail construction")
	}
}

func TestNewCSVProvider(t *testing.T) {
	provider, err := New(context.Background(), Config{
		Provider:    "CSV", // matched case-insensitively
		CSVBasePath: t.TempDir(),
	})
	if err != nil {
		t.Fatal(err)
	}

	products, err := provider.Products().GetAll(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 0 {
		t.Errorf("empty directory should list nothing, got %d", len(products))
	}
}

func TestSQLProviderSignalsNotImplementedAtCallTime(t *testing.T) {
	provider, err := New(context.Background(), Config{Provider: "sql"})
	if err != nil {
		t.Fatalf("sql provider must construct: %v", err)
	}

	ctx := context.Background()
	if _, err := provider.Products().GetAll(ctx, "alice@example.com"); !errors.Is(err, repository.ErrNotImplemented) {
		t.Errorf("products: got %v", err)
	}
	if _, err := provider.Users().GetByEmail(ctx, "alice@example.com"); !errors.Is(err, repository.ErrNotImplemented) {
		t.Errorf("users: got %v", err)
	}
	if _, err := provider.Reviews().Count(ctx, "alice@example.com"); !errors.Is(err, repository.ErrNotImplemented) {
		t.Errorf("reviews: got %v", err)
	}
}
