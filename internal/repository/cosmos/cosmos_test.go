package cosmos

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
	"github.com/agrover-luv/SlashAlert-API/internal/repository"
)

var (
	_ repository.ProductRepository = (*productRepo)(nil)
	_ repository.AlertRepository   = (*alertRepo)(nil)
	_ repository.UserRepository    = (*userRepo)(nil)
)

// The SDK does not dial at construction time, so the client can be built
// against a placeholder account.
func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Connect(Config{
		Endpoint:          "https://localhost:8081",
		Key:               "dGVzdC1rZXk=",
		DatabaseName:      "slashalert",
		ProductsContainer: "products",
		AlertsContainer:   "alerts",
		UsersContainer:    "users",
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestUnmigratedEntitiesSignalNotImplemented(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if _, err := s.Retailers().GetAll(ctx, "alice@example.com"); !errors.Is(err, repository.ErrNotImplemented) {
		t.Errorf("retailers: got %v", err)
	}
	if _, err := s.Reviews().GetByRating(ctx, 5, "alice@example.com"); !errors.Is(err, repository.ErrNotImplemented) {
		t.Errorf("reviews: got %v", err)
	}
	if _, err := s.PriceHistories().GetLatestPrice(ctx, "p1", "alice@example.com"); !errors.Is(err, repository.ErrNotImplemented) {
		t.Errorf("price histories: got %v", err)
	}
	if _, err := s.PriceCaches().Count(ctx, "alice@example.com"); !errors.Is(err, repository.ErrNotImplemented) {
		t.Errorf("price caches: got %v", err)
	}
}

func TestTenantClauseUsesCanonicalField(t *testing.T) {
	if tenantClause != "c.created_by = @tenant" {
		t.Errorf("tenant clause drifted: %q", tenantClause)
	}
	params := tenantParam("alice@example.com")
	if len(params) != 1 || params[0].Name != "@tenant" || params[0].Value != "alice@example.com" {
		t.Errorf("tenant params: %v", params)
	}
}

func TestMarshalItemInjectsPartitionKey(t *testing.T) {
	var p model.Product
	p.SetEntityID("p1")
	p.SetTenant("alice@example.com")
	p.Name = "Widget"

	item, err := marshalItem[model.Product, *model.Product](&p, p.Tenant())
	if err != nil {
		t.Fatal(err)
	}

	var doc map[string]any
	if err := json.Unmarshal(item, &doc); err != nil {
		t.Fatal(err)
	}
	if doc["partitionKey"] != "alice@example.com" {
		t.Errorf("partitionKey: got %v", doc["partitionKey"])
	}
	if doc["id"] != "p1" {
		t.Errorf("id: got %v", doc["id"])
	}
	if doc["created_by"] != "alice@example.com" {
		t.Errorf("created_by: got %v", doc["created_by"])
	}
}
