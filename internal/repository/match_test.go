package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
)

func product(id, price string) model.Product {
	var p model.Product
	p.ID = model.Flex(id)
	p.CurrentPrice = model.Flex(price)
	return p
}

func TestProductsInPriceRangeCoercesStrings(t *testing.T) {
	products := []model.Product{
		product("p1", "150"),
		product("p2", "149.99"),
		product("p3", "150.01"),
		product("p4", "N/A"),
		product("p5", ""),
	}

	got := ProductsInPriceRange(products,
		decimal.NewFromInt(100), decimal.NewFromInt(150))
	if len(got) != 2 {
		t.Fatalf("got %d products, want 2", len(got))
	}
	if got[0].ID != "p1" || got[1].ID != "p2" {
		t.Errorf("got %v", got)
	}
}

func TestRetailersWithGuaranteeDays(t *testing.T) {
	retailers := make([]model.Retailer, 3)
	retailers[0].PriceGuaranteeDays = "30"
	retailers[1].PriceGuaranteeDays = "14"
	retailers[2].PriceGuaranteeDays = "soon"

	got := RetailersWithGuaranteeDays(retailers, 15)
	if len(got) != 1 || got[0].PriceGuaranteeDays != "30" {
		t.Errorf("got %v", got)
	}
}

func TestHistoriesInDateRange(t *testing.T) {
	histories := make([]model.PriceHistory, 4)
	histories[0].Date = "2024-01-15T00:00:00.000Z"
	histories[1].Date = "2024-02-15"
	histories[2].Date = "2023-12-01T00:00:00.000Z"
	histories[3].Date = "unknown"

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	got := HistoriesInDateRange(histories, start, end)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
}

func TestSortHistoriesNewestFirst(t *testing.T) {
	histories := make([]model.PriceHistory, 3)
	histories[0].ID = "old"
	histories[0].Date = "2024-01-01"
	histories[1].ID = "bad"
	histories[1].Date = "???"
	histories[2].ID = "new"
	histories[2].Date = "2024-02-01"

	SortHistoriesNewestFirst(histories)
	if histories[0].ID != "new" || histories[1].ID != "old" || histories[2].ID != "bad" {
		t.Errorf("order: %s, %s, %s", histories[0].ID, histories[1].ID, histories[2].ID)
	}
}

func TestCachesWithDiscount(t *testing.T) {
	caches := make([]model.PriceCache, 4)
	caches[0].DiscountAmount = "12.50"
	caches[1].DiscountAmount = "0"
	caches[2].DiscountAmount = ""
	caches[3].DiscountAmount = " "

	got := CachesWithDiscount(caches)
	if len(got) != 1 || got[0].DiscountAmount != "12.50" {
		t.Errorf("got %v", got)
	}
}
