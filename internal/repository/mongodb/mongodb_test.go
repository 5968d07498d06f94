package mongodb

import (
	"context"
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
	"github.com/agrover-luv/SlashAlert-API/internal/repository"
)

func TestTenantFilterCanonicalOnly(t *testing.T) {
	r := &base[model.Product, *model.Product]{}

	got := r.tenantFilter("alice@example.com")
	want := bson.D{{Key: "created_by", Value: "alice@example.com"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTenantFilterWithLegacyFallback(t *testing.T) {
	r := &base[model.Product, *model.Product]{legacy: "user_email"}

	got := r.tenantFilter("alice@example.com")
	want := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "created_by", Value: "alice@example.com"}},
		bson.D{{Key: "user_email", Value: "alice@example.com"}},
	}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIDFilterRequiresBothMatches(t *testing.T) {
	r := &base[model.Alert, *model.Alert]{}

	got := r.idFilter("a1", "alice@example.com")
	want := bson.D{{Key: "$and", Value: bson.A{
		bson.D{{Key: "_id", Value: "a1"}},
		bson.D{{Key: "created_by", Value: "alice@example.com"}},
	}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCaseInsensitiveMatchersQuoteMetacharacters(t *testing.T) {
	eq := equalsCI("retailer", "Best.Buy")
	rx, ok := eq[0].Value.(primitive.Regex)
	if !ok {
		t.Fatalf("got %T", eq[0].Value)
	}
	if rx.Pattern != `^Best\.Buy$` || rx.Options != "i" {
		t.Errorf("anchored pattern: %q %q", rx.Pattern, rx.Options)
	}

	contains := containsCI("product_name_found", "4K (HDR)")
	rx, ok = contains[0].Value.(primitive.Regex)
	if !ok {
		t.Fatalf("got %T", contains[0].Value)
	}
	if rx.Pattern != `4K \(HDR\)` {
		t.Errorf("unanchored pattern: %q", rx.Pattern)
	}
}

func TestConnectRequiresConnectionString(t *testing.T) {
	_, err := Connect(context.Background(), Config{})
	if err == nil {
		t.Fatal("empty connection string must fail")
	}
}

var _ repository.ProductRepository = (*productRepo)(nil)
var _ repository.UserRepository = (*userRepo)(nil)
