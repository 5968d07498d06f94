package csvfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
	"github.com/agrover-luv/SlashAlert-API/internal/repository"
	"github.com/shopspring/decimal"
)

var (
	_ repository.ProductRepository      = (*productRepo)(nil)
	_ repository.AlertRepository        = (*alertRepo)(nil)
	_ repository.RetailerRepository     = (*retailerRepo)(nil)
	_ repository.ReviewRepository       = (*reviewRepo)(nil)
	_ repository.PriceHistoryRepository = (*priceHistoryRepo)(nil)
	_ repository.PriceCacheRepository   = (*priceCacheRepo)(nil)
	_ repository.UserRepository         = (*userRepo)(nil)
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newTestFiles(t *testing.T) (*Files, string) {
	t.Helper()
	dir := t.TempDir()
	return New(dir, ""), dir
}

const productCSV = `id,name,current_price,is_active,retailer,category,url,created_by,created_date
p1,Laptop,999.99,true,BestBuy,electronics,https://x/1,alice@example.com,2024-03-01T10:00:00.000Z
p2,Mouse,25,,BestBuy,electronics,https://x/2,alice@example.com,2024-03-02T10:00:00.000Z
p3,Desk,N/A,false,Ikea,furniture,https://x/3,alice@example.com,2024-03-03T10:00:00.000Z
p4,Chair,150,true,Ikea,furniture,https://x/4,bob@example.com,2024-03-04T10:00:00.000Z
`

func TestTableGetAllScopesToTenant(t *testing.T) {
	f, dir := newTestFiles(t)
	writeFile(t, dir, "Product_export.csv", productCSV)
	repo := f.Products()

	products, err := repo.GetAll(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 3 {
		t.Fatalf("got %d products, want 3", len(products))
	}
	for _, p := range products {
		if p.Tenant() != "alice@example.com" {
			t.Errorf("leaked record %s owned by %s", p.ID, p.Tenant())
		}
	}

	count, err := repo.Count(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if count != len(products) {
		t.Errorf("count %d != listed %d", count, len(products))
	}
}

func TestTableMissingFileYieldsEmpty(t *testing.T) {
	f, _ := newTestFiles(t)

	products, err := f.Products().GetAll(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("got %d products, want 0", len(products))
	}
}

func TestTableGetByIDRequiresTenantMatch(t *testing.T) {
	f, dir := newTestFiles(t)
	writeFile(t, dir, "Product_export.csv", productCSV)
	repo := f.Products()
	ctx := context.Background()

	p, err := repo.GetByID(ctx, "p1", "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || p.Name != "Laptop" {
		t.Fatalf("got %v", p)
	}

	// Same id, wrong caller: invisible, not an error.
	p, err = repo.GetByID(ctx, "p1", "bob@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if p != nil {
		t.Errorf("cross-tenant read returned %v", p)
	}
}

func TestTableUpdateConflictAndDelete(t *testing.T) {
	f, dir := newTestFiles(t)
	writeFile(t, dir, "Product_export.csv", productCSV)
	repo := f.Products()
	ctx := context.Background()

	var missing model.Product
	missing.SetEntityID("p1")
	missing.SetTenant("bob@example.com")
	if _, err := repo.Update(ctx, &missing); !errors.Is(err, repository.ErrUpdateConflict) {
		t.Errorf("cross-tenant update: got %v, want conflict", err)
	}

	var owned model.Product
	owned.SetEntityID("p4")
	owned.SetTenant("bob@example.com")
	updated, err := repo.Update(ctx, &owned)
	if err != nil {
		t.Fatal(err)
	}
	if updated.UpdatedDate == nil {
		t.Error("update should stamp updated_date")
	}

	deleted, err := repo.Delete(ctx, "p4", "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if deleted {
		t.Error("cross-tenant delete must report false")
	}
	deleted, err = repo.Delete(ctx, "p4", "bob@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if !deleted {
		t.Error("owned delete should report true")
	}
}

func TestTableCreateAssignsIDAndStamps(t *testing.T) {
	f, _ := newTestFiles(t)

	var p model.Product
	p.Name = "Monitor"
	p.SetTenant("alice@example.com")

	created, err := f.Products().Create(context.Background(), &p)
	if err != nil {
		t.Fatal(err)
	}
	if created.EntityID() == "" {
		t.Error("create should assign an id")
	}
	if len(created.EntityID()) != 24 {
		t.Errorf("id length %d, want 24", len(created.EntityID()))
	}
	if created.CreatedDate == nil || created.UpdatedDate == nil {
		t.Error("create should stamp both dates")
	}
}

func TestActiveProductsTreatsEmptyAsActive(t *testing.T) {
	f, dir := newTestFiles(t)
	writeFile(t, dir, "Product_export.csv", productCSV)

	products, err := f.Products().GetActiveProducts(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}
	// p1 explicitly active, p2 blank (active by default); p3 is "false".
	if len(products) != 2 {
		t.Fatalf("got %d active products, want 2", len(products))
	}
	for _, p := range products {
		if p.IsActive == "false" {
			t.Errorf("inactive product %s leaked", p.ID)
		}
	}
}

func TestProductFilters(t *testing.T) {
	f, dir := newTestFiles(t)
	writeFile(t, dir, "Product_export.csv", productCSV)
	repo := f.Products()
	ctx := context.Background()

	byRetailer, err := repo.GetByRetailer(ctx, "bestbuy", "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(byRetailer) != 2 {
		t.Errorf("retailer match should be case-insensitive, got %d", len(byRetailer))
	}

	// "N/A" price must be excluded, not break the filter.
	inRange, err := repo.GetByPriceRange(ctx,
		decimal.NewFromInt(0), decimal.NewFromInt(100), "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(inRange) != 1 || inRange[0].Name != "Mouse" {
		t.Errorf("price range: got %v", inRange)
	}

	byURL, err := repo.GetByURL(ctx, "https://x/3", "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if byURL == nil || byURL.Name != "Desk" {
		t.Errorf("url lookup: got %v", byURL)
	}
}

func TestLegacyTenantColumnFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Product_export.csv",
		"id,name,user_email\np9,Old Record,carol@example.com\n")

	// Without the configured fallback the row belongs to nobody.
	strict := New(dir, "")
	products, err := strict.Products().GetAll(context.Background(), "carol@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 0 {
		t.Errorf("legacy column honored without config, got %d rows", len(products))
	}

	legacy := New(dir, "user_email")
	products, err = legacy.Products().GetAll(context.Background(), "carol@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 1 || products[0].Name != "Old Record" {
		t.Errorf("legacy fallback: got %v", products)
	}
}

func TestReadRowsToleratesRaggedRecords(t *testing.T) {
	f, dir := newTestFiles(t)
	// Second row is short, third has an extra column.
	writeFile(t, dir, "Retailer_export.csv",
		"id,name,price_guarantee_days,created_by\n"+
			"r1,BestBuy\n"+
			"r2,Target,14,alice@example.com,extra\n")

	rows := f.readRows("Retailer_export.csv")
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Get("created_by") != "" {
		t.Errorf("short row should leave missing columns empty")
	}
	if rows[1].Get("name") != "Target" {
		t.Errorf("long row: got %q", rows[1].Get("name"))
	}
}

func TestPriceHistoryNewestFirst(t *testing.T) {
	f, dir := newTestFiles(t)
	writeFile(t, dir, "PriceHistory_export.csv",
		"id,product_id,price,date,change_percentage,created_by\n"+
			"h1,p1,100,2024-01-01T00:00:00.000Z,,alice@example.com\n"+
			"h2,p1,90,2024-02-01T00:00:00.000Z,-10.0,alice@example.com\n"+
			"h3,p1,95,2024-01-15T00:00:00.000Z,5.5,alice@example.com\n")
	repo := f.PriceHistories()
	ctx := context.Background()

	histories, err := repo.GetByProductID(ctx, "p1", "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(histories) != 3 || histories[0].ID != "h2" || histories[2].ID != "h1" {
		t.Errorf("order: got %v", histories)
	}

	latest, err := repo.GetLatestPrice(ctx, "p1", "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if latest == nil || latest.ID != "h2" {
		t.Errorf("latest: got %v", latest)
	}

	drops, err := repo.GetPriceDrops(ctx, "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(drops) != 1 || drops[0].ID != "h2" {
		t.Errorf("drops: got %v", drops)
	}
}

func TestUserRepoIgnoresTenantScoping(t *testing.T) {
	f, dir := newTestFiles(t)
	writeFile(t, dir, "User_export.csv",
		"id,email,provider,is_active,last_login\n"+
			"u1,alice@example.com,google,true,2024-03-01T10:00:00.000Z\n"+
			"u2,bob@example.com,google,false,2024-01-01T10:00:00.000Z\n"+
			"u3,carol@example.com,github,,\n")
	repo := f.Users()
	ctx := context.Background()

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d users, want 3", len(all))
	}

	byEmail, err := repo.GetByEmail(ctx, "ALICE@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if byEmail == nil || byEmail.ID != "u1" {
		t.Errorf("email lookup: got %v", byEmail)
	}

	active, err := repo.GetActiveUsers(ctx)
	if err != nil {
		t.Fatal(err)
	}
	// Blank is_active defaults to active.
	if len(active) != 2 {
		t.Errorf("got %d active users, want 2", len(active))
	}

	if _, err := repo.GetByPartitionKey(ctx, "u1", "pk"); !errors.Is(err, repository.ErrNotImplemented) {
		t.Errorf("partition lookup: got %v, want not implemented", err)
	}
}
