// Package csvfile implements the repository contract over delimited
// export files. The whole file is re-read on every call so results are
// always fresh; that bounds usable data size to what fits in memory, an
// accepted cost for export-sized files. The storage layer has no tenant
// column enforcement of its own, so tenant scoping happens entirely in
// the in-memory filter.
package csvfile

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
	"github.com/agrover-luv/SlashAlert-API/internal/repository"
)

// Files exposes one repository per export file under a base directory.
type Files struct {
	basePath      string
	tenantColumns []string
}

// New wires the flat-file provider. legacyTenantField, when non-empty,
// is read as a fallback column for rows exported before the tenant
// column was renamed.
func New(basePath, legacyTenantField string) *Files {
	cols := []string{model.TenantField}
	if legacyTenantField != "" {
		cols = append(cols, legacyTenantField)
	}
	return &Files{basePath: basePath, tenantColumns: cols}
}

func (f *Files) Products() repository.ProductRepository {
	return &productRepo{newTable[model.Product, *model.Product](f, "Product_export.csv", f.decodeProduct)}
}

func (f *Files) Alerts() repository.AlertRepository {
	return &alertRepo{newTable[model.Alert, *model.Alert](f, "Alert_export.csv", f.decodeAlert)}
}

func (f *Files) Retailers() repository.RetailerRepository {
	return &retailerRepo{newTable[model.Retailer, *model.Retailer](f, "Retailer_export.csv", f.decodeRetailer)}
}

func (f *Files) Reviews() repository.ReviewRepository {
	return &reviewRepo{newTable[model.Review, *model.Review](f, "Review_export.csv", f.decodeReview)}
}

func (f *Files) PriceHistories() repository.PriceHistoryRepository {
	return &priceHistoryRepo{newTable[model.PriceHistory, *model.PriceHistory](f, "PriceHistory_export.csv", f.decodePriceHistory)}
}

func (f *Files) PriceCaches() repository.PriceCacheRepository {
	return &priceCacheRepo{newTable[model.PriceCache, *model.PriceCache](f, "PriceCache_export.csv", f.decodePriceCache)}
}

func (f *Files) Users() repository.UserRepository {
	return &userRepo{files: f, fileName: "User_export.csv"}
}

// Row is one parsed CSV record keyed by header name.
type Row map[string]string

// Get returns the first non-empty value among the given column names.
func (r Row) Get(columns ...string) string {
	for _, c := range columns {
		if v, ok := r[c]; ok && v != "" {
			return v
		}
	}
	return ""
}

// readRows parses a delimited file into header-keyed rows. A missing or
// unreadable file yields no rows rather than an error; malformed records
// are skipped individually.
func (f *Files) readRows(fileName string) []Row {
	file, err := os.Open(filepath.Join(f.basePath, fileName))
	if err != nil {
		return nil
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// table implements the generic contract for one export file.
type table[T any, PT repository.EntityPtr[T]] struct {
	files    *Files
	fileName string
	decode   func(Row) T
}

func newTable[T any, PT repository.EntityPtr[T]](f *Files, fileName string, decode func(Row) T) *table[T, PT] {
	return &table[T, PT]{files: f, fileName: fileName, decode: decode}
}

func (t *table[T, PT]) loadAll() []T {
	rows := t.files.readRows(t.fileName)
	entities := make([]T, 0, len(rows))
	for _, row := range rows {
		entities = append(entities, t.decode(row))
	}
	return entities
}

func (t *table[T, PT]) GetAll(_ context.Context, tenant string) ([]T, error) {
	all := t.loadAll()
	out := make([]T, 0, len(all))
	for i := range all {
		if PT(&all[i]).Tenant() == tenant {
			out = append(out, all[i])
		}
	}
	return out, nil
}

func (t *table[T, PT]) GetByID(_ context.Context, id, tenant string) (*T, error) {
	all := t.loadAll()
	for i := range all {
		p := PT(&all[i])
		if p.EntityID() == id && p.Tenant() == tenant {
			return &all[i], nil
		}
	}
	return nil, nil
}

// Create stamps and returns the entity. The export files are a read-only
// source; nothing is written back.
func (t *table[T, PT]) Create(_ context.Context, entity *T) (*T, error) {
	p := PT(entity)
	if p.EntityID() == "" {
		p.SetEntityID(newRecordID())
	}
	p.StampCreated(time.Now().UTC())
	return entity, nil
}

func (t *table[T, PT]) Update(ctx context.Context, entity *T) (*T, error) {
	p := PT(entity)
	existing, err := t.GetByID(ctx, p.EntityID(), p.Tenant())
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, repository.ErrUpdateConflict
	}
	p.StampUpdated(time.Now().UTC())
	return entity, nil
}

func (t *table[T, PT]) Delete(ctx context.Context, id, tenant string) (bool, error) {
	existing, err := t.GetByID(ctx, id, tenant)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}

func (t *table[T, PT]) Exists(ctx context.Context, id, tenant string) (bool, error) {
	existing, err := t.GetByID(ctx, id, tenant)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}

func (t *table[T, PT]) Count(ctx context.Context, tenant string) (int, error) {
	all, err := t.GetAll(ctx, tenant)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

// newRecordID produces a 24-character identifier in the style the
// document stores use.
func newRecordID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:24]
}
