// Package mongodb implements the repository contract against MongoDB.
// Every query combines the entity-specific predicate with the tenant
// predicate natively; reads go through the flexible BSON registry so that
// mixed-type historical documents decode into the canonical string model.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
	"github.com/agrover-luv/SlashAlert-API/internal/repository"
)

// Config carries the connection descriptor for the document store.
type Config struct {
	ConnectionString string
	DatabaseName     string

	// LegacyTenantField, when non-empty, is honored as a read fallback
	// for records written before the tenant field was renamed.
	LegacyTenantField string
}

// Store is a live connection to the document database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	legacy string
}

// Connect opens the client with the flexible codec registry and verifies
// connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.ConnectionString == "" {
		return nil, errors.New("mongodb: connection string not configured")
	}
	opts := options.Client().
		ApplyURI(cfg.ConnectionString).
		SetRegistry(model.BsonRegistry())
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongodb: ping: %w", err)
	}
	return &Store{
		client: client,
		db:     client.Database(cfg.DatabaseName),
		legacy: cfg.LegacyTenantField,
	}, nil
}

// Close releases the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) Products() repository.ProductRepository {
	return &productRepo{newBase[model.Product, *model.Product](s, "Product")}
}

func (s *Store) Alerts() repository.AlertRepository {
	return &alertRepo{newBase[model.Alert, *model.Alert](s, "Alert")}
}

func (s *Store) Retailers() repository.RetailerRepository {
	return &retailerRepo{newBase[model.Retailer, *model.Retailer](s, "Retailer")}
}

func (s *Store) Reviews() repository.ReviewRepository {
	return &reviewRepo{newBase[model.Review, *model.Review](s, "Review")}
}

func (s *Store) PriceHistories() repository.PriceHistoryRepository {
	return &priceHistoryRepo{newBase[model.PriceHistory, *model.PriceHistory](s, "PriceHistory")}
}

func (s *Store) PriceCaches() repository.PriceCacheRepository {
	return &priceCacheRepo{newBase[model.PriceCache, *model.PriceCache](s, "PriceCache")}
}

func (s *Store) Users() repository.UserRepository {
	return &userRepo{coll: s.db.Collection("User")}
}

// base implements the generic contract for one collection.
type base[T any, PT repository.EntityPtr[T]] struct {
	coll   *mongo.Collection
	legacy string
}

func newBase[T any, PT repository.EntityPtr[T]](s *Store, collection string) *base[T, PT] {
	return &base[T, PT]{coll: s.db.Collection(collection), legacy: s.legacy}
}

// tenantFilter builds the created_by predicate, widened to the legacy
// field name when the fallback is configured.
func (r *base[T, PT]) tenantFilter(tenant string) bson.D {
	if r.legacy == "" {
		return bson.D{{Key: model.TenantField, Value: tenant}}
	}
	return bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: model.TenantField, Value: tenant}},
		bson.D{{Key: r.legacy, Value: tenant}},
	}}}
}

func (r *base[T, PT]) idFilter(id, tenant string) bson.D {
	return bson.D{{Key: "$and", Value: bson.A{
		bson.D{{Key: "_id", Value: id}},
		r.tenantFilter(tenant),
	}}}
}

func (r *base[T, PT]) GetAll(ctx context.Context, tenant string) ([]T, error) {
	return r.findAll(ctx, r.tenantFilter(tenant), nil)
}

func (r *base[T, PT]) GetByID(ctx context.Context, id, tenant string) (*T, error) {
	return r.findOneRaw(ctx, r.idFilter(id, tenant))
}

func (r *base[T, PT]) Create(ctx context.Context, entity *T) (*T, error) {
	p := PT(entity)
	if p.EntityID() == "" {
		p.SetEntityID(primitive.NewObjectID().Hex())
	}
	p.StampCreated(time.Now().UTC())
	if _, err := r.coll.InsertOne(ctx, entity); err != nil {
		return nil, fmt.Errorf("mongodb: insert into %s: %w", r.coll.Name(), err)
	}
	return entity, nil
}

func (r *base[T, PT]) Update(ctx context.Context, entity *T) (*T, error) {
	p := PT(entity)
	p.StampUpdated(time.Now().UTC())
	res, err := r.coll.ReplaceOne(ctx, r.idFilter(p.EntityID(), p.Tenant()), entity)
	if err != nil {
		return nil, fmt.Errorf("mongodb: replace in %s: %w", r.coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("%w: %s %q", repository.ErrUpdateConflict, r.coll.Name(), p.EntityID())
	}
	return entity, nil
}

func (r *base[T, PT]) Delete(ctx context.Context, id, tenant string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, r.idFilter(id, tenant))
	if err != nil {
		return false, fmt.Errorf("mongodb: delete from %s: %w", r.coll.Name(), err)
	}
	return res.DeletedCount > 0, nil
}

func (r *base[T, PT]) Exists(ctx context.Context, id, tenant string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, r.idFilter(id, tenant))
	if err != nil {
		return false, fmt.Errorf("mongodb: count in %s: %w", r.coll.Name(), err)
	}
	return n > 0, nil
}

func (r *base[T, PT]) Count(ctx context.Context, tenant string) (int, error) {
	n, err := r.coll.CountDocuments(ctx, r.tenantFilter(tenant))
	if err != nil {
		return 0, fmt.Errorf("mongodb: count in %s: %w", r.coll.Name(), err)
	}
	return int(n), nil
}

// find executes an entity predicate combined with the tenant predicate.
func (r *base[T, PT]) find(ctx context.Context, pred bson.D, tenant string, opts ...*options.FindOptions) ([]T, error) {
	filter := bson.D{{Key: "$and", Value: bson.A{pred, r.tenantFilter(tenant)}}}
	return r.findAll(ctx, filter, opts)
}

// findOne is the single-result variant of find; no match is a miss, not
// an error.
func (r *base[T, PT]) findOne(ctx context.Context, pred bson.D, tenant string, opts ...*options.FindOneOptions) (*T, error) {
	filter := bson.D{{Key: "$and", Value: bson.A{pred, r.tenantFilter(tenant)}}}
	return r.findOneRaw(ctx, filter, opts...)
}

func (r *base[T, PT]) findAll(ctx context.Context, filter any, opts []*options.FindOptions) ([]T, error) {
	cur, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("mongodb: find in %s: %w", r.coll.Name(), err)
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("mongodb: decode from %s: %w", r.coll.Name(), err)
	}
	return out, nil
}

func (r *base[T, PT]) findOneRaw(ctx context.Context, filter any, opts ...*options.FindOneOptions) (*T, error) {
	var entity T
	err := r.coll.FindOne(ctx, filter, opts...).Decode(&entity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongodb: find one in %s: %w", r.coll.Name(), err)
	}
	return &entity, nil
}

// containsCI builds an unanchored case-insensitive match on field.
func containsCI(field, value string) bson.D {
	return bson.D{{Key: field, Value: primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}}}
}

// equalsCI builds an anchored case-insensitive match on field.
func equalsCI(field, value string) bson.D {
	return bson.D{{Key: field, Value: primitive.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}}}
}
