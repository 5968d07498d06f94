// Package cosmos implements the repository contract over a
// partition-keyed document store. Commerce documents are partitioned by
// their tenant value, so tenant scoping rides on the partition key as
// well as the query predicate. Only products, alerts and users were ever
// migrated to this store; the remaining entities answer with the
// not-implemented stubs.
package cosmos

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"github.com/google/uuid"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
	"github.com/agrover-luv/SlashAlert-API/internal/repository"
)

type Config struct {
	Endpoint     string
	Key          string
	DatabaseName string

	ProductsContainer string
	AlertsContainer   string
	UsersContainer    string
}

// Store holds one container client per migrated entity.
type Store struct {
	client   *azcosmos.Client
	products *azcosmos.ContainerClient
	alerts   *azcosmos.ContainerClient
	users    *azcosmos.ContainerClient
}

// Connect builds the container clients. The SDK does not dial until the
// first request, so connectivity problems surface on first use.
func Connect(cfg Config) (*Store, error) {
	cred, err := azcosmos.NewKeyCredential(cfg.Key)
	if err != nil {
		return nil, err
	}
	client, err := azcosmos.NewClientWithKey(cfg.Endpoint, cred, nil)
	if err != nil {
		return nil, err
	}

	s := &Store{client: client}
	if s.products, err = client.NewContainer(cfg.DatabaseName, cfg.ProductsContainer); err != nil {
		return nil, err
	}
	if s.alerts, err = client.NewContainer(cfg.DatabaseName, cfg.AlertsContainer); err != nil {
		return nil, err
	}
	if s.users, err = client.NewContainer(cfg.DatabaseName, cfg.UsersContainer); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Products() repository.ProductRepository {
	return &productRepo{base: newBase[model.Product, *model.Product](s.products)}
}

func (s *Store) Alerts() repository.AlertRepository {
	return &alertRepo{base: newBase[model.Alert, *model.Alert](s.alerts)}
}

func (s *Store) Users() repository.UserRepository {
	return &userRepo{container: s.users}
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

// base implements the generic contract for one container.
type base[T any, PT repository.EntityPtr[T]] struct {
	container *azcosmos.ContainerClient
}

func newBase[T any, PT repository.EntityPtr[T]](c *azcosmos.ContainerClient) *base[T, PT] {
	return &base[T, PT]{container: c}
}

// queryItems runs a SQL query across all partitions and decodes the
// matching documents. The zero-value partition key makes the pager fan
// out cross-partition.
func (b *base[T, PT]) queryItems(ctx context.Context, query string, params []azcosmos.QueryParameter) ([]T, error) {
	pager := b.container.NewQueryItemsPager(query, azcosmos.PartitionKey{}, &azcosmos.QueryOptions{
		QueryParameters: params,
	})

	out := []T{}
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var entity T
			if err := json.Unmarshal(raw, &entity); err != nil {
				continue
			}
			out = append(out, entity)
		}
	}
	return out, nil
}

func (b *base[T, PT]) queryOne(ctx context.Context, query string, params []azcosmos.QueryParameter) (*T, error) {
	items, err := b.queryItems(ctx, query, params)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func tenantParam(tenant string) []azcosmos.QueryParameter {
	return []azcosmos.QueryParameter{{Name: "@tenant", Value: tenant}}
}

const tenantClause = "c." + model.TenantField + " = @tenant"

func (b *base[T, PT]) GetAll(ctx context.Context, tenant string) ([]T, error) {
	return b.queryItems(ctx, "SELECT * FROM c WHERE "+tenantClause, tenantParam(tenant))
}

func (b *base[T, PT]) GetByID(ctx context.Context, id, tenant string) (*T, error) {
	return b.queryOne(ctx,
		"SELECT * FROM c WHERE c.id = @id AND "+tenantClause,
		append(tenantParam(tenant), azcosmos.QueryParameter{Name: "@id", Value: id}))
}

// marshalItem serializes the entity with its partition key field set to
// the tenant value, which is what the container is partitioned on.
func marshalItem[T any, PT repository.EntityPtr[T]](entity *T, tenant string) ([]byte, error) {
	raw, err := json.Marshal(entity)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	doc["partitionKey"] = tenant
	return json.Marshal(doc)
}

func (b *base[T, PT]) Create(ctx context.Context, entity *T) (*T, error) {
	p := PT(entity)
	if p.EntityID() == "" {
		p.SetEntityID(newDocumentID())
	}
	p.StampCreated(time.Now().UTC())

	item, err := marshalItem[T, PT](entity, p.Tenant())
	if err != nil {
		return nil, err
	}
	pk := azcosmos.NewPartitionKeyString(p.Tenant())
	if _, err := b.container.CreateItem(ctx, pk, item, nil); err != nil {
		return nil, err
	}
	return entity, nil
}

func (b *base[T, PT]) Update(ctx context.Context, entity *T) (*T, error) {
	p := PT(entity)
	existing, err := b.GetByID(ctx, p.EntityID(), p.Tenant())
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, repository.ErrUpdateConflict
	}
	p.StampUpdated(time.Now().UTC())

	item, err := marshalItem[T, PT](entity, p.Tenant())
	if err != nil {
		return nil, err
	}
	pk := azcosmos.NewPartitionKeyString(p.Tenant())
	if _, err := b.container.ReplaceItem(ctx, pk, p.EntityID(), item, nil); err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUpdateConflict
		}
		return nil, err
	}
	return entity, nil
}

func (b *base[T, PT]) Delete(ctx context.Context, id, tenant string) (bool, error) {
	pk := azcosmos.NewPartitionKeyString(tenant)
	if _, err := b.container.DeleteItem(ctx, pk, id, nil); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (b *base[T, PT]) Exists(ctx context.Context, id, tenant string) (bool, error) {
	existing, err := b.GetByID(ctx, id, tenant)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}

func (b *base[T, PT]) Count(ctx context.Context, tenant string) (int, error) {
	all, err := b.GetAll(ctx, tenant)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

func isNotFound(err error) bool {
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == 404
}

func newDocumentID() string {
	return uuid.New().String()
}
