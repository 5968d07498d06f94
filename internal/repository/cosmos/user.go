package cosmos

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
	"github.com/agrover-luv/SlashAlert-API/internal/repository"
)

// userRepo manages identity documents. The user container is partitioned
// by the document's own partitionKey property, not by tenant, so lookups
// that only have an id go through a cross-partition query.
type userRepo struct {
	container *azcosmos.ContainerClient
}

func (r *userRepo) query(ctx context.Context, query string, params []azcosmos.QueryParameter) ([]model.User, error) {
	pager := r.container.NewQueryItemsPager(query, azcosmos.PartitionKey{}, &azcosmos.QueryOptions{
		QueryParameters: params,
	})

	out := []model.User{}
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var u model.User
			if err := json.Unmarshal(raw, &u); err != nil {
				continue
			}
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *userRepo) queryOne(ctx context.Context, query string, params []azcosmos.QueryParameter) (*model.User, error) {
	users, err := r.query(ctx, query, params)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *userRepo) GetAll(ctx context.Context) ([]model.User, error) {
	return r.query(ctx, "SELECT * FROM c", nil)
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.queryOne(ctx, "SELECT * FROM c WHERE c.id = @id",
		[]azcosmos.QueryParameter{{Name: "@id", Value: id}})
}

func (r *userRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if user.ID == "" {
		user.ID = model.Flex(newDocumentID())
	}
	if user.PartitionKey == "" {
		user.PartitionKey = user.Email
	}
	if user.CreatedAt == nil {
		user.CreatedAt = model.NewTimestamp(time.Now().UTC())
	}

	item, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}
	pk := azcosmos.NewPartitionKeyString(string(user.PartitionKey))
	if _, err := r.container.CreateItem(ctx, pk, item, nil); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) Update(ctx context.Context, user *model.User) (*model.User, error) {
	existing, err := r.GetByID(ctx, string(user.ID))
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, repository.ErrUpdateConflict
	}
	if user.PartitionKey == "" {
		user.PartitionKey = existing.PartitionKey
	}

	item, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}
	pk := azcosmos.NewPartitionKeyString(string(user.PartitionKey))
	if _, err := r.container.ReplaceItem(ctx, pk, string(user.ID), item, nil); err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUpdateConflict
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepo) Delete(ctx context.Context, id string) (bool, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}
	pk := azcosmos.NewPartitionKeyString(string(existing.PartitionKey))
	if _, err := r.container.DeleteItem(ctx, pk, id, nil); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *userRepo) Exists(ctx context.Context, id string) (bool, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}

func (r *userRepo) Count(ctx context.Context) (int, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.queryOne(ctx, "SELECT * FROM c WHERE STRINGEQUALS(c.email, @email, true)",
		[]azcosmos.QueryParameter{{Name: "@email", Value: email}})
}

func (r *userRepo) GetBySub(ctx context.Context, sub string) (*model.User, error) {
	return r.queryOne(ctx, "SELECT * FROM c WHERE c.sub = @sub",
		[]azcosmos.QueryParameter{{Name: "@sub", Value: sub}})
}

func (r *userRepo) GetByProvider(ctx context.Context, provider string) ([]model.User, error) {
	return r.query(ctx, "SELECT * FROM c WHERE STRINGEQUALS(c.provider, @provider, true)",
		[]azcosmos.QueryParameter{{Name: "@provider", Value: provider}})
}

func (r *userRepo) GetActiveUsers(ctx context.Context) ([]model.User, error) {
	return r.query(ctx, "SELECT * FROM c WHERE c.is_active = true", nil)
}

func (r *userRepo) GetRecentLogins(ctx context.Context, days int) ([]model.User, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days).Format(model.TimestampLayout)
	return r.query(ctx, "SELECT * FROM c WHERE c.last_login >= @cutoff",
		[]azcosmos.QueryParameter{{Name: "@cutoff", Value: cutoff}})
}

// GetByPartitionKey is the point read, skipping the query gateway.
func (r *userRepo) GetByPartitionKey(ctx context.Context, id, partitionKey string) (*model.User, error) {
	resp, err := r.container.ReadItem(ctx, azcosmos.NewPartitionKeyString(partitionKey), id, nil)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	var u model.User
	if err := json.Unmarshal(resp.Value, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
