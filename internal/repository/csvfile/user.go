package csvfile

import (
	"context"
	"strings"
	"time"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
	"github.com/agrover-luv/SlashAlert-API/internal/repository"
)

// userRepo reads identity records from the user export. Users are not
// tenant-scoped, so it does not go through the generic table.
type userRepo struct {
	files    *Files
	fileName string
}

func (r *userRepo) loadAll() []model.User {
	rows := r.files.readRows(r.fileName)
	users := make([]model.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, decodeUser(row))
	}
	return users
}

func (r *userRepo) GetAll(_ context.Context) ([]model.User, error) {
	return r.loadAll(), nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range r.loadAll() {
		if string(u.ID) == id {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

// Create stamps and returns the user without writing the export back.
func (r *userRepo) Create(_ context.Context, user *model.User) (*model.User, error) {
	if user.ID == "" {
		user.ID = model.Flex(newRecordID())
	}
	if user.CreatedAt == nil {
		user.CreatedAt = model.NewTimestamp(time.Now().UTC())
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
	return user, nil
}

func (r *userRepo) Delete(ctx context.Context, id string) (bool, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}

func (r *userRepo) Exists(ctx context.Context, id string) (bool, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}

func (r *userRepo) Count(_ context.Context) (int, error) {
	return len(r.loadAll()), nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.loadAll() {
		if strings.EqualFold(string(u.Email), email) {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (r *userRepo) GetBySub(_ context.Context, sub string) (*model.User, error) {
	for _, u := range r.loadAll() {
		if string(u.Sub) == sub {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (r *userRepo) GetByProvider(_ context.Context, provider string) ([]model.User, error) {
	all := r.loadAll()
	out := make([]model.User, 0, len(all))
	for _, u := range all {
		if strings.EqualFold(string(u.Provider), provider) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *userRepo) GetActiveUsers(_ context.Context) ([]model.User, error) {
	all := r.loadAll()
	out := make([]model.User, 0, len(all))
	for _, u := range all {
		if u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *userRepo) GetRecentLogins(_ context.Context, days int) ([]model.User, error) {
	all := r.loadAll()
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	out := make([]model.User, 0, len(all))
	for _, u := range all {
		if u.LastLogin != nil && !u.LastLogin.Before(cutoff) {
			out = append(out, u)
		}
	}
	return out, nil
}

// GetByPartitionKey is a partition-store point lookup; the flat-file
// provider has no partition concept.
func (r *userRepo) GetByPartitionKey(_ context.Context, _, _ string) (*model.User, error) {
	return nil, repository.ErrNotImplemented
}
