package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
	"github.com/agrover-luv/SlashAlert-API/internal/repository"
)

// userRepo manages identity records. Users are not tenant-scoped, so none
// of its filters carry a created_by predicate.
type userRepo struct {
	coll *mongo.Collection
}

func (r *userRepo) GetAll(ctx context.Context) ([]model.User, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("mongodb: find users: %w", err)
	}
	out := []model.User{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("mongodb: decode users: %w", err)
	}
	return out, nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *userRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if user.ID.IsEmpty() {
		user.ID = model.Flex(primitive.NewObjectID().Hex())
	}
	now := time.Now().UTC()
	if user.CreatedAt == nil {
		user.CreatedAt = model.NewTimestamp(now)
	}
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return nil, fmt.Errorf("mongodb: insert user: %w", err)
	}
	return user, nil
}

func (r *userRepo) Update(ctx context.Context, user *model.User) (*model.User, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: string(user.ID)}}, user)
	if err != nil {
		return nil, fmt.Errorf("mongodb: replace user: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("%w: User %q", repository.ErrUpdateConflict, user.ID)
	}
	return user, nil
}

func (r *userRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return false, fmt.Errorf("mongodb: delete user: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *userRepo) Exists(ctx context.Context, id string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return false, fmt.Errorf("mongodb: count users: %w", err)
	}
	return n > 0, nil
}

func (r *userRepo) Count(ctx context.Context) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("mongodb: count users: %w", err)
	}
	return int(n), nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *userRepo) GetBySub(ctx context.Context, sub string) (*model.User, error) {
	return r.findOne(ctx, bson.D{{Key: "sub", Value: sub}})
}

func (r *userRepo) GetByProvider(ctx context.Context, provider string) ([]model.User, error) {
	return r.findMany(ctx, bson.D{{Key: "provider", Value: provider}})
}

func (r *userRepo) GetActiveUsers(ctx context.Context) ([]model.User, error) {
	return r.findMany(ctx, bson.D{{Key: "is_active", Value: true}})
}

func (r *userRepo) GetRecentLogins(ctx context.Context, days int) ([]model.User, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	return r.findMany(ctx, bson.D{{Key: "last_login", Value: bson.D{
		{Key: "$gte", Value: primitive.NewDateTimeFromTime(cutoff)},
	}}})
}

// GetByPartitionKey is a point-lookup concept of the partition-keyed
// provider; the document store has no partition coordinate.
func (r *userRepo) GetByPartitionKey(ctx context.Context, id, partitionKey string) (*model.User, error) {
	return nil, repository.ErrNotImplemented
}

func (r *userRepo) findOne(ctx context.Context, filter bson.D) (*model.User, error) {
	var user model.User
	err := r.coll.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongodb: find user: %w", err)
	}
	return &user, nil
}

func (r *userRepo) findMany(ctx context.Context, filter bson.D) ([]model.User, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongodb: find users: %w", err)
	}
	out := []model.User{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("mongodb: decode users: %w", err)
	}
	return out, nil
}
