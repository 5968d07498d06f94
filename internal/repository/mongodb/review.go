package mongodb

import (
	"context"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
	"github.com/agrover-luv/SlashAlert-API/internal/repository"
)

type reviewRepo struct {
	*base[model.Review, *model.Review]
}

func (r *reviewRepo) GetByRating(ctx context.Context, rating int, tenant string) ([]model.Review, error) {
	return r.find(ctx, bson.D{{Key: "rating", Value: strconv.Itoa(rating)}}, tenant)
}

func (r *reviewRepo) GetVerifiedReviews(ctx context.Context, tenant string) ([]model.Review, error) {
	return r.find(ctx, bson.D{{Key: "is_verified", Value: "true"}}, tenant)
}

func (r *reviewRepo) GetByUserName(ctx context.Context, userName, tenant string) ([]model.Review, error) {
	return r.find(ctx, containsCI("user_name", userName), tenant)
}

func (r *reviewRepo) GetTopRatedReviews(ctx context.Context, minRating int, tenant string) ([]model.Review, error) {
	reviews, err := r.GetAll(ctx, tenant)
	if err != nil {
		return nil, err
	}
	return repository.ReviewsWithMinRating(reviews, minRating), nil
}
