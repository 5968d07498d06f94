package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
)

type alertRepo struct {
	*base[model.Alert, *model.Alert]
}

func (r *alertRepo) GetByProductID(ctx context.Context, productID, tenant string) ([]model.Alert, error) {
	return r.find(ctx, bson.D{{Key: "product_id", Value: productID}}, tenant)
}

func (r *alertRepo) GetByUserID(ctx context.Context, userID, tenant string) ([]model.Alert, error) {
	return r.find(ctx, bson.D{{Key: "user_id", Value: userID}}, tenant)
}

func (r *alertRepo) GetByAlertType(ctx context.Context, alertType, tenant string) ([]model.Alert, error) {
	return r.find(ctx, containsCI("alert_type", alertType), tenant)
}

func (r *alertRepo) GetSentAlerts(ctx context.Context, tenant string) ([]model.Alert, error) {
	return r.find(ctx, bson.D{{Key: "email_sent", Value: "true"}}, tenant)
}

// GetRecentAlerts filters on created_date, which is stored as a native
// datetime by the write path.
func (r *alertRepo) GetRecentAlerts(ctx context.Context, days int, tenant string) ([]model.Alert, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	pred := bson.D{{Key: "created_date", Value: bson.D{
		{Key: "$gte", Value: primitive.NewDateTimeFromTime(cutoff)},
	}}}
	return r.find(ctx, pred, tenant)
}
