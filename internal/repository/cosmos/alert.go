package cosmos

import (
	"context"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
)

type alertRepo struct {
	base *base[model.Alert, *model.Alert]
}

func (r *alertRepo) GetAll(ctx context.Context, tenant string) ([]model.Alert, error) {
	return r.base.GetAll(ctx, tenant)
}

func (r *alertRepo) GetByID(ctx context.Context, id, tenant string) (*model.Alert, error) {
	return r.base.GetByID(ctx, id, tenant)
}

func (r *alertRepo) Create(ctx context.Context, a *model.Alert) (*model.Alert, error) {
	return r.base.Create(ctx, a)
}

func (r *alertRepo) Update(ctx context.Context, a *model.Alert) (*model.Alert, error) {
	return r.base.Update(ctx, a)
}

func (r *alertRepo) Delete(ctx context.Context, id, tenant string) (bool, error) {
	return r.base.Delete(ctx, id, tenant)
}

func (r *alertRepo) Exists(ctx context.Context, id, tenant string) (bool, error) {
	return r.base.Exists(ctx, id, tenant)
}

func (r *alertRepo) Count(ctx context.Context, tenant string) (int, error) {
	return r.base.Count(ctx, tenant)
}

func (r *alertRepo) GetByProductID(ctx context.Context, productID, tenant string) ([]model.Alert, error) {
	return r.base.queryItems(ctx,
		"SELECT * FROM c WHERE c.product_id = @product_id AND "+tenantClause,
		append(tenantParam(tenant), azcosmos.QueryParameter{Name: "@product_id", Value: productID}))
}

func (r *alertRepo) GetByUserID(ctx context.Context, userID, tenant string) ([]model.Alert, error) {
	return r.base.queryItems(ctx,
		"SELECT * FROM c WHERE c.user_id = @user_id AND "+tenantClause,
		append(tenantParam(tenant), azcosmos.QueryParameter{Name: "@user_id", Value: userID}))
}

func (r *alertRepo) GetByAlertType(ctx context.Context, alertType, tenant string) ([]model.Alert, error) {
	return r.base.queryItems(ctx,
		"SELECT * FROM c WHERE STRINGEQUALS(c.alert_type, @alert_type, true) AND "+tenantClause,
		append(tenantParam(tenant), azcosmos.QueryParameter{Name: "@alert_type", Value: alertType}))
}

func (r *alertRepo) GetSentAlerts(ctx context.Context, tenant string) ([]model.Alert, error) {
	return r.base.queryItems(ctx,
		`SELECT * FROM c WHERE c.email_sent = "true" AND `+tenantClause,
		tenantParam(tenant))
}

// GetRecentAlerts leans on the canonical timestamp layout sorting
// lexicographically, so the cutoff compares as a string server-side.
func (r *alertRepo) GetRecentAlerts(ctx context.Context, days int, tenant string) ([]model.Alert, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days).Format(model.TimestampLayout)
	return r.base.queryItems(ctx,
		"SELECT * FROM c WHERE c.created_date >= @cutoff AND "+tenantClause,
		append(tenantParam(tenant), azcosmos.QueryParameter{Name: "@cutoff", Value: cutoff}))
}
