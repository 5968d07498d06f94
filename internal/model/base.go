package model

import "time"

// TenantField is the canonical document field scoping a record to the
// caller that owns it. Older records may carry the tenant under a legacy
// field name instead; whether that name is honored as a read fallback is
// decided in configuration, not guessed per record.
const (
	TenantField       = "created_by"
	LegacyTenantField = "user_email"
)

// BaseEntity carries the attributes shared by every commerce record.
// created_date/updated_date are the only structured values; everything
// else stays on the canonical string contract.
type BaseEntity struct {
	ID          Flex       `json:"id" bson:"_id,omitempty"`
	CreatedDate *Timestamp `json:"created_date" bson:"created_date,omitempty"`
	UpdatedDate *Timestamp `json:"updated_date" bson:"updated_date,omitempty"`
	CreatedByID Flex       `json:"created_by_id" bson:"created_by_id,omitempty"`
	CreatedBy   Flex       `json:"created_by" bson:"created_by,omitempty"`
	IsSample    Flex       `json:"is_sample" bson:"is_sample,omitempty"`
}

// Entity is satisfied by a pointer to any record built on BaseEntity and
// gives the storage providers uniform access to the identity, tenant and
// stamping concerns.
type Entity interface {
	EntityID() string
	SetEntityID(id string)
	Tenant() string
	SetTenant(tenant string)
	StampCreated(now time.Time)
	StampUpdated(now time.Time)
}

func (b *BaseEntity) EntityID() string      { return string(b.ID) }
func (b *BaseEntity) SetEntityID(id string) { b.ID = Flex(id) }

func (b *BaseEntity) Tenant() string          { return string(b.CreatedBy) }
func (b *BaseEntity) SetTenant(tenant string) { b.CreatedBy = Flex(tenant) }

// StampCreated sets both timestamps; it is called exactly once, on create.
func (b *BaseEntity) StampCreated(now time.Time) {
	b.CreatedDate = NewTimestamp(now)
	b.UpdatedDate = NewTimestamp(now)
}

func (b *BaseEntity) StampUpdated(now time.Time) {
	b.UpdatedDate = NewTimestamp(now)
}
