package model

// User is a federated identity record, not migrated commerce data: it is
// keyed by the OAuth subject and provider rather than by tenant, and its
// flags are native booleans.
type User struct {
	ID           Flex `json:"id" bson:"_id,omitempty"`
	PartitionKey Flex `json:"partitionKey" bson:"partitionKey,omitempty"`

	// sub claim assigned by the issuing identity provider.
	Sub      Flex `json:"sub" bson:"sub,omitempty"`
	Provider Flex `json:"provider" bson:"provider,omitempty"`

	Email         Flex `json:"email" bson:"email,omitempty"`
	EmailVerified bool `json:"email_verified" bson:"email_verified,omitempty"`

	Name       Flex `json:"name" bson:"name,omitempty"`
	GivenName  Flex `json:"given_name" bson:"given_name,omitempty"`
	FamilyName Flex `json:"family_name" bson:"family_name,omitempty"`
	Picture    Flex `json:"picture" bson:"picture,omitempty"`
	Locale     Flex `json:"locale" bson:"locale,omitempty"`

	CreatedAt      *Timestamp `json:"created_at" bson:"created_at,omitempty"`
	LastLogin      *Timestamp `json:"last_login" bson:"last_login,omitempty"`
	IsActive       bool       `json:"is_active" bson:"is_active,omitempty"`
	TokenExpiresAt *Timestamp `json:"token_expires_at" bson:"token_expires_at,omitempty"`
}
