package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OAuthAccount holds the schema definition for the OAuthAccount entity:
// an external identity linked to an owner key.
type OAuthAccount struct {
	ent.Schema
}

// Fields of the OAuthAccount.
func (OAuthAccount) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("account_id").
			Unique().
			Immutable(),
		field.String("provider"),
		field.String("subject").
			Comment("Provider-side stable user ID"),
		field.String("owner_key_hash"),
		field.String("email").
			Optional(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the OAuthAccount.
func (OAuthAccount) Edges() []ent.Edge {
	return nil
}

// Indexes of the OAuthAccount.
func (OAuthAccount) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider", "subject").
			Unique(),
		index.Fields("owner_key_hash"),
	}
}
