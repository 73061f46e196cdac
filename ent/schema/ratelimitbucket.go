package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RateLimitBucket holds the schema definition for the RateLimitBucket
// entity: one fixed 60-second window per (owner, scope).
type RateLimitBucket struct {
	ent.Schema
}

// Fields of the RateLimitBucket.
func (RateLimitBucket) Fields() []ent.Field {
	return []ent.Field{
		field.String("owner_key_hash"),
		field.String("scope").
			Comment("create_task, rerun_review, or download"),
		field.Time("window_start"),
		field.Int("count").
			Default(0),
	}
}

// Edges of the RateLimitBucket.
func (RateLimitBucket) Edges() []ent.Edge {
	return nil
}

// Indexes of the RateLimitBucket.
func (RateLimitBucket) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_key_hash", "scope", "window_start").
			Unique(),
		index.Fields("window_start"),
	}
}
