package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UsageCounter holds the schema definition for the UsageCounter entity:
// per-owner daily spend, reset by UTC day key.
type UsageCounter struct {
	ent.Schema
}

// Fields of the UsageCounter.
func (UsageCounter) Fields() []ent.Field {
	return []ent.Field{
		field.String("owner_key_hash"),
		field.String("day").
			Comment("UTC date, YYYY-MM-DD"),
		field.Int64("tokens_in").
			Default(0),
		field.Int64("tokens_out").
			Default(0),
		field.Int64("command_runs").
			Default(0),
	}
}

// Edges of the UsageCounter.
func (UsageCounter) Edges() []ent.Edge {
	return nil
}

// Indexes of the UsageCounter.
func (UsageCounter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_key_hash", "day").
			Unique(),
	}
}
