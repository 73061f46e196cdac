package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity. The integer
// primary key doubles as the per-task ordering sequence.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_id").
			Comment("Caller-assigned ID; (task_id, event_id) is the idempotence key"),
		field.String("task_id"),
		field.String("type"),
		field.JSON("payload", json.RawMessage{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return nil
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("task_id", "event_id").
			Unique(),
		index.Fields("created_at"),
	}
}
