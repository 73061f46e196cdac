package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContainerSnapshot holds the schema definition for the
// ContainerSnapshot entity: the structured container state minus file
// bodies, which live in task_files.
type ContainerSnapshot struct {
	ent.Schema
}

// Fields of the ContainerSnapshot.
func (ContainerSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_id").
			Unique(),
		field.JSON("snapshot", json.RawMessage{}),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ContainerSnapshot.
func (ContainerSnapshot) Edges() []ent.Edge {
	return nil
}

// Indexes of the ContainerSnapshot.
func (ContainerSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id").
			Unique(),
	}
}
