package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskFile holds the schema definition for the TaskFile entity: one
// file body of a persisted container.
type TaskFile struct {
	ent.Schema
}

// Fields of the TaskFile.
func (TaskFile) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_id"),
		field.String("path"),
		field.Bytes("content"),
		field.String("sha256"),
		field.Int("size"),
	}
}

// Edges of the TaskFile.
func (TaskFile) Edges() []ent.Edge {
	return nil
}

// Indexes of the TaskFile.
func (TaskFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "path").
			Unique(),
	}
}
