package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("owner_key_hash").
			Comment("SHA-256 of the caller's API key"),
		field.String("owner_user_id").
			Optional(),
		field.Text("description"),
		field.Enum("status").
			Values("queued", "processing", "needs_input", "completed", "failed", "error").
			Default("queued"),
		field.Float("progress").
			Default(0),
		field.String("current_stage").
			Optional(),
		field.String("mode").
			Optional().
			Comment("micro_file, small_code, or project"),
		field.String("template_id").
			Optional(),
		field.String("project_id").
			Optional(),
		field.String("request_id").
			Optional().
			Comment("Client-supplied idempotency key"),
		field.JSON("pending_questions", json.RawMessage{}).
			Optional(),
		field.JSON("provided_answers", json.RawMessage{}).
			Optional(),
		field.String("resume_from_stage").
			Optional(),
		field.String("failure_reason").
			Optional(),
		field.String("worker_id").
			Optional(),
		field.Time("heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.JSON("result", json.RawMessage{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Task.
// Dependent rows (events, artifacts, snapshot, files) reference tasks
// by task_id and are deleted explicitly on purge.
func (Task) Edges() []ent.Edge {
	return nil
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("owner_key_hash"),
		index.Fields("project_id"),
		index.Fields("status", "updated_at"),
		index.Fields("status", "heartbeat_at"),
		index.Fields("owner_key_hash", "request_id").
			Annotations(entsql.IndexWhere("request_id <> ''")),
	}
}
