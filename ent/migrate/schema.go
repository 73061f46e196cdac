// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArtifactsColumns holds the columns for the "artifacts" table.
	ArtifactsColumns = []*schema.Column{
		{Name: "artifact_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "produced_by", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ArtifactsTable holds the schema information for the "artifacts" table.
	ArtifactsTable = &schema.Table{
		Name:       "artifacts",
		Columns:    ArtifactsColumns,
		PrimaryKey: []*schema.Column{ArtifactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "artifact_task_id",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[1]},
			},
			{
				Name:    "artifact_task_id_kind",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[1], ArtifactsColumns[2]},
			},
		},
	}
	// ContainerSnapshotsColumns holds the columns for the "container_snapshots" table.
	ContainerSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "snapshot", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ContainerSnapshotsTable holds the schema information for the "container_snapshots" table.
	ContainerSnapshotsTable = &schema.Table{
		Name:       "container_snapshots",
		Columns:    ContainerSnapshotsColumns,
		PrimaryKey: []*schema.Column{ContainerSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "containersnapshot_task_id",
				Unique:  true,
				Columns: []*schema.Column{ContainerSnapshotsColumns[1]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_id", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_task_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
			{
				Name:    "event_task_id_event_id",
				Unique:  true,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[1]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[5]},
			},
		},
	}
	// OauthAccountsColumns holds the columns for the "oauth_accounts" table.
	OauthAccountsColumns = []*schema.Column{
		{Name: "account_id", Type: field.TypeString, Unique: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "owner_key_hash", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OauthAccountsTable holds the schema information for the "oauth_accounts" table.
	OauthAccountsTable = &schema.Table{
		Name:       "oauth_accounts",
		Columns:    OauthAccountsColumns,
		PrimaryKey: []*schema.Column{OauthAccountsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "oauthaccount_provider_subject",
				Unique:  true,
				Columns: []*schema.Column{OauthAccountsColumns[1], OauthAccountsColumns[2]},
			},
			{
				Name:    "oauthaccount_owner_key_hash",
				Unique:  false,
				Columns: []*schema.Column{OauthAccountsColumns[3]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "owner_key_hash", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_owner_key_hash",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[1]},
			},
		},
	}
	// RateLimitBucketsColumns holds the columns for the "rate_limit_buckets" table.
	RateLimitBucketsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "owner_key_hash", Type: field.TypeString},
		{Name: "scope", Type: field.TypeString},
		{Name: "window_start", Type: field.TypeTime},
		{Name: "count", Type: field.TypeInt, Default: 0},
	}
	// RateLimitBucketsTable holds the schema information for the "rate_limit_buckets" table.
	RateLimitBucketsTable = &schema.Table{
		Name:       "rate_limit_buckets",
		Columns:    RateLimitBucketsColumns,
		PrimaryKey: []*schema.Column{RateLimitBucketsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ratelimitbucket_owner_key_hash_scope_window_start",
				Unique:  true,
				Columns: []*schema.Column{RateLimitBucketsColumns[1], RateLimitBucketsColumns[2], RateLimitBucketsColumns[3]},
			},
			{
				Name:    "ratelimitbucket_window_start",
				Unique:  false,
				Columns: []*schema.Column{RateLimitBucketsColumns[3]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "owner_key_hash", Type: field.TypeString},
		{Name: "owner_user_id", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "processing", "needs_input", "completed", "failed", "error"}, Default: "queued"},
		{Name: "progress", Type: field.TypeFloat64, Default: 0},
		{Name: "current_stage", Type: field.TypeString, Nullable: true},
		{Name: "mode", Type: field.TypeString, Nullable: true},
		{Name: "template_id", Type: field.TypeString, Nullable: true},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
		{Name: "request_id", Type: field.TypeString, Nullable: true},
		{Name: "pending_questions", Type: field.TypeJSON, Nullable: true},
		{Name: "provided_answers", Type: field.TypeJSON, Nullable: true},
		{Name: "resume_from_stage", Type: field.TypeString, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4]},
			},
			{
				Name:    "task_owner_key_hash",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1]},
			},
			{
				Name:    "task_project_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[9]},
			},
			{
				Name:    "task_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4], TasksColumns[19]},
			},
			{
				Name:    "task_status_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4], TasksColumns[16]},
			},
			{
				Name:    "task_owner_key_hash_request_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[10]},
				Annotation: &entsql.IndexAnnotation{
					Where: "request_id <> ''",
				},
			},
		},
	}
	// TaskFilesColumns holds the columns for the "task_files" table.
	TaskFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "path", Type: field.TypeString},
		{Name: "content", Type: field.TypeBytes},
		{Name: "sha256", Type: field.TypeString},
		{Name: "size", Type: field.TypeInt},
	}
	// TaskFilesTable holds the schema information for the "task_files" table.
	TaskFilesTable = &schema.Table{
		Name:       "task_files",
		Columns:    TaskFilesColumns,
		PrimaryKey: []*schema.Column{TaskFilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "taskfile_task_id_path",
				Unique:  true,
				Columns: []*schema.Column{TaskFilesColumns[1], TaskFilesColumns[2]},
			},
		},
	}
	// UsageCountersColumns holds the columns for the "usage_counters" table.
	UsageCountersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "owner_key_hash", Type: field.TypeString},
		{Name: "day", Type: field.TypeString},
		{Name: "tokens_in", Type: field.TypeInt64, Default: 0},
		{Name: "tokens_out", Type: field.TypeInt64, Default: 0},
		{Name: "command_runs", Type: field.TypeInt64, Default: 0},
	}
	// UsageCountersTable holds the schema information for the "usage_counters" table.
	UsageCountersTable = &schema.Table{
		Name:       "usage_counters",
		Columns:    UsageCountersColumns,
		PrimaryKey: []*schema.Column{UsageCountersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usagecounter_owner_key_hash_day",
				Unique:  true,
				Columns: []*schema.Column{UsageCountersColumns[1], UsageCountersColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArtifactsTable,
		ContainerSnapshotsTable,
		EventsTable,
		OauthAccountsTable,
		ProjectsTable,
		RateLimitBucketsTable,
		TasksTable,
		TaskFilesTable,
		UsageCountersTable,
	}
)

func init() {
}
