// Package store defines the persistence boundary: task rows, events,
// artifacts, container snapshots, file bodies, usage counters, and rate
// buckets. Two implementations exist: memstore (ephemeral, used in
// tests and when no database is configured) and entstore (PostgreSQL
// through Ent).
package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Task statuses.
type TaskStatus string

const (
	StatusQueued     TaskStatus = "queued"
	StatusProcessing TaskStatus = "processing"
	StatusNeedsInput TaskStatus = "needs_input"
	StatusCompleted  TaskStatus = "completed"
	StatusFailed     TaskStatus = "failed"
	StatusError      TaskStatus = "error"
)

// Terminal reports whether no further processing will happen.
func (s TaskStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusError
}

// Default per-task file caps.
const (
	DefaultMaxTaskBytes = 50 << 20
	DefaultMaxTaskFiles = 2000
)

// Sentinel errors.
var (
	ErrNotFound     = errors.New("not found")
	ErrTaskTooLarge = errors.New("task file payload exceeds size cap")
	ErrTooManyFiles = errors.New("task file count exceeds cap")
)

// Task is the persistence-facing projection of one pipeline run.
type Task struct {
	ID               string
	OwnerKeyHash     string
	OwnerUserID      string
	Description      string
	Status           TaskStatus
	Progress         float64
	CurrentStage     string
	Mode             string
	TemplateID       string
	ProjectID        string
	RequestID        string
	PendingQuestions json.RawMessage
	ProvidedAnswers  json.RawMessage
	ResumeFromStage  string
	FailureReason    string
	WorkerID         string
	HeartbeatAt      *time.Time
	Result           json.RawMessage
	CreatedAt        time.Time
	UpdatedAt        time.Time
	CompletedAt      *time.Time
}

// Event is one append-only task event. ID is caller-assigned for
// idempotence per (task_id, event_id); Seq is store-assigned and
// strictly increasing per task.
type Event struct {
	ID        string
	Seq       int64
	TaskID    string
	Type      string
	Payload   json.RawMessage
	CreatedAt time.Time
}

// Artifact is the persistence-facing projection of a typed document.
type Artifact struct {
	ID         string
	TaskID     string
	Kind       string
	ProducedBy string
	Payload    json.RawMessage
	CreatedAt  time.Time
}

// Usage is the per-owner daily counter row. Day is a UTC date in
// YYYY-MM-DD form.
type Usage struct {
	OwnerKeyHash string
	Day          string
	TokensIn     int64
	TokensOut    int64
	CommandRuns  int64
}

// UsageDay formats t as a usage-counter day key.
func UsageDay(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// RateDecision is the outcome of one rate-limit acquisition.
type RateDecision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Project groups tasks under one owner.
type Project struct {
	ID           string
	OwnerKeyHash string
	Name         string
	CreatedAt    time.Time
}

// OAuthAccount links an external identity to an owner key.
type OAuthAccount struct {
	ID           string
	Provider     string
	Subject      string
	OwnerKeyHash string
	Email        string
	CreatedAt    time.Time
}

// TaskFilter narrows ListTasks.
type TaskFilter struct {
	OwnerKeyHash string
	Status       TaskStatus
	ProjectID    string
	Limit        int
}

// Store is the full persistence surface. All writes are idempotent
// where the spec requires it: AppendEvent per (task_id, event_id),
// snapshots and files by last-write-wins.
type Store interface {
	// Tasks.
	CreateTask(ctx context.Context, t *Task) error
	GetTask(ctx context.Context, id string) (*Task, error)
	FindTaskByRequestID(ctx context.Context, ownerKeyHash, requestID string) (*Task, error)
	ListTasks(ctx context.Context, f TaskFilter) ([]*Task, error)
	UpdateTask(ctx context.Context, t *Task) error
	// ClaimTask flips queued→processing for one worker; false when the
	// task was not claimable.
	ClaimTask(ctx context.Context, id, workerID string) (bool, error)
	Heartbeat(ctx context.Context, id string, at time.Time) error
	// RequeueProcessing flips every processing task back to queued
	// (crash recovery at startup).
	RequeueProcessing(ctx context.Context) (int, error)
	// RequeueOrphaned requeues processing tasks whose heartbeat is older
	// than cutoff and returns their IDs.
	RequeueOrphaned(ctx context.Context, cutoff time.Time) ([]string, error)
	// PurgeTasksBefore removes terminal tasks older than cutoff together
	// with their events, artifacts, snapshots, and files.
	PurgeTasksBefore(ctx context.Context, cutoff time.Time) (int, error)

	// Events.
	AppendEvent(ctx context.Context, e *Event) error
	ListEvents(ctx context.Context, taskID string, afterSeq int64) ([]*Event, error)

	// Artifacts.
	SaveArtifact(ctx context.Context, a *Artifact) error
	ListArtifacts(ctx context.Context, taskID string) ([]*Artifact, error)

	// Container snapshot and file bodies.
	SaveSnapshot(ctx context.Context, taskID string, snapshot json.RawMessage) error
	LoadSnapshot(ctx context.Context, taskID string) (json.RawMessage, error)
	SaveFiles(ctx context.Context, taskID string, files map[string][]byte) error
	LoadFiles(ctx context.Context, taskID string) (map[string][]byte, error)

	// Quota and rate limiting.
	AddUsage(ctx context.Context, ownerKeyHash, day string, delta Usage) (*Usage, error)
	GetUsage(ctx context.Context, ownerKeyHash, day string) (*Usage, error)
	// TakeRateToken counts one request against the fixed 60-second
	// window for (owner, scope) and reports whether it fit under limit.
	TakeRateToken(ctx context.Context, ownerKeyHash, scope string, limit int, now time.Time) (RateDecision, error)

	// Projects and linked accounts.
	CreateProject(ctx context.Context, p *Project) error
	GetProject(ctx context.Context, id string) (*Project, error)
	ListProjects(ctx context.Context, ownerKeyHash string) ([]*Project, error)
	UpsertOAuthAccount(ctx context.Context, a *OAuthAccount) error
	GetOAuthAccount(ctx context.Context, provider, subject string) (*OAuthAccount, error)

	Ping(ctx context.Context) error
	Close() error
}

// FileCaps bounds per-task file persistence.
type FileCaps struct {
	MaxTaskBytes int64
	MaxTaskFiles int
}

// DefaultFileCaps returns the built-in caps.
func DefaultFileCaps() FileCaps {
	return FileCaps{MaxTaskBytes: DefaultMaxTaskBytes, MaxTaskFiles: DefaultMaxTaskFiles}
}

// CheckFiles validates a file set against the caps.
func (c FileCaps) CheckFiles(files map[string][]byte) error {
	if c.MaxTaskFiles > 0 && len(files) > c.MaxTaskFiles {
		return ErrTooManyFiles
	}
	if c.MaxTaskBytes > 0 {
		var total int64
		for _, b := range files {
			total += int64(len(b))
		}
		if total > c.MaxTaskBytes {
			return ErrTaskTooLarge
		}
	}
	return nil
}
