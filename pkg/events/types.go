// Package events delivers task progress to observers: every event is
// persisted idempotently through the store, then broadcast to in-process
// subscribers (the WebSocket layer). Reconnecting clients replay the
// persisted stream and hand over to the live feed seamlessly, keyed by
// the per-task sequence number.
package events

import (
	"encoding/json"
	"time"
)

// Task lifecycle event types.
const (
	TypeTaskCreated   = "TaskCreated"
	TypeTaskResumed   = "task_resumed"
	TypeTaskCompleted = "TaskCompleted"
	TypeTaskFailed    = "TaskFailed"
)

// Stage and progress event types.
const (
	TypeStageStarted   = "StageStarted"
	TypeStageFailed    = "stage_failed"
	TypeProgressUpdate = "ProgressUpdate"
	TypeArtifactAdded  = "ArtifactAdded"
)

// Review event types.
const (
	TypeReviewStarted  = "review_started"
	TypeReviewFinished = "review_finished"
	TypeReviewResult   = "ReviewResult"
)

// LLM and command event types.
const (
	TypeLLMUsage        = "llm_usage"
	TypeLLMError        = "llm_error"
	TypeCommandStarted  = "command_started"
	TypeCommandFinished = "command_finished"
)

// Clarification event types.
const (
	TypeClarificationRequested = "clarification_requested"
	TypeClarificationReceived  = "clarification_received"
)

// Envelope is one event as delivered to subscribers. Seq is the
// store-assigned per-task monotonic sequence number clients use for
// replay cursors.
type Envelope struct {
	ID        string          `json:"id"`
	Seq       int64           `json:"seq"`
	TaskID    string          `json:"task_id"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
