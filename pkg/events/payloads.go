package events

import (
	"encoding/json"

	"github.com/forgeproject/forge/pkg/container"
)

// TaskCreatedPayload announces a new task entering the queue.
type TaskCreatedPayload struct {
	Description string `json:"description"`
	Mode        string `json:"mode,omitempty"`
	TemplateID  string `json:"template_id,omitempty"`
	ProjectID   string `json:"project_id,omitempty"`
}

// TaskResumedPayload announces a task re-entering the pipeline.
type TaskResumedPayload struct {
	FromStage string `json:"from_stage"`
}

// TaskCompletedPayload carries the final result document.
type TaskCompletedPayload struct {
	Result json.RawMessage `json:"result,omitempty"`
}

// TaskFailedPayload carries the terminal failure reason.
type TaskFailedPayload struct {
	Reason string `json:"reason"`
}

// StageStartedPayload marks a stage beginning.
type StageStartedPayload struct {
	Stage     string `json:"stage"`
	Iteration int    `json:"iteration,omitempty"`
}

// StageFailedPayload marks a terminal stage error.
type StageFailedPayload struct {
	Stage  string `json:"stage"`
	Reason string `json:"reason"`
}

// ProgressPayload reports the task's progress scalar.
type ProgressPayload struct {
	Progress float64 `json:"progress"`
	Stage    string  `json:"stage,omitempty"`
}

// ArtifactAddedPayload announces a new artifact.
type ArtifactAddedPayload struct {
	ArtifactID string `json:"artifact_id"`
	Kind       string `json:"kind"`
	ProducedBy string `json:"produced_by"`
}

// ReviewResultPayload summarizes a review verdict.
type ReviewResultPayload struct {
	Status   string `json:"status"`
	Errors   int    `json:"errors"`
	Warnings int    `json:"warnings"`
	Final    bool   `json:"final,omitempty"`
}

// LLMUsagePayload attributes token spend to a stage.
type LLMUsagePayload struct {
	Stage       string `json:"stage"`
	Calls       int    `json:"calls"`
	TokensIn    int    `json:"tokens_in"`
	TokensOut   int    `json:"tokens_out"`
	TotalTokens int    `json:"total_tokens"`
}

// LLMErrorPayload reports a failed LLM call.
type LLMErrorPayload struct {
	Stage     string `json:"stage"`
	Error     string `json:"error"`
	Retryable bool   `json:"retryable"`
}

// CommandStartedPayload announces a sandboxed command about to spawn.
type CommandStartedPayload struct {
	RunID   string   `json:"run_id"`
	Command []string `json:"command"`
	Purpose string   `json:"purpose,omitempty"`
}

// CommandFinishedPayload carries the full run record, including runs
// blocked before spawning.
type CommandFinishedPayload struct {
	container.CommandLog
}

// ClarificationRequestedPayload lists the questions pausing the task.
type ClarificationRequestedPayload struct {
	Questions       []container.ClarificationQuestion `json:"questions"`
	ResumeFromStage string                            `json:"resume_from_stage"`
}

// ClarificationReceivedPayload records the user's answers arriving.
type ClarificationReceivedPayload struct {
	Answered   []string `json:"answered"`
	AutoResume bool     `json:"auto_resume"`
}
