package orchestrator

import (
	"context"
	"fmt"
	"sync"
)

// Hook names the orchestrator fires, in lifecycle order.
const (
	HookStageStarted           = "stage_started"
	HookResearchComplete       = "research_complete"
	HookDesignComplete         = "design_complete"
	HookCoderFinished          = "coder_finished"
	HookReviewStarted          = "review_started"
	HookReviewFinished         = "review_finished"
	HookReviewResult           = "review_result"
	HookLLMUsage               = "llm_usage"
	HookLLMError               = "llm_error"
	HookStageFailed            = "stage_failed"
	HookClarificationRequested = "clarification_requested"
)

// HookFunc observes one orchestrator event. Returning an error aborts
// the hook chain; the orchestrator treats that as a persistence-grade
// failure.
type HookFunc func(ctx context.Context, taskID string, payload any) error

// Hooks is an ordered registry of observers. Handlers fire in
// registration order and each is awaited before the next runs, so
// persistence observers see a consistent prefix of the run.
type Hooks struct {
	mu       sync.RWMutex
	order    []string
	handlers map[string][]HookFunc
}

// NewHooks creates an empty registry.
func NewHooks() *Hooks {
	return &Hooks{handlers: make(map[string][]HookFunc)}
}

// On registers a handler for a hook name.
func (h *Hooks) On(name string, fn HookFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, seen := h.handlers[name]; !seen {
		h.order = append(h.order, name)
	}
	h.handlers[name] = append(h.handlers[name], fn)
}

// Fire runs every handler registered for name, in order, awaiting each.
func (h *Hooks) Fire(ctx context.Context, name, taskID string, payload any) error {
	h.mu.RLock()
	fns := append([]HookFunc(nil), h.handlers[name]...)
	h.mu.RUnlock()

	for _, fn := range fns {
		if err := fn(ctx, taskID, payload); err != nil {
			return fmt.Errorf("hook %s: %w", name, err)
		}
	}
	return nil
}
