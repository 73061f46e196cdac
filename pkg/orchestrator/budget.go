package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/forgeproject/forge/pkg/container"
	"github.com/forgeproject/forge/pkg/events"
	"github.com/forgeproject/forge/pkg/llm"
)

// Terminal failure reasons recorded on the task row.
const (
	ReasonLLMBudgetExhausted     = "llm_budget_exhausted"
	ReasonLLMInvalidJSON         = "llm_invalid_json"
	ReasonMaxIterationsExhausted = "max_iterations_exhausted"
	ReasonQuotaExceeded          = "quota_exceeded"
	ReasonFinalReviewFailed      = "final_review_failed"
)

// BudgetError terminates a task with the reason it carries.
type BudgetError struct {
	Reason string
	Detail string
}

func (e *BudgetError) Error() string {
	if e.Detail == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Detail)
}

// QuotaGuard enforces per-owner daily ceilings. The governor provides
// the store-backed implementation; a nil guard means unlimited.
type QuotaGuard interface {
	// CheckLLM returns a BudgetError when the owner's daily token
	// quota is spent.
	CheckLLM(ctx context.Context, ownerKeyHash string) error
	// RecordLLM adds token spend to the owner's daily counters.
	RecordLLM(ctx context.Context, ownerKeyHash string, tokensIn, tokensOut int64) error
	// CheckCommand returns a BudgetError when the owner's daily
	// command-run quota is spent.
	CheckCommand(ctx context.Context, ownerKeyHash string) error
	// RecordCommand adds one command run to the owner's counters.
	RecordCommand(ctx context.Context, ownerKeyHash string) error
}

// meteredLLM wraps the gateway with the per-task ceilings, the owner's
// daily quota, usage recording, and event emission. It is what the
// roles see as their LLM.
type meteredLLM struct {
	gateway   *llm.Gateway
	c         *container.Container
	quota     QuotaGuard
	pub       *events.Publisher
	hooks     *Hooks
	taskID    string
	owner     string
	maxCalls  int
	maxTokens int64

	stage string
	role  container.Role
}

// setStage points subsequent usage attribution at a stage and role.
func (m *meteredLLM) setStage(stage string, role container.Role) {
	m.stage = stage
	m.role = role
}

func (m *meteredLLM) Complete(ctx context.Context, req llm.Request) (*llm.Response, error) {
	summary := m.c.Meta().LLMSummary
	if summary.TotalCalls >= m.maxCalls {
		return nil, &BudgetError{Reason: ReasonLLMBudgetExhausted,
			Detail: fmt.Sprintf("call ceiling %d reached", m.maxCalls)}
	}
	if int64(summary.TotalTokens) >= m.maxTokens {
		return nil, &BudgetError{Reason: ReasonLLMBudgetExhausted,
			Detail: fmt.Sprintf("token ceiling %d reached", m.maxTokens)}
	}
	if m.quota != nil {
		if err := m.quota.CheckLLM(ctx, m.owner); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	resp, err := m.gateway.Complete(ctx, req)
	if err != nil {
		var provErr *llm.ProviderError
		retryable := errors.As(err, &provErr) && provErr.Retry
		m.pub.PublishQuiet(ctx, m.taskID, events.TypeLLMError, events.LLMErrorPayload{
			Stage: m.stage, Error: err.Error(), Retryable: retryable,
		})
		_ = m.hooks.Fire(ctx, HookLLMError, m.taskID, err)
		return nil, err
	}

	m.c.RecordLLMUsage(container.LLMCallRecord{
		Stage:       m.stage,
		Role:        m.role,
		Provider:    m.gateway.Provider(),
		Model:       req.Model,
		TokensIn:    resp.Usage.InputTokens,
		TokensOut:   resp.Usage.OutputTokens,
		TotalTokens: resp.Usage.TotalTokens,
		DurationMS:  time.Since(start).Milliseconds(),
	})
	if m.quota != nil {
		if err := m.quota.RecordLLM(ctx, m.owner, int64(resp.Usage.InputTokens), int64(resp.Usage.OutputTokens)); err != nil {
			return nil, err
		}
	}

	payload := events.LLMUsagePayload{
		Stage:       m.stage,
		Calls:       1,
		TokensIn:    resp.Usage.InputTokens,
		TokensOut:   resp.Usage.OutputTokens,
		TotalTokens: resp.Usage.TotalTokens,
	}
	m.pub.PublishQuiet(ctx, m.taskID, events.TypeLLMUsage, payload)
	if err := m.hooks.Fire(ctx, HookLLMUsage, m.taskID, payload); err != nil {
		return nil, err
	}

	return resp, nil
}
