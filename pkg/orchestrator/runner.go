package orchestrator

import (
	"context"
	"sync"
	"time"

	"github.com/forgeproject/forge/pkg/events"
	"github.com/forgeproject/forge/pkg/sandbox"
)

// eventNotifier publishes command lifecycle events for one task.
type eventNotifier struct {
	ctx    context.Context
	pub    *events.Publisher
	taskID string
}

func (n *eventNotifier) CommandStarted(runID string, command []string, purpose string) {
	n.pub.PublishQuiet(n.ctx, n.taskID, events.TypeCommandStarted, events.CommandStartedPayload{
		RunID: runID, Command: command, Purpose: purpose,
	})
}

func (n *eventNotifier) CommandFinished(res sandbox.Result) {
	n.pub.PublishQuiet(n.ctx, n.taskID, events.TypeCommandFinished, events.CommandFinishedPayload{
		CommandLog: *res.CommandLog(),
	})
}

// meteredRunner enforces the owner's daily command quota around the
// sandbox runner. A breach is reported as a blocked result so the
// reviewer stays well-formed; the orchestrator checks BudgetErr after
// each review pass and terminates the task with the carried reason.
type meteredRunner struct {
	runner *sandbox.Runner
	quota  QuotaGuard
	owner  string

	mu        sync.Mutex
	budgetErr *BudgetError
}

func (r *meteredRunner) Run(ctx context.Context, spec sandbox.Spec) sandbox.Result {
	if r.quota != nil {
		if err := r.quota.CheckCommand(ctx, r.owner); err != nil {
			r.recordBudgetErr(err)
			now := time.Now().UTC()
			return sandbox.Result{
				Command:    spec.Command,
				Blocked:    true,
				Error:      ReasonQuotaExceeded,
				Purpose:    spec.Purpose,
				StartedAt:  now,
				FinishedAt: now,
			}
		}
	}

	res := r.runner.Run(ctx, spec)

	if r.quota != nil && res.Ran {
		_ = r.quota.RecordCommand(ctx, r.owner)
	}
	return res
}

func (r *meteredRunner) recordBudgetErr(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.budgetErr != nil {
		return
	}
	if be, ok := err.(*BudgetError); ok {
		r.budgetErr = be
	} else {
		r.budgetErr = &BudgetError{Reason: ReasonQuotaExceeded, Detail: err.Error()}
	}
}

// BudgetErr returns the first quota breach seen, if any.
func (r *meteredRunner) BudgetErr() *BudgetError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.budgetErr
}
