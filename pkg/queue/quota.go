package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/forgeproject/forge/pkg/config"
	"github.com/forgeproject/forge/pkg/orchestrator"
	"github.com/forgeproject/forge/pkg/store"
)

// QuotaKeeper enforces per-owner daily ceilings on token spend and
// command runs. It implements orchestrator.QuotaGuard over the store's
// usage counters.
type QuotaKeeper struct {
	store  store.Store
	limits config.LimitsConfig
	now    func() time.Time
}

// NewQuotaKeeper wires the keeper. Zero or negative limits disable the
// corresponding check.
func NewQuotaKeeper(st store.Store, limits config.LimitsConfig) *QuotaKeeper {
	return &QuotaKeeper{store: st, limits: limits, now: time.Now}
}

// CheckLLM returns a BudgetError when the owner's daily token quota is
// spent.
func (q *QuotaKeeper) CheckLLM(ctx context.Context, ownerKeyHash string) error {
	if q.limits.MaxTokensPerDay <= 0 {
		return nil
	}
	usage, err := q.usageToday(ctx, ownerKeyHash)
	if err != nil {
		return err
	}
	if spent := usage.TokensIn + usage.TokensOut; spent >= q.limits.MaxTokensPerDay {
		return &orchestrator.BudgetError{
			Reason: orchestrator.ReasonQuotaExceeded,
			Detail: fmt.Sprintf("daily token quota %d spent (%d used)", q.limits.MaxTokensPerDay, spent),
		}
	}
	return nil
}

// RecordLLM adds token spend to the owner's daily counters.
func (q *QuotaKeeper) RecordLLM(ctx context.Context, ownerKeyHash string, tokensIn, tokensOut int64) error {
	_, err := q.store.AddUsage(ctx, ownerKeyHash, store.UsageDay(q.now()), store.Usage{
		TokensIn:  tokensIn,
		TokensOut: tokensOut,
	})
	if err != nil {
		return fmt.Errorf("recording token usage: %w", err)
	}
	return nil
}

// CheckCommand returns a BudgetError when the owner's daily command-run
// quota is spent.
func (q *QuotaKeeper) CheckCommand(ctx context.Context, ownerKeyHash string) error {
	if q.limits.MaxCommandRunsPerDay <= 0 {
		return nil
	}
	usage, err := q.usageToday(ctx, ownerKeyHash)
	if err != nil {
		return err
	}
	if usage.CommandRuns >= q.limits.MaxCommandRunsPerDay {
		return &orchestrator.BudgetError{
			Reason: orchestrator.ReasonQuotaExceeded,
			Detail: fmt.Sprintf("daily command quota %d spent", q.limits.MaxCommandRunsPerDay),
		}
	}
	return nil
}

// RecordCommand adds one command run to the owner's counters.
func (q *QuotaKeeper) RecordCommand(ctx context.Context, ownerKeyHash string) error {
	_, err := q.store.AddUsage(ctx, ownerKeyHash, store.UsageDay(q.now()), store.Usage{CommandRuns: 1})
	if err != nil {
		return fmt.Errorf("recording command usage: %w", err)
	}
	return nil
}

// UsageToday returns the owner's counters for the current UTC day,
// zero-valued when nothing was recorded yet.
func (q *QuotaKeeper) UsageToday(ctx context.Context, ownerKeyHash string) (*store.Usage, error) {
	return q.usageToday(ctx, ownerKeyHash)
}

func (q *QuotaKeeper) usageToday(ctx context.Context, ownerKeyHash string) (*store.Usage, error) {
	day := store.UsageDay(q.now())
	usage, err := q.store.GetUsage(ctx, ownerKeyHash, day)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &store.Usage{OwnerKeyHash: ownerKeyHash, Day: day}, nil
		}
		return nil, fmt.Errorf("loading usage: %w", err)
	}
	return usage, nil
}
