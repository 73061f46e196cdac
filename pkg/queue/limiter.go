package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/forgeproject/forge/pkg/config"
	"github.com/forgeproject/forge/pkg/store"
)

// Rate limit scopes.
const (
	ScopeCreateTask  = "create_task"
	ScopeRerunReview = "rerun_review"
	ScopeDownload    = "download"
)

// rateWindow is the fixed window all scopes count against.
const rateWindow = time.Minute

// RateLimiter enforces per-owner fixed-window limits. A cheap
// in-process counter rejects obvious floods before the store's
// authoritative counter is consulted; both must pass.
type RateLimiter struct {
	store  store.Store
	limits map[string]int
	now    func() time.Time

	mu    sync.Mutex
	local map[string]int // owner|scope|windowStart → count
}

// NewRateLimiter builds the limiter from the configured per-scope
// limits. A zero or negative limit disables the scope's limiting.
func NewRateLimiter(st store.Store, limits config.LimitsConfig) *RateLimiter {
	return &RateLimiter{
		store: st,
		limits: map[string]int{
			ScopeCreateTask:  limits.RateCreateTasksPerMin,
			ScopeRerunReview: limits.RateRerunReviewPerMin,
			ScopeDownload:    limits.RateDownloadsPerMin,
		},
		now:   time.Now,
		local: make(map[string]int),
	}
}

// Allow counts one request for (owner, scope) and reports whether it
// fit under the scope's limit.
func (l *RateLimiter) Allow(ctx context.Context, ownerKeyHash, scope string) (store.RateDecision, error) {
	limit, ok := l.limits[scope]
	if !ok {
		return store.RateDecision{}, fmt.Errorf("unknown rate scope %q", scope)
	}
	if limit <= 0 {
		return store.RateDecision{Allowed: true, Remaining: 1}, nil
	}

	now := l.now()
	if d, rejected := l.localReject(ownerKeyHash, scope, limit, now); rejected {
		return d, nil
	}

	decision, err := l.store.TakeRateToken(ctx, ownerKeyHash, scope, limit, now)
	if err != nil {
		return store.RateDecision{}, fmt.Errorf("taking rate token: %w", err)
	}
	return decision, nil
}

// localReject applies the advisory in-process window. It prunes stale
// windows as a side effect.
func (l *RateLimiter) localReject(owner, scope string, limit int, now time.Time) (store.RateDecision, bool) {
	windowStart := now.Truncate(rateWindow)
	key := fmt.Sprintf("%s|%s|%d", owner, scope, windowStart.Unix())

	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.local) > 4096 {
		l.local = make(map[string]int)
	}

	l.local[key]++
	if l.local[key] > limit {
		return store.RateDecision{
			Allowed:    false,
			RetryAfter: windowStart.Add(rateWindow).Sub(now),
		}, true
	}
	return store.RateDecision{}, false
}
