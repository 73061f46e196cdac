package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeproject/forge/pkg/config"
	"github.com/forgeproject/forge/pkg/store/memstore"
)

func TestRateLimiter_FixedWindow(t *testing.T) {
	l := NewRateLimiter(memstore.New(), config.LimitsConfig{RateCreateTasksPerMin: 3})
	now := time.Date(2026, 8, 26, 12, 0, 10, 0, time.UTC)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		d, err := l.Allow(ctx, "owner-1", ScopeCreateTask)
		require.NoError(t, err)
		assert.True(t, d.Allowed, "request %d should be allowed", i+1)
	}

	d, err := l.Allow(ctx, "owner-1", ScopeCreateTask)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Greater(t, d.RetryAfter, time.Duration(0))
	assert.LessOrEqual(t, d.RetryAfter, time.Minute)

	// A different owner has its own window.
	d, err = l.Allow(ctx, "owner-2", ScopeCreateTask)
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	// The next window starts fresh.
	now = now.Add(time.Minute)
	d, err = l.Allow(ctx, "owner-1", ScopeCreateTask)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestRateLimiter_ScopesAreIndependent(t *testing.T) {
	l := NewRateLimiter(memstore.New(), config.LimitsConfig{
		RateCreateTasksPerMin: 1,
		RateDownloadsPerMin:   2,
	})
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	d, err := l.Allow(ctx, "owner-1", ScopeCreateTask)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	d, err = l.Allow(ctx, "owner-1", ScopeCreateTask)
	require.NoError(t, err)
	assert.False(t, d.Allowed)

	for i := 0; i < 2; i++ {
		d, err = l.Allow(ctx, "owner-1", ScopeDownload)
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	}
}

func TestRateLimiter_ZeroLimitDisablesScope(t *testing.T) {
	l := NewRateLimiter(memstore.New(), config.LimitsConfig{})
	for i := 0; i < 20; i++ {
		d, err := l.Allow(context.Background(), "owner-1", ScopeRerunReview)
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	}
}

func TestRateLimiter_UnknownScope(t *testing.T) {
	l := NewRateLimiter(memstore.New(), config.LimitsConfig{})
	_, err := l.Allow(context.Background(), "owner-1", "delete_everything")
	assert.Error(t, err)
}
