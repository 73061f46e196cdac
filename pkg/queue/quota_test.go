package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeproject/forge/pkg/config"
	"github.com/forgeproject/forge/pkg/orchestrator"
	"github.com/forgeproject/forge/pkg/store/memstore"
)

func TestQuotaKeeper_TokenCeiling(t *testing.T) {
	q := NewQuotaKeeper(memstore.New(), config.LimitsConfig{MaxTokensPerDay: 1000})
	ctx := context.Background()

	require.NoError(t, q.CheckLLM(ctx, "owner-1"))
	require.NoError(t, q.RecordLLM(ctx, "owner-1", 600, 300))
	require.NoError(t, q.CheckLLM(ctx, "owner-1"))

	require.NoError(t, q.RecordLLM(ctx, "owner-1", 80, 20))
	err := q.CheckLLM(ctx, "owner-1")
	var be *orchestrator.BudgetError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, orchestrator.ReasonQuotaExceeded, be.Reason)

	// Other owners are unaffected.
	assert.NoError(t, q.CheckLLM(ctx, "owner-2"))
}

func TestQuotaKeeper_CommandCeiling(t *testing.T) {
	q := NewQuotaKeeper(memstore.New(), config.LimitsConfig{MaxCommandRunsPerDay: 2})
	ctx := context.Background()

	require.NoError(t, q.CheckCommand(ctx, "owner-1"))
	require.NoError(t, q.RecordCommand(ctx, "owner-1"))
	require.NoError(t, q.CheckCommand(ctx, "owner-1"))
	require.NoError(t, q.RecordCommand(ctx, "owner-1"))

	err := q.CheckCommand(ctx, "owner-1")
	var be *orchestrator.BudgetError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, orchestrator.ReasonQuotaExceeded, be.Reason)
}

func TestQuotaKeeper_CountersResetDaily(t *testing.T) {
	q := NewQuotaKeeper(memstore.New(), config.LimitsConfig{MaxTokensPerDay: 100})
	day1 := time.Date(2026, 8, 25, 23, 0, 0, 0, time.UTC)
	q.now = func() time.Time { return day1 }
	ctx := context.Background()

	require.NoError(t, q.RecordLLM(ctx, "owner-1", 100, 0))
	require.Error(t, q.CheckLLM(ctx, "owner-1"))

	q.now = func() time.Time { return day1.Add(2 * time.Hour) } // next UTC day
	assert.NoError(t, q.CheckLLM(ctx, "owner-1"))
}

func TestQuotaKeeper_ZeroLimitsDisableChecks(t *testing.T) {
	q := NewQuotaKeeper(memstore.New(), config.LimitsConfig{})
	ctx := context.Background()

	require.NoError(t, q.RecordLLM(ctx, "owner-1", 1<<40, 1<<40))
	assert.NoError(t, q.CheckLLM(ctx, "owner-1"))
	assert.NoError(t, q.CheckCommand(ctx, "owner-1"))
}

func TestQuotaKeeper_UsageToday(t *testing.T) {
	q := NewQuotaKeeper(memstore.New(), config.LimitsConfig{})
	ctx := context.Background()

	u, err := q.UsageToday(ctx, "owner-1")
	require.NoError(t, err)
	assert.Zero(t, u.TokensIn)

	require.NoError(t, q.RecordLLM(ctx, "owner-1", 10, 5))
	require.NoError(t, q.RecordCommand(ctx, "owner-1"))

	u, err = q.UsageToday(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), u.TokensIn)
	assert.Equal(t, int64(5), u.TokensOut)
	assert.Equal(t, int64(1), u.CommandRuns)
}
