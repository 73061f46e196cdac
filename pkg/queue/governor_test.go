package queue

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeproject/forge/pkg/config"
	"github.com/forgeproject/forge/pkg/orchestrator"
	"github.com/forgeproject/forge/pkg/store"
	"github.com/forgeproject/forge/pkg/store/memstore"
)

type fakeExecutor struct {
	release chan struct{} // closed or fed to let executions finish

	mu      sync.Mutex
	started []string

	concurrent    atomic.Int64
	maxConcurrent atomic.Int64
	done          atomic.Int64
}

func (e *fakeExecutor) RunTask(ctx context.Context, taskID string) (*orchestrator.Outcome, error) {
	cur := e.concurrent.Add(1)
	defer e.concurrent.Add(-1)
	for {
		max := e.maxConcurrent.Load()
		if cur <= max || e.maxConcurrent.CompareAndSwap(max, cur) {
			break
		}
	}

	e.mu.Lock()
	e.started = append(e.started, taskID)
	e.mu.Unlock()

	if e.release != nil {
		select {
		case <-e.release:
		case <-ctx.Done():
		}
	}
	e.done.Add(1)
	return &orchestrator.Outcome{Status: store.StatusCompleted}, nil
}

func (e *fakeExecutor) startedIDs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.started...)
}

func testGovernorConfig() config.GovernorConfig {
	return config.GovernorConfig{
		MaxConcurrentTasks: 2,
		MaxQueueDepth:      16,
		HeartbeatInterval:  10 * time.Millisecond,
		OrphanThreshold:    time.Minute,
		OrphanScanInterval: time.Minute,
	}
}

func seedQueued(t *testing.T, st *memstore.Store, id string, createdAt time.Time) {
	t.Helper()
	require.NoError(t, st.CreateTask(context.Background(), &store.Task{
		ID:           id,
		OwnerKeyHash: "owner-1",
		Description:  "task " + id,
		Status:       store.StatusQueued,
		CreatedAt:    createdAt,
	}))
}

func TestGovernor_BoundsConcurrency(t *testing.T) {
	st := memstore.New()
	base := time.Now().Add(-time.Minute)
	for i, id := range []string{"t1", "t2", "t3", "t4", "t5"} {
		seedQueued(t, st, id, base.Add(time.Duration(i)*time.Second))
	}

	exec := &fakeExecutor{release: make(chan struct{})}
	g := NewGovernor("pod-a", st, testGovernorConfig(), exec)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, g.Start(ctx))

	require.Eventually(t, func() bool {
		return exec.concurrent.Load() == 2
	}, 2*time.Second, 5*time.Millisecond)

	// No third execution starts while both slots are held.
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, exec.startedIDs(), 2)

	close(exec.release)
	require.Eventually(t, func() bool {
		return exec.done.Load() == 5
	}, 2*time.Second, 5*time.Millisecond)

	g.Stop()
	assert.LessOrEqual(t, exec.maxConcurrent.Load(), int64(2))
}

func TestGovernor_ClaimsOldestFirst(t *testing.T) {
	st := memstore.New()
	base := time.Now().Add(-time.Minute)
	seedQueued(t, st, "first", base)
	seedQueued(t, st, "second", base.Add(time.Second))
	seedQueued(t, st, "third", base.Add(2*time.Second))

	exec := &fakeExecutor{}
	cfg := testGovernorConfig()
	cfg.MaxConcurrentTasks = 1
	g := NewGovernor("pod-a", st, cfg, exec)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, g.Start(ctx))

	require.Eventually(t, func() bool {
		return exec.done.Load() == 3
	}, 2*time.Second, 5*time.Millisecond)
	g.Stop()

	assert.Equal(t, []string{"first", "second", "third"}, exec.startedIDs())
}

func TestGovernor_StartRequeuesInFlightTasks(t *testing.T) {
	st := memstore.New()
	hb := time.Now().Add(-time.Hour)
	require.NoError(t, st.CreateTask(context.Background(), &store.Task{
		ID:           "stranded",
		OwnerKeyHash: "owner-1",
		Status:       store.StatusProcessing,
		WorkerID:     "pod-dead",
		HeartbeatAt:  &hb,
	}))

	exec := &fakeExecutor{}
	g := NewGovernor("pod-a", st, testGovernorConfig(), exec)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, g.Start(ctx))

	require.Eventually(t, func() bool {
		return exec.done.Load() == 1
	}, 2*time.Second, 5*time.Millisecond)
	g.Stop()

	assert.Equal(t, []string{"stranded"}, exec.startedIDs())
}

func TestGovernor_EnqueueRejectsWhenFull(t *testing.T) {
	st := memstore.New()
	cfg := testGovernorConfig()
	cfg.MaxQueueDepth = 2

	base := time.Now()
	seedQueued(t, st, "q1", base)
	seedQueued(t, st, "q2", base)

	g := NewGovernor("pod-a", st, cfg, &fakeExecutor{})
	require.NoError(t, g.Enqueue(context.Background(), "q2"))

	seedQueued(t, st, "q3", base)
	err := g.Enqueue(context.Background(), "q3")
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestGovernor_OrphanScanRequeues(t *testing.T) {
	st := memstore.New()
	stale := time.Now().Add(-time.Hour)
	require.NoError(t, st.CreateTask(context.Background(), &store.Task{
		ID:           "orphan",
		OwnerKeyHash: "owner-1",
		Status:       store.StatusProcessing,
		WorkerID:     "pod-dead",
		HeartbeatAt:  &stale,
	}))

	cfg := testGovernorConfig()
	cfg.OrphanThreshold = time.Minute
	g := NewGovernor("pod-a", st, cfg, &fakeExecutor{})

	g.scanOrphans(context.Background())

	got, err := st.GetTask(context.Background(), "orphan")
	require.NoError(t, err)
	assert.Equal(t, store.StatusQueued, got.Status)
	assert.Empty(t, got.WorkerID)
	assert.Equal(t, int64(1), g.orphansRequeued.Load())
}

func TestGovernor_HealthSnapshot(t *testing.T) {
	st := memstore.New()
	seedQueued(t, st, "waiting", time.Now())

	g := NewGovernor("pod-a", st, testGovernorConfig(), &fakeExecutor{})
	h := g.Health(context.Background())

	assert.True(t, h.Healthy)
	assert.True(t, h.DBReachable)
	assert.Equal(t, "pod-a", h.WorkerID)
	assert.Equal(t, 1, h.QueueDepth)
	assert.Equal(t, 2, h.MaxConcurrent)
	assert.Zero(t, h.ActiveTasks)
}
