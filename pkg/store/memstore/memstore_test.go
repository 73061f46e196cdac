package memstore

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeproject/forge/pkg/store"
)

func newTask(id, owner string) *store.Task {
	return &store.Task{
		ID:           id,
		OwnerKeyHash: owner,
		Description:  "build a thing",
		Status:       store.StatusQueued,
	}
}

func TestTaskLifecycle(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.CreateTask(ctx, newTask("t1", "owner-a")))

	got, err := s.GetTask(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, store.StatusQueued, got.Status)
	assert.False(t, got.CreatedAt.IsZero())

	got.Status = store.StatusCompleted
	got.Progress = 1
	now := time.Now().UTC()
	got.CompletedAt = &now
	require.NoError(t, s.UpdateTask(ctx, got))

	got, err = s.GetTask(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, store.StatusCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)

	_, err = s.GetTask(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestClaimTask(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.CreateTask(ctx, newTask("t1", "o")))

	claimed, err := s.ClaimTask(ctx, "t1", "worker-1")
	require.NoError(t, err)
	assert.True(t, claimed)

	// Second claim must lose.
	claimed, err = s.ClaimTask(ctx, "t1", "worker-2")
	require.NoError(t, err)
	assert.False(t, claimed)

	got, err := s.GetTask(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, store.StatusProcessing, got.Status)
	assert.Equal(t, "worker-1", got.WorkerID)
	assert.NotNil(t, got.HeartbeatAt)
}

func TestRequeueProcessingAndOrphans(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.CreateTask(ctx, newTask("t1", "o")))
	require.NoError(t, s.CreateTask(ctx, newTask("t2", "o")))
	_, err := s.ClaimTask(ctx, "t1", "w")
	require.NoError(t, err)

	n, err := s.RequeueProcessing(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	got, _ := s.GetTask(ctx, "t1")
	assert.Equal(t, store.StatusQueued, got.Status)
	assert.Empty(t, got.WorkerID)

	// Orphan scan: stale heartbeat gets requeued, fresh one survives.
	_, err = s.ClaimTask(ctx, "t1", "w1")
	require.NoError(t, err)
	_, err = s.ClaimTask(ctx, "t2", "w2")
	require.NoError(t, err)
	require.NoError(t, s.Heartbeat(ctx, "t1", time.Now().Add(-10*time.Minute)))

	ids, err := s.RequeueOrphaned(ctx, time.Now().Add(-5*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, ids)
	got, _ = s.GetTask(ctx, "t2")
	assert.Equal(t, store.StatusProcessing, got.Status)
}

func TestFindTaskByRequestID(t *testing.T) {
	s := New()
	ctx := context.Background()
	task := newTask("t1", "owner-a")
	task.RequestID = "req-1"
	require.NoError(t, s.CreateTask(ctx, task))

	got, err := s.FindTaskByRequestID(ctx, "owner-a", "req-1")
	require.NoError(t, err)
	assert.Equal(t, "t1", got.ID)

	_, err = s.FindTaskByRequestID(ctx, "owner-b", "req-1")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.FindTaskByRequestID(ctx, "owner-a", "")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListTasks_FilterAndOrder(t *testing.T) {
	s := New()
	ctx := context.Background()
	for _, id := range []string{"t1", "t2", "t3"} {
		task := newTask(id, "owner-a")
		require.NoError(t, s.CreateTask(ctx, task))
	}
	other := newTask("x1", "owner-b")
	other.Status = store.StatusCompleted
	require.NoError(t, s.CreateTask(ctx, other))

	tasks, err := s.ListTasks(ctx, store.TaskFilter{OwnerKeyHash: "owner-a"})
	require.NoError(t, err)
	assert.Len(t, tasks, 3)

	tasks, err = s.ListTasks(ctx, store.TaskFilter{Status: store.StatusCompleted})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "x1", tasks[0].ID)

	tasks, err = s.ListTasks(ctx, store.TaskFilter{OwnerKeyHash: "owner-a", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestAppendEvent_IdempotentAndOrdered(t *testing.T) {
	s := New()
	ctx := context.Background()

	e1 := &store.Event{ID: "e1", TaskID: "t1", Type: "TaskCreated", Payload: json.RawMessage(`{}`)}
	e2 := &store.Event{ID: "e2", TaskID: "t1", Type: "StageStarted", Payload: json.RawMessage(`{"stage":"research"}`)}
	require.NoError(t, s.AppendEvent(ctx, e1))
	require.NoError(t, s.AppendEvent(ctx, e2))
	// Replaying the same event must not duplicate it.
	require.NoError(t, s.AppendEvent(ctx, &store.Event{ID: "e1", TaskID: "t1", Type: "TaskCreated"}))

	events, err := s.ListEvents(ctx, "t1", 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "TaskCreated", events[0].Type)
	assert.Equal(t, "StageStarted", events[1].Type)
	assert.Less(t, events[0].Seq, events[1].Seq)

	tail, err := s.ListEvents(ctx, "t1", events[0].Seq)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	assert.Equal(t, "e2", tail[0].ID)
}

func TestArtifacts(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SaveArtifact(ctx, &store.Artifact{
		ID: "a1", TaskID: "t1", Kind: "requirements", ProducedBy: "researcher",
		Payload: json.RawMessage(`{"summary":"x"}`),
	}))
	require.NoError(t, s.SaveArtifact(ctx, &store.Artifact{
		ID: "a2", TaskID: "t1", Kind: "code", ProducedBy: "coder",
		Payload: json.RawMessage(`{}`),
	}))

	list, err := s.ListArtifacts(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a1", list[0].ID)
	assert.Equal(t, "a2", list[1].ID)
}

func TestSnapshotAndFilesRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SaveSnapshot(ctx, "t1", json.RawMessage(`{"state":"implementation"}`)))
	snap, err := s.LoadSnapshot(ctx, "t1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"implementation"}`, string(snap))

	files := map[string][]byte{"main.py": []byte("print()\n")}
	require.NoError(t, s.SaveFiles(ctx, "t1", files))
	loaded, err := s.LoadFiles(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, files, loaded)

	_, err = s.LoadSnapshot(ctx, "none")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSaveFiles_EnforcesCaps(t *testing.T) {
	s := NewWithCaps(store.FileCaps{MaxTaskBytes: 10, MaxTaskFiles: 2})
	ctx := context.Background()

	err := s.SaveFiles(ctx, "t1", map[string][]byte{"a": []byte("0123456789ab")})
	assert.ErrorIs(t, err, store.ErrTaskTooLarge)

	err = s.SaveFiles(ctx, "t1", map[string][]byte{"a": nil, "b": nil, "c": nil})
	assert.ErrorIs(t, err, store.ErrTooManyFiles)
}

func TestUsageCounters(t *testing.T) {
	s := New()
	ctx := context.Background()
	day := store.UsageDay(time.Now())

	u, err := s.AddUsage(ctx, "owner", day, store.Usage{TokensIn: 100, TokensOut: 40, CommandRuns: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(100), u.TokensIn)

	u, err = s.AddUsage(ctx, "owner", day, store.Usage{TokensIn: 50})
	require.NoError(t, err)
	assert.Equal(t, int64(150), u.TokensIn)
	assert.Equal(t, int64(40), u.TokensOut)
	assert.Equal(t, int64(1), u.CommandRuns)

	// Missing rows read as zeros.
	u, err = s.GetUsage(ctx, "owner", "1999-01-01")
	require.NoError(t, err)
	assert.Zero(t, u.TokensIn)
}

func TestTakeRateToken_FixedWindow(t *testing.T) {
	s := New()
	ctx := context.Background()
	now := time.Date(2026, 8, 26, 12, 0, 30, 0, time.UTC)

	for i := 0; i < 3; i++ {
		d, err := s.TakeRateToken(ctx, "owner", "create_task", 3, now)
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	}
	d, err := s.TakeRateToken(ctx, "owner", "create_task", 3, now)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 30*time.Second, d.RetryAfter)

	// Different scope and different owner have their own buckets.
	d, err = s.TakeRateToken(ctx, "owner", "download", 3, now)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	d, err = s.TakeRateToken(ctx, "other", "create_task", 3, now)
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	// Next window resets the count.
	d, err = s.TakeRateToken(ctx, "owner", "create_task", 3, now.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestPurgeTasksBefore(t *testing.T) {
	s := New()
	ctx := context.Background()

	done := newTask("t1", "o")
	require.NoError(t, s.CreateTask(ctx, done))
	got, _ := s.GetTask(ctx, "t1")
	got.Status = store.StatusCompleted
	require.NoError(t, s.UpdateTask(ctx, got))
	require.NoError(t, s.AppendEvent(ctx, &store.Event{ID: "e1", TaskID: "t1", Type: "TaskCompleted"}))
	require.NoError(t, s.SaveSnapshot(ctx, "t1", json.RawMessage(`{}`)))
	require.NoError(t, s.SaveFiles(ctx, "t1", map[string][]byte{"a": []byte("x")}))

	active := newTask("t2", "o")
	require.NoError(t, s.CreateTask(ctx, active))

	n, err := s.PurgeTasksBefore(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = s.GetTask(ctx, "t1")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.LoadSnapshot(ctx, "t1")
	assert.ErrorIs(t, err, store.ErrNotFound)
	events, err := s.ListEvents(ctx, "t1", 0)
	require.NoError(t, err)
	assert.Empty(t, events)

	_, err = s.GetTask(ctx, "t2")
	assert.NoError(t, err)
}

func TestProjectsAndOAuth(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.CreateProject(ctx, &store.Project{ID: "p1", OwnerKeyHash: "o", Name: "demo"}))
	p, err := s.GetProject(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "demo", p.Name)

	list, err := s.ListProjects(ctx, "o")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.UpsertOAuthAccount(ctx, &store.OAuthAccount{
		ID: "acc1", Provider: "github", Subject: "42", OwnerKeyHash: "o", Email: "dev@example.com",
	}))
	acc, err := s.GetOAuthAccount(ctx, "github", "42")
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", acc.Email)
	_, err = s.GetOAuthAccount(ctx, "github", "43")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
