package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeproject/forge/pkg/config"
	"github.com/forgeproject/forge/pkg/store"
	"github.com/forgeproject/forge/pkg/store/memstore"
)

func testRetention() config.RetentionConfig {
	return config.RetentionConfig{
		TaskTTL:         7 * 24 * time.Hour,
		CleanupInterval: 1 * time.Hour,
	}
}

func seedTask(t *testing.T, st *memstore.Store, status store.TaskStatus, age time.Duration) *store.Task {
	t.Helper()
	created := time.Now().UTC().Add(-age)
	completed := created
	task := &store.Task{
		ID:          uuid.New().String(),
		Description: "retention fixture",
		Status:      status,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
	if status.Terminal() {
		task.CompletedAt = &completed
	}
	require.NoError(t, st.CreateTask(context.Background(), task))
	return task
}

func TestService_PurgesOldTerminalTasks(t *testing.T) {
	st := memstore.New()
	ctx := context.Background()

	old := seedTask(t, st, store.StatusCompleted, 400*24*time.Hour)
	recent := seedTask(t, st, store.StatusCompleted, 1*time.Hour)

	svc := NewService(testRetention(), config.WorkspaceConfig{}, st)
	svc.runAll(ctx)

	_, err := st.GetTask(ctx, old.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.GetTask(ctx, recent.ID)
	assert.NoError(t, err)
}

func TestService_PreservesOldRunningTasks(t *testing.T) {
	st := memstore.New()
	ctx := context.Background()

	running := seedTask(t, st, store.StatusProcessing, 400*24*time.Hour)

	svc := NewService(testRetention(), config.WorkspaceConfig{}, st)
	svc.runAll(ctx)

	_, err := st.GetTask(ctx, running.ID)
	assert.NoError(t, err)
}

func TestService_SweepsExpiredWorkspaces(t *testing.T) {
	st := memstore.New()
	ctx := context.Background()
	root := t.TempDir()

	// Orphan directory with no task row, aged past the TTL.
	orphanDir := filepath.Join(root, uuid.New().String())
	require.NoError(t, os.MkdirAll(orphanDir, 0o755))
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(orphanDir, past, past))

	// Aged directory whose task is still processing.
	active := seedTask(t, st, store.StatusProcessing, 48*time.Hour)
	activeDir := filepath.Join(root, active.ID)
	require.NoError(t, os.MkdirAll(activeDir, 0o755))
	require.NoError(t, os.Chtimes(activeDir, past, past))

	// Fresh directory, inside the TTL.
	freshDir := filepath.Join(root, uuid.New().String())
	require.NoError(t, os.MkdirAll(freshDir, 0o755))

	svc := NewService(testRetention(), config.WorkspaceConfig{Root: root, TTL: 24 * time.Hour}, st)
	svc.runAll(ctx)

	assert.NoDirExists(t, orphanDir)
	assert.DirExists(t, activeDir)
	assert.DirExists(t, freshDir)
}

func TestService_StartStop(t *testing.T) {
	st := memstore.New()
	retention := testRetention()
	retention.CleanupInterval = 10 * time.Millisecond

	svc := NewService(retention, config.WorkspaceConfig{}, st)
	svc.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	svc.Stop()
}
