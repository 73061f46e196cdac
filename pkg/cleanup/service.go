// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/forgeproject/forge/pkg/config"
	"github.com/forgeproject/forge/pkg/store"
)

// Service periodically enforces retention policies:
//   - Purges terminal tasks past the task TTL, with their events,
//     artifacts, snapshots, and files
//   - Removes task workspace directories past the workspace TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	retention config.RetentionConfig
	workspace config.WorkspaceConfig
	store     store.Store

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(retention config.RetentionConfig, workspace config.WorkspaceConfig, st store.Store) *Service {
	return &Service{
		retention: retention,
		workspace: workspace,
		store:     st,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"task_ttl", s.retention.TaskTTL,
		"workspace_ttl", s.workspace.TTL,
		"interval", s.retention.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.retention.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeOldTasks(ctx)
	s.sweepWorkspaces(ctx)
}

func (s *Service) purgeOldTasks(ctx context.Context) {
	if s.retention.TaskTTL <= 0 {
		return
	}
	cutoff := time.Now().UTC().Add(-s.retention.TaskTTL)
	count, err := s.store.PurgeTasksBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: task purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old tasks", "count", count)
	}
}

// sweepWorkspaces removes per-task workspace directories that outlived
// the workspace TTL. Directories for tasks still running are kept no
// matter how old they are.
func (s *Service) sweepWorkspaces(ctx context.Context) {
	if s.workspace.TTL <= 0 || s.workspace.Root == "" {
		return
	}
	entries, err := os.ReadDir(s.workspace.Root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return
		}
		slog.Error("Retention: workspace scan failed", "error", err)
		return
	}

	cutoff := time.Now().Add(-s.workspace.TTL)
	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if s.taskStillActive(ctx, entry.Name()) {
			continue
		}
		dir := filepath.Join(s.workspace.Root, entry.Name())
		if err := os.RemoveAll(dir); err != nil {
			slog.Error("Retention: workspace removal failed", "dir", dir, "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		slog.Info("Retention: removed expired workspaces", "count", removed)
	}
}

// taskStillActive reports whether the directory name resolves to a task
// that has not reached a terminal state. Unknown directories are fair
// game for removal.
func (s *Service) taskStillActive(ctx context.Context, taskID string) bool {
	t, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		return false
	}
	return !t.Status.Terminal() && t.Status != store.StatusNeedsInput
}
