// Package workspace mirrors a Container onto disk so sandboxed tooling
// can operate on real files. Each task owns workspace_root/<task_id>/.
// The Workspace implements container.FileSink: hook-driven writes keep
// the mirror current, and SyncToContainer folds external edits (made by
// tools like formatters) back into the Container without re-triggering
// the hook.
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/forgeproject/forge/pkg/container"
)

// Directories and suffixes excluded from sync scans. Tool caches and
// VCS state never belong in the Container.
var ignoredDirs = map[string]bool{
	".git":          true,
	"__pycache__":   true,
	".pytest_cache": true,
	".ruff_cache":   true,
	".mypy_cache":   true,
	".venv":         true,
}

const ignoredSuffix = ".pyc"

// SyncStats summarizes one SyncToContainer pass.
type SyncStats struct {
	Added    []string
	Modified []string
	Removed  []string
}

// Changed reports whether the pass applied anything.
func (s SyncStats) Changed() bool {
	return len(s.Added)+len(s.Modified)+len(s.Removed) > 0
}

// Workspace is the on-disk mirror for one task.
type Workspace struct {
	mu       sync.Mutex
	root     string
	taskID   string
	baseline map[string]string // path → sha256 at last materialize/sync
}

// New creates (or reuses) the task directory under rootDir.
func New(rootDir, taskID string) (*Workspace, error) {
	if strings.TrimSpace(taskID) == "" {
		return nil, errors.New("task id is required")
	}
	root, err := filepath.Abs(filepath.Join(rootDir, taskID))
	if err != nil {
		return nil, fmt.Errorf("resolving workspace dir: %w", err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating workspace dir: %w", err)
	}
	return &Workspace{
		root:     root,
		taskID:   taskID,
		baseline: make(map[string]string),
	}, nil
}

// Root returns the absolute task directory.
func (w *Workspace) Root() string { return w.root }

// Materialize writes every Container file to disk and records the
// resulting content hashes as the sync baseline.
func (w *Workspace) Materialize(c *container.Container) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	files := c.Files()
	baseline := make(map[string]string, len(files))
	for path, content := range files {
		if err := w.writeLocked(path, content); err != nil {
			return err
		}
		baseline[path] = container.HashBytes(content)
	}
	w.baseline = baseline
	slog.Debug("Workspace materialized", "task_id", w.taskID, "files", len(files))
	return nil
}

// FileChanged implements container.FileSink. A nil content deletes the
// file. Hook-driven writes update the baseline so the next sync does
// not re-apply them to the Container.
func (w *Workspace) FileChanged(path string, content []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	normalized, err := container.NormalizePath(path)
	if err != nil {
		return err
	}
	if content == nil {
		if err := os.Remove(w.diskPath(normalized)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("removing %s: %w", normalized, err)
		}
		delete(w.baseline, normalized)
		return nil
	}
	if err := w.writeLocked(normalized, content); err != nil {
		return err
	}
	w.baseline[normalized] = container.HashBytes(content)
	return nil
}

// SyncToContainer scans the directory, diffs it by SHA-256 against the
// baseline, and applies additions, modifications, and deletions to the
// Container through the hook-free mutators.
func (w *Workspace) SyncToContainer(c *container.Container) (SyncStats, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	current, contents, err := w.scanLocked()
	if err != nil {
		return SyncStats{}, err
	}

	var stats SyncStats
	for path, sha := range current {
		prev, existed := w.baseline[path]
		if existed && prev == sha {
			continue
		}
		if err := c.AddFileQuiet(path, contents[path]); err != nil {
			return SyncStats{}, fmt.Errorf("syncing %s: %w", path, err)
		}
		if existed {
			stats.Modified = append(stats.Modified, path)
		} else {
			stats.Added = append(stats.Added, path)
		}
	}
	for path := range w.baseline {
		if _, ok := current[path]; ok {
			continue
		}
		if err := c.RemoveFileQuiet(path); err != nil {
			return SyncStats{}, fmt.Errorf("syncing removal of %s: %w", path, err)
		}
		stats.Removed = append(stats.Removed, path)
	}

	sort.Strings(stats.Added)
	sort.Strings(stats.Modified)
	sort.Strings(stats.Removed)
	w.baseline = current

	if stats.Changed() {
		slog.Info("Workspace synced back to container",
			"task_id", w.taskID,
			"added", len(stats.Added),
			"modified", len(stats.Modified),
			"removed", len(stats.Removed))
	}
	return stats, nil
}

// Remove deletes the task directory and everything under it.
func (w *Workspace) Remove() error {
	return os.RemoveAll(w.root)
}

func (w *Workspace) diskPath(normalized string) string {
	return filepath.Join(w.root, filepath.FromSlash(normalized))
}

func (w *Workspace) writeLocked(path string, content []byte) error {
	normalized, err := container.NormalizePath(path)
	if err != nil {
		return err
	}
	target := w.diskPath(normalized)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating parent of %s: %w", normalized, err)
	}
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", normalized, err)
	}
	return nil
}

// scanLocked walks the tree and returns path → sha256 plus file bodies,
// skipping tool caches and VCS directories.
func (w *Workspace) scanLocked() (map[string]string, map[string][]byte, error) {
	hashes := make(map[string]string)
	contents := make(map[string][]byte)

	err := filepath.WalkDir(w.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != w.root && ignoredDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ignoredSuffix) {
			return nil
		}
		rel, err := filepath.Rel(w.root, p)
		if err != nil {
			return err
		}
		path := filepath.ToSlash(rel)
		body, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		hashes[path] = container.HashBytes(body)
		contents[path] = body
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scanning workspace: %w", err)
	}
	return hashes, contents, nil
}
