package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/forgeproject/forge/pkg/container"
	"github.com/forgeproject/forge/pkg/events"
	"github.com/forgeproject/forge/pkg/store"
)

// saveState persists the Container snapshot and, when file persistence
// is enabled, the file bodies.
func (o *Orchestrator) saveState(ctx context.Context, taskID string, c *container.Container) error {
	snap, err := c.Snapshot()
	if err != nil {
		return fmt.Errorf("snapshotting container: %w", err)
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := o.store.SaveSnapshot(ctx, taskID, raw); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	if err := o.saveArtifacts(ctx, taskID, c); err != nil {
		return err
	}

	if o.persistFiles {
		if err := o.store.SaveFiles(ctx, taskID, c.Files()); err != nil {
			return fmt.Errorf("saving files: %w", err)
		}
	}
	return nil
}

// saveArtifacts upserts every Container artifact and announces the ones
// not seen before.
func (o *Orchestrator) saveArtifacts(ctx context.Context, taskID string, c *container.Container) error {
	persisted, err := o.store.ListArtifacts(ctx, taskID)
	if err != nil {
		return fmt.Errorf("listing artifacts: %w", err)
	}
	known := make(map[string]bool, len(persisted))
	for _, a := range persisted {
		known[a.ID] = true
	}

	for _, a := range c.AllArtifacts() {
		payload, err := json.Marshal(a.Payload)
		if err != nil {
			return fmt.Errorf("encoding artifact %s: %w", a.ID, err)
		}
		if err := o.store.SaveArtifact(ctx, &store.Artifact{
			ID:         a.ID,
			TaskID:     taskID,
			Kind:       string(a.Kind),
			ProducedBy: a.CreatedBy,
			Payload:    payload,
			CreatedAt:  a.CreatedAt,
		}); err != nil {
			return fmt.Errorf("saving artifact %s: %w", a.ID, err)
		}
		if !known[a.ID] {
			o.pub.PublishQuiet(ctx, taskID, events.TypeArtifactAdded, events.ArtifactAddedPayload{
				ArtifactID: a.ID,
				Kind:       string(a.Kind),
				ProducedBy: a.CreatedBy,
			})
		}
	}
	return nil
}

// loadContainer reconstructs a task's Container for resume. A missing
// snapshot with surviving files synthesizes a minimal Container already
// in the implementation stage.
func (o *Orchestrator) loadContainer(ctx context.Context, taskID string) (*container.Container, error) {
	raw, err := o.store.LoadSnapshot(ctx, taskID)
	switch {
	case err == nil:
		var snap container.Snapshot
		if err := json.Unmarshal(raw, &snap); err != nil {
			return nil, fmt.Errorf("decoding snapshot: %w", err)
		}
		return container.FromSnapshot(&snap)

	case errors.Is(err, store.ErrNotFound):
		files, ferr := o.store.LoadFiles(ctx, taskID)
		if ferr != nil && !errors.Is(ferr, store.ErrNotFound) {
			return nil, fmt.Errorf("loading files: %w", ferr)
		}
		if len(files) == 0 {
			return nil, store.ErrNotFound
		}
		slog.Warn("No snapshot for task, synthesizing container from files",
			"task_id", taskID, "files", len(files))
		c := container.New(taskID)
		for p, content := range files {
			if err := c.AddFileQuiet(p, content); err != nil {
				return nil, err
			}
		}
		c.UpdateState(container.StateImplementation, "resumed from files")
		c.CaptureBaseline()
		return c, nil

	default:
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
}

// updateTask applies fn to the current task row and writes it back.
func (o *Orchestrator) updateTask(ctx context.Context, taskID string, fn func(*store.Task)) error {
	t, err := o.store.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	fn(t)
	return o.store.UpdateTask(ctx, t)
}
