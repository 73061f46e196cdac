package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/forgeproject/forge/pkg/store"
)

// Publisher persists each event through the store, then broadcasts it
// to live subscribers. Persistence is idempotent per (task_id,
// event_id), so replays after a crash do not duplicate the stream.
type Publisher struct {
	store store.Store
	hub   *Hub
}

// NewPublisher creates a publisher over a store and a hub.
func NewPublisher(st store.Store, hub *Hub) *Publisher {
	return &Publisher{store: st, hub: hub}
}

// Hub exposes the hub for the WebSocket layer.
func (p *Publisher) Hub() *Hub { return p.hub }

// Publish persists one event and broadcasts it. The payload is
// marshaled to JSON; a marshal failure is a programming error and is
// returned as such.
func (p *Publisher) Publish(ctx context.Context, taskID, eventType string, payload any) error {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshaling %s payload: %w", eventType, err)
		}
		raw = data
	}

	e := &store.Event{
		ID:        uuid.NewString(),
		TaskID:    taskID,
		Type:      eventType,
		Payload:   raw,
		CreatedAt: time.Now().UTC(),
	}
	if err := p.store.AppendEvent(ctx, e); err != nil {
		return fmt.Errorf("persisting %s event: %w", eventType, err)
	}

	p.hub.Broadcast(Envelope{
		ID:        e.ID,
		Seq:       e.Seq,
		TaskID:    taskID,
		Type:      eventType,
		Payload:   raw,
		CreatedAt: e.CreatedAt,
	})
	return nil
}

// PublishQuiet publishes and logs instead of returning the error. Used
// on paths where event delivery must not fail the pipeline.
func (p *Publisher) PublishQuiet(ctx context.Context, taskID, eventType string, payload any) {
	if err := p.Publish(ctx, taskID, eventType, payload); err != nil {
		slog.Warn("Failed to publish event",
			"task_id", taskID, "type", eventType, "error", err)
	}
}

// Replay returns the persisted stream for a task after a sequence
// cursor, in order. Passing 0 replays from the beginning.
func (p *Publisher) Replay(ctx context.Context, taskID string, afterSeq int64) ([]Envelope, error) {
	rows, err := p.store.ListEvents(ctx, taskID, afterSeq)
	if err != nil {
		return nil, fmt.Errorf("replaying events for %s: %w", taskID, err)
	}
	out := make([]Envelope, 0, len(rows))
	for _, e := range rows {
		out = append(out, Envelope{
			ID:        e.ID,
			Seq:       e.Seq,
			TaskID:    e.TaskID,
			Type:      e.Type,
			Payload:   e.Payload,
			CreatedAt: e.CreatedAt,
		})
	}
	return out, nil
}
