package events

import (
	"log/slog"
	"sync"
)

// subscriberBuffer is the per-subscriber channel depth. A subscriber
// that falls this far behind starts losing live events; the WebSocket
// layer recovers by replaying from the store with its last seen Seq.
const subscriberBuffer = 64

// Hub fans events out to in-process subscribers, keyed by task ID.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[int]chan Envelope
	next int
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[int]chan Envelope)}
}

// Subscribe registers for a task's live events. The cancel function
// must be called when the subscriber goes away.
func (h *Hub) Subscribe(taskID string) (<-chan Envelope, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.next++
	id := h.next
	ch := make(chan Envelope, subscriberBuffer)
	if h.subs[taskID] == nil {
		h.subs[taskID] = make(map[int]chan Envelope)
	}
	h.subs[taskID][id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if set, ok := h.subs[taskID]; ok {
			if ch, ok := set[id]; ok {
				delete(set, id)
				close(ch)
			}
			if len(set) == 0 {
				delete(h.subs, taskID)
			}
		}
	}
	return ch, cancel
}

// Broadcast delivers an envelope to every subscriber of its task.
// Slow subscribers are skipped, not waited on.
func (h *Hub) Broadcast(env Envelope) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subs[env.TaskID] {
		select {
		case ch <- env:
		default:
			slog.Debug("Dropping event for slow subscriber",
				"task_id", env.TaskID, "type", env.Type, "seq", env.Seq)
		}
	}
}

// SubscriberCount reports how many live subscribers a task has.
func (h *Hub) SubscriberCount(taskID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[taskID])
}
