package container

import "time"

// HistoryEntry records one mutation of the Container. The history slice is
// append-only; its order is the true execution order of the task.
type HistoryEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details,omitempty"`
	State     State          `json:"state"`
	Progress  float64        `json:"progress"`
}

// appendHistory must be called with the lock held.
func (c *Container) appendHistory(action string, details map[string]any) {
	c.history = append(c.history, HistoryEntry{
		Timestamp: time.Now().UTC(),
		Action:    action,
		Details:   details,
		State:     c.state,
		Progress:  c.progress,
	})
}

// History returns a copy of the history log.
func (c *Container) History() []HistoryEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]HistoryEntry(nil), c.history...)
}

// LastHistory returns up to n most recent entries, oldest first.
func (c *Container) LastHistory(n int) []HistoryEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n <= 0 || len(c.history) == 0 {
		return nil
	}
	if n > len(c.history) {
		n = len(c.history)
	}
	return append([]HistoryEntry(nil), c.history[len(c.history)-n:]...)
}

// RecordStageFailure appends a stage_failed entry with a reason. The
// reason must be non-empty whenever the Container enters the error state.
func (c *Container) RecordStageFailure(stage, reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.appendHistory("stage_failed", map[string]any{"stage": stage, "reason": reason})
	c.touch()
}
