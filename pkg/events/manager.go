package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// ConnectionManager owns the WebSocket side of event delivery: one
// connection streams one task. On connect the persisted stream is
// replayed from the client's cursor, then the live feed takes over;
// the per-task Seq deduplicates events that land in both.
type ConnectionManager struct {
	pub          *Publisher
	writeTimeout time.Duration

	mu          sync.Mutex
	connections int
}

// NewConnectionManager creates a manager over a publisher.
func NewConnectionManager(pub *Publisher, writeTimeout time.Duration) *ConnectionManager {
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	return &ConnectionManager{pub: pub, writeTimeout: writeTimeout}
}

// ConnectionCount reports the number of open connections.
func (m *ConnectionManager) ConnectionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connections
}

// clientMessage is the only client → server shape: keepalive pings.
type clientMessage struct {
	Action string `json:"action"` // "ping"
}

// HandleConnection streams a task's events until the connection closes
// or ctx is done. afterSeq is the client's replay cursor (0 for the
// full stream). Blocks for the connection's lifetime.
func (m *ConnectionManager) HandleConnection(ctx context.Context, conn *websocket.Conn, taskID string, afterSeq int64) {
	connID := uuid.NewString()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m.mu.Lock()
	m.connections++
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.connections--
		m.mu.Unlock()
	}()

	log := slog.With("connection_id", connID, "task_id", taskID)

	// Subscribe before replay so no event falls between the two.
	live, unsubscribe := m.pub.Hub().Subscribe(taskID)
	defer unsubscribe()

	if err := m.sendJSON(ctx, conn, map[string]string{
		"type":          "connection.established",
		"connection_id": connID,
		"task_id":       taskID,
	}); err != nil {
		return
	}

	replayed, err := m.pub.Replay(ctx, taskID, afterSeq)
	if err != nil {
		log.Warn("Event replay failed", "error", err)
		_ = m.sendJSON(ctx, conn, map[string]string{"type": "replay.error"})
		return
	}

	lastSeq := afterSeq
	for _, env := range replayed {
		if err := m.sendJSON(ctx, conn, env); err != nil {
			return
		}
		lastSeq = env.Seq
	}

	// Read loop in the background: consumes pings and detects close.
	go func() {
		defer cancel()
		for {
			_, data, err := conn.Read(ctx)
			if err != nil {
				return
			}
			var msg clientMessage
			if json.Unmarshal(data, &msg) == nil && msg.Action == "ping" {
				_ = m.sendJSON(ctx, conn, map[string]string{"type": "pong"})
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case env, ok := <-live:
			if !ok {
				return
			}
			if env.Seq <= lastSeq {
				continue
			}
			if err := m.sendJSON(ctx, conn, env); err != nil {
				return
			}
			lastSeq = env.Seq
		}
	}
}

func (m *ConnectionManager) sendJSON(ctx context.Context, conn *websocket.Conn, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	writeCtx, cancel := context.WithTimeout(ctx, m.writeTimeout)
	defer cancel()
	return conn.Write(writeCtx, websocket.MessageText, data)
}
