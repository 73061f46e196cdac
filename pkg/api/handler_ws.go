package api

import (
	"crypto/subtle"
	"strconv"
	"strings"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler handles GET /ws/:task_id. The route sits outside the auth
// group because browsers cannot set headers on WebSocket upgrades, so
// the key arrives as ?access_token= and is checked here.
func (s *Server) wsHandler(c *gin.Context) {
	key := extractAPIKey(c)
	if s.cfg.AppAPIKey != "" {
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(s.cfg.AppAPIKey)) != 1 {
			unauthorized(c, "invalid API key")
			return
		}
	}
	callerHash := HashAPIKey(key)

	taskID := c.Param("task_id")
	t, err := s.store.GetTask(c.Request.Context(), taskID)
	if err != nil || t.OwnerKeyHash != callerHash {
		notFound(c, "task not found")
		return
	}

	var afterSeq int64
	if v := c.Query("after_seq"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			badRequest(c, "after_seq must be a non-negative integer")
			return
		}
		afterSeq = n
	}

	conn, err := websocket.Accept(c.Writer, c.Request, s.acceptOptions())
	if err != nil {
		// Accept already wrote the HTTP error.
		return
	}
	defer conn.Close(websocket.StatusInternalError, "connection closed")

	s.ws.HandleConnection(c.Request.Context(), conn, taskID, afterSeq)
	conn.Close(websocket.StatusNormalClosure, "")
}

// acceptOptions maps the CORS allowlist onto WebSocket origin patterns.
func (s *Server) acceptOptions() *websocket.AcceptOptions {
	var patterns []string
	for _, origin := range s.cfg.AllowedOrigins {
		if origin == "*" {
			return &websocket.AcceptOptions{InsecureSkipVerify: true}
		}
		// OriginPatterns match hosts, not full origins.
		host := origin
		if i := strings.Index(host, "://"); i >= 0 {
			host = host[i+3:]
		}
		patterns = append(patterns, host)
	}
	return &websocket.AcceptOptions{OriginPatterns: patterns}
}
