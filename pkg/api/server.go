// Package api is the HTTP surface: task lifecycle endpoints, artifact
// and file access, downloads, the operator endpoints, and the
// WebSocket event stream.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/forgeproject/forge/pkg/config"
	"github.com/forgeproject/forge/pkg/events"
	"github.com/forgeproject/forge/pkg/queue"
	"github.com/forgeproject/forge/pkg/store"
)

// Server holds the wiring the handlers need.
type Server struct {
	cfg       config.Config
	store     store.Store
	governor  *queue.Governor
	limiter   *queue.RateLimiter
	quota     *queue.QuotaKeeper
	templates *config.TemplateCatalog
	codex     *config.Codex
	codexHash string
	pub       *events.Publisher
	ws        *events.ConnectionManager
}

// NewServer wires the API server. governor may be nil in tests that
// only exercise read endpoints.
func NewServer(cfg config.Config, st store.Store, governor *queue.Governor,
	limiter *queue.RateLimiter, quota *queue.QuotaKeeper,
	templates *config.TemplateCatalog, codex *config.Codex, codexHash string,
	pub *events.Publisher) *Server {
	return &Server{
		cfg:       cfg,
		store:     st,
		governor:  governor,
		limiter:   limiter,
		quota:     quota,
		templates: templates,
		codex:     codex,
		codexHash: codexHash,
		pub:       pub,
		ws:        events.NewConnectionManager(pub, 10*time.Second),
	}
}

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	if s.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), s.securityHeaders(), s.corsMiddleware())

	r.GET("/health", s.healthHandler)
	r.GET("/ops/status", s.authRequired(), s.opsStatusHandler)

	r.GET("/ws/:task_id", s.wsHandler)

	api := r.Group("/api", s.authRequired())
	{
		api.GET("/templates", s.listTemplatesHandler)
		api.GET("/config", s.configHandler)

		api.POST("/tasks", s.createTaskHandler)
		api.GET("/tasks/:id", s.getTaskHandler)
		api.GET("/tasks/:id/events", s.listTaskEventsHandler)
		api.GET("/tasks/:id/artifacts", s.listArtifactsHandler)
		api.GET("/tasks/:id/state", s.taskStateHandler)
		api.GET("/tasks/:id/files", s.listFilesHandler)
		api.GET("/tasks/:id/files/*path", s.getFileHandler)
		api.GET("/tasks/:id/download.zip", s.downloadZipHandler)
		api.GET("/tasks/:id/git-export.zip", s.gitExportZipHandler)
		api.GET("/tasks/:id/questions", s.listQuestionsHandler)
		api.POST("/tasks/:id/input", s.provideInputHandler)
		api.POST("/tasks/:id/resume", s.resumeTaskHandler)
		api.POST("/tasks/:id/rerun-review", s.rerunReviewHandler)
		api.POST("/tasks/:id/create-pr", s.createPRHandler)

		api.GET("/users/:user_id/tasks", s.listUserTasksHandler)
	}

	return r
}

// requestLogger logs one line per request in the structured style the
// rest of the process uses.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}

func (s *Server) securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// corsMiddleware allows the configured origins. An empty allowlist
// disables CORS entirely.
func (s *Server) corsMiddleware() gin.HandlerFunc {
	allowed := make(map[string]bool, len(s.cfg.AllowedOrigins))
	allowAll := false
	for _, o := range s.cfg.AllowedOrigins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowAll || allowed[origin]) {
			h := c.Writer.Header()
			if allowAll {
				h.Set("Access-Control-Allow-Origin", "*")
			} else {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Vary", "Origin")
			}
			h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-API-Key")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
