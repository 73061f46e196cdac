package api

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// healthHandler handles GET /health. Unauthenticated: load balancers
// and probes hit it.
func (s *Server) healthHandler(c *gin.Context) {
	status := "ok"
	code := http.StatusOK
	dbErr := ""
	if err := s.store.Ping(c.Request.Context()); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
		dbErr = err.Error()
	}

	body := gin.H{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if dbErr != "" {
		body["database_error"] = dbErr
	}
	c.JSON(code, body)
}

// opsStatusHandler handles GET /ops/status: queue health plus the
// caller's daily usage counters.
func (s *Server) opsStatusHandler(c *gin.Context) {
	ctx := c.Request.Context()

	body := gin.H{
		"environment": s.cfg.Environment,
		"codex_hash":  s.codexHash,
	}

	if s.governor != nil {
		h := s.governor.Health(ctx)
		body["queue"] = gin.H{
			"healthy":          h.Healthy,
			"db_reachable":     h.DBReachable,
			"worker_id":        h.WorkerID,
			"active_tasks":     h.ActiveTasks,
			"max_concurrent":   h.MaxConcurrent,
			"queue_depth":      h.QueueDepth,
			"tasks_processed":  h.TasksProcessed,
			"orphans_requeued": h.OrphansRequeued,
		}
	}

	if s.quota != nil {
		usage, err := s.quota.UsageToday(ctx, owner(c))
		if err != nil {
			internalError(c, err)
			return
		}
		body["usage_today"] = gin.H{
			"day":          usage.Day,
			"tokens_in":    usage.TokensIn,
			"tokens_out":   usage.TokensOut,
			"command_runs": usage.CommandRuns,
			"limits": gin.H{
				"max_tokens_per_day":       s.cfg.Limits.MaxTokensPerDay,
				"max_command_runs_per_day": s.cfg.Limits.MaxCommandRunsPerDay,
			},
		}
	}

	c.JSON(http.StatusOK, body)
}

// listTemplatesHandler handles GET /api/templates. Manifests only, no
// file bodies.
func (s *Server) listTemplatesHandler(c *gin.Context) {
	type templateResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Hash        string `json:"hash"`
		FileCount   int    `json:"file_count"`
	}

	list := s.templates.List()
	out := make([]templateResponse, 0, len(list))
	for _, t := range list {
		out = append(out, templateResponse{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Hash:        t.Hash,
			FileCount:   len(t.Files),
		})
	}
	c.JSON(http.StatusOK, gin.H{"templates": out})
}

// configHandler handles GET /api/config: the safe, client-facing
// subset of the runtime configuration. Secrets never appear here.
func (s *Server) configHandler(c *gin.Context) {
	modes := make(map[string]gin.H, len(s.codex.Modes))
	names := make([]string, 0, len(s.codex.Modes))
	for name := range s.codex.Modes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		plan := s.codex.Modes[name]
		modes[name] = gin.H{
			"stages":         plan.Stages,
			"max_iterations": plan.MaxIterations,
			"require_review": plan.RequireReview,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"environment": s.cfg.Environment,
		"codex_hash":  s.codexHash,
		"modes":       modes,
		"llm": gin.H{
			"provider":                  s.cfg.LLM.Provider,
			"model":                     s.cfg.LLM.Model,
			"max_calls_per_task":        s.cfg.LLM.MaxCallsPerTask,
			"max_total_tokens_per_task": s.cfg.LLM.MaxTotalTokensPerTask,
		},
		"sandbox": gin.H{
			"allowed_commands":        s.cfg.Sandbox.AllowedCommands,
			"command_timeout_seconds": int(s.cfg.Sandbox.CommandTimeout / time.Second),
			"max_output_bytes":        s.cfg.Sandbox.MaxOutputBytes,
		},
		"limits": gin.H{
			"rate_create_tasks_per_min": s.cfg.Limits.RateCreateTasksPerMin,
			"rate_rerun_review_per_min": s.cfg.Limits.RateRerunReviewPerMin,
			"rate_downloads_per_min":    s.cfg.Limits.RateDownloadsPerMin,
			"max_tokens_per_day":        s.cfg.Limits.MaxTokensPerDay,
			"max_command_runs_per_day":  s.cfg.Limits.MaxCommandRunsPerDay,
			"max_task_bytes":            s.cfg.Limits.MaxTaskBytes,
			"max_task_files":            s.cfg.Limits.MaxTaskFiles,
		},
	})
}
