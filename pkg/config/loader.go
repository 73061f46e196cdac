package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Load builds the process configuration from environment variables on
// top of the built-in defaults and validates the result. Unset
// variables keep their defaults; malformed values are hard errors so a
// typo never silently falls back.
func Load() (Config, error) {
	cfg := Default()
	p := &envParser{}

	cfg.Environment = p.str("ENVIRONMENT", cfg.Environment)
	cfg.Host = p.str("HOST", cfg.Host)
	cfg.Port = p.intVal("PORT", cfg.Port)
	cfg.AppAPIKey = p.str("APP_API_KEY", cfg.AppAPIKey)
	cfg.AllowedOrigins = p.list("ALLOWED_ORIGINS", cfg.AllowedOrigins)

	cfg.DatabaseURL = p.str("DATABASE_URL", cfg.DatabaseURL)
	cfg.EnableFilePersistence = p.boolVal("ENABLE_FILE_PERSISTENCE", cfg.EnableFilePersistence)
	cfg.TemplatesDir = p.str("TEMPLATES_DIR", cfg.TemplatesDir)
	cfg.CodexPath = p.str("CODEX_PATH", cfg.CodexPath)

	cfg.Workspace.Root = p.str("WORKSPACE_ROOT", cfg.Workspace.Root)
	cfg.Workspace.TTL = p.days("WORKSPACE_TTL_DAYS", cfg.Workspace.TTL)
	cfg.Retention.TaskTTL = p.days("TASK_TTL_DAYS", cfg.Retention.TaskTTL)
	cfg.Retention.CleanupInterval = p.seconds("CLEANUP_INTERVAL_SECONDS", cfg.Retention.CleanupInterval)

	cfg.Governor.MaxConcurrentTasks = p.intVal("MAX_CONCURRENT_TASKS", cfg.Governor.MaxConcurrentTasks)
	cfg.Governor.MaxQueueDepth = p.intVal("MAX_QUEUE_DEPTH", cfg.Governor.MaxQueueDepth)
	cfg.Governor.HeartbeatInterval = p.seconds("HEARTBEAT_INTERVAL_SECONDS", cfg.Governor.HeartbeatInterval)
	cfg.Governor.OrphanThreshold = p.seconds("ORPHAN_THRESHOLD_SECONDS", cfg.Governor.OrphanThreshold)
	cfg.Governor.OrphanScanInterval = p.seconds("ORPHAN_SCAN_INTERVAL_SECONDS", cfg.Governor.OrphanScanInterval)

	cfg.Limits.RateCreateTasksPerMin = p.intVal("RATE_LIMIT_CREATE_TASKS_PER_MIN", cfg.Limits.RateCreateTasksPerMin)
	cfg.Limits.RateRerunReviewPerMin = p.intVal("RATE_LIMIT_RERUN_REVIEW_PER_MIN", cfg.Limits.RateRerunReviewPerMin)
	cfg.Limits.RateDownloadsPerMin = p.intVal("RATE_LIMIT_DOWNLOADS_PER_MIN", cfg.Limits.RateDownloadsPerMin)
	cfg.Limits.MaxTokensPerDay = p.int64Val("MAX_TOKENS_PER_DAY", cfg.Limits.MaxTokensPerDay)
	cfg.Limits.MaxCommandRunsPerDay = p.int64Val("MAX_COMMAND_RUNS_PER_DAY", cfg.Limits.MaxCommandRunsPerDay)
	cfg.Limits.MaxTaskBytes = p.int64Val("MAX_TASK_BYTES", cfg.Limits.MaxTaskBytes)
	cfg.Limits.MaxTaskFiles = p.intVal("MAX_TASK_FILES", cfg.Limits.MaxTaskFiles)

	cfg.Sandbox.CommandTimeout = p.seconds("COMMAND_TIMEOUT_SECONDS", cfg.Sandbox.CommandTimeout)
	cfg.Sandbox.MaxOutputBytes = p.intVal("COMMAND_MAX_OUTPUT_BYTES", cfg.Sandbox.MaxOutputBytes)
	cfg.Sandbox.AllowedCommands = p.list("ALLOWED_COMMANDS", cfg.Sandbox.AllowedCommands)

	cfg.LLM.Provider = p.str("LLM_PROVIDER", cfg.LLM.Provider)
	cfg.LLM.Model = p.str("LLM_MODEL", cfg.LLM.Model)
	cfg.LLM.APIKey = p.str("LLM_API_KEY", cfg.LLM.APIKey)
	cfg.LLM.BaseURL = p.str("LLM_BASE_URL", cfg.LLM.BaseURL)
	cfg.LLM.MaxTokens = p.intVal("LLM_MAX_TOKENS", cfg.LLM.MaxTokens)
	cfg.LLM.Timeout = p.seconds("LLM_TIMEOUT_SECONDS", cfg.LLM.Timeout)
	cfg.LLM.Temperature = p.floatVal("LLM_TEMPERATURE", cfg.LLM.Temperature)
	cfg.LLM.MaxCallsPerTask = p.intVal("LLM_MAX_CALLS_PER_TASK", cfg.LLM.MaxCallsPerTask)
	cfg.LLM.MaxTotalTokensPerTask = p.int64Val("LLM_MAX_TOTAL_TOKENS_PER_TASK", cfg.LLM.MaxTotalTokensPerTask)
	cfg.LLM.MaxRetriesPerStep = p.intVal("LLM_MAX_RETRIES_PER_STEP", cfg.LLM.MaxRetriesPerStep)

	cfg.Orchestrator.MicroMaxIterations = p.intVal("ORCH_MICRO_MAX_ITERATIONS", cfg.Orchestrator.MicroMaxIterations)
	cfg.Orchestrator.ManualStepEnabled = p.boolVal("MANUAL_STEP_ENABLED", cfg.Orchestrator.ManualStepEnabled)

	if p.err != nil {
		return Config{}, p.err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	slog.Info("Configuration loaded",
		"environment", cfg.Environment,
		"durable_store", cfg.DatabaseURL != "",
		"llm_provider", cfg.LLM.Provider,
		"max_concurrent_tasks", cfg.Governor.MaxConcurrentTasks)

	return cfg, nil
}

// envParser reads environment variables and records the first parse
// failure, so Load can report a single actionable error.
type envParser struct {
	err error
}

func (p *envParser) str(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (p *envParser) intVal(key string, def int) int {
	v := os.Getenv(key)
	if v == "" || p.err != nil {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.err = fmt.Errorf("invalid %s: %w", key, err)
		return def
	}
	return n
}

func (p *envParser) int64Val(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" || p.err != nil {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		p.err = fmt.Errorf("invalid %s: %w", key, err)
		return def
	}
	return n
}

func (p *envParser) floatVal(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" || p.err != nil {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.err = fmt.Errorf("invalid %s: %w", key, err)
		return def
	}
	return f
}

func (p *envParser) boolVal(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" || p.err != nil {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.err = fmt.Errorf("invalid %s: %w", key, err)
		return def
	}
	return b
}

func (p *envParser) seconds(key string, def time.Duration) time.Duration {
	n := p.intVal(key, int(def/time.Second))
	return time.Duration(n) * time.Second
}

func (p *envParser) days(key string, def time.Duration) time.Duration {
	n := p.intVal(key, int(def/(24*time.Hour)))
	return time.Duration(n) * 24 * time.Hour
}

func (p *envParser) list(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
