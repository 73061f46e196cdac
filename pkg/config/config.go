// Package config loads and validates all runtime configuration: process
// settings from environment variables, the codex workflow document, and
// the template catalog. Everything returned here is read-only after load.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the resolved process configuration.
type Config struct {
	Environment string
	Host        string
	Port        int

	// AppAPIKey protects the HTTP API. Empty disables authentication,
	// which is only acceptable in development.
	AppAPIKey      string
	AllowedOrigins []string

	// DatabaseURL selects the durable Postgres store. Empty runs the
	// in-memory store.
	DatabaseURL           string
	EnableFilePersistence bool

	TemplatesDir string
	CodexPath    string

	Workspace    WorkspaceConfig
	Retention    RetentionConfig
	Governor     GovernorConfig
	Limits       LimitsConfig
	Sandbox      SandboxConfig
	LLM          LLMConfig
	Orchestrator OrchestratorConfig
}

// WorkspaceConfig controls where per-task working directories live.
type WorkspaceConfig struct {
	Root string
	TTL  time.Duration
}

// RetentionConfig controls background cleanup of old tasks.
type RetentionConfig struct {
	TaskTTL         time.Duration
	CleanupInterval time.Duration
}

// GovernorConfig bounds the task queue and worker pool.
type GovernorConfig struct {
	MaxConcurrentTasks int
	MaxQueueDepth      int

	// HeartbeatInterval is how often a worker refreshes its claim.
	HeartbeatInterval time.Duration

	// OrphanThreshold is how long a processing task can go without a
	// heartbeat before another instance may reclaim it.
	OrphanThreshold    time.Duration
	OrphanScanInterval time.Duration
}

// LimitsConfig holds per-owner rate limits and daily quotas.
type LimitsConfig struct {
	RateCreateTasksPerMin int
	RateRerunReviewPerMin int
	RateDownloadsPerMin   int

	MaxTokensPerDay      int64
	MaxCommandRunsPerDay int64

	MaxTaskBytes int64
	MaxTaskFiles int
}

// SandboxConfig bounds command execution inside task workspaces.
type SandboxConfig struct {
	CommandTimeout  time.Duration
	MaxOutputBytes  int
	AllowedCommands []string
}

// LLMConfig configures the provider gateway and per-task budgets.
type LLMConfig struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	MaxTokens   int
	Timeout     time.Duration
	Temperature float64

	MaxCallsPerTask       int
	MaxTotalTokensPerTask int64
	MaxRetriesPerStep     int
}

// OrchestratorConfig holds workflow knobs not covered by the codex.
type OrchestratorConfig struct {
	// MicroMaxIterations overrides the codex iteration cap for
	// micro_file tasks when positive.
	MicroMaxIterations int

	// ManualStepEnabled pauses after each stage for operator input.
	ManualStepEnabled bool
}

// Default returns the built-in configuration. Load applies environment
// overrides on top of it.
func Default() Config {
	return Config{
		Environment:           "development",
		Host:                  "0.0.0.0",
		Port:                  8080,
		EnableFilePersistence: true,
		TemplatesDir:          "templates",
		Workspace: WorkspaceConfig{
			Root: "workspaces",
			TTL:  24 * time.Hour,
		},
		Retention: RetentionConfig{
			TaskTTL:         7 * 24 * time.Hour,
			CleanupInterval: 1 * time.Hour,
		},
		Governor: GovernorConfig{
			MaxConcurrentTasks: 4,
			MaxQueueDepth:      256,
			HeartbeatInterval:  15 * time.Second,
			OrphanThreshold:    2 * time.Minute,
			OrphanScanInterval: 1 * time.Minute,
		},
		Limits: LimitsConfig{
			RateCreateTasksPerMin: 10,
			RateRerunReviewPerMin: 5,
			RateDownloadsPerMin:   30,
			MaxTokensPerDay:       1_000_000,
			MaxCommandRunsPerDay:  500,
			MaxTaskBytes:          50 << 20,
			MaxTaskFiles:          2000,
		},
		Sandbox: SandboxConfig{
			CommandTimeout:  60 * time.Second,
			MaxOutputBytes:  20000,
			AllowedCommands: []string{"ruff", "pytest", "python", "python3"},
		},
		LLM: LLMConfig{
			Provider:              "mock",
			Model:                 "gpt-4o-mini",
			MaxTokens:             4096,
			Timeout:               120 * time.Second,
			Temperature:           0.2,
			MaxCallsPerTask:       40,
			MaxTotalTokensPerTask: 200_000,
			MaxRetriesPerStep:     2,
		},
		Orchestrator: OrchestratorConfig{
			MicroMaxIterations: 0,
			ManualStepEnabled:  false,
		},
	}
}

// Validate checks the configuration for misconfiguration that would
// only surface later at runtime.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.Environment == "production" && c.AppAPIKey == "" {
		return errors.New("APP_API_KEY is required in production")
	}
	if c.Governor.MaxConcurrentTasks <= 0 {
		return errors.New("MAX_CONCURRENT_TASKS must be positive")
	}
	if c.Governor.MaxQueueDepth <= 0 {
		return errors.New("MAX_QUEUE_DEPTH must be positive")
	}
	if c.Governor.OrphanThreshold <= c.Governor.HeartbeatInterval {
		return errors.New("ORPHAN_THRESHOLD_SECONDS must exceed HEARTBEAT_INTERVAL_SECONDS")
	}
	if c.Limits.MaxTaskBytes <= 0 || c.Limits.MaxTaskFiles <= 0 {
		return errors.New("MAX_TASK_BYTES and MAX_TASK_FILES must be positive")
	}
	if c.Sandbox.CommandTimeout <= 0 {
		return errors.New("COMMAND_TIMEOUT_SECONDS must be positive")
	}
	if c.Sandbox.MaxOutputBytes <= 0 {
		return errors.New("COMMAND_MAX_OUTPUT_BYTES must be positive")
	}
	if len(c.Sandbox.AllowedCommands) == 0 {
		return errors.New("ALLOWED_COMMANDS must not be empty")
	}
	switch c.LLM.Provider {
	case "mock", "openai":
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q (expected mock or openai)", c.LLM.Provider)
	}
	if c.LLM.Provider == "openai" && c.LLM.APIKey == "" {
		return errors.New("LLM_API_KEY is required for the openai provider")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE out of range: %g", c.LLM.Temperature)
	}
	if c.LLM.MaxCallsPerTask <= 0 {
		return errors.New("LLM_MAX_CALLS_PER_TASK must be positive")
	}
	if c.LLM.MaxTotalTokensPerTask <= 0 {
		return errors.New("LLM_MAX_TOTAL_TOKENS_PER_TASK must be positive")
	}
	if c.LLM.MaxRetriesPerStep < 0 {
		return errors.New("LLM_MAX_RETRIES_PER_STEP must not be negative")
	}
	return nil
}

// IsProduction reports whether the process runs with production
// hardening (auth required, verbose errors suppressed).
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
