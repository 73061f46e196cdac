package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.True(t, cfg.EnableFilePersistence)
	assert.Equal(t, 4, cfg.Governor.MaxConcurrentTasks)
	assert.Equal(t, 7*24*time.Hour, cfg.Retention.TaskTTL)
	assert.Equal(t, 60*time.Second, cfg.Sandbox.CommandTimeout)
	assert.Equal(t, []string{"ruff", "pytest", "python", "python3"}, cfg.Sandbox.AllowedCommands)
	assert.Equal(t, "mock", cfg.LLM.Provider)
	assert.Equal(t, int64(200_000), cfg.LLM.MaxTotalTokensPerTask)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MAX_CONCURRENT_TASKS", "2")
	t.Setenv("TASK_TTL_DAYS", "30")
	t.Setenv("COMMAND_TIMEOUT_SECONDS", "5")
	t.Setenv("ALLOWED_COMMANDS", "pytest, ruff")
	t.Setenv("LLM_TEMPERATURE", "0.7")
	t.Setenv("MANUAL_STEP_ENABLED", "true")
	t.Setenv("ALLOWED_ORIGINS", "https://forge.example.com,https://staging.forge.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Governor.MaxConcurrentTasks)
	assert.Equal(t, 30*24*time.Hour, cfg.Retention.TaskTTL)
	assert.Equal(t, 5*time.Second, cfg.Sandbox.CommandTimeout)
	assert.Equal(t, []string{"pytest", "ruff"}, cfg.Sandbox.AllowedCommands)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 1e-9)
	assert.True(t, cfg.Orchestrator.ManualStepEnabled)
	assert.Len(t, cfg.AllowedOrigins, 2)
}

func TestLoad_MalformedValueFailsHard(t *testing.T) {
	t.Setenv("MAX_CONCURRENT_TASKS", "many")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAX_CONCURRENT_TASKS")
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		errContains string
	}{
		{
			name:        "production requires api key",
			envVars:     map[string]string{"ENVIRONMENT": "production"},
			errContains: "APP_API_KEY",
		},
		{
			name:        "unknown provider",
			envVars:     map[string]string{"LLM_PROVIDER": "anthropic"},
			errContains: "LLM_PROVIDER",
		},
		{
			name:        "openai without key",
			envVars:     map[string]string{"LLM_PROVIDER": "openai"},
			errContains: "LLM_API_KEY",
		},
		{
			name:        "temperature out of range",
			envVars:     map[string]string{"LLM_TEMPERATURE": "3.5"},
			errContains: "LLM_TEMPERATURE",
		},
		{
			name:        "empty allowlist",
			envVars:     map[string]string{"ALLOWED_COMMANDS": " , "},
			errContains: "ALLOWED_COMMANDS",
		},
		{
			name: "orphan threshold below heartbeat",
			envVars: map[string]string{
				"HEARTBEAT_INTERVAL_SECONDS": "60",
				"ORPHAN_THRESHOLD_SECONDS":   "30",
			},
			errContains: "ORPHAN_THRESHOLD_SECONDS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, val := range tt.envVars {
				t.Setenv(key, val)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoad_ProductionWithKey(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("APP_API_KEY", "k-123")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}
