package e2e

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeproject/forge/pkg/config"
	"github.com/forgeproject/forge/pkg/events"
	"github.com/forgeproject/forge/pkg/llm"
)

func TestContractRepair_SecondAttemptSucceeds(t *testing.T) {
	h := NewHarness(t, Options{})
	h.Provider.Add(
		llm.ScriptEntry{Text: "Sure! Here is the file you asked for:\n\nprint('hi')"},
		llm.ScriptEntry{Text: coderJSON("hello.py", "print(\"hi\")\n")},
	)

	taskID := h.CreateTask(t, map[string]any{
		"description": "Create hello.py that prints hi",
		"mode":        "micro_file",
	})

	h.WaitForStatus(t, taskID, "completed", 10*time.Second)

	// Initial attempt plus one repair round.
	assert.Equal(t, 2, h.Provider.CallCount())
}

func TestContractRepair_ExhaustedFailsWithInvalidJSON(t *testing.T) {
	h := NewHarness(t, Options{})
	h.Provider.Add(
		llm.ScriptEntry{Text: "I'd be happy to help!"},
		llm.ScriptEntry{Text: "Apologies, still no JSON."},
	)

	taskID := h.CreateTask(t, map[string]any{
		"description": "Create hello.py that prints hi",
		"mode":        "micro_file",
	})

	body := h.WaitForStatus(t, taskID, "failed", 10*time.Second)
	assert.Equal(t, "llm_invalid_json", body["failure_reason"])

	types := h.EventTypes(t, taskID)
	assert.Contains(t, types, events.TypeStageFailed)
	assert.Contains(t, types, events.TypeTaskFailed)
}

func TestBudgetExhaustion_FailsTask(t *testing.T) {
	h := NewHarness(t, Options{
		MutateConfig: func(cfg *config.Config) {
			cfg.LLM.MaxCallsPerTask = 1
		},
	})
	// Research consumes the single allowed call; the designer's call is
	// then refused by the per-task ceiling.
	h.Provider.Add(llm.ScriptEntry{
		Text: `{"summary": "An inventory service.", "requirements": ["track stock"], "user_stories": [], "open_questions": [], "clarification_questions": []}`,
	})

	taskID := h.CreateTask(t, map[string]any{
		"description": "Build an inventory service with stock tracking and supplier records",
		"mode":        "project",
	})

	body := h.WaitForStatus(t, taskID, "failed", 10*time.Second)
	assert.Equal(t, "llm_budget_exhausted", body["failure_reason"])
	assert.Equal(t, 1, h.Provider.CallCount())
}

func TestResumeFailedTask_RunsAgain(t *testing.T) {
	h := NewHarness(t, Options{})
	h.Provider.Add(
		llm.ScriptEntry{Text: "not json"},
		llm.ScriptEntry{Text: "still not json"},
	)

	taskID := h.CreateTask(t, map[string]any{
		"description": "Create retry.py with a backoff helper",
		"mode":        "micro_file",
	})
	h.WaitForStatus(t, taskID, "failed", 10*time.Second)

	// Second run gets a valid response.
	h.Provider.Add(llm.ScriptEntry{Text: coderJSON("retry.py", "\"\"\"Backoff helper.\"\"\"\n\nBASE = 0.5\n")})

	status, _ := h.Do(t, http.MethodPost, "/api/tasks/"+taskID+"/resume", nil)
	require.Equal(t, http.StatusAccepted, status)

	body := h.WaitForStatus(t, taskID, "completed", 10*time.Second)
	assert.Empty(t, body["failure_reason"])
}
