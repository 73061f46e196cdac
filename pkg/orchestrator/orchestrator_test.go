package orchestrator

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeproject/forge/pkg/config"
	"github.com/forgeproject/forge/pkg/contract"
	"github.com/forgeproject/forge/pkg/events"
	"github.com/forgeproject/forge/pkg/llm"
	"github.com/forgeproject/forge/pkg/store"
	"github.com/forgeproject/forge/pkg/store/memstore"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Workspace.Root = t.TempDir()
	return cfg
}

type harness struct {
	orch     *Orchestrator
	store    *memstore.Store
	provider *llm.MockProvider
}

func newHarness(t *testing.T, cfg config.Config, entries ...llm.ScriptEntry) *harness {
	t.Helper()
	st := memstore.New()
	pub := events.NewPublisher(st, events.NewHub())
	provider := llm.NewMockProvider(entries...)
	gateway := llm.NewGateway(provider, llm.GatewayConfig{
		BackoffBase: time.Millisecond,
		Model:       cfg.LLM.Model,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
	})

	codex := config.BuiltinCodex()
	hash, err := codex.Hash()
	require.NoError(t, err)
	templates, err := config.LoadTemplates(t.TempDir())
	require.NoError(t, err)

	return &harness{
		orch:     New(st, pub, gateway, codex, hash, templates, cfg, nil),
		store:    st,
		provider: provider,
	}
}

func (h *harness) seedTask(t *testing.T, task *store.Task) *store.Task {
	t.Helper()
	if task.Status == "" {
		task.Status = store.StatusProcessing
	}
	if task.OwnerKeyHash == "" {
		task.OwnerKeyHash = "owner-1"
	}
	require.NoError(t, h.store.CreateTask(context.Background(), task))
	return task
}

func (h *harness) eventTypes(t *testing.T, taskID string) []string {
	t.Helper()
	evs, err := h.store.ListEvents(context.Background(), taskID, 0)
	require.NoError(t, err)
	types := make([]string, 0, len(evs))
	for _, e := range evs {
		types = append(types, e.Type)
	}
	return types
}

func coderJSON(path, content string) string {
	raw, _ := json.Marshal(map[string]any{
		"files": []map[string]string{{"path": path, "content": content}},
	})
	return string(raw)
}

func researchJSON() string {
	return `{"summary": "A small utility.", "requirements": ["print the sequence"], "user_stories": [], "open_questions": [], "clarification_questions": []}`
}

func TestRunTask_MicroFileCompletes(t *testing.T) {
	h := newHarness(t, testConfig(t),
		llm.ScriptEntry{Text: coderJSON("fizzbuzz.py", "\"\"\"FizzBuzz.\"\"\"\n\nprint(\"1\")\n")},
	)
	task := h.seedTask(t, &store.Task{
		ID:          "task-micro",
		Description: "Create fizzbuzz.py that prints the numbers 1 to 100 with FizzBuzz rules",
	})

	outcome, err := h.orch.RunTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusCompleted, outcome.Status)
	assert.NotEmpty(t, outcome.Result)

	got, err := h.store.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusCompleted, got.Status)
	assert.Equal(t, 1.0, got.Progress)
	assert.Equal(t, "micro_file", got.Mode)
	require.NotNil(t, got.CompletedAt)

	var result struct {
		Files      int `json:"files"`
		Iterations int `json:"iterations"`
	}
	require.NoError(t, json.Unmarshal(got.Result, &result))
	assert.Equal(t, 1, result.Files)
	assert.Equal(t, 1, result.Iterations)

	// Exactly one LLM call: micro tasks skip research, design, and review.
	assert.Equal(t, 1, h.provider.CallCount())

	types := h.eventTypes(t, task.ID)
	assert.Contains(t, types, events.TypeStageStarted)
	assert.Contains(t, types, events.TypeLLMUsage)
	assert.Contains(t, types, events.TypeTaskCompleted)
	assert.NotContains(t, types, events.TypeReviewStarted)

	// Snapshot and files survive for resume and download.
	_, err = h.store.LoadSnapshot(context.Background(), task.ID)
	require.NoError(t, err)
	files, err := h.store.LoadFiles(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Contains(t, files, "fizzbuzz.py")
}

func TestRunTask_BudgetExhaustionFailsTask(t *testing.T) {
	cfg := testConfig(t)
	cfg.LLM.MaxCallsPerTask = 1

	h := newHarness(t, cfg, llm.ScriptEntry{Text: researchJSON()})
	task := h.seedTask(t, &store.Task{
		ID: "task-budget",
		Description: "Build a service that manages a catalog of reusable hardware parts with search," +
			" tagging, stock tracking, supplier records, and an audit trail of every stock movement" +
			" so the workshop can trace where components went.",
	})

	outcome, err := h.orch.RunTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusFailed, outcome.Status)
	assert.Equal(t, ReasonLLMBudgetExhausted, outcome.FailureReason)

	got, err := h.store.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusFailed, got.Status)
	assert.Equal(t, ReasonLLMBudgetExhausted, got.FailureReason)
	assert.Equal(t, 1.0, got.Progress)

	types := h.eventTypes(t, task.ID)
	assert.Contains(t, types, events.TypeStageFailed)
	assert.Contains(t, types, events.TypeTaskFailed)
}

func TestRunTask_InvalidJSONFailsTask(t *testing.T) {
	h := newHarness(t, testConfig(t),
		llm.ScriptEntry{Text: "I'd be happy to help! Here is the file..."},
		llm.ScriptEntry{Text: "Apologies, let me try again without JSON."},
	)
	task := h.seedTask(t, &store.Task{
		ID:          "task-badjson",
		Description: "Create slugify.py with a slugify function",
	})

	outcome, err := h.orch.RunTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusFailed, outcome.Status)
	assert.Equal(t, ReasonLLMInvalidJSON, outcome.FailureReason)

	// Initial attempt plus exactly one repair round.
	assert.Equal(t, 2, h.provider.CallCount())
}

func TestRunTask_ClarificationPauseAndResume(t *testing.T) {
	ctx := context.Background()
	description := "Build a service that manages a catalog of reusable hardware parts with search," +
		" tagging, stock tracking, supplier records, and an audit trail of every stock movement" +
		" so the workshop can trace where components went."

	h := newHarness(t, testConfig(t), llm.ScriptEntry{
		Text: `{"summary": "", "requirements": [], "user_stories": [], "open_questions": [],
			"clarification_questions": [{"id": "q1", "text": "Which database?", "type": "choice",
			"choices": ["postgres", "sqlite"], "required": true}]}`,
	})
	task := h.seedTask(t, &store.Task{ID: "task-clarify", Description: description})

	outcome, err := h.orch.RunTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusNeedsInput, outcome.Status)
	assert.Equal(t, config.StageResearch, outcome.ResumeFromStage)
	require.Len(t, outcome.Questions, 1)
	assert.Equal(t, "q1", outcome.Questions[0].ID)

	got, err := h.store.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusNeedsInput, got.Status)
	assert.NotEmpty(t, got.PendingQuestions)
	assert.Equal(t, config.StageResearch, got.ResumeFromStage)
	assert.Contains(t, h.eventTypes(t, task.ID), events.TypeClarificationRequested)

	// The user answers; the governor re-enqueues and a worker reclaims.
	got.Status = store.StatusProcessing
	got.ProvidedAnswers = json.RawMessage(`{"q1": "postgres"}`)
	require.NoError(t, h.store.UpdateTask(ctx, got))

	h.provider.Add(
		llm.ScriptEntry{Text: researchJSON()},
		llm.ScriptEntry{Text: `{"overview": "Single module.", "components": [{"name": "app", "description": "entry point", "files": ["app.py"]}], "api_endpoints": [], "data_model": {}}`},
		llm.ScriptEntry{Text: coderJSON("app.py", "\"\"\"Parts catalog entry point.\"\"\"\n\nPARTS = {}\n")},
		llm.ScriptEntry{Text: coderJSON("tests/test_app.py", "\"\"\"Smoke tests.\"\"\"\n\n\ndef test_truth():\n    assert 1 + 1 == 2\n")},
	)

	outcome, err = h.orch.RunTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusCompleted, outcome.Status)

	got, err = h.store.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusCompleted, got.Status)
	assert.Empty(t, got.PendingQuestions)
	assert.Empty(t, got.ResumeFromStage)

	types := h.eventTypes(t, task.ID)
	assert.Contains(t, types, events.TypeTaskResumed)
	assert.Contains(t, types, events.TypeReviewResult)
	assert.Contains(t, types, events.TypeTaskCompleted)

	files, err := h.store.LoadFiles(ctx, task.ID)
	require.NoError(t, err)
	assert.Contains(t, files, "app.py")
	assert.Contains(t, files, "tests/test_app.py")
	assert.Contains(t, files, "requirements.md")
	assert.Contains(t, files, "architecture.md")
}

func TestRunTask_ManualStepGate(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.Orchestrator.ManualStepEnabled = true

	h := newHarness(t, cfg, llm.ScriptEntry{
		Text: `{"files": [
			{"path": "util.py", "content": "\"\"\"Helpers.\"\"\"\n\n\ndef slugify(s):\n    return s.lower().replace(\" \", \"-\")\n"},
			{"path": "config.py", "content": "\"\"\"Defaults.\"\"\"\n\nDEBUG = False\n"}
		]}`,
	})
	task := h.seedTask(t, &store.Task{
		ID:          "task-manual",
		Description: "Create util.py and config.py for the scraper",
	})

	outcome, err := h.orch.RunTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusNeedsInput, outcome.Status)
	require.Len(t, outcome.Questions, 1)
	assert.Equal(t, ManualStepQuestionID, outcome.Questions[0].ID)
	assert.Contains(t, outcome.Questions[0].Choices, ManualStop)

	got, err := h.store.GetTask(ctx, task.ID)
	require.NoError(t, err)
	got.Status = store.StatusProcessing
	got.ProvidedAnswers = json.RawMessage(`{"manual_step": "stop"}`)
	require.NoError(t, h.store.UpdateTask(ctx, got))

	// Stop skips further iterations and goes straight to the final review.
	outcome, err = h.orch.RunTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusCompleted, outcome.Status)
	assert.Equal(t, 1, h.provider.CallCount())
}

func TestRunTask_HookOrdering(t *testing.T) {
	h := newHarness(t, testConfig(t),
		llm.ScriptEntry{Text: coderJSON("hello.py", "\"\"\"Hello.\"\"\"\n\nprint(\"hi\")\n")},
	)
	task := h.seedTask(t, &store.Task{
		ID:          "task-hooks",
		Description: "Create hello.py that greets the user",
	})

	var fired []string
	record := func(name string) HookFunc {
		return func(context.Context, string, any) error {
			fired = append(fired, name)
			return nil
		}
	}
	h.orch.Hooks().On(HookStageStarted, record(HookStageStarted))
	h.orch.Hooks().On(HookLLMUsage, record(HookLLMUsage))
	h.orch.Hooks().On(HookCoderFinished, record(HookCoderFinished))

	_, err := h.orch.RunTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{HookStageStarted, HookLLMUsage, HookCoderFinished}, fired)
}

func TestClassifyMode(t *testing.T) {
	long := "Build a service that manages a catalog of reusable hardware parts with search," +
		" tagging, stock tracking, supplier records, and an audit trail of every stock movement" +
		" so the workshop can trace where components went."

	tests := []struct {
		name        string
		description string
		templateID  string
		want        contract.Mode
	}{
		{"template is always a project", "anything", "fastapi_service", contract.ModeProject},
		{"single file mention", "Create fizzbuzz.py printing 1 to 100", "", contract.ModeMicroFile},
		{"micro hint", "Write a single script downloading a page", "", contract.ModeMicroFile},
		{"two files", "Create util.py and config.py for the scraper", "", contract.ModeSmallCode},
		{"short without files", "Add retry logic to the downloader component", "", contract.ModeSmallCode},
		{"long description", long, "", contract.ModeProject},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyMode(tc.description, tc.templateID))
		})
	}
}
