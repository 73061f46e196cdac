package e2e

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeproject/forge/pkg/events"
	"github.com/forgeproject/forge/pkg/llm"
)

func TestClarification_RoundTrip(t *testing.T) {
	h := NewHarness(t, Options{})
	h.Provider.Add(llm.ScriptEntry{
		Text: `{"summary": "", "requirements": [], "user_stories": [], "open_questions": [],
			"clarification_questions": [{"id": "q1", "text": "Which database?", "type": "choice",
			"choices": ["postgres", "sqlite"], "required": true}]}`,
	})

	taskID := h.CreateTask(t, map[string]any{
		"description": "Build a parts catalog service with search, tagging, and stock tracking",
		"mode":        "project",
	})

	h.WaitForStatus(t, taskID, "needs_input", 10*time.Second)

	// Questions are served back.
	status, body := h.Do(t, http.MethodGet, "/api/tasks/"+taskID+"/questions", nil)
	require.Equal(t, http.StatusOK, status)
	questions, ok := body["questions"].([]any)
	require.True(t, ok)
	require.Len(t, questions, 1)
	q := questions[0].(map[string]any)
	assert.Equal(t, "q1", q["id"])

	// A missing required answer is a 400 naming the gap.
	status, body = h.Do(t, http.MethodPost, "/api/tasks/"+taskID+"/input", map[string]any{
		"answers": map[string]string{},
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "missing_answers", body["error"])

	// The rest of the pipeline is scripted, then the answer re-enqueues.
	h.Provider.Add(
		llm.ScriptEntry{Text: `{"summary": "A parts catalog.", "requirements": ["track stock"], "user_stories": [], "open_questions": [], "clarification_questions": []}`},
		llm.ScriptEntry{Text: `{"overview": "Single module.", "components": [{"name": "app", "description": "entry point", "files": ["app.py"]}], "api_endpoints": [], "data_model": {}}`},
		llm.ScriptEntry{Text: coderJSON("app.py", "\"\"\"Parts catalog entry point.\"\"\"\n\nPARTS = {}\n")},
		llm.ScriptEntry{Text: coderJSON("tests/test_app.py", "\"\"\"Smoke tests.\"\"\"\n\n\ndef test_truth():\n    assert 1 + 1 == 2\n")},
	)

	status, _ = h.Do(t, http.MethodPost, "/api/tasks/"+taskID+"/input", map[string]any{
		"answers": map[string]string{"q1": "postgres"},
	})
	require.Equal(t, http.StatusAccepted, status)

	h.WaitForStatus(t, taskID, "completed", 15*time.Second)

	types := h.EventTypes(t, taskID)
	assert.Contains(t, types, events.TypeClarificationRequested)
	assert.Contains(t, types, events.TypeClarificationReceived)
	assert.Contains(t, types, events.TypeTaskResumed)
	assert.Contains(t, types, events.TypeTaskCompleted)

	// The generated tree includes the design documents.
	status, body = h.Do(t, http.MethodGet, "/api/tasks/"+taskID+"/files", nil)
	require.Equal(t, http.StatusOK, status)
	files, ok := body["files"].([]any)
	require.True(t, ok)
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.(map[string]any)["path"].(string))
	}
	assert.Contains(t, paths, "app.py")
	assert.Contains(t, paths, "tests/test_app.py")
	assert.Contains(t, paths, "requirements.md")
	assert.Contains(t, paths, "architecture.md")
}
