package e2e

import (
	"archive/zip"
	"bytes"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeproject/forge/pkg/events"
	"github.com/forgeproject/forge/pkg/llm"
)

func TestMicroTask_FullLifecycle(t *testing.T) {
	h := NewHarness(t, Options{})
	h.Provider.Add(llm.ScriptEntry{
		Text: coderJSON("fizzbuzz.py", "\"\"\"FizzBuzz.\"\"\"\n\nfor i in range(1, 101):\n    print(i)\n"),
	})

	taskID := h.CreateTask(t, map[string]any{
		"description": "Create fizzbuzz.py that prints the numbers 1 to 100",
		"mode":        "micro_file",
	})

	body := h.WaitForStatus(t, taskID, "completed", 10*time.Second)
	result, ok := body["result"].(map[string]any)
	require.True(t, ok, "completed task carries a result: %v", body)
	assert.EqualValues(t, 1, result["files"])
	assert.EqualValues(t, 1, result["iterations"])

	// The file is served back.
	resp := h.DoRaw(t, http.MethodGet, "/api/tasks/"+taskID+"/files/fizzbuzz.py", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	content, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(content), "FizzBuzz")

	// The zip download is a readable archive containing the file.
	resp = h.DoRaw(t, http.MethodGet, "/api/tasks/"+taskID+"/download.zip", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	archive, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "fizzbuzz.py")

	// The event stream tells the whole story, and no review ran for a
	// micro task.
	types := h.EventTypes(t, taskID)
	assert.Contains(t, types, events.TypeTaskCreated)
	assert.Contains(t, types, events.TypeStageStarted)
	assert.Contains(t, types, events.TypeLLMUsage)
	assert.Contains(t, types, events.TypeTaskCompleted)
	assert.NotContains(t, types, events.TypeReviewStarted)

	// One call: no research, no design, no repair.
	assert.Equal(t, 1, h.Provider.CallCount())
}

func TestSmallCodeTask_ReviewRuns(t *testing.T) {
	h := NewHarness(t, Options{})
	h.Provider.Add(
		llm.ScriptEntry{Text: coderJSON("slugify.py", "\"\"\"Slug helpers.\"\"\"\n\n\ndef slugify(s):\n    return s.lower().replace(\" \", \"-\")\n")},
		llm.ScriptEntry{Text: coderJSON("tests/test_slugify.py", "\"\"\"Slug tests.\"\"\"\n\n\ndef test_truth():\n    assert 1 + 1 == 2\n")},
	)

	taskID := h.CreateTask(t, map[string]any{
		"description": "Create slugify.py with a slugify function",
		"mode":        "small_code",
	})

	h.WaitForStatus(t, taskID, "completed", 10*time.Second)

	types := h.EventTypes(t, taskID)
	assert.Contains(t, types, events.TypeReviewStarted)
	assert.Contains(t, types, events.TypeReviewResult)

	// The review report is persisted as an artifact.
	status, body := h.Do(t, http.MethodGet, "/api/tasks/"+taskID+"/artifacts?kind=review_report", nil)
	require.Equal(t, http.StatusOK, status)
	artifacts, ok := body["artifacts"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, artifacts)
}
