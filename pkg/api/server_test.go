package api

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeproject/forge/pkg/config"
	"github.com/forgeproject/forge/pkg/container"
	"github.com/forgeproject/forge/pkg/events"
	"github.com/forgeproject/forge/pkg/queue"
	"github.com/forgeproject/forge/pkg/store"
	"github.com/forgeproject/forge/pkg/store/memstore"
)

const testAPIKey = "test-key"

type apiHarness struct {
	router *gin.Engine
	store  *memstore.Store
	cfg    config.Config
}

func newAPIHarness(t *testing.T, mutate func(*config.Config)) *apiHarness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Workspace.Root = t.TempDir()
	if mutate != nil {
		mutate(&cfg)
	}

	st := memstore.New()
	pub := events.NewPublisher(st, events.NewHub())
	codex := config.BuiltinCodex()
	codexHash, err := codex.Hash()
	require.NoError(t, err)
	templates, err := config.LoadTemplates(t.TempDir())
	require.NoError(t, err)

	limiter := queue.NewRateLimiter(st, cfg.Limits)
	quota := queue.NewQuotaKeeper(st, cfg.Limits)

	srv := NewServer(cfg, st, nil, limiter, quota, templates, codex, codexHash, pub)
	return &apiHarness{router: srv.Router(), store: st, cfg: cfg}
}

func (h *apiHarness) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("X-API-Key", testAPIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (h *apiHarness) seedTask(t *testing.T, status store.TaskStatus, mutate func(*store.Task)) *store.Task {
	t.Helper()
	task := &store.Task{
		ID:           uuid.New().String(),
		OwnerKeyHash: HashAPIKey(testAPIKey),
		Description:  "seeded task",
		Status:       status,
	}
	if mutate != nil {
		mutate(task)
	}
	require.NoError(t, h.store.CreateTask(context.Background(), task))
	return task
}

func TestHealthEndpoint(t *testing.T) {
	h := newAPIHarness(t, nil)

	rec := h.do(t, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
}

func TestCreateTask_Accepted(t *testing.T) {
	h := newAPIHarness(t, nil)

	rec := h.do(t, http.MethodPost, "/api/tasks", gin.H{"description": "Build a CLI tool"})

	require.Equal(t, http.StatusAccepted, rec.Code)
	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "queued", body["status"])
	assert.Equal(t, "Build a CLI tool", body["description"])

	// The creation event is on the stream.
	taskID := body["id"].(string)
	evRec := h.do(t, http.MethodGet, "/api/tasks/"+taskID+"/events", nil)
	require.Equal(t, http.StatusOK, evRec.Code)
	assert.Contains(t, evRec.Body.String(), "TaskCreated")
}

func TestCreateTask_RequestIDIsIdempotent(t *testing.T) {
	h := newAPIHarness(t, nil)

	first := h.do(t, http.MethodPost, "/api/tasks", gin.H{
		"description": "Build a CLI tool",
		"request_id":  "req-42",
	})
	require.Equal(t, http.StatusAccepted, first.Code)
	firstID := decodeBody(t, first)["id"]

	second := h.do(t, http.MethodPost, "/api/tasks", gin.H{
		"description": "Build a CLI tool",
		"request_id":  "req-42",
	})
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, firstID, decodeBody(t, second)["id"])
}

func TestCreateTask_Validation(t *testing.T) {
	h := newAPIHarness(t, nil)

	tests := []struct {
		name string
		body gin.H
	}{
		{"empty description", gin.H{"description": "   "}},
		{"missing description", gin.H{}},
		{"unknown mode", gin.H{"description": "x", "mode": "gigantic"}},
		{"unknown template", gin.H{"description": "x", "template_id": "nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := h.do(t, http.MethodPost, "/api/tasks", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAuth_ProductionRequiresAppKey(t *testing.T) {
	h := newAPIHarness(t, func(cfg *config.Config) {
		cfg.Environment = "production"
		cfg.AppAPIKey = "app-secret"
	})

	req := httptest.NewRequest(http.MethodGet, "/api/templates", nil)
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/templates", nil)
	req.Header.Set("X-API-Key", "wrong-key")
	rec = httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/templates", nil)
	req.Header.Set("Authorization", "Bearer app-secret")
	rec = httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetTask_ForeignTaskReadsAsNotFound(t *testing.T) {
	h := newAPIHarness(t, nil)
	foreign := h.seedTask(t, store.StatusCompleted, func(task *store.Task) {
		task.OwnerKeyHash = HashAPIKey("someone-else")
	})

	rec := h.do(t, http.MethodGet, "/api/tasks/"+foreign.ID, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, rec.Body.String(), foreign.ID)
}

func TestProvideInput_RejectsMissingRequiredAnswers(t *testing.T) {
	h := newAPIHarness(t, nil)
	questions, err := json.Marshal([]container.ClarificationQuestion{
		{ID: "q1", Text: "Which database?", Type: "choice", Choices: []string{"postgres", "sqlite"}, Required: true},
		{ID: "q2", Text: "Anything else?", Type: "text", Required: false},
	})
	require.NoError(t, err)
	task := h.seedTask(t, store.StatusNeedsInput, func(task *store.Task) {
		task.PendingQuestions = questions
		task.ResumeFromStage = "research"
	})

	rec := h.do(t, http.MethodPost, "/api/tasks/"+task.ID+"/input", gin.H{
		"answers": gin.H{"q2": "no"},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "missing_answers", body["error"])
	assert.Equal(t, []any{"q1"}, body["missing"])
}

func TestProvideInput_ReenqueuesTask(t *testing.T) {
	h := newAPIHarness(t, nil)
	questions, err := json.Marshal([]container.ClarificationQuestion{
		{ID: "q1", Text: "Which database?", Type: "choice", Choices: []string{"postgres", "sqlite"}, Required: true},
	})
	require.NoError(t, err)
	task := h.seedTask(t, store.StatusNeedsInput, func(task *store.Task) {
		task.PendingQuestions = questions
		task.ResumeFromStage = "research"
	})

	// A choice answer outside the offered set is rejected.
	rec := h.do(t, http.MethodPost, "/api/tasks/"+task.ID+"/input", gin.H{
		"answers": gin.H{"q1": "mongodb"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(t, http.MethodPost, "/api/tasks/"+task.ID+"/input", gin.H{
		"answers": gin.H{"q1": "postgres"},
	})
	require.Equal(t, http.StatusAccepted, rec.Code)

	updated, err := h.store.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusQueued, updated.Status)
	assert.Equal(t, "research", updated.ResumeFromStage)
	assert.JSONEq(t, `{"q1":"postgres"}`, string(updated.ProvidedAnswers))

	evRec := h.do(t, http.MethodGet, "/api/tasks/"+task.ID+"/events", nil)
	assert.Contains(t, evRec.Body.String(), "clarification_received")
}

func TestProvideInput_AutoResumeFalseKeepsTaskPaused(t *testing.T) {
	h := newAPIHarness(t, nil)
	questions, err := json.Marshal([]container.ClarificationQuestion{
		{ID: "q1", Text: "Which database?", Type: "choice", Choices: []string{"postgres", "sqlite"}, Required: true},
	})
	require.NoError(t, err)
	task := h.seedTask(t, store.StatusNeedsInput, func(task *store.Task) {
		task.PendingQuestions = questions
		task.ResumeFromStage = "research"
	})

	rec := h.do(t, http.MethodPost, "/api/tasks/"+task.ID+"/input", gin.H{
		"answers":     gin.H{"q1": "postgres"},
		"auto_resume": false,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["auto_resume"])

	updated, err := h.store.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusNeedsInput, updated.Status)
	assert.JSONEq(t, `{"q1":"postgres"}`, string(updated.ProvidedAnswers))

	// The recorded answers satisfy the later explicit resume.
	rec = h.do(t, http.MethodPost, "/api/tasks/"+task.ID+"/resume", nil)
	require.Equal(t, http.StatusAccepted, rec.Code)
	updated, err = h.store.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusQueued, updated.Status)
}

func TestResumeTask_NeedsInputRequiresAnswers(t *testing.T) {
	h := newAPIHarness(t, nil)
	questions, err := json.Marshal([]container.ClarificationQuestion{
		{ID: "q1", Text: "Which database?", Type: "choice", Choices: []string{"postgres", "sqlite"}, Required: true},
	})
	require.NoError(t, err)
	task := h.seedTask(t, store.StatusNeedsInput, func(task *store.Task) {
		task.PendingQuestions = questions
	})

	rec := h.do(t, http.MethodPost, "/api/tasks/"+task.ID+"/resume", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "missing_answers", body["error"])
	assert.Equal(t, []any{"q1"}, body["missing"])
}

func TestProvideInput_ConflictsWhenNotWaiting(t *testing.T) {
	h := newAPIHarness(t, nil)
	task := h.seedTask(t, store.StatusProcessing, nil)

	rec := h.do(t, http.MethodPost, "/api/tasks/"+task.ID+"/input", gin.H{
		"answers": gin.H{"q1": "x"},
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateTask_RateLimited(t *testing.T) {
	h := newAPIHarness(t, func(cfg *config.Config) {
		cfg.Limits.RateCreateTasksPerMin = 1
	})

	first := h.do(t, http.MethodPost, "/api/tasks", gin.H{"description": "first"})
	require.Equal(t, http.StatusAccepted, first.Code)

	second := h.do(t, http.MethodPost, "/api/tasks", gin.H{"description": "second"})
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
}

func TestDownloadZip_ContainsTaskFiles(t *testing.T) {
	h := newAPIHarness(t, nil)
	task := h.seedTask(t, store.StatusCompleted, nil)
	require.NoError(t, h.store.SaveFiles(context.Background(), task.ID, map[string][]byte{
		"app.py":       []byte("print('hello')\n"),
		"README.md":    []byte("# Demo\n"),
		"pkg/util.py":  []byte("X = 1\n"),
	}))

	rec := h.do(t, http.MethodGet, "/api/tasks/"+task.ID+"/download.zip", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".zip")

	zr, err := zip.NewReader(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 3)
	names := make([]string, 0, 3)
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{"app.py", "README.md", "pkg/util.py"}, names)

	f, err := zr.Open("app.py")
	require.NoError(t, err)
	content, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "print('hello')\n", string(content))
}

func TestGetFile_ServesPersistedContent(t *testing.T) {
	h := newAPIHarness(t, nil)
	task := h.seedTask(t, store.StatusCompleted, nil)
	require.NoError(t, h.store.SaveFiles(context.Background(), task.ID, map[string][]byte{
		"app.py": []byte("print('hello')\n"),
	}))

	rec := h.do(t, http.MethodGet, "/api/tasks/"+task.ID+"/files/app.py", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
	assert.Equal(t, "print('hello')\n", rec.Body.String())

	rec = h.do(t, http.MethodGet, "/api/tasks/"+task.ID+"/files/missing.py", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = h.do(t, http.MethodGet, "/api/tasks/"+task.ID+"/files/..%2Fescape.py", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResumeTask_StatusTransitions(t *testing.T) {
	h := newAPIHarness(t, nil)

	failed := h.seedTask(t, store.StatusFailed, func(task *store.Task) {
		task.FailureReason = "llm_budget_exhausted"
	})
	rec := h.do(t, http.MethodPost, "/api/tasks/"+failed.ID+"/resume", nil)
	require.Equal(t, http.StatusAccepted, rec.Code)
	updated, err := h.store.GetTask(context.Background(), failed.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusQueued, updated.Status)
	assert.Empty(t, updated.FailureReason)

	running := h.seedTask(t, store.StatusProcessing, nil)
	rec = h.do(t, http.MethodPost, "/api/tasks/"+running.ID+"/resume", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	done := h.seedTask(t, store.StatusCompleted, nil)
	rec = h.do(t, http.MethodPost, "/api/tasks/"+done.ID+"/resume", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRerunReview_RequiresPersistedState(t *testing.T) {
	h := newAPIHarness(t, nil)
	task := h.seedTask(t, store.StatusCompleted, nil)

	// No snapshot yet: nothing to re-review.
	rec := h.do(t, http.MethodPost, "/api/tasks/"+task.ID+"/rerun-review", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	require.NoError(t, h.store.SaveSnapshot(context.Background(), task.ID, []byte(`{"project_id":"`+task.ID+`"}`)))

	rec = h.do(t, http.MethodPost, "/api/tasks/"+task.ID+"/rerun-review", nil)
	require.Equal(t, http.StatusAccepted, rec.Code)

	updated, err := h.store.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusQueued, updated.Status)
	assert.Equal(t, "review", updated.ResumeFromStage)
}

func TestListArtifacts_FiltersByKind(t *testing.T) {
	h := newAPIHarness(t, nil)
	task := h.seedTask(t, store.StatusCompleted, nil)
	ctx := context.Background()
	require.NoError(t, h.store.SaveArtifact(ctx, &store.Artifact{
		ID: uuid.New().String(), TaskID: task.ID, Kind: "code", ProducedBy: "coder", Payload: []byte(`{}`),
	}))
	require.NoError(t, h.store.SaveArtifact(ctx, &store.Artifact{
		ID: uuid.New().String(), TaskID: task.ID, Kind: "review_report", ProducedBy: "reviewer", Payload: []byte(`{}`),
	}))

	rec := h.do(t, http.MethodGet, "/api/tasks/"+task.ID+"/artifacts?kind=review_report", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Artifacts []artifactResponse `json:"artifacts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Artifacts, 1)
	assert.Equal(t, "review_report", body.Artifacts[0].Kind)
}

func TestConfigEndpoint_ExposesSafeSubsetOnly(t *testing.T) {
	h := newAPIHarness(t, func(cfg *config.Config) {
		cfg.AppAPIKey = ""
		cfg.LLM.APIKey = "sk-very-secret"
	})

	rec := h.do(t, http.MethodGet, "/api/config", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "sk-very-secret")
	body := decodeBody(t, rec)
	modes, ok := body["modes"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, modes, "project")
	assert.Contains(t, modes, "small_code")
	assert.Contains(t, modes, "micro_file")
}

func TestOpsStatus_ReportsUsage(t *testing.T) {
	h := newAPIHarness(t, nil)

	rec := h.do(t, http.MethodGet, "/ops/status", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	usage, ok := body["usage_today"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 0, usage["tokens_in"])
}

func TestListUserTasks_FiltersByUser(t *testing.T) {
	h := newAPIHarness(t, nil)
	h.seedTask(t, store.StatusQueued, func(task *store.Task) { task.OwnerUserID = "alice" })
	h.seedTask(t, store.StatusQueued, func(task *store.Task) { task.OwnerUserID = "bob" })

	rec := h.do(t, http.MethodGet, "/api/users/alice/tasks", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Tasks []taskResponse `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Tasks, 1)
}
