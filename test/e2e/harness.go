// Package e2e exercises the assembled system end to end: real HTTP
// server, real governor, in-memory store, scripted LLM provider.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/forgeproject/forge/pkg/api"
	"github.com/forgeproject/forge/pkg/config"
	"github.com/forgeproject/forge/pkg/events"
	"github.com/forgeproject/forge/pkg/llm"
	"github.com/forgeproject/forge/pkg/orchestrator"
	"github.com/forgeproject/forge/pkg/queue"
	"github.com/forgeproject/forge/pkg/store/memstore"
)

const apiKey = "e2e-key"

// Harness is one fully wired process minus the real LLM and Postgres.
type Harness struct {
	Server   *httptest.Server
	Store    *memstore.Store
	Provider *llm.MockProvider
	Governor *queue.Governor
	Config   config.Config
}

// Options tunes harness construction.
type Options struct {
	MutateConfig func(*config.Config)

	// Provider replaces the default scripted mock. The Harness.Provider
	// field is nil when this is set.
	Provider llm.Provider
}

// NewHarness assembles the stack the way cmd/forge does and starts the
// governor and an HTTP test server. Everything is torn down via t.Cleanup.
func NewHarness(t *testing.T, opts Options) *Harness {
	t.Helper()

	cfg := config.Default()
	cfg.Workspace.Root = t.TempDir()
	cfg.Governor.MaxConcurrentTasks = 2
	cfg.Governor.HeartbeatInterval = 50 * time.Millisecond
	cfg.Governor.OrphanScanInterval = time.Minute
	if opts.MutateConfig != nil {
		opts.MutateConfig(&cfg)
	}

	st := memstore.New()
	pub := events.NewPublisher(st, events.NewHub())
	codex := config.BuiltinCodex()
	codexHash, err := codex.Hash()
	require.NoError(t, err)
	templates, err := config.LoadTemplates(t.TempDir())
	require.NoError(t, err)

	h := &Harness{Store: st, Config: cfg}

	provider := opts.Provider
	if provider == nil {
		h.Provider = llm.NewMockProvider()
		provider = h.Provider
	}
	gateway := llm.NewGateway(provider, llm.GatewayConfig{
		MaxRetries:  cfg.LLM.MaxRetriesPerStep,
		BackoffBase: time.Millisecond,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	})

	quota := queue.NewQuotaKeeper(st, cfg.Limits)
	limiter := queue.NewRateLimiter(st, cfg.Limits)
	orch := orchestrator.New(st, pub, gateway, codex, codexHash, templates, cfg, quota)

	h.Governor = queue.NewGovernor("e2e-worker", st, cfg.Governor, orch)
	require.NoError(t, h.Governor.Start(context.Background()))
	t.Cleanup(h.Governor.Stop)

	server := api.NewServer(cfg, st, h.Governor, limiter, quota, templates, codex, codexHash, pub)
	h.Server = httptest.NewServer(server.Router())
	t.Cleanup(h.Server.Close)

	return h
}

// Do performs one authenticated request against the test server and
// decodes the JSON body.
func (h *Harness) Do(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()
	raw := h.DoRaw(t, method, path, body)
	defer raw.Body.Close()
	data, err := io.ReadAll(raw.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &decoded), "body: %s", data)
	}
	return raw.StatusCode, decoded
}

// DoRaw performs one authenticated request and returns the raw response.
func (h *Harness) DoRaw(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, h.Server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("X-API-Key", apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := h.Server.Client().Do(req)
	require.NoError(t, err)
	return resp
}

// CreateTask posts a task and returns its ID.
func (h *Harness) CreateTask(t *testing.T, body map[string]any) string {
	t.Helper()
	status, decoded := h.Do(t, http.MethodPost, "/api/tasks", body)
	require.Equal(t, http.StatusAccepted, status, "create response: %v", decoded)
	id, _ := decoded["id"].(string)
	require.NotEmpty(t, id)
	return id
}

// WaitForStatus polls the task until it reaches want or the deadline
// passes, and returns the final task body.
func (h *Harness) WaitForStatus(t *testing.T, taskID, want string, timeout time.Duration) map[string]any {
	t.Helper()
	deadline := time.Now().Add(timeout)
	var last map[string]any
	for time.Now().Before(deadline) {
		status, body := h.Do(t, http.MethodGet, "/api/tasks/"+taskID, nil)
		require.Equal(t, http.StatusOK, status)
		last = body
		if body["status"] == want {
			return body
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("task %s never reached status %q; last: %v", taskID, want, last)
	return nil
}

// EventTypes returns the event type sequence for a task.
func (h *Harness) EventTypes(t *testing.T, taskID string) []string {
	t.Helper()
	status, body := h.Do(t, http.MethodGet, "/api/tasks/"+taskID+"/events", nil)
	require.Equal(t, http.StatusOK, status)
	raw, err := json.Marshal(body["events"])
	require.NoError(t, err)
	var envelopes []struct {
		Type string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelopes))
	types := make([]string, 0, len(envelopes))
	for _, e := range envelopes {
		types = append(types, e.Type)
	}
	return types
}

// coderJSON builds one valid implementation response.
func coderJSON(path, content string) string {
	raw, _ := json.Marshal(map[string]any{
		"files": []map[string]string{{"path": path, "content": content}},
	})
	return string(raw)
}
