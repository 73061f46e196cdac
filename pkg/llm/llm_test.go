package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGateway(p Provider) *Gateway {
	cfg := DefaultGatewayConfig()
	cfg.BackoffBase = time.Millisecond
	cfg.Model = "test-model"
	return NewGateway(p, cfg)
}

func TestGateway_RetriesRetryableErrors(t *testing.T) {
	mock := NewMockProvider(
		ScriptEntry{Err: &ProviderError{Provider: "mock", StatusCode: 503, Message: "unavailable", Retry: true}},
		ScriptEntry{Err: &ProviderError{Provider: "mock", StatusCode: 429, Message: "slow down", Retry: true}},
		ScriptEntry{Text: "ok"},
	)
	gw := testGateway(mock)

	resp, err := gw.Complete(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, 3, mock.CallCount())
}

func TestGateway_NonRetryableBubblesImmediately(t *testing.T) {
	mock := NewMockProvider(
		ScriptEntry{Err: &ProviderError{Provider: "mock", StatusCode: 401, Message: "bad key"}},
	)
	gw := testGateway(mock)

	_, err := gw.Complete(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	require.Error(t, err)
	assert.Equal(t, 1, mock.CallCount())
}

func TestGateway_ExhaustsRetryBudget(t *testing.T) {
	entry := ScriptEntry{Err: &ProviderError{Provider: "mock", StatusCode: 500, Message: "boom", Retry: true}}
	mock := NewMockProvider(entry, entry, entry, entry, entry)
	gw := testGateway(mock)

	_, err := gw.Complete(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	require.Error(t, err)
	// 1 initial attempt + MaxRetries retries.
	assert.Equal(t, 1+DefaultGatewayConfig().MaxRetries, mock.CallCount())
}

func TestGateway_JSONModeDoublesMaxTokensOnce(t *testing.T) {
	mock := NewMockProvider(
		ScriptEntry{Text: `{"files":`, FinishReason: FinishLength},
		ScriptEntry{Text: `{"files":[]}`},
	)
	gw := testGateway(mock)

	resp, err := gw.Complete(context.Background(), Request{
		Messages:       []Message{{Role: RoleUser, Content: "go"}},
		MaxTokens:      100,
		ResponseFormat: ResponseFormatJSON,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"files":[]}`, resp.Text)

	captured := mock.Captured()
	require.Len(t, captured, 2)
	assert.Equal(t, 100, captured[0].MaxTokens)
	assert.Equal(t, 200, captured[1].MaxTokens)
}

func TestGateway_OutputTruncatedAfterSecondLength(t *testing.T) {
	mock := NewMockProvider(
		ScriptEntry{Text: `{"fi`, FinishReason: FinishLength},
		ScriptEntry{Text: `{"files`, FinishReason: FinishLength},
	)
	gw := testGateway(mock)

	_, err := gw.Complete(context.Background(), Request{
		Messages:       []Message{{Role: RoleUser, Content: "go"}},
		MaxTokens:      64,
		ResponseFormat: ResponseFormatJSON,
	})
	require.ErrorIs(t, err, ErrOutputTruncated)
}

func TestOpenAIProvider_Complete(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": `{"files":[]}`}, "finish_reason": "stop"},
			},
			"usage": map[string]any{"prompt_tokens": 12, "completion_tokens": 5, "total_tokens": 17},
		})
	}))
	defer srv.Close()

	p := NewOpenAIProvider(OpenAIConfig{Name: "upstream", APIKey: "secret", BaseURL: srv.URL})
	resp, err := p.Complete(context.Background(), Request{
		Messages:       []Message{{Role: RoleUser, Content: "hi"}},
		Model:          "gpt-test",
		MaxTokens:      256,
		ResponseFormat: ResponseFormatJSON,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"files":[]}`, resp.Text)
	assert.Equal(t, Usage{InputTokens: 12, OutputTokens: 5, TotalTokens: 17}, resp.Usage)
	assert.Equal(t, FinishStop, resp.FinishReason)

	assert.Equal(t, "gpt-test", gotBody["model"])
	rf, ok := gotBody["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_object", rf["type"])
}

func TestOpenAIProvider_ErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		retryable bool
	}{
		{"rate limited", http.StatusTooManyRequests, true},
		{"server error", http.StatusBadGateway, true},
		{"request timeout", http.StatusRequestTimeout, true},
		{"auth", http.StatusUnauthorized, false},
		{"bad request", http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":{"message":"upstream says no"}}`))
			}))
			defer srv.Close()

			p := NewOpenAIProvider(OpenAIConfig{Name: "upstream", BaseURL: srv.URL})
			_, err := p.Complete(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
			require.Error(t, err)
			assert.Equal(t, tt.retryable, Retryable(err))
			var pe *ProviderError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.status, pe.StatusCode)
			assert.Contains(t, pe.Message, "upstream says no")
		})
	}
}

func TestOpenAIProvider_RetryAfterHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewOpenAIProvider(OpenAIConfig{Name: "upstream", BaseURL: srv.URL})
	_, err := p.Complete(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	require.NotNil(t, pe.RetryAfter)
	assert.Equal(t, 7*time.Second, *pe.RetryAfter)
}

func TestMockProvider_FallbackAfterScript(t *testing.T) {
	mock := NewMockProvider(ScriptEntry{Text: "scripted"})

	r1, err := mock.Complete(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "a"}}})
	require.NoError(t, err)
	assert.Equal(t, "scripted", r1.Text)

	r2, err := mock.Complete(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "b"}}})
	require.NoError(t, err)
	assert.Equal(t, `{"files":[]}`, r2.Text)
}
