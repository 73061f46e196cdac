package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultCompletionsPath = "/v1/chat/completions"

// OpenAIConfig configures the OpenAI-compatible HTTP provider. Any
// upstream exposing the chat-completions shape works (OpenAI, vLLM,
// OpenRouter, llama.cpp server, …).
type OpenAIConfig struct {
	Name           string // provider label used in errors and usage records
	APIKey         string
	BaseURL        string
	Path           string // defaults to /v1/chat/completions
	RequestTimeout time.Duration
	ExtraHeaders   map[string]string
}

// OpenAIProvider is the real upstream chat-completion client.
type OpenAIProvider struct {
	cfg    OpenAIConfig
	client *http.Client
}

// NewOpenAIProvider creates the HTTP provider.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if strings.TrimSpace(cfg.Path) == "" {
		cfg.Path = defaultCompletionsPath
	}
	if cfg.Name == "" {
		cfg.Name = "openai"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 2 * time.Minute
	}
	return &OpenAIProvider{
		cfg: cfg,
		// Per-request deadlines come from the context; the client itself
		// stays unbounded so long generations are not cut mid-flight.
		client: &http.Client{Timeout: 0},
	}
}

// Name implements Provider.
func (p *OpenAIProvider) Name() string { return p.cfg.Name }

type chatCompletionsBody struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionsResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type chatCompletionsError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete implements Provider over the chat-completions HTTP shape.
func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	reqCtx, cancel := context.WithTimeout(ctx, p.cfg.RequestTimeout)
	defer cancel()

	body := chatCompletionsBody{
		Model:       req.Model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.ResponseFormat == ResponseFormatJSON {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodPost, p.cfg.BaseURL+p.cfg.Path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building chat request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range p.cfg.ExtraHeaders {
		httpReq.Header.Set(k, v)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, transportError(p.cfg.Name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, transportError(p.cfg.Name, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := upstreamErrorMessage(raw)
		return nil, errorFromStatus(p.cfg.Name, resp.StatusCode, msg, resp.Header)
	}

	var parsed chatCompletionsResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ProviderError{Provider: p.cfg.Name, Message: fmt.Sprintf("unparseable response: %v", err)}
	}
	if len(parsed.Choices) == 0 {
		return nil, &ProviderError{Provider: p.cfg.Name, Message: "response contained no choices"}
	}

	choice := parsed.Choices[0]
	usage := Usage{
		InputTokens:  parsed.Usage.PromptTokens,
		OutputTokens: parsed.Usage.CompletionTokens,
		TotalTokens:  parsed.Usage.TotalTokens,
	}
	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	}

	return &Response{
		Text:         choice.Message.Content,
		Usage:        usage,
		FinishReason: choice.FinishReason,
	}, nil
}

func upstreamErrorMessage(raw []byte) string {
	var e chatCompletionsError
	if err := json.Unmarshal(raw, &e); err == nil && e.Error.Message != "" {
		return e.Error.Message
	}
	s := strings.TrimSpace(string(raw))
	if len(s) > 300 {
		s = s[:300]
	}
	return s
}
