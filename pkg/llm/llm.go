// Package llm provides the provider abstraction over chat-completion
// backends: a real HTTP client for OpenAI-compatible APIs and a scripted
// mock for tests and unconfigured environments. The Gateway wraps a
// provider with retry/backoff and the JSON response-format handshake.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Finish reasons reported by providers.
const (
	FinishStop   = "stop"
	FinishLength = "length"
)

// ResponseFormatJSON requests a JSON-object response from providers that
// support it.
const ResponseFormatJSON = "json_object"

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is one chat-completion call.
type Request struct {
	Messages       []Message
	Model          string
	Temperature    float64
	MaxTokens      int
	ResponseFormat string // "" or ResponseFormatJSON
}

// Usage is the provider-reported token accounting, returned verbatim so
// the orchestrator can attribute spend to stages.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Response is one chat-completion result.
type Response struct {
	Text         string
	Usage        Usage
	FinishReason string
}

// Provider is a chat-completion backend.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req Request) (*Response, error)
}

// GatewayConfig tunes the retry loop.
type GatewayConfig struct {
	MaxRetries  int           // retries on retryable errors (not counting the first attempt)
	BackoffBase time.Duration // first backoff; doubles each retry
	Model       string        // default model when the request leaves it empty
	Temperature float64
	MaxTokens   int
}

// DefaultGatewayConfig returns the built-in gateway defaults.
func DefaultGatewayConfig() GatewayConfig {
	return GatewayConfig{
		MaxRetries:  3,
		BackoffBase: time.Second,
		MaxTokens:   4096,
		Temperature: 0.2,
	}
}

// Gateway wraps a Provider with retry/backoff and the JSON-mode
// truncation handshake.
type Gateway struct {
	provider Provider
	cfg      GatewayConfig
}

// NewGateway creates a Gateway over a provider.
func NewGateway(provider Provider, cfg GatewayConfig) *Gateway {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = time.Second
	}
	return &Gateway{provider: provider, cfg: cfg}
}

// Provider returns the wrapped provider's name.
func (g *Gateway) Provider() string { return g.provider.Name() }

// Complete runs one chat-completion call with retry on retryable
// transport errors (exponential backoff: base, 2×base, 4×base, …).
// When the caller requires JSON and the provider stops at the token
// limit, the call is re-issued once with doubled max_tokens before
// ErrOutputTruncated is returned.
func (g *Gateway) Complete(ctx context.Context, req Request) (*Response, error) {
	if req.Model == "" {
		req.Model = g.cfg.Model
	}
	if req.MaxTokens <= 0 {
		req.MaxTokens = g.cfg.MaxTokens
	}
	if req.Temperature == 0 {
		req.Temperature = g.cfg.Temperature
	}

	resp, err := g.completeWithRetry(ctx, req)
	if err != nil {
		return nil, err
	}

	if req.ResponseFormat == ResponseFormatJSON && resp.FinishReason == FinishLength {
		slog.Warn("LLM response truncated, retrying with doubled max_tokens",
			"provider", g.provider.Name(), "max_tokens", req.MaxTokens)
		retryReq := req
		retryReq.MaxTokens = req.MaxTokens * 2
		retryResp, retryErr := g.completeWithRetry(ctx, retryReq)
		if retryErr != nil {
			return nil, retryErr
		}
		if retryResp.FinishReason == FinishLength {
			return nil, fmt.Errorf("%w (max_tokens=%d)", ErrOutputTruncated, retryReq.MaxTokens)
		}
		return retryResp, nil
	}

	return resp, nil
}

func (g *Gateway) completeWithRetry(ctx context.Context, req Request) (*Response, error) {
	backoff := g.cfg.BackoffBase
	var lastErr error

	for attempt := 0; attempt <= g.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			wait := backoff
			var pe *ProviderError
			if errors.As(lastErr, &pe) && pe.RetryAfter != nil && *pe.RetryAfter > wait {
				wait = *pe.RetryAfter
			}
			slog.Debug("Retrying LLM call",
				"provider", g.provider.Name(), "attempt", attempt, "wait", wait)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
			backoff *= 2
		}

		resp, err := g.provider.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}
		if !Retryable(err) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("llm call failed after %d retries: %w", g.cfg.MaxRetries, lastErr)
}
