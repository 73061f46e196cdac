package llm

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ErrOutputTruncated is returned when the provider stopped at the token
// limit and the one automatic re-request with doubled max_tokens also
// stopped at the limit.
var ErrOutputTruncated = errors.New("llm output truncated at max_tokens")

// ProviderError is a transport or upstream failure. Retryability is
// carried on the error so the gateway's backoff loop can decide without
// inspecting status codes.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
	Retry      bool
	RetryAfter *time.Duration
}

func (e *ProviderError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = "request failed"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (status=%d): %s", e.Provider, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s error: %s", e.Provider, msg)
}

// Retryable reports whether err is a ProviderError the gateway may retry.
func Retryable(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Retry
	}
	return false
}

// errorFromStatus maps an HTTP status to a ProviderError. Timeouts (408),
// rate limits (429), and 5xx are retryable; other 4xx bubble immediately.
func errorFromStatus(provider string, status int, message string, header http.Header) *ProviderError {
	pe := &ProviderError{
		Provider:   provider,
		StatusCode: status,
		Message:    message,
	}
	switch {
	case status == http.StatusRequestTimeout, status == http.StatusTooManyRequests:
		pe.Retry = true
	case status >= 500:
		pe.Retry = true
	}
	if ra := parseRetryAfter(header); ra != nil {
		pe.RetryAfter = ra
	}
	return pe
}

// transportError wraps a network-level failure (connect refused, request
// timeout) as a retryable ProviderError.
func transportError(provider string, err error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Message:  err.Error(),
		Retry:    true,
	}
}

func parseRetryAfter(header http.Header) *time.Duration {
	if header == nil {
		return nil
	}
	v := strings.TrimSpace(header.Get("Retry-After"))
	if v == "" {
		return nil
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		d := time.Duration(secs) * time.Second
		return &d
	}
	return nil
}
