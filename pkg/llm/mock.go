package llm

import (
	"context"
	"sync"
)

// ScriptEntry is one scripted mock response. Exactly one of Text or Err
// should be set.
type ScriptEntry struct {
	Text         string
	FinishReason string // defaults to "stop"
	Usage        Usage  // zero value gets a deterministic estimate
	Err          error
}

// MockProvider is the deterministic provider used for tests and
// unconfigured environments. Responses are consumed from the script in
// order; when the script is exhausted it falls back to a canned empty
// files object so pipelines terminate instead of hanging.
type MockProvider struct {
	mu       sync.Mutex
	script   []ScriptEntry
	index    int
	captured []Request
}

// NewMockProvider creates an empty-script mock.
func NewMockProvider(entries ...ScriptEntry) *MockProvider {
	return &MockProvider{script: entries}
}

// Name implements Provider.
func (m *MockProvider) Name() string { return "mock" }

// Add appends entries to the script.
func (m *MockProvider) Add(entries ...ScriptEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, entries...)
}

// Captured returns every request seen so far.
func (m *MockProvider) Captured() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.captured...)
}

// CallCount returns the number of Complete calls.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.captured)
}

// Complete implements Provider deterministically.
func (m *MockProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.captured = append(m.captured, req)
	var entry ScriptEntry
	if m.index < len(m.script) {
		entry = m.script[m.index]
		m.index++
	} else {
		entry = ScriptEntry{Text: `{"files":[]}`}
	}
	m.mu.Unlock()

	if entry.Err != nil {
		return nil, entry.Err
	}

	usage := entry.Usage
	if usage == (Usage{}) {
		usage = estimateUsage(req, entry.Text)
	}
	finish := entry.FinishReason
	if finish == "" {
		finish = FinishStop
	}
	return &Response{Text: entry.Text, Usage: usage, FinishReason: finish}, nil
}

// estimateUsage derives stable token counts from byte lengths so tests
// can assert exact budget arithmetic.
func estimateUsage(req Request, text string) Usage {
	var in int
	for _, msg := range req.Messages {
		in += len(msg.Content)
	}
	u := Usage{InputTokens: in / 4, OutputTokens: len(text) / 4}
	u.TotalTokens = u.InputTokens + u.OutputTokens
	return u
}
