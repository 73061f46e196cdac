package e2e

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/forgeproject/forge/pkg/config"
	"github.com/forgeproject/forge/pkg/llm"
)

// gatedProvider blocks every completion until released and tracks the
// peak number of in-flight calls.
type gatedProvider struct {
	release chan struct{}

	mu       sync.Mutex
	inFlight int
	peak     int
	calls    int
}

func newGatedProvider() *gatedProvider {
	return &gatedProvider{release: make(chan struct{})}
}

func (p *gatedProvider) Name() string { return "gated" }

func (p *gatedProvider) Complete(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	p.mu.Lock()
	p.inFlight++
	p.calls++
	if p.inFlight > p.peak {
		p.peak = p.inFlight
	}
	n := p.calls
	p.mu.Unlock()

	select {
	case <-p.release:
	case <-ctx.Done():
		p.mu.Lock()
		p.inFlight--
		p.mu.Unlock()
		return nil, ctx.Err()
	}

	p.mu.Lock()
	p.inFlight--
	p.mu.Unlock()

	return &llm.Response{
		Text:         coderJSON(fmt.Sprintf("module_%d.py", n), "VALUE = 1\n"),
		FinishReason: llm.FinishStop,
		Usage:        llm.Usage{InputTokens: 10, OutputTokens: 10, TotalTokens: 20},
	}, nil
}

func (p *gatedProvider) Peak() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.peak
}

func TestGovernor_EnforcesConcurrencyBound(t *testing.T) {
	provider := newGatedProvider()
	h := NewHarness(t, Options{
		Provider: provider,
		MutateConfig: func(cfg *config.Config) {
			cfg.Governor.MaxConcurrentTasks = 2
		},
	})

	ids := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		ids = append(ids, h.CreateTask(t, map[string]any{
			"description": fmt.Sprintf("Create module_%d.py with a constant", i),
			"mode":        "micro_file",
		}))
	}

	// Let the governor claim up to its bound, then open the gate.
	time.Sleep(300 * time.Millisecond)
	close(provider.release)

	for _, id := range ids {
		h.WaitForStatus(t, id, "completed", 15*time.Second)
	}

	assert.LessOrEqual(t, provider.Peak(), 2, "no more than two tasks may run at once")
	assert.GreaterOrEqual(t, provider.Peak(), 2, "both slots should have been used")
}
