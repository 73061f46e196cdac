// Package roles implements the LLM roles of the pipeline: researcher,
// designer, coder, reviewer, and the deterministic planner. Each role
// is a function over the Container plus the LLM gateway; all Container
// mutation happens through the role that is currently active.
package roles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/forgeproject/forge/pkg/config"
	"github.com/forgeproject/forge/pkg/contract"
	"github.com/forgeproject/forge/pkg/llm"
)

// LLM is the completion surface roles depend on. The orchestrator
// passes a budget-metered wrapper around the gateway.
type LLM interface {
	Complete(ctx context.Context, req llm.Request) (*llm.Response, error)
}

// ErrUnparsableResponse is returned when a model response cannot be
// turned into the expected document even after a repair attempt.
var ErrUnparsableResponse = errors.New("llm response could not be parsed")

// SubTask is one scheduler-selected unit of coder work.
type SubTask struct {
	Type         string   `json:"type"` // "create_file" or "write_tests"
	Component    string   `json:"component,omitempty"`
	File         string   `json:"file"`
	Description  string   `json:"description"`
	AllowedPaths []string `json:"allowed_paths,omitempty"`
}

// Sub-task types.
const (
	TaskCreateFile = "create_file"
	TaskWriteTests = "write_tests"
)

// promptSpec carries the common knobs each role call needs.
type promptSpec struct {
	rules       config.RoleRules
	model       string
	temperature float64
	maxTokens   int
}

func (p promptSpec) request(system, user string, jsonMode bool) llm.Request {
	temp := p.temperature
	if p.rules.Temperature != nil {
		temp = *p.rules.Temperature
	}
	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: system},
			{Role: llm.RoleUser, Content: user},
		},
		Model:       p.model,
		Temperature: temp,
		MaxTokens:   p.maxTokens,
	}
	if jsonMode {
		req.ResponseFormat = llm.ResponseFormatJSON
	}
	return req
}

// systemPrompt renders the role's system prompt plus its numbered rules.
func systemPrompt(rules config.RoleRules) string {
	var b strings.Builder
	b.WriteString(rules.SystemPrompt)
	if len(rules.Rules) > 0 {
		b.WriteString("\n\nRules:")
		for i, rule := range rules.Rules {
			fmt.Fprintf(&b, "\n%d. %s", i+1, rule)
		}
	}
	return b.String()
}

// decodeDocument extracts the first JSON object from a model response
// and unmarshals it into out. Fences and surrounding prose are
// tolerated for the non-coder roles.
func decodeDocument(text string, out any) error {
	obj, err := contract.ExtractJSONObject(text)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnparsableResponse, err)
	}
	if err := json.Unmarshal([]byte(obj), out); err != nil {
		return fmt.Errorf("%w: %v", ErrUnparsableResponse, err)
	}
	return nil
}

// markdownList renders items as a markdown bullet list.
func markdownList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	return b.String()
}
