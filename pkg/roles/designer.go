package roles

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/forgeproject/forge/pkg/config"
	"github.com/forgeproject/forge/pkg/container"
	"github.com/forgeproject/forge/pkg/llm"
)

// Designer turns requirements into the target architecture the coder
// and reviewer work against.
type Designer struct {
	llm  LLM
	spec promptSpec
}

// NewDesigner builds the designer role from the codex rules.
func NewDesigner(gw LLM, rules config.RoleRules, llmCfg config.LLMConfig) *Designer {
	return &Designer{
		llm: gw,
		spec: promptSpec{
			rules:       rules,
			model:       llmCfg.Model,
			temperature: llmCfg.Temperature,
			maxTokens:   llmCfg.MaxTokens,
		},
	}
}

// DesignResult is the designer's outcome.
type DesignResult struct {
	Doc   *container.ArchitectureDoc
	Usage llm.Usage
}

// Execute produces the architecture artifact, sets the Container's
// target architecture, and writes architecture.md and
// implementation_plan.md.
func (d *Designer) Execute(ctx context.Context, c *container.Container) (*DesignResult, error) {
	rc := c.RelevantContextFor(container.RoleDesigner)
	user := buildDesignPrompt(c.CurrentTask(), rc.Requirements)

	resp, err := d.llm.Complete(ctx, d.spec.request(systemPrompt(d.spec.rules), user, false))
	if err != nil {
		return nil, fmt.Errorf("designer: %w", err)
	}

	var doc container.ArchitectureDoc
	if err := decodeDocument(resp.Text, &doc); err != nil {
		return nil, fmt.Errorf("designer: %w", err)
	}
	if len(doc.Components) == 0 {
		return nil, fmt.Errorf("designer: %w: architecture has no components", ErrUnparsableResponse)
	}
	for _, comp := range doc.Components {
		for _, f := range comp.Files {
			if _, err := container.NormalizePath(f); err != nil {
				return nil, fmt.Errorf("designer: component %s: %w", comp.Name, err)
			}
		}
	}

	c.SetTargetArchitecture(&doc)
	c.AddArtifact(&doc, container.RoleDesigner)
	if err := c.AddFile("architecture.md", renderArchitectureMarkdown(&doc)); err != nil {
		return nil, fmt.Errorf("designer: %w", err)
	}
	if err := c.AddFile("implementation_plan.md", renderPlanMarkdown(&doc)); err != nil {
		return nil, fmt.Errorf("designer: %w", err)
	}

	return &DesignResult{Doc: &doc, Usage: resp.Usage}, nil
}

func buildDesignPrompt(task string, req *container.RequirementsDoc) string {
	var b strings.Builder
	b.WriteString("Task description:\n")
	b.WriteString(task)
	if req != nil {
		b.WriteString("\n\nRequirements:\n")
		if data, err := json.MarshalIndent(req, "", "  "); err == nil {
			b.Write(data)
		}
	}
	b.WriteString("\n\nRespond with a JSON object: {\"overview\": string, " +
		"\"components\": [{\"name\": string, \"description\": string, \"files\": [string]}], " +
		"\"api_endpoints\": [{\"method\": string, \"path\": string, \"description\": string}], " +
		"\"data_model\": object}. File paths are relative POSIX paths.")
	return b.String()
}

func renderArchitectureMarkdown(doc *container.ArchitectureDoc) []byte {
	var b strings.Builder
	b.WriteString("# Architecture\n\n")
	if doc.Overview != "" {
		b.WriteString(doc.Overview)
		b.WriteString("\n\n")
	}
	b.WriteString("## Components\n\n")
	for _, comp := range doc.Components {
		fmt.Fprintf(&b, "### %s\n\n", comp.Name)
		if comp.Description != "" {
			b.WriteString(comp.Description)
			b.WriteString("\n\n")
		}
		b.WriteString(markdownList(comp.Files))
		b.WriteString("\n")
	}
	if len(doc.APIEndpoints) > 0 {
		b.WriteString("## API\n\n")
		for _, ep := range doc.APIEndpoints {
			fmt.Fprintf(&b, "- `%s %s` %s\n", ep.Method, ep.Path, ep.Description)
		}
	}
	return []byte(b.String())
}

func renderPlanMarkdown(doc *container.ArchitectureDoc) []byte {
	var b strings.Builder
	b.WriteString("# Implementation plan\n\n")
	step := 1
	for _, comp := range doc.Components {
		for _, f := range comp.Files {
			fmt.Fprintf(&b, "%d. %s: create `%s`\n", step, comp.Name, f)
			step++
		}
	}
	return []byte(b.String())
}
