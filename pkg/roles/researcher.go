package roles

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgeproject/forge/pkg/config"
	"github.com/forgeproject/forge/pkg/container"
	"github.com/forgeproject/forge/pkg/llm"
)

// Researcher turns the raw task description into structured
// requirements. When the description is too ambiguous it returns
// clarification questions instead of a finished document, and the
// orchestrator pauses the task.
type Researcher struct {
	llm  LLM
	spec promptSpec
}

// NewResearcher builds the researcher role from the codex rules.
func NewResearcher(gw LLM, rules config.RoleRules, llmCfg config.LLMConfig) *Researcher {
	return &Researcher{
		llm: gw,
		spec: promptSpec{
			rules:       rules,
			model:       llmCfg.Model,
			temperature: llmCfg.Temperature,
			maxTokens:   llmCfg.MaxTokens,
		},
	}
}

// ResearchResult is the researcher's outcome. Exactly one of Doc or
// Questions is meaningful: questions mean the task needs user input.
type ResearchResult struct {
	Doc       *container.RequirementsDoc
	Questions *container.ClarificationQuestions
	Usage     llm.Usage
}

// researchResponse is the JSON shape the researcher prompt asks for.
type researchResponse struct {
	Summary                string                            `json:"summary"`
	Requirements           []string                          `json:"requirements"`
	UserStories            []string                          `json:"user_stories"`
	OpenQuestions          []string                          `json:"open_questions"`
	ClarificationQuestions []container.ClarificationQuestion `json:"clarification_questions"`
}

// Execute analyzes the task and appends the requirements artifact plus
// requirements.md and user_stories.md. Provided answers from an earlier
// clarification round are threaded into the prompt.
func (r *Researcher) Execute(ctx context.Context, c *container.Container, answers map[string]string) (*ResearchResult, error) {
	user := buildResearchPrompt(c.CurrentTask(), answers)

	resp, err := r.llm.Complete(ctx, r.spec.request(systemPrompt(r.spec.rules), user, false))
	if err != nil {
		return nil, fmt.Errorf("researcher: %w", err)
	}

	var doc researchResponse
	if err := decodeDocument(resp.Text, &doc); err != nil {
		return nil, fmt.Errorf("researcher: %w", err)
	}

	// Required clarification questions pause the pipeline. Questions
	// become moot once the user has already answered a round.
	if len(answers) == 0 {
		if qs := requiredQuestions(doc.ClarificationQuestions); len(qs) > 0 {
			payload := &container.ClarificationQuestions{Questions: qs}
			c.AddArtifact(payload, container.RoleResearcher)
			return &ResearchResult{Questions: payload, Usage: resp.Usage}, nil
		}
	}

	req := &container.RequirementsDoc{
		Summary:       doc.Summary,
		Requirements:  doc.Requirements,
		UserStories:   doc.UserStories,
		OpenQuestions: doc.OpenQuestions,
	}
	if req.Summary == "" && len(req.Requirements) == 0 {
		return nil, fmt.Errorf("researcher: %w: empty requirements document", ErrUnparsableResponse)
	}

	c.AddArtifact(req, container.RoleResearcher)
	if err := c.AddFile("requirements.md", renderRequirementsMarkdown(req)); err != nil {
		return nil, fmt.Errorf("researcher: %w", err)
	}
	if len(req.UserStories) > 0 {
		if err := c.AddFile("user_stories.md", renderUserStoriesMarkdown(req)); err != nil {
			return nil, fmt.Errorf("researcher: %w", err)
		}
	}

	return &ResearchResult{Doc: req, Usage: resp.Usage}, nil
}

func buildResearchPrompt(task string, answers map[string]string) string {
	var b strings.Builder
	b.WriteString("Task description:\n")
	b.WriteString(task)
	if len(answers) > 0 {
		b.WriteString("\n\nThe user answered earlier clarification questions:\n")
		for id, answer := range answers {
			fmt.Fprintf(&b, "- %s: %s\n", id, answer)
		}
	}
	b.WriteString("\n\nRespond with a JSON object: {\"summary\": string, \"requirements\": [string], " +
		"\"user_stories\": [string], \"open_questions\": [string], " +
		"\"clarification_questions\": [{\"id\": string, \"text\": string, \"type\": \"text\"|\"choice\", " +
		"\"choices\": [string], \"required\": bool, \"rationale\": string}]}. " +
		"Leave clarification_questions empty unless an answer would change the design.")
	return b.String()
}

// requiredQuestions filters to questions that block progress and fills
// in missing IDs.
func requiredQuestions(qs []container.ClarificationQuestion) []container.ClarificationQuestion {
	var out []container.ClarificationQuestion
	for i, q := range qs {
		if !q.Required {
			continue
		}
		if q.ID == "" {
			q.ID = fmt.Sprintf("q%d", i+1)
		}
		if q.Type == "" {
			q.Type = "text"
		}
		out = append(out, q)
	}
	return out
}

func renderRequirementsMarkdown(doc *container.RequirementsDoc) []byte {
	var b strings.Builder
	b.WriteString("# Requirements\n\n")
	if doc.Summary != "" {
		b.WriteString(doc.Summary)
		b.WriteString("\n\n")
	}
	b.WriteString(markdownList(doc.Requirements))
	if len(doc.OpenQuestions) > 0 {
		b.WriteString("\n## Open questions\n\n")
		b.WriteString(markdownList(doc.OpenQuestions))
	}
	return []byte(b.String())
}

func renderUserStoriesMarkdown(doc *container.RequirementsDoc) []byte {
	var b strings.Builder
	b.WriteString("# User stories\n\n")
	b.WriteString(markdownList(doc.UserStories))
	return []byte(b.String())
}
