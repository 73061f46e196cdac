package roles

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/forgeproject/forge/pkg/config"
	"github.com/forgeproject/forge/pkg/container"
	"github.com/forgeproject/forge/pkg/contract"
	"github.com/forgeproject/forge/pkg/llm"
)

// Coder implements one scheduler-selected sub-task: it calls the model
// in JSON mode under the task mode's output contract, writes the
// returned files into the Container, and sanitizes imports that would
// break the reviewer.
type Coder struct {
	llm  LLM
	spec promptSpec
	mode contract.Mode
}

// NewCoder builds the coder role from the codex rules.
func NewCoder(gw LLM, rules config.RoleRules, llmCfg config.LLMConfig, mode contract.Mode) *Coder {
	return &Coder{
		llm: gw,
		spec: promptSpec{
			rules:       rules,
			model:       llmCfg.Model,
			temperature: llmCfg.Temperature,
			maxTokens:   llmCfg.MaxTokens,
		},
		mode: mode,
	}
}

// CodeResult is the coder's outcome for one iteration.
type CodeResult struct {
	Files     []string
	Sanitized []string
	Usage     llm.Usage
	Calls     int
}

// Execute runs one coder iteration. correction carries reviewer
// feedback from a previous rejected iteration and is appended to the
// prompt verbatim. A contract-violating response gets exactly one
// repair round before the iteration fails with ErrUnparsableResponse.
func (co *Coder) Execute(ctx context.Context, c *container.Container, task SubTask, correction string) (*CodeResult, error) {
	ctr := contract.ForMode(co.mode)
	if len(task.AllowedPaths) > 0 {
		ctr.AllowedPaths = task.AllowedPaths
	}

	system := systemPrompt(co.spec.rules)
	user := co.buildPrompt(c, task, ctr, correction)

	result := &CodeResult{}

	resp, err := co.llm.Complete(ctx, co.spec.request(system, user, true))
	if err != nil {
		return nil, fmt.Errorf("coder: %w", err)
	}
	result.Calls++
	result.Usage = addUsage(result.Usage, resp.Usage)

	parsed, err := contract.Validate(ctr, resp.Text)
	if err != nil {
		var violation *contract.ViolationError
		if !errors.As(err, &violation) {
			return nil, fmt.Errorf("coder: %w", err)
		}

		repair := contract.BuildRepairPrompt(ctr, violation.Violations)
		req := co.spec.request(system, user, true)
		req.Messages = append(req.Messages,
			llm.Message{Role: llm.RoleAssistant, Content: resp.Text},
			llm.Message{Role: llm.RoleUser, Content: repair},
		)
		resp, err = co.llm.Complete(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("coder repair: %w", err)
		}
		result.Calls++
		result.Usage = addUsage(result.Usage, resp.Usage)

		parsed, err = contract.Validate(ctr, resp.Text)
		if err != nil {
			return nil, fmt.Errorf("coder: %w after repair: %v", ErrUnparsableResponse, err)
		}
	}

	files := parsed.Files
	if ctr.MaxFilesPerIteration > 0 && len(files) > ctr.MaxFilesPerIteration {
		files = files[:ctr.MaxFilesPerIteration]
	}

	for _, f := range files {
		if err := c.AddFile(f.Path, []byte(f.Content)); err != nil {
			return nil, fmt.Errorf("coder: %w", err)
		}
		normalized, _ := container.NormalizePath(f.Path)
		content, _ := c.File(normalized)
		c.AddArtifact(&container.CodeFile{
			Path:   normalized,
			Size:   len(content),
			SHA256: container.HashBytes(content),
		}, container.RoleCoder)
		result.Files = append(result.Files, normalized)
	}

	sanitized, err := sanitizeImports(c, result.Files)
	if err != nil {
		return nil, fmt.Errorf("coder: %w", err)
	}
	result.Sanitized = sanitized

	c.AddArtifact(&container.UsageReport{
		Stage:       "implementation",
		Calls:       result.Calls,
		TokensIn:    result.Usage.InputTokens,
		TokensOut:   result.Usage.OutputTokens,
		TotalTokens: result.Usage.TotalTokens,
	}, container.RoleCoder)

	return result, nil
}

func (co *Coder) buildPrompt(c *container.Container, task SubTask, ctr contract.OutputContract, correction string) string {
	rc := c.RelevantContextFor(container.RoleCoder)

	var b strings.Builder
	fmt.Fprintf(&b, "Sub-task (%s): %s\n", task.Type, task.Description)
	if task.File != "" {
		fmt.Fprintf(&b, "Target file: %s\n", task.File)
	}
	if task.Component != "" {
		fmt.Fprintf(&b, "Component: %s\n", task.Component)
	}

	if rc.Architecture != nil {
		b.WriteString("\nTarget architecture files:\n")
		b.WriteString(markdownList(rc.Architecture.AllFiles()))
	}
	if len(rc.FilePaths) > 0 {
		b.WriteString("\nExisting files:\n")
		b.WriteString(markdownList(rc.FilePaths))
	}

	b.WriteString("\nRespond with exactly one JSON object: " +
		`{"files": [{"path": string, "content": string}]}. ` +
		"Emit complete file contents. No markdown fences, no prose.")
	if ctr.AllowedFilesCount > 0 {
		fmt.Fprintf(&b, " The files array must contain exactly %d entr%s.",
			ctr.AllowedFilesCount, pluralY(ctr.AllowedFilesCount))
	}
	if len(ctr.AllowedPaths) > 0 {
		fmt.Fprintf(&b, " Only these paths may be written: %s.", strings.Join(ctr.AllowedPaths, ", "))
	}

	if correction != "" {
		b.WriteString("\n\nFeedback on the previous attempt:\n")
		b.WriteString(correction)
	}
	return b.String()
}

// sanitizeImports drops imports of local modules that do not exist in
// the Container. Models routinely hallucinate a package layout (for
// example `from api.routes import x` in a root-layout project), which
// would fail the reviewer's compile check.
func sanitizeImports(c *container.Container, written []string) ([]string, error) {
	present := localModules(c)
	var touched []string

	for _, path := range written {
		if !strings.HasSuffix(path, ".py") {
			continue
		}
		content, ok := c.File(path)
		if !ok {
			continue
		}
		cleaned, changed := dropMissingImports(string(content), present)
		if !changed {
			continue
		}
		if err := c.AddFile(path, []byte(cleaned)); err != nil {
			return nil, err
		}
		touched = append(touched, path)
	}
	sort.Strings(touched)
	return touched, nil
}

// localLayoutRoots are package names models commonly invent for Python
// project layouts. Imports rooted at one of these are local by
// convention, so they are safe to drop when the module is absent.
var localLayoutRoots = map[string]bool{
	"api":      true,
	"app":      true,
	"core":     true,
	"models":   true,
	"routes":   true,
	"routers":  true,
	"schemas":  true,
	"services": true,
	"src":      true,
}

// localModules returns the set of top-level module names the Container
// actually provides: bare .py files and top-level directories.
func localModules(c *container.Container) map[string]bool {
	present := make(map[string]bool)
	for _, p := range c.FilePaths() {
		if idx := strings.IndexByte(p, '/'); idx > 0 {
			present[p[:idx]] = true
		} else {
			present[strings.TrimSuffix(p, ".py")] = true
		}
	}
	return present
}

func dropMissingImports(content string, present map[string]bool) (string, bool) {
	lines := strings.Split(content, "\n")
	kept := lines[:0]
	changed := false

	for _, line := range lines {
		root := importRoot(line)
		if root != "" && localLayoutRoots[root] && !present[root] {
			changed = true
			continue
		}
		kept = append(kept, line)
	}
	if !changed {
		return content, false
	}
	return strings.Join(kept, "\n"), true
}

// importRoot returns the first dotted segment of an import statement,
// or "" for non-import lines.
func importRoot(line string) string {
	trimmed := strings.TrimSpace(line)
	var rest string
	switch {
	case strings.HasPrefix(trimmed, "from "):
		rest = strings.TrimPrefix(trimmed, "from ")
	case strings.HasPrefix(trimmed, "import "):
		rest = strings.TrimPrefix(trimmed, "import ")
	default:
		return ""
	}
	rest = strings.TrimSpace(rest)
	end := strings.IndexFunc(rest, func(r rune) bool {
		return r == '.' || r == ' ' || r == ',' || r == ';'
	})
	if end == -1 {
		return rest
	}
	return rest[:end]
}

func addUsage(a, b llm.Usage) llm.Usage {
	return llm.Usage{
		InputTokens:  a.InputTokens + b.InputTokens,
		OutputTokens: a.OutputTokens + b.OutputTokens,
		TotalTokens:  a.TotalTokens + b.TotalTokens,
	}
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
