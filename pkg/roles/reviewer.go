package roles

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgeproject/forge/pkg/config"
	"github.com/forgeproject/forge/pkg/container"
	"github.com/forgeproject/forge/pkg/sandbox"
)

// CommandRunner is the sandboxed execution surface the reviewer uses
// for its dynamic checks.
type CommandRunner interface {
	Run(ctx context.Context, spec sandbox.Spec) sandbox.Result
}

// maxToolFindings caps how many findings one tool run contributes, so a
// single broken file cannot flood the report.
const maxToolFindings = 50

// Reviewer checks the Container against the requirements: static lint
// over every Python file, template guarantees, architecture compliance,
// and tool runs (ruff, compileall, pytest) in the task workspace.
type Reviewer struct {
	runner   CommandRunner
	dir      string // task directory relative to the workspace root
	template *config.Template
}

// NewReviewer builds the reviewer. A nil runner skips the dynamic
// checks, which only happens in unit tests.
func NewReviewer(runner CommandRunner, taskDir string, tmpl *config.Template) *Reviewer {
	return &Reviewer{runner: runner, dir: taskDir, template: tmpl}
}

// Execute reviews the Container and appends the review_report
// artifact. final marks the post-loop verdict that completes the task.
func (r *Reviewer) Execute(ctx context.Context, c *container.Container, final bool) (*container.ReviewReport, error) {
	report := &container.ReviewReport{Final: final}

	r.staticChecks(c, report)
	r.templateChecks(c, report)
	r.architectureChecks(c, report)
	if r.runner != nil {
		r.toolChecks(ctx, c, report)
	}

	switch {
	case len(report.Issues) > 0:
		report.Status = "rejected"
	case len(report.Warnings) > 0:
		report.Status = "approved_with_warnings"
		report.Passed = true
	default:
		report.Status = "approved"
		report.Passed = true
	}

	c.AddArtifact(report, container.RoleReviewer)
	return report, nil
}

// staticChecks flags long lines and missing module docstrings in every
// Python file.
func (r *Reviewer) staticChecks(c *container.Container, report *container.ReviewReport) {
	for _, path := range c.FilePaths() {
		if !strings.HasSuffix(path, ".py") {
			continue
		}
		content, _ := c.File(path)
		text := string(content)

		for i, line := range strings.Split(text, "\n") {
			if len(line) > 120 {
				report.Warnings = append(report.Warnings, container.ReviewIssue{
					Severity: "warning",
					Path:     path,
					Line:     i + 1,
					Message:  fmt.Sprintf("line exceeds 120 characters (%d)", len(line)),
				})
			}
		}

		if !hasModuleDocstring(text) {
			report.Warnings = append(report.Warnings, container.ReviewIssue{
				Severity: "warning",
				Path:     path,
				Line:     1,
				Message:  "missing module docstring",
			})
		}
	}
}

// templateChecks enforces the guarantees the task's template declares.
func (r *Reviewer) templateChecks(c *container.Container, report *container.ReviewReport) {
	if r.template == nil {
		return
	}
	checks := r.template.Checks

	for _, required := range checks.RequireFiles {
		if _, ok := c.File(required); !ok {
			report.Issues = append(report.Issues, container.ReviewIssue{
				Severity: "error",
				Path:     required,
				Message:  fmt.Sprintf("template %s requires file %s", r.template.ID, required),
			})
		}
	}

	if len(checks.RequirementsMustContain) > 0 {
		content, ok := c.File("requirements.txt")
		if !ok {
			report.Issues = append(report.Issues, container.ReviewIssue{
				Severity: "error",
				Path:     "requirements.txt",
				Message:  "template declares dependencies but requirements.txt is missing",
			})
		} else {
			for _, dep := range checks.RequirementsSatisfied(string(content)) {
				report.Issues = append(report.Issues, container.ReviewIssue{
					Severity: "error",
					Path:     "requirements.txt",
					Message:  fmt.Sprintf("missing declared dependency %q", dep),
				})
			}
		}
	}

	if checks.RequireHealthEndpoint && !hasHealthEndpoint(c) {
		report.Issues = append(report.Issues, container.ReviewIssue{
			Severity: "error",
			Message:  "template requires a /health endpoint but none was found",
		})
	}
}

// architectureChecks verifies every file the design declares exists.
func (r *Reviewer) architectureChecks(c *container.Container, report *container.ReviewReport) {
	arch := c.TargetArchitecture()
	if arch == nil {
		return
	}
	for _, comp := range arch.Components {
		for _, declared := range comp.Files {
			if _, ok := c.File(declared); !ok {
				report.Issues = append(report.Issues, container.ReviewIssue{
					Severity: "error",
					Path:     declared,
					Message:  fmt.Sprintf("file declared by component %s was never created", comp.Name),
				})
			}
		}
	}
}

// toolChecks runs the review tooling in the task workspace and absorbs
// the results. Every run is recorded as a command_log artifact.
func (r *Reviewer) toolChecks(ctx context.Context, c *container.Container, report *container.ReviewReport) {
	runs := []struct {
		argv    []string
		purpose string
		absorb  func(sandbox.Result, *container.ReviewReport)
	}{
		{[]string{"ruff", "check", "."}, "lint", absorbRuff},
		{[]string{"python", "-m", "compileall", "-q", "."}, "syntax_check", absorbCompile},
		{[]string{"pytest", "-q"}, "tests", absorbPytest},
	}

	for _, run := range runs {
		res := r.runner.Run(ctx, sandbox.Spec{
			Command: run.argv,
			Dir:     r.dir,
			Purpose: run.purpose,
		})
		c.AddArtifact(res.CommandLog(), container.RoleReviewer)
		report.RunIDs = append(report.RunIDs, res.RunID)
		report.Tools = append(report.Tools, *res.CommandLog())

		switch {
		case res.Error == "command_not_found":
			report.Warnings = append(report.Warnings, container.ReviewIssue{
				Severity: "warning",
				Message:  fmt.Sprintf("%s unavailable: %s not installed", run.purpose, res.Command[0]),
			})
		case res.Blocked:
			report.Issues = append(report.Issues, container.ReviewIssue{
				Severity: "error",
				Message:  fmt.Sprintf("%s blocked: %s", run.purpose, res.Error),
			})
		case res.TimedOut:
			report.Issues = append(report.Issues, container.ReviewIssue{
				Severity: "error",
				Message:  fmt.Sprintf("%s timed out", run.purpose),
			})
		default:
			run.absorb(res, report)
		}
	}
}

func absorbRuff(res sandbox.Result, report *container.ReviewReport) {
	if res.ExitCode == 0 {
		return
	}
	findings := 0
	for _, line := range strings.Split(res.Stdout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "Found ") {
			continue
		}
		if findings >= maxToolFindings {
			break
		}
		report.Issues = append(report.Issues, container.ReviewIssue{
			Severity: "error",
			Message:  "ruff: " + line,
		})
		findings++
	}
	if findings == 0 {
		report.Issues = append(report.Issues, container.ReviewIssue{
			Severity: "error",
			Message:  fmt.Sprintf("ruff check failed with exit code %d", res.ExitCode),
		})
	}
}

func absorbCompile(res sandbox.Result, report *container.ReviewReport) {
	if res.ExitCode == 0 {
		return
	}
	detail := strings.TrimSpace(res.Stderr)
	if detail == "" {
		detail = strings.TrimSpace(res.Stdout)
	}
	report.Issues = append(report.Issues, container.ReviewIssue{
		Severity: "error",
		Message:  "syntax check failed: " + firstLines(detail, 5),
	})
}

func absorbPytest(res sandbox.Result, report *container.ReviewReport) {
	switch res.ExitCode {
	case 0:
	case 5:
		// pytest exit 5: no tests were collected.
		report.Warnings = append(report.Warnings, container.ReviewIssue{
			Severity: "warning",
			Message:  "no tests collected",
		})
	default:
		report.Issues = append(report.Issues, container.ReviewIssue{
			Severity: "error",
			Message:  fmt.Sprintf("pytest failed (exit %d): %s", res.ExitCode, firstLines(res.Stdout, 10)),
		})
	}
}

// hasModuleDocstring reports whether a Python source opens with a
// docstring, ignoring leading comments and blank lines.
func hasModuleDocstring(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return strings.HasPrefix(trimmed, `"""`) || strings.HasPrefix(trimmed, "'''")
	}
	return false
}

// hasHealthEndpoint scans Python sources for a /health route.
func hasHealthEndpoint(c *container.Container) bool {
	for path, content := range c.Files() {
		if !strings.HasSuffix(path, ".py") {
			continue
		}
		if strings.Contains(string(content), `"/health"`) || strings.Contains(string(content), `'/health'`) {
			return true
		}
	}
	return false
}

func firstLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
