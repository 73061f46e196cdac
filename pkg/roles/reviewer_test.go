package roles

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeproject/forge/pkg/config"
	"github.com/forgeproject/forge/pkg/container"
	"github.com/forgeproject/forge/pkg/sandbox"
)

// fakeRunner returns scripted results keyed by the executable name.
type fakeRunner struct {
	results map[string]sandbox.Result
	specs   []sandbox.Spec
}

func (f *fakeRunner) Run(_ context.Context, spec sandbox.Spec) sandbox.Result {
	f.specs = append(f.specs, spec)
	res, ok := f.results[spec.Command[0]]
	if !ok {
		res = sandbox.Result{Ran: true}
	}
	res.RunID = uuid.NewString()
	res.Command = spec.Command
	res.Purpose = spec.Purpose
	res.StartedAt = time.Now()
	res.FinishedAt = time.Now()
	return res
}

func cleanRunner() *fakeRunner {
	return &fakeRunner{results: map[string]sandbox.Result{
		"ruff":   {Ran: true, ExitCode: 0},
		"python": {Ran: true, ExitCode: 0},
		"pytest": {Ran: true, ExitCode: 0},
	}}
}

func TestReviewer_ApprovesCleanContainer(t *testing.T) {
	c := container.New("p1")
	require.NoError(t, c.AddFile("main.py", []byte("\"\"\"Entry point.\"\"\"\nprint('hi')\n")))

	runner := cleanRunner()
	rev := NewReviewer(runner, "task-1", nil)

	report, err := rev.Execute(context.Background(), c, true)
	require.NoError(t, err)
	assert.Equal(t, "approved", report.Status)
	assert.True(t, report.Passed)
	assert.True(t, report.Final)
	assert.Len(t, report.RunIDs, 3)
	assert.Len(t, report.Tools, 3)

	// All tool runs happen inside the task directory.
	for _, spec := range runner.specs {
		assert.Equal(t, "task-1", spec.Dir)
	}

	// Each tool run leaves a command_log artifact.
	logs := c.Artifacts(container.KindCommandLog)
	assert.Len(t, logs, 3)
	_, ok := c.LatestArtifact(container.KindReviewReport)
	assert.True(t, ok)
}

func TestReviewer_StaticWarnings(t *testing.T) {
	c := container.New("p1")
	long := "x = '" + strings.Repeat("a", 130) + "'"
	require.NoError(t, c.AddFile("main.py", []byte(long+"\n")))

	rev := NewReviewer(cleanRunner(), "t", nil)
	report, err := rev.Execute(context.Background(), c, false)
	require.NoError(t, err)

	assert.Equal(t, "approved_with_warnings", report.Status)
	assert.True(t, report.Passed)

	var messages []string
	for _, w := range report.Warnings {
		messages = append(messages, w.Message)
	}
	assert.Contains(t, strings.Join(messages, "; "), "exceeds 120")
	assert.Contains(t, strings.Join(messages, "; "), "missing module docstring")
}

func TestReviewer_TemplateChecks(t *testing.T) {
	tmpl := &config.Template{
		ID: "fastapi_service",
		Checks: config.TemplateChecks{
			RequireFiles:            []string{"README.md", "requirements.txt"},
			RequirementsMustContain: []string{"fastapi", "uvicorn"},
			RequireHealthEndpoint:   true,
		},
	}

	c := container.New("p1")
	require.NoError(t, c.AddFile("requirements.txt", []byte("fastapi\n")))
	require.NoError(t, c.AddFile("main.py", []byte("\"\"\"App.\"\"\"\napp = 1\n")))

	rev := NewReviewer(cleanRunner(), "t", tmpl)
	report, err := rev.Execute(context.Background(), c, true)
	require.NoError(t, err)

	assert.Equal(t, "rejected", report.Status)
	assert.False(t, report.Passed)

	var messages []string
	for _, issue := range report.Issues {
		messages = append(messages, issue.Message)
	}
	joined := strings.Join(messages, "; ")
	assert.Contains(t, joined, "README.md")
	assert.Contains(t, joined, `"uvicorn"`)
	assert.Contains(t, joined, "/health")
}

func TestReviewer_TemplateSatisfied(t *testing.T) {
	tmpl := &config.Template{
		ID: "fastapi_service",
		Checks: config.TemplateChecks{
			RequireFiles:            []string{"README.md"},
			RequirementsMustContain: []string{"fastapi"},
			RequireHealthEndpoint:   true,
		},
	}

	c := container.New("p1")
	require.NoError(t, c.AddFile("README.md", []byte("# svc\n")))
	require.NoError(t, c.AddFile("requirements.txt", []byte("fastapi==0.110\n")))
	require.NoError(t, c.AddFile("main.py", []byte("\"\"\"App.\"\"\"\n@app.get(\"/health\")\ndef health(): ...\n")))

	rev := NewReviewer(cleanRunner(), "t", tmpl)
	report, err := rev.Execute(context.Background(), c, true)
	require.NoError(t, err)
	assert.Empty(t, report.Issues)
}

func TestReviewer_ArchitectureCompliance(t *testing.T) {
	c := container.New("p1")
	c.SetTargetArchitecture(&container.ArchitectureDoc{Components: []container.ArchitectureComponent{
		{Name: "app", Files: []string{"app/main.py", "app/storage.py"}},
	}})
	require.NoError(t, c.AddFile("app/main.py", []byte("\"\"\"m\"\"\"\n")))

	rev := NewReviewer(cleanRunner(), "t", nil)
	report, err := rev.Execute(context.Background(), c, true)
	require.NoError(t, err)

	assert.Equal(t, "rejected", report.Status)
	require.NotEmpty(t, report.Issues)
	assert.Equal(t, "app/storage.py", report.Issues[0].Path)
}

func TestReviewer_AbsorbsToolFailures(t *testing.T) {
	runner := &fakeRunner{results: map[string]sandbox.Result{
		"ruff":   {Ran: true, ExitCode: 1, Stdout: "main.py:1:1: F401 unused import\nFound 1 error.\n"},
		"python": {Ran: true, ExitCode: 0},
		"pytest": {Ran: true, ExitCode: 5},
	}}

	c := container.New("p1")
	require.NoError(t, c.AddFile("main.py", []byte("\"\"\"m\"\"\"\nimport os\n")))

	rev := NewReviewer(runner, "t", nil)
	report, err := rev.Execute(context.Background(), c, true)
	require.NoError(t, err)

	assert.Equal(t, "rejected", report.Status)
	require.NotEmpty(t, report.Issues)
	assert.Contains(t, report.Issues[0].Message, "F401")

	var warnings []string
	for _, w := range report.Warnings {
		warnings = append(warnings, w.Message)
	}
	assert.Contains(t, strings.Join(warnings, "; "), "no tests collected")
}

func TestReviewer_MissingToolIsWarningNotError(t *testing.T) {
	runner := &fakeRunner{results: map[string]sandbox.Result{
		"ruff":   {Ran: false, Error: "command_not_found"},
		"python": {Ran: true, ExitCode: 0},
		"pytest": {Ran: true, ExitCode: 0},
	}}

	c := container.New("p1")
	require.NoError(t, c.AddFile("main.py", []byte("\"\"\"m\"\"\"\n")))

	rev := NewReviewer(runner, "t", nil)
	report, err := rev.Execute(context.Background(), c, true)
	require.NoError(t, err)

	assert.Equal(t, "approved_with_warnings", report.Status)
	assert.True(t, report.Passed)
}

func TestReviewer_TimeoutRejects(t *testing.T) {
	runner := &fakeRunner{results: map[string]sandbox.Result{
		"ruff":   {Ran: true, ExitCode: 0},
		"python": {Ran: true, ExitCode: 0},
		"pytest": {Ran: false, TimedOut: true, Error: "timeout"},
	}}

	c := container.New("p1")
	require.NoError(t, c.AddFile("main.py", []byte("\"\"\"m\"\"\"\n")))

	rev := NewReviewer(runner, "t", nil)
	report, err := rev.Execute(context.Background(), c, true)
	require.NoError(t, err)
	assert.Equal(t, "rejected", report.Status)
}
