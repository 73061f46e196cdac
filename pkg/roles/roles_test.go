package roles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeproject/forge/pkg/config"
	"github.com/forgeproject/forge/pkg/container"
	"github.com/forgeproject/forge/pkg/contract"
	"github.com/forgeproject/forge/pkg/llm"
)

func testLLMConfig() config.LLMConfig {
	return config.LLMConfig{Model: "test-model", Temperature: 0.2, MaxTokens: 1024}
}

func scriptedGateway(texts ...string) (*llm.Gateway, *llm.MockProvider) {
	entries := make([]llm.ScriptEntry, 0, len(texts))
	for _, text := range texts {
		entries = append(entries, llm.ScriptEntry{Text: text})
	}
	mock := llm.NewMockProvider(entries...)
	return llm.NewGateway(mock, llm.DefaultGatewayConfig()), mock
}

func codexRole(t *testing.T, name string) config.RoleRules {
	t.Helper()
	rules, err := config.BuiltinCodex().Role(name)
	require.NoError(t, err)
	return rules
}

func TestResearcher_ProducesRequirements(t *testing.T) {
	gw, mock := scriptedGateway(`Here you go:
{"summary": "A todo API", "requirements": ["store todos", "list todos"], "user_stories": ["As a user I can add a todo"], "open_questions": []}`)
	r := NewResearcher(gw, codexRole(t, "researcher"), testLLMConfig())

	c := container.New("p1")
	c.SetCurrentTask("build a todo API")

	res, err := r.Execute(context.Background(), c, nil)
	require.NoError(t, err)
	require.NotNil(t, res.Doc)
	assert.Nil(t, res.Questions)
	assert.Equal(t, "A todo API", res.Doc.Summary)

	_, ok := c.LatestArtifact(container.KindRequirements)
	assert.True(t, ok)
	reqMD, ok := c.File("requirements.md")
	require.True(t, ok)
	assert.Contains(t, string(reqMD), "store todos")
	_, ok = c.File("user_stories.md")
	assert.True(t, ok)

	require.Equal(t, 1, mock.CallCount())
	captured := mock.Captured()[0]
	assert.Equal(t, "test-model", captured.Model)
	assert.Contains(t, captured.Messages[1].Content, "build a todo API")
}

func TestResearcher_RequiredQuestionsPauseTheTask(t *testing.T) {
	gw, _ := scriptedGateway(`{"summary": "", "requirements": [],
"clarification_questions": [
  {"id": "q_db", "text": "Which database?", "type": "choice", "choices": ["sqlite", "postgres"], "required": true},
  {"text": "Any preferred style?", "type": "text", "required": false}
]}`)
	r := NewResearcher(gw, codexRole(t, "researcher"), testLLMConfig())

	c := container.New("p1")
	c.SetCurrentTask("build something vague")

	res, err := r.Execute(context.Background(), c, nil)
	require.NoError(t, err)
	require.NotNil(t, res.Questions)
	assert.Nil(t, res.Doc)

	// Only required questions block; the optional one is dropped.
	require.Len(t, res.Questions.Questions, 1)
	assert.Equal(t, "q_db", res.Questions.Questions[0].ID)

	_, ok := c.LatestArtifact(container.KindClarificationQuestions)
	assert.True(t, ok)
	_, ok = c.File("requirements.md")
	assert.False(t, ok)
}

func TestResearcher_AnswersSuppressQuestions(t *testing.T) {
	gw, mock := scriptedGateway(`{"summary": "sqlite todo API", "requirements": ["use sqlite"],
"clarification_questions": [{"id": "q_db", "text": "Which database?", "type": "text", "required": true}]}`)
	r := NewResearcher(gw, codexRole(t, "researcher"), testLLMConfig())

	c := container.New("p1")
	c.SetCurrentTask("build a todo API")

	res, err := r.Execute(context.Background(), c, map[string]string{"q_db": "sqlite"})
	require.NoError(t, err)
	require.NotNil(t, res.Doc)
	assert.Nil(t, res.Questions)
	assert.Contains(t, mock.Captured()[0].Messages[1].Content, "q_db: sqlite")
}

func TestDesigner_SetsTargetArchitecture(t *testing.T) {
	gw, _ := scriptedGateway(`{"overview": "two modules",
"components": [
  {"name": "app", "description": "entry point", "files": ["app/main.py"]},
  {"name": "storage", "files": ["app/storage.py"]}
],
"api_endpoints": [{"method": "GET", "path": "/health", "description": "liveness"}]}`)
	d := NewDesigner(gw, codexRole(t, "designer"), testLLMConfig())

	c := container.New("p1")
	c.SetCurrentTask("build a todo API")
	c.AddArtifact(&container.RequirementsDoc{Summary: "todo API", Requirements: []string{"store todos"}}, container.RoleResearcher)

	res, err := d.Execute(context.Background(), c)
	require.NoError(t, err)
	assert.Len(t, res.Doc.Components, 2)

	arch := c.TargetArchitecture()
	require.NotNil(t, arch)
	assert.Equal(t, []string{"app/main.py", "app/storage.py"}, arch.AllFiles())

	archMD, ok := c.File("architecture.md")
	require.True(t, ok)
	assert.Contains(t, string(archMD), "app/main.py")
	planMD, ok := c.File("implementation_plan.md")
	require.True(t, ok)
	assert.Contains(t, string(planMD), "1. app: create `app/main.py`")
}

func TestDesigner_RejectsTraversingPaths(t *testing.T) {
	gw, _ := scriptedGateway(`{"components": [{"name": "evil", "files": ["../outside.py"]}]}`)
	d := NewDesigner(gw, codexRole(t, "designer"), testLLMConfig())

	c := container.New("p1")
	_, err := d.Execute(context.Background(), c)
	require.Error(t, err)
	var rejected *container.RejectedPathError
	assert.ErrorAs(t, err, &rejected)
}

func TestCoder_WritesFilesAndArtifacts(t *testing.T) {
	gw, _ := scriptedGateway(`{"files": [{"path": "app/main.py", "content": "\"\"\"Entry point.\"\"\"\nprint('hi')\n"}]}`)
	co := NewCoder(gw, codexRole(t, "coder"), testLLMConfig(), contract.ModeMicroFile)

	c := container.New("p1")
	res, err := co.Execute(context.Background(), c, SubTask{
		Type: TaskCreateFile, File: "app/main.py", Description: "create main",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"app/main.py"}, res.Files)
	assert.Equal(t, 1, res.Calls)

	content, ok := c.File("app/main.py")
	require.True(t, ok)
	assert.Contains(t, string(content), "print('hi')")

	_, ok = c.LatestArtifact(container.KindCode)
	assert.True(t, ok)
	_, ok = c.LatestArtifact(container.KindUsageReport)
	assert.True(t, ok)
}

func TestCoder_RepairsContractViolationOnce(t *testing.T) {
	gw, mock := scriptedGateway(
		"Sure! Here is the file:\n```json\n{\"files\": [{\"path\": \"a.py\", \"content\": \"x = 1\\n\"}]}\n```",
		`{"files": [{"path": "a.py", "content": "x = 1\n"}]}`,
	)
	co := NewCoder(gw, codexRole(t, "coder"), testLLMConfig(), contract.ModeMicroFile)

	c := container.New("p1")
	res, err := co.Execute(context.Background(), c, SubTask{Type: TaskCreateFile, File: "a.py", Description: "make a"}, "")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Calls)
	assert.Equal(t, 2, mock.CallCount())

	// The repair turn carries the failed response and the repair prompt.
	repairReq := mock.Captured()[1]
	require.Len(t, repairReq.Messages, 4)
	assert.Equal(t, llm.RoleAssistant, repairReq.Messages[2].Role)
	assert.Contains(t, repairReq.Messages[3].Content, "violated")
}

func TestCoder_FailsAfterFailedRepair(t *testing.T) {
	gw, _ := scriptedGateway("not json at all", "still not json")
	co := NewCoder(gw, codexRole(t, "coder"), testLLMConfig(), contract.ModeMicroFile)

	c := container.New("p1")
	_, err := co.Execute(context.Background(), c, SubTask{Type: TaskCreateFile, File: "a.py", Description: "make a"}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnparsableResponse)
}

func TestCoder_SanitizesHallucinatedImports(t *testing.T) {
	gw, _ := scriptedGateway(`{"files": [{"path": "main.py", "content": "\"\"\"App.\"\"\"\nfrom api.routes import router\nimport os\nprint(os.getcwd())\n"}]}`)
	co := NewCoder(gw, codexRole(t, "coder"), testLLMConfig(), contract.ModeMicroFile)

	c := container.New("p1")
	res, err := co.Execute(context.Background(), c, SubTask{Type: TaskCreateFile, File: "main.py", Description: "make main"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"main.py"}, res.Sanitized)

	content, _ := c.File("main.py")
	assert.NotContains(t, string(content), "api.routes")
	assert.Contains(t, string(content), "import os")
}

func TestCoder_KeepsLocalImportsThatExist(t *testing.T) {
	gw, _ := scriptedGateway(`{"files": [{"path": "main.py", "content": "from app.storage import save\n"}]}`)
	co := NewCoder(gw, codexRole(t, "coder"), testLLMConfig(), contract.ModeMicroFile)

	c := container.New("p1")
	require.NoError(t, c.AddFile("app/storage.py", []byte("def save(): pass\n")))

	res, err := co.Execute(context.Background(), c, SubTask{Type: TaskCreateFile, File: "main.py", Description: "make main"}, "")
	require.NoError(t, err)
	assert.Empty(t, res.Sanitized)

	content, _ := c.File("main.py")
	assert.Contains(t, string(content), "app.storage")
}

func TestCoder_EnforcesAllowedPaths(t *testing.T) {
	gw, _ := scriptedGateway(
		`{"files": [{"path": "somewhere/else.py", "content": "x\n"}]}`,
		`{"files": [{"path": "somewhere/else.py", "content": "x\n"}]}`,
	)
	co := NewCoder(gw, codexRole(t, "coder"), testLLMConfig(), contract.ModeMicroFile)

	c := container.New("p1")
	_, err := co.Execute(context.Background(), c, SubTask{
		Type: TaskWriteTests, File: "tests/test_main.py",
		Description: "write tests", AllowedPaths: []string{"tests/test_main.py"},
	}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnparsableResponse)
}

func TestPlanner_FilesBeforeTests(t *testing.T) {
	c := container.New("p1")
	c.SetTargetArchitecture(&container.ArchitectureDoc{Components: []container.ArchitectureComponent{
		{Name: "app", Files: []string{"app/main.py", "app/storage.py"}},
	}})

	task := NextTask(c)
	require.NotNil(t, task)
	assert.Equal(t, TaskCreateFile, task.Type)
	assert.Equal(t, "app/main.py", task.File)

	require.NoError(t, c.AddFile("app/main.py", []byte("\"\"\"m\"\"\"\n")))
	task = NextTask(c)
	require.NotNil(t, task)
	assert.Equal(t, "app/storage.py", task.File)

	require.NoError(t, c.AddFile("app/storage.py", []byte("\"\"\"s\"\"\"\n")))
	task = NextTask(c)
	require.NotNil(t, task)
	assert.Equal(t, TaskWriteTests, task.Type)
	assert.Equal(t, "tests/test_main.py", task.File)
	assert.Equal(t, []string{"tests/test_main.py"}, task.AllowedPaths)

	require.NoError(t, c.AddFile("tests/test_main.py", []byte("def test_ok(): pass\n")))
	require.NoError(t, c.AddFile("tests/test_storage.py", []byte("def test_ok(): pass\n")))
	assert.Nil(t, NextTask(c))
}

func TestPlanner_SkipsScaffolding(t *testing.T) {
	c := container.New("p1")
	require.NoError(t, c.AddFile("app/__init__.py", nil))
	require.NoError(t, c.AddFile("conftest.py", []byte("\n")))
	require.NoError(t, c.AddFile("README.md", []byte("# hi\n")))
	assert.Nil(t, NextTask(c))
}
