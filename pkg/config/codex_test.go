package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinCodex_IsValid(t *testing.T) {
	codex, hash, err := LoadCodex("")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	plan, err := codex.Plan(ModeProject)
	require.NoError(t, err)
	assert.Equal(t, []string{StageResearch, StageDesign, StageImplementation, StageReview}, plan.Stages)
	assert.Equal(t, 15, plan.MaxIterations)
	assert.True(t, plan.RequireReview)

	micro, err := codex.Plan(ModeMicroFile)
	require.NoError(t, err)
	assert.Equal(t, []string{StageImplementation}, micro.Stages)
	assert.Equal(t, 3, micro.MaxIterations)
	assert.False(t, micro.RequireReview)

	_, err = codex.Plan("epic")
	assert.Error(t, err)

	coder, err := codex.Role("coder")
	require.NoError(t, err)
	assert.Contains(t, coder.SystemPrompt, "JSON")
}

func TestLoadCodex_UserOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codex.yaml")
	user := `
modes:
  project:
    stages: [research, design, implementation, review]
    max_iterations: 25
    require_review: true
roles:
  coder:
    system_prompt: "House style: type hints everywhere. Respond with a single JSON object."
`
	require.NoError(t, os.WriteFile(path, []byte(user), 0o644))

	codex, hash, err := LoadCodex(path)
	require.NoError(t, err)

	plan, err := codex.Plan(ModeProject)
	require.NoError(t, err)
	assert.Equal(t, 25, plan.MaxIterations)

	// Untouched modes keep their builtin plans.
	micro, err := codex.Plan(ModeMicroFile)
	require.NoError(t, err)
	assert.Equal(t, 3, micro.MaxIterations)

	coder, err := codex.Role("coder")
	require.NoError(t, err)
	assert.Contains(t, coder.SystemPrompt, "House style")

	// An overridden codex hashes differently from the builtin one.
	_, builtinHash, err := LoadCodex("")
	require.NoError(t, err)
	assert.NotEqual(t, builtinHash, hash)
}

func TestLoadCodex_MissingFileFallsBackToBuiltin(t *testing.T) {
	codex, hash, err := LoadCodex(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	_, builtinHash, err := LoadCodex("")
	require.NoError(t, err)
	assert.Equal(t, builtinHash, hash)
	assert.Len(t, codex.Modes, 3)
}

func TestLoadCodex_RejectsBrokenDocuments(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "unknown stage",
			yaml: "modes:\n  project:\n    stages: [deploy]\n    max_iterations: 5\n",
		},
		{
			name: "review required but absent",
			yaml: "modes:\n  small_code:\n    stages: [implementation]\n    max_iterations: 5\n    require_review: true\n",
		},
		{
			name: "not yaml",
			yaml: "{{{",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "codex.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))
			_, _, err := LoadCodex(path)
			assert.Error(t, err)
		})
	}
}

func TestCodexHash_Deterministic(t *testing.T) {
	a, err := BuiltinCodex().Hash()
	require.NoError(t, err)
	b, err := BuiltinCodex().Hash()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("LLM_API_KEY", "sk-test")

	out := ExpandEnv([]byte("key: {{.LLM_API_KEY}}\npattern: ^secret.*$\n"))
	assert.Equal(t, "key: sk-test\npattern: ^secret.*$\n", string(out))

	plain := []byte("no templates here: $HOME")
	assert.Equal(t, plain, ExpandEnv(plain))
}
