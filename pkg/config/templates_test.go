package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplate(t *testing.T, root, dir, manifest string, files map[string]string) {
	t.Helper()
	base := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(base, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, manifestName), []byte(manifest), 0o644))
	for path, content := range files {
		full := filepath.Join(base, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
}

func TestLoadTemplates(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "fastapi_service", `
id: fastapi_service
name: FastAPI Service
description: REST service skeleton
checks:
  require_files: [README.md, requirements.txt]
  requirements_must_contain: [fastapi, uvicorn]
  require_health_endpoint: true
`, map[string]string{
		"README.md":        "# Service\n",
		"requirements.txt": "fastapi\nuvicorn\n",
		"app/main.py":      "from fastapi import FastAPI\n",
	})
	writeTemplate(t, dir, "cli_tool", "id: cli_tool\n", map[string]string{
		"main.py": "print('hi')\n",
	})

	// A stray subdirectory without a manifest is not a template.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scratch"), 0o755))

	catalog, err := LoadTemplates(dir)
	require.NoError(t, err)
	require.Equal(t, 2, catalog.Len())

	tmpl, ok := catalog.Get("fastapi_service")
	require.True(t, ok)
	assert.Equal(t, "FastAPI Service", tmpl.Name)
	assert.True(t, tmpl.Checks.RequireHealthEndpoint)
	assert.Len(t, tmpl.Files, 3)
	assert.Contains(t, tmpl.Files, "app/main.py")
	assert.NotContains(t, tmpl.Files, manifestName)
	assert.NotEmpty(t, tmpl.Hash)

	ids := make([]string, 0, 2)
	for _, tm := range catalog.List() {
		ids = append(ids, tm.ID)
	}
	assert.Equal(t, []string{"cli_tool", "fastapi_service"}, ids)
}

func TestLoadTemplates_MissingDirIsEmptyCatalog(t *testing.T) {
	catalog, err := LoadTemplates(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Equal(t, 0, catalog.Len())
}

func TestLoadTemplates_DuplicateID(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "a", "id: same\n", nil)
	writeTemplate(t, dir, "b", "id: same\n", nil)

	_, err := LoadTemplates(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate template id")
}

func TestTemplateHash_TracksContent(t *testing.T) {
	dirA := t.TempDir()
	writeTemplate(t, dirA, "x", "id: x\n", map[string]string{"main.py": "v1\n"})
	a, err := LoadTemplates(dirA)
	require.NoError(t, err)

	dirB := t.TempDir()
	writeTemplate(t, dirB, "x", "id: x\n", map[string]string{"main.py": "v2\n"})
	b, err := LoadTemplates(dirB)
	require.NoError(t, err)

	ta, _ := a.Get("x")
	tb, _ := b.Get("x")
	assert.NotEqual(t, ta.Hash, tb.Hash)

	dirC := t.TempDir()
	writeTemplate(t, dirC, "x", "id: x\n", map[string]string{"main.py": "v1\n"})
	c, err := LoadTemplates(dirC)
	require.NoError(t, err)
	tc, _ := c.Get("x")
	assert.Equal(t, ta.Hash, tc.Hash)
}

func TestTemplateChecks_RequirementsSatisfied(t *testing.T) {
	checks := TemplateChecks{RequirementsMustContain: []string{"fastapi", "uvicorn"}}

	assert.Empty(t, checks.RequirementsSatisfied("FastAPI==0.110\nuvicorn[standard]\n"))
	assert.Equal(t, []string{"uvicorn"}, checks.RequirementsSatisfied("fastapi\n"))
}
