package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeproject/forge/pkg/container"
)

func newTestWorkspace(t *testing.T) (*Workspace, *container.Container) {
	t.Helper()
	ws, err := New(t.TempDir(), "task-1")
	require.NoError(t, err)
	return ws, container.New("task-1")
}

func TestMaterialize_WritesAllFiles(t *testing.T) {
	ws, c := newTestWorkspace(t)
	require.NoError(t, c.AddFile("main.py", []byte("print('hi')\n")))
	require.NoError(t, c.AddFile("pkg/util.py", []byte("x = 1\n")))

	require.NoError(t, ws.Materialize(c))

	body, err := os.ReadFile(filepath.Join(ws.Root(), "main.py"))
	require.NoError(t, err)
	assert.Equal(t, "print('hi')\n", string(body))
	body, err = os.ReadFile(filepath.Join(ws.Root(), "pkg", "util.py"))
	require.NoError(t, err)
	assert.Equal(t, "x = 1\n", string(body))
}

func TestFileChanged_MirrorsHookWritesAndDeletes(t *testing.T) {
	ws, c := newTestWorkspace(t)
	c.SetFileSink(ws)

	require.NoError(t, c.AddFile("app.py", []byte("v1")))
	body, err := os.ReadFile(filepath.Join(ws.Root(), "app.py"))
	require.NoError(t, err)
	assert.Equal(t, "v1", string(body))

	require.NoError(t, c.AddFile("app.py", []byte("v2")))
	body, err = os.ReadFile(filepath.Join(ws.Root(), "app.py"))
	require.NoError(t, err)
	assert.Equal(t, "v2", string(body))

	require.NoError(t, c.RemoveFile("app.py"))
	_, err = os.Stat(filepath.Join(ws.Root(), "app.py"))
	assert.True(t, os.IsNotExist(err))
}

func TestFileChanged_RejectsUnsafePaths(t *testing.T) {
	ws, _ := newTestWorkspace(t)

	assert.Error(t, ws.FileChanged("../escape.txt", []byte("x")))
	assert.Error(t, ws.FileChanged("/etc/passwd", []byte("x")))
}

func TestSyncToContainer_AppliesExternalEdits(t *testing.T) {
	ws, c := newTestWorkspace(t)
	require.NoError(t, c.AddFile("keep.py", []byte("keep")))
	require.NoError(t, c.AddFile("edit.py", []byte("before")))
	require.NoError(t, c.AddFile("gone.py", []byte("bye")))
	require.NoError(t, ws.Materialize(c))

	// Simulate a tool pass editing the tree directly.
	require.NoError(t, os.WriteFile(filepath.Join(ws.Root(), "edit.py"), []byte("after"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(ws.Root(), "new.py"), []byte("born"), 0o644))
	require.NoError(t, os.Remove(filepath.Join(ws.Root(), "gone.py")))

	stats, err := ws.SyncToContainer(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"new.py"}, stats.Added)
	assert.Equal(t, []string{"edit.py"}, stats.Modified)
	assert.Equal(t, []string{"gone.py"}, stats.Removed)

	files := c.Files()
	assert.Equal(t, "after", string(files["edit.py"]))
	assert.Equal(t, "born", string(files["new.py"]))
	assert.NotContains(t, files, "gone.py")
	assert.Equal(t, "keep", string(files["keep.py"]))
}

func TestSyncToContainer_DoesNotRetriggerSink(t *testing.T) {
	ws, c := newTestWorkspace(t)
	c.SetFileSink(ws)
	require.NoError(t, c.AddFile("a.py", []byte("v1")))
	require.NoError(t, ws.Materialize(c))

	require.NoError(t, os.WriteFile(filepath.Join(ws.Root(), "a.py"), []byte("tool-edit"), 0o644))
	_, err := ws.SyncToContainer(c)
	require.NoError(t, err)

	// The on-disk file keeps the tool's edit; the quiet sync path must
	// not have rewritten it through the sink.
	body, err := os.ReadFile(filepath.Join(ws.Root(), "a.py"))
	require.NoError(t, err)
	assert.Equal(t, "tool-edit", string(body))
	assert.Equal(t, "tool-edit", string(c.Files()["a.py"]))
}

func TestSyncToContainer_IgnoresCachesAndVCS(t *testing.T) {
	ws, c := newTestWorkspace(t)
	require.NoError(t, ws.Materialize(c))

	for _, dir := range []string{".git", "__pycache__", ".pytest_cache", ".ruff_cache", ".mypy_cache", ".venv"} {
		require.NoError(t, os.MkdirAll(filepath.Join(ws.Root(), dir), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(ws.Root(), dir, "junk"), []byte("x"), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(ws.Root(), "module.pyc"), []byte{0x00}, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(ws.Root(), "real.py"), []byte("ok"), 0o644))

	stats, err := ws.SyncToContainer(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"real.py"}, stats.Added)
	assert.Len(t, c.Files(), 1)
}

func TestSyncToContainer_IdempotentWhenUnchanged(t *testing.T) {
	ws, c := newTestWorkspace(t)
	require.NoError(t, c.AddFile("a.py", []byte("v1")))
	require.NoError(t, ws.Materialize(c))

	stats, err := ws.SyncToContainer(c)
	require.NoError(t, err)
	assert.False(t, stats.Changed())
}

func TestRemove_DeletesTree(t *testing.T) {
	ws, c := newTestWorkspace(t)
	require.NoError(t, c.AddFile("a.py", []byte("v1")))
	require.NoError(t, ws.Materialize(c))

	require.NoError(t, ws.Remove())
	_, err := os.Stat(ws.Root())
	assert.True(t, os.IsNotExist(err))
}
