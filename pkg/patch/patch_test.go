package patch

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeproject/forge/pkg/container"
)

func buildContainer(t *testing.T) *container.Container {
	t.Helper()
	c := container.New("proj")
	require.NoError(t, c.AddFile("keep.py", []byte("unchanged\n")))
	require.NoError(t, c.AddFile("edit.py", []byte("old line\n")))
	require.NoError(t, c.AddFile("gone.py", []byte("to be removed\n")))
	require.NoError(t, c.AddFile("logo.bin", []byte{0x00, 0x01, 0x02}))
	c.CaptureBaseline()

	require.NoError(t, c.AddFile("edit.py", []byte("new line\n")))
	require.NoError(t, c.AddFile("new.py", []byte("fresh\n")))
	require.NoError(t, c.RemoveFile("gone.py"))
	require.NoError(t, c.AddFile("logo.bin", []byte{0x00, 0xff}))
	return c
}

func TestBuildDiff_ClassifiesChanges(t *testing.T) {
	c := buildContainer(t)

	diff, err := BuildDiff(c)
	require.NoError(t, err)

	byPath := map[string]container.FileChange{}
	for _, ch := range diff.ChangedFiles {
		byPath[ch.Path] = ch
	}
	assert.NotContains(t, byPath, "keep.py")
	assert.Equal(t, "modified", byPath["edit.py"].Change)
	assert.Equal(t, "added", byPath["new.py"].Change)
	assert.Equal(t, "removed", byPath["gone.py"].Change)
	assert.True(t, byPath["logo.bin"].Binary)

	assert.Equal(t, 4, diff.Stats.ChangedTotal)
	assert.Equal(t, 1, diff.Stats.Added)
	assert.Equal(t, 2, diff.Stats.Modified)
	assert.Equal(t, 1, diff.Stats.Removed)
	assert.Equal(t, diff.Stats.ChangedTotal,
		diff.Stats.Added+diff.Stats.Modified+diff.Stats.Removed)
	assert.Equal(t, 3, diff.Stats.TextFiles)
	assert.Equal(t, 1, diff.Stats.BinaryFiles)
	assert.Equal(t, strings.Count(diff.Diff, "\n"), diff.Stats.DiffLines)
}

func TestBuildDiff_UnifiedBlocks(t *testing.T) {
	c := buildContainer(t)

	diff, err := BuildDiff(c)
	require.NoError(t, err)

	assert.Contains(t, diff.Diff, "diff --git a/edit.py b/edit.py")
	assert.Contains(t, diff.Diff, "--- a/edit.py")
	assert.Contains(t, diff.Diff, "+++ b/edit.py")
	assert.Contains(t, diff.Diff, "-old line")
	assert.Contains(t, diff.Diff, "+new line")

	assert.Contains(t, diff.Diff, "--- /dev/null")
	assert.Contains(t, diff.Diff, "+++ b/new.py")
	assert.Contains(t, diff.Diff, "+++ /dev/null")

	assert.Contains(t, diff.Diff, "Binary files differ")
	assert.NotContains(t, diff.Diff, "\xff")
}

func TestBuildDiff_NoBaselineTreatsAllAsAdded(t *testing.T) {
	c := container.New("proj")
	require.NoError(t, c.AddFile("only.py", []byte("x\n")))

	diff, err := BuildDiff(c)
	require.NoError(t, err)
	require.Len(t, diff.ChangedFiles, 1)
	assert.Equal(t, "added", diff.ChangedFiles[0].Change)
}

func TestBuildGitExport_Bundle(t *testing.T) {
	c := buildContainer(t)
	diff, err := BuildDiff(c)
	require.NoError(t, err)

	bundle, err := BuildGitExport(diff)
	require.NoError(t, err)

	assert.Equal(t, diff.Diff, bundle.Files["patch.diff"])
	assert.Contains(t, bundle.Files["apply.sh"], "git apply --index patch.diff")
	assert.Contains(t, bundle.Files["apply.sh"], "working tree is not clean")
	assert.Contains(t, bundle.Files["README_APPLY.md"], "patch.diff")

	var changed []container.FileChange
	require.NoError(t, json.Unmarshal([]byte(bundle.Files["changed_files.json"]), &changed))
	assert.Len(t, changed, 4)
}

func TestBuildReproManifest(t *testing.T) {
	c := buildContainer(t)
	require.NoError(t, c.AddFile("requirements.txt", []byte("fastapi==0.111.0\n")))
	c.MutateMeta(func(m *container.Metadata) {
		m.CodexHash = "codex-abc"
		m.TemplateID = "fastapi"
		m.TemplateHash = "tpl-def"
	})
	c.AddArtifact(&container.ReviewReport{
		Status: "approved_with_warnings",
		Passed: true,
		Warnings: []container.ReviewIssue{
			{Severity: "warning", Path: "edit.py", Message: "line too long"},
		},
	}, container.RoleReviewer)

	m := BuildReproManifest(c, map[string]string{"ruff": "0.4.4"})

	assert.NotEmpty(t, m.GoVersion)
	assert.Equal(t, "0.4.4", m.ToolVersions["ruff"])
	assert.Equal(t, container.HashBytes([]byte("fastapi==0.111.0\n")), m.RequirementsHash)
	assert.Equal(t, "codex-abc", m.CodexHash)
	assert.Equal(t, "fastapi", m.TemplateID)
	assert.Equal(t, "tpl-def", m.TemplateHash)
	assert.Contains(t, m.ReviewSummary, "approved_with_warnings")
	assert.Contains(t, m.ReviewSummary, "1 warnings")
}

func TestAttach_AppendsAllThreeArtifacts(t *testing.T) {
	c := buildContainer(t)

	require.NoError(t, Attach(c, nil))

	_, ok := c.LatestArtifact(container.KindPatchDiff)
	assert.True(t, ok)
	_, ok = c.LatestArtifact(container.KindGitExport)
	assert.True(t, ok)
	_, ok = c.LatestArtifact(container.KindReproManifest)
	assert.True(t, ok)
}
