package container

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"simple", "main.py", "main.py", false},
		{"nested", "app/api/routes.py", "app/api/routes.py", false},
		{"dot segments collapse", "app/./routes.py", "app/routes.py", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"absolute", "/etc/passwd", "", true},
		{"traversal", "../secrets.txt", "", true},
		{"embedded traversal", "app/../../x", "", true},
		{"backslash", `app\routes.py`, "", true},
		{"bare dot", ".", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePath(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				var rp *RejectedPathError
				assert.ErrorAs(t, err, &rp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContainer_Files(t *testing.T) {
	c := New("proj-1")

	require.NoError(t, c.AddFile("hello.txt", []byte("hi")))
	require.NoError(t, c.AddFile("app/main.py", []byte("print('x')\n")))

	got, ok := c.File("hello.txt")
	require.True(t, ok)
	assert.Equal(t, []byte("hi"), got)
	assert.Equal(t, []string{"app/main.py", "hello.txt"}, c.FilePaths())

	// Rejected paths never enter the map.
	err := c.AddFile("../escape.txt", []byte("no"))
	require.Error(t, err)
	assert.Equal(t, 2, c.FileCount())

	require.NoError(t, c.RemoveFile("hello.txt"))
	_, ok = c.File("hello.txt")
	assert.False(t, ok)

	// Removing a missing file is a no-op.
	require.NoError(t, c.RemoveFile("hello.txt"))
}

type recordingSink struct {
	changes []string
}

func (s *recordingSink) FileChanged(path string, content []byte) error {
	if content == nil {
		s.changes = append(s.changes, "del:"+path)
	} else {
		s.changes = append(s.changes, "put:"+path)
	}
	return nil
}

func TestContainer_FileSink(t *testing.T) {
	c := New("proj-1")
	sink := &recordingSink{}
	c.SetFileSink(sink)

	require.NoError(t, c.AddFile("a.txt", []byte("1")))
	require.NoError(t, c.AddFileQuiet("b.txt", []byte("2")))
	require.NoError(t, c.RemoveFile("a.txt"))

	assert.Equal(t, []string{"put:a.txt", "del:a.txt"}, sink.changes)
}

func TestContainer_ArtifactsAndHistory(t *testing.T) {
	c := New("proj-1")

	id := c.AddArtifact(RequirementsDoc{Summary: "build a thing"}, RoleResearcher)
	require.NotEmpty(t, id)

	arts := c.Artifacts(KindRequirements)
	require.Len(t, arts, 1)
	assert.Equal(t, id, arts[0].ID)
	assert.Equal(t, string(RoleResearcher), arts[0].CreatedBy)

	// Every artifact append lands in history.
	var artifactAdds int
	for _, h := range c.History() {
		if h.Action == "artifact_add" {
			artifactAdds++
			assert.Equal(t, id, h.Details["artifact_id"])
		}
	}
	assert.Equal(t, 1, artifactAdds)

	// History timestamps are monotonic.
	hist := c.History()
	for i := 1; i < len(hist); i++ {
		assert.False(t, hist[i].Timestamp.Before(hist[i-1].Timestamp))
	}
}

func TestContainer_LLMUsageSummary(t *testing.T) {
	c := New("proj-1")

	c.RecordLLMUsage(LLMCallRecord{Stage: "implementation", Role: RoleCoder, TokensIn: 100, TokensOut: 40})
	c.RecordLLMUsage(LLMCallRecord{Stage: "review", Role: RoleReviewer, TokensIn: 30, TokensOut: 10})

	m := c.Meta()
	require.Len(t, m.LLMUsage, 2)
	assert.Equal(t, 2, m.LLMSummary.TotalCalls)
	assert.Equal(t, 130, m.LLMSummary.TotalTokensIn)
	assert.Equal(t, 50, m.LLMSummary.TotalTokensOut)

	// Summary equals the sum of per-call records.
	var sum int
	for _, rec := range m.LLMUsage {
		sum += rec.TotalTokens
	}
	assert.Equal(t, sum, m.LLMSummary.TotalTokens)
}

func TestContainer_Baseline(t *testing.T) {
	c := New("proj-1")
	require.NoError(t, c.AddFile("keep.txt", []byte("original")))
	require.NoError(t, c.AddFile("bin.dat", []byte{0x00, 0x01, 0xff}))

	c.CaptureBaseline()
	base := c.Baseline()
	require.Len(t, base, 2)
	assert.False(t, base["keep.txt"].IsBinary)
	assert.Equal(t, []byte("original"), base["keep.txt"].Content)
	assert.True(t, base["bin.dat"].IsBinary)
	assert.Nil(t, base["bin.dat"].Content)

	// Baseline is immutable after creation.
	require.NoError(t, c.AddFile("later.txt", []byte("x")))
	c.CaptureBaseline()
	assert.Len(t, c.Baseline(), 2)
}

func TestContainer_SnapshotRoundTrip(t *testing.T) {
	c := New("proj-7")
	require.NoError(t, c.AddFile("main.py", []byte("print('hi')\n")))
	require.NoError(t, c.AddFile("data.bin", []byte{0, 1, 2}))
	c.AddArtifact(RequirementsDoc{Summary: "s", Requirements: []string{"r1"}}, RoleResearcher)
	c.AddArtifact(ReviewReport{Status: "approved", Passed: true}, RoleReviewer)
	c.SetTargetArchitecture(&ArchitectureDoc{
		Components: []ArchitectureComponent{{Name: "core", Files: []string{"main.py"}}},
	})
	c.CaptureBaseline()
	c.UpdateState(StateImplementation, "first pass")
	c.UpdateProgress(0.5)
	c.RecordLLMUsage(LLMCallRecord{Stage: "implementation", Role: RoleCoder, TokensIn: 10, TokensOut: 5})

	snap, err := c.Snapshot()
	require.NoError(t, err)

	restored, err := FromSnapshot(snap)
	require.NoError(t, err)

	assert.Equal(t, c.ProjectID, restored.ProjectID)
	assert.Equal(t, c.State(), restored.State())
	assert.Equal(t, c.Progress(), restored.Progress())
	assert.Equal(t, c.CurrentTask(), restored.CurrentTask())
	assert.Equal(t, c.Files(), restored.Files())
	assert.Equal(t, c.Baseline(), restored.Baseline())
	assert.Equal(t, c.Meta().LLMSummary, restored.Meta().LLMSummary)
	assert.Len(t, restored.History(), len(c.History()))

	// Snapshot of the restored Container is JSON-identical to the first.
	snap2, err := restored.Snapshot()
	require.NoError(t, err)
	b1, err := json.Marshal(snap)
	require.NoError(t, err)
	b2, err := json.Marshal(snap2)
	require.NoError(t, err)
	assert.JSONEq(t, string(b1), string(b2))
}

func TestContainer_SnapshotOpaqueArtifact(t *testing.T) {
	c := New("proj-8")
	c.AddArtifact(Opaque{Kind_: Kind("future_kind"), Raw: json.RawMessage(`{"x":1}`)}, RoleCoder)

	snap, err := c.Snapshot()
	require.NoError(t, err)

	restored, err := FromSnapshot(snap)
	require.NoError(t, err)

	arts := restored.Artifacts(Kind("future_kind"))
	require.Len(t, arts, 1)
	op, ok := arts[0].Payload.(Opaque)
	require.True(t, ok)
	assert.JSONEq(t, `{"x":1}`, string(op.Raw))
}

func TestContainer_RelevantContext(t *testing.T) {
	c := New("proj-9")
	require.NoError(t, c.AddFile("app/main.py", []byte("code")))
	c.AddArtifact(RequirementsDoc{Summary: "req"}, RoleResearcher)
	c.SetTargetArchitecture(&ArchitectureDoc{Components: []ArchitectureComponent{{Name: "app", Files: []string{"app/main.py"}}}})

	res := c.RelevantContextFor(RoleResearcher)
	assert.Nil(t, res.Requirements)
	assert.Nil(t, res.FileContents)

	des := c.RelevantContextFor(RoleDesigner)
	require.NotNil(t, des.Requirements)
	assert.Equal(t, "req", des.Requirements.Summary)

	cod := c.RelevantContextFor(RoleCoder)
	assert.Equal(t, []string{"app/main.py"}, cod.FilePaths)
	assert.Nil(t, cod.FileContents)
	require.NotNil(t, cod.Architecture)

	rev := c.RelevantContextFor(RoleReviewer)
	require.Contains(t, rev.FileContents, "app/main.py")
}

func TestIsBinary(t *testing.T) {
	assert.False(t, IsBinary([]byte("plain text\n")))
	assert.True(t, IsBinary([]byte{0x00}))
	assert.True(t, IsBinary([]byte{0xff, 0xfe, 0x00, 0x01}))
}
