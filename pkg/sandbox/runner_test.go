package sandbox

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu       sync.Mutex
	started  []string
	finished []Result
}

func (n *recordingNotifier) CommandStarted(runID string, _ []string, _ string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.started = append(n.started, runID)
}

func (n *recordingNotifier) CommandFinished(res Result) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.finished = append(n.finished, res)
}

func newTestRunner(t *testing.T, cfg Config) (*Runner, *recordingNotifier) {
	t.Helper()
	if cfg.WorkspaceRoot == "" {
		cfg.WorkspaceRoot = t.TempDir()
	}
	r, err := NewRunner(cfg)
	require.NoError(t, err)
	n := &recordingNotifier{}
	r.SetNotifier(n)
	return r, n
}

func TestRun_DisallowedCommandNeverSpawns(t *testing.T) {
	r, n := newTestRunner(t, Config{})

	res := r.Run(context.Background(), Spec{Command: []string{"rm", "-rf", "."}, Purpose: "review"})

	assert.True(t, res.Blocked)
	assert.False(t, res.Ran)
	assert.Equal(t, "command_not_allowed", res.Error)
	assert.Empty(t, n.started)
	require.Len(t, n.finished, 1)
	assert.True(t, n.finished[0].Blocked)
}

func TestRun_AllowlistMatchesBasename(t *testing.T) {
	r, _ := newTestRunner(t, Config{})

	res := r.Run(context.Background(), Spec{Command: []string{"/usr/bin/rm", "x"}})
	assert.True(t, res.Blocked)
}

func TestRun_Success(t *testing.T) {
	r, n := newTestRunner(t, Config{Allowlist: []string{"echo"}})

	res := r.Run(context.Background(), Spec{Command: []string{"echo", "hello"}, Purpose: "smoke"})

	assert.True(t, res.Ran)
	assert.False(t, res.Blocked)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "hello\n", res.Stdout)
	assert.Equal(t, "smoke", res.Purpose)
	assert.NotEmpty(t, res.RunID)
	require.Len(t, n.started, 1)
	require.Len(t, n.finished, 1)
	assert.Equal(t, n.started[0], n.finished[0].RunID)
}

func TestRun_NonZeroExit(t *testing.T) {
	r, _ := newTestRunner(t, Config{Allowlist: []string{"sh"}})

	res := r.Run(context.Background(), Spec{Command: []string{"sh", "-c", "exit 3"}})

	assert.True(t, res.Ran)
	assert.Equal(t, 3, res.ExitCode)
	assert.Empty(t, res.Error)
}

func TestRun_Timeout(t *testing.T) {
	r, _ := newTestRunner(t, Config{Allowlist: []string{"sleep"}})

	res := r.Run(context.Background(), Spec{
		Command: []string{"sleep", "5"},
		Timeout: 50 * time.Millisecond,
	})

	assert.True(t, res.TimedOut)
	assert.False(t, res.Ran)
	assert.Equal(t, "timeout", res.Error)
}

func TestRun_MissingExecutable(t *testing.T) {
	r, _ := newTestRunner(t, Config{Allowlist: []string{"definitely-not-installed-anywhere"}})

	res := r.Run(context.Background(), Spec{Command: []string{"definitely-not-installed-anywhere"}})

	assert.False(t, res.Ran)
	assert.Equal(t, "command_not_found", res.Error)
}

func TestRun_CwdOutsideWorkspaceRejected(t *testing.T) {
	r, n := newTestRunner(t, Config{Allowlist: []string{"echo"}})

	res := r.Run(context.Background(), Spec{Command: []string{"echo", "x"}, Dir: "../outside"})

	assert.True(t, res.Blocked)
	assert.Equal(t, "cwd_outside_workspace", res.Error)
	assert.Empty(t, n.started)

	res = r.Run(context.Background(), Spec{Command: []string{"echo", "x"}, Dir: "/etc"})
	assert.True(t, res.Blocked)
}

func TestRun_OutputTruncation(t *testing.T) {
	r, _ := newTestRunner(t, Config{Allowlist: []string{"sh"}, MaxOutputBytes: 100})

	res := r.Run(context.Background(), Spec{
		Command: []string{"sh", "-c", `i=0; while [ $i -lt 100 ]; do echo 0123456789; i=$((i+1)); done`},
	})

	assert.True(t, res.Ran)
	assert.True(t, res.StdoutTruncated)
	assert.Equal(t, 100, len(res.Stdout))
}

func TestTruncateUTF8_DoesNotSplitRunes(t *testing.T) {
	s := strings.Repeat("é", 10) // 2 bytes each

	out, truncated := truncateUTF8(s, 5)
	assert.True(t, truncated)
	assert.Equal(t, "éé", out)

	out, truncated = truncateUTF8("short", 100)
	assert.False(t, truncated)
	assert.Equal(t, "short", out)
}

func TestResult_CommandLog(t *testing.T) {
	r, _ := newTestRunner(t, Config{Allowlist: []string{"echo"}})

	res := r.Run(context.Background(), Spec{Command: []string{"echo", "hi"}, Purpose: "lint"})
	log := res.CommandLog()

	assert.Equal(t, res.RunID, log.RunID)
	assert.True(t, log.Ran)
	assert.Equal(t, "echo hi", log.Command)
	assert.Equal(t, "hi\n", log.Stdout)
	assert.Equal(t, "lint", log.Purpose)
	assert.NotEmpty(t, log.StartedAt)
	assert.NotEmpty(t, log.FinishedAt)
}
