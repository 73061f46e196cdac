// Package sandbox runs reviewer tooling inside a task workspace. Only
// allowlisted executables may spawn, the working directory must resolve
// under the workspace root, output is size-capped, and every run is
// reported as a full command record.
package sandbox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/forgeproject/forge/pkg/container"
)

// Defaults.
const (
	DefaultTimeout        = 60 * time.Second
	DefaultMaxOutputBytes = 20000
)

// DefaultAllowlist is the set of executables the reviewer may run.
func DefaultAllowlist() []string {
	return []string{"ruff", "pytest", "python", "python3"}
}

// Spec describes one command to run.
type Spec struct {
	Command []string          // argv; Command[0] is the executable
	Dir     string            // relative to the workspace root; "" means the root itself
	Purpose string            // free-form tag carried into the record
	Env     map[string]string // extra environment merged over the parent's
	Timeout time.Duration     // overrides the runner default when > 0
}

// Result is the full record of one run attempt, including runs that
// were blocked before a process was spawned.
type Result struct {
	RunID           string
	Ran             bool
	Command         []string
	ExitCode        int
	Stdout          string
	Stderr          string
	Duration        time.Duration
	TimedOut        bool
	Blocked         bool
	Error           string
	StdoutTruncated bool
	StderrTruncated bool
	StartedAt       time.Time
	FinishedAt      time.Time
	Purpose         string
}

// CommandLog converts the result into its artifact payload form.
func (r Result) CommandLog() *container.CommandLog {
	return &container.CommandLog{
		RunID:           r.RunID,
		Ran:             r.Ran,
		Command:         strings.Join(r.Command, " "),
		ExitCode:        r.ExitCode,
		Stdout:          r.Stdout,
		Stderr:          r.Stderr,
		DurationSeconds: r.Duration.Seconds(),
		TimedOut:        r.TimedOut,
		Blocked:         r.Blocked,
		Error:           r.Error,
		StdoutTruncated: r.StdoutTruncated,
		StderrTruncated: r.StderrTruncated,
		StartedAt:       r.StartedAt.UTC().Format(time.RFC3339Nano),
		FinishedAt:      r.FinishedAt.UTC().Format(time.RFC3339Nano),
		Purpose:         r.Purpose,
	}
}

// Notifier receives run lifecycle notifications. CommandStarted fires
// only when a process is actually about to spawn; blocked runs report a
// finished record alone.
type Notifier interface {
	CommandStarted(runID string, command []string, purpose string)
	CommandFinished(res Result)
}

// Config tunes a Runner.
type Config struct {
	WorkspaceRoot  string
	Allowlist      []string // nil means DefaultAllowlist
	Timeout        time.Duration
	MaxOutputBytes int
}

// Runner executes allowlisted commands inside one workspace root.
type Runner struct {
	root      string
	allowed   map[string]bool
	timeout   time.Duration
	maxOutput int
	notify    Notifier
}

// NewRunner creates a Runner. The workspace root must already exist.
func NewRunner(cfg Config) (*Runner, error) {
	root, err := filepath.Abs(cfg.WorkspaceRoot)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root: %w", err)
	}
	list := cfg.Allowlist
	if list == nil {
		list = DefaultAllowlist()
	}
	allowed := make(map[string]bool, len(list))
	for _, name := range list {
		allowed[name] = true
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	maxOutput := cfg.MaxOutputBytes
	if maxOutput <= 0 {
		maxOutput = DefaultMaxOutputBytes
	}
	return &Runner{
		root:      root,
		allowed:   allowed,
		timeout:   timeout,
		maxOutput: maxOutput,
	}, nil
}

// SetNotifier registers the lifecycle callback target.
func (r *Runner) SetNotifier(n Notifier) { r.notify = n }

// Run executes one command. It never returns an error for command-level
// failures; those are captured in the Result so review reports stay
// classifiable.
func (r *Runner) Run(ctx context.Context, spec Spec) Result {
	res := Result{
		RunID:    uuid.NewString(),
		Command:  append([]string(nil), spec.Command...),
		ExitCode: -1,
		Purpose:  spec.Purpose,
	}
	now := time.Now()
	res.StartedAt = now
	res.FinishedAt = now

	if len(spec.Command) == 0 {
		res.Blocked = true
		res.Error = "command_not_allowed"
		return r.finish(res)
	}
	if !r.allowed[filepath.Base(spec.Command[0])] {
		slog.Warn("Blocked disallowed command",
			"run_id", res.RunID, "command", spec.Command[0])
		res.Blocked = true
		res.Error = "command_not_allowed"
		return r.finish(res)
	}

	dir, err := r.resolveDir(spec.Dir)
	if err != nil {
		res.Blocked = true
		res.Error = err.Error()
		return r.finish(res)
	}

	timeout := spec.Timeout
	if timeout <= 0 {
		timeout = r.timeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, spec.Command[0], spec.Command[1:]...)
	cmd.Dir = dir
	cmd.Env = mergedEnv(spec.Env)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if r.notify != nil {
		r.notify.CommandStarted(res.RunID, res.Command, res.Purpose)
	}
	res.StartedAt = time.Now()
	runErr := cmd.Run()
	res.FinishedAt = time.Now()
	res.Duration = res.FinishedAt.Sub(res.StartedAt)

	res.Stdout, res.StdoutTruncated = truncateUTF8(stdout.String(), r.maxOutput)
	res.Stderr, res.StderrTruncated = truncateUTF8(stderr.String(), r.maxOutput)

	switch {
	case runErr == nil:
		res.Ran = true
		res.ExitCode = 0
	case runCtx.Err() == context.DeadlineExceeded:
		res.TimedOut = true
		res.Error = "timeout"
		slog.Warn("Command timed out",
			"run_id", res.RunID, "command", spec.Command[0], "timeout", timeout)
	case errors.Is(runErr, exec.ErrNotFound):
		res.Error = "command_not_found"
	default:
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			res.Ran = true
			res.ExitCode = exitErr.ExitCode()
		} else {
			res.Error = runErr.Error()
		}
	}

	slog.Debug("Command finished",
		"run_id", res.RunID,
		"command", spec.Command[0],
		"exit_code", res.ExitCode,
		"duration", res.Duration,
		"timed_out", res.TimedOut)
	return r.finish(res)
}

func (r *Runner) finish(res Result) Result {
	if r.notify != nil {
		r.notify.CommandFinished(res)
	}
	return res
}

// resolveDir joins the requested directory onto the workspace root and
// rejects anything that escapes it.
func (r *Runner) resolveDir(dir string) (string, error) {
	if dir == "" {
		return r.root, nil
	}
	joined := dir
	if !filepath.IsAbs(joined) {
		joined = filepath.Join(r.root, joined)
	}
	resolved, err := filepath.Abs(joined)
	if err != nil {
		return "", errors.New("cwd_outside_workspace")
	}
	rel, err := filepath.Rel(r.root, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.New("cwd_outside_workspace")
	}
	return resolved, nil
}

func mergedEnv(extra map[string]string) []string {
	env := os.Environ()
	for k, v := range extra {
		env = append(env, k+"="+v)
	}
	return env
}

// truncateUTF8 caps s at max bytes without splitting a rune.
func truncateUTF8(s string, max int) (string, bool) {
	if len(s) <= max {
		return s, false
	}
	cut := s[:max]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut, true
}
