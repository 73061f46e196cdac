// Package container holds the per-task aggregate: files, typed artifacts,
// history log, and metadata. The Container is the single source of truth
// for a task; the currently active role is its only writer.
package container

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// State is the orchestrator state machine position.
type State string

// Container states.
const (
	StateResearch       State = "research"
	StateDesign         State = "design"
	StateImplementation State = "implementation"
	StateReview         State = "review"
	StateComplete       State = "complete"
	StateError          State = "error"
)

// Role names the pipeline roles. Used for role-scoped context views and
// usage attribution.
type Role string

// Pipeline roles.
const (
	RoleResearcher Role = "researcher"
	RoleDesigner   Role = "designer"
	RoleCoder      Role = "coder"
	RoleReviewer   Role = "reviewer"
	RolePlanner    Role = "planner"
)

// FileSink receives file mutations so an on-disk workspace can mirror the
// Container immediately. Content nil means the path was removed.
type FileSink interface {
	FileChanged(path string, content []byte) error
}

// BaselineFile is the immutable snapshot of one file taken at Container
// creation, used by the patch builder.
type BaselineFile struct {
	SHA256   string `json:"sha256"`
	Size     int    `json:"size"`
	Content  []byte `json:"content,omitempty"` // nil for binary files
	IsBinary bool   `json:"is_binary"`
}

// LLMCallRecord is one per-call usage entry.
type LLMCallRecord struct {
	Stage       string    `json:"stage"`
	Role        Role      `json:"role"`
	Provider    string    `json:"provider,omitempty"`
	Model       string    `json:"model,omitempty"`
	TokensIn    int       `json:"tokens_in"`
	TokensOut   int       `json:"tokens_out"`
	TotalTokens int       `json:"total_tokens"`
	DurationMS  int64     `json:"duration_ms,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// UsageSummary aggregates the per-call records.
type UsageSummary struct {
	TotalCalls     int `json:"total_calls"`
	TotalTokensIn  int `json:"total_tokens_in"`
	TotalTokensOut int `json:"total_tokens_out"`
	TotalTokens    int `json:"total_tokens"`
}

// Metadata is the Container's free-form bag, with the well-known keys
// promoted to typed fields.
type Metadata struct {
	Iterations    int             `json:"iterations"`
	MaxIterations int             `json:"max_iterations"`
	ActiveRole    Role            `json:"active_role,omitempty"`
	LLMUsage      []LLMCallRecord `json:"llm_usage,omitempty"`
	LLMSummary    UsageSummary    `json:"llm_usage_summary"`
	TemplateID    string          `json:"template_id,omitempty"`
	TemplateHash  string          `json:"template_hash,omitempty"`
	CodexHash     string          `json:"codex_hash,omitempty"`
	OwnerKeyHash  string          `json:"owner_key_hash,omitempty"`
	WorkspacePath string          `json:"workspace_path,omitempty"`
	RequestID     string          `json:"request_id,omitempty"`
	Extra         map[string]any  `json:"extra,omitempty"`
}

// Container is the per-task aggregate.
type Container struct {
	mu sync.Mutex

	ProjectID string

	files     map[string][]byte
	artifacts map[Kind][]Artifact
	history   []HistoryEntry

	state       State
	progress    float64
	currentTask string

	targetArchitecture *ArchitectureDoc
	meta               Metadata
	baseline           map[string]BaselineFile

	fileSink FileSink

	createdAt time.Time
	updatedAt time.Time
}

// New creates an empty Container in the research state.
func New(projectID string) *Container {
	now := time.Now().UTC()
	return &Container{
		ProjectID: projectID,
		files:     make(map[string][]byte),
		artifacts: make(map[Kind][]Artifact),
		state:     StateResearch,
		createdAt: now,
		updatedAt: now,
	}
}

// SetFileSink installs the workspace mirror. Passing nil detaches it.
func (c *Container) SetFileSink(s FileSink) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fileSink = s
}

// AddFile validates the path and writes the content, notifying the sink.
func (c *Container) AddFile(p string, content []byte) error {
	return c.addFile(p, content, true)
}

// AddFileQuiet writes without notifying the sink. Used when syncing disk
// state back into the Container after tool runs, where re-notifying would
// rewrite the file that was just read.
func (c *Container) AddFileQuiet(p string, content []byte) error {
	return c.addFile(p, content, false)
}

func (c *Container) addFile(p string, content []byte, notify bool) error {
	norm, err := NormalizePath(p)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.files[norm] = append([]byte(nil), content...)
	c.touch()
	c.appendHistory("file_write", map[string]any{"path": norm, "size": len(content)})
	sink := c.fileSink
	c.mu.Unlock()

	if notify && sink != nil {
		return sink.FileChanged(norm, content)
	}
	return nil
}

// RemoveFile deletes a file, notifying the sink. Removing a missing path
// is a no-op.
func (c *Container) RemoveFile(p string) error {
	return c.removeFile(p, true)
}

// RemoveFileQuiet deletes without notifying the sink.
func (c *Container) RemoveFileQuiet(p string) error {
	return c.removeFile(p, false)
}

func (c *Container) removeFile(p string, notify bool) error {
	norm, err := NormalizePath(p)
	if err != nil {
		return err
	}
	c.mu.Lock()
	_, existed := c.files[norm]
	if existed {
		delete(c.files, norm)
		c.touch()
		c.appendHistory("file_remove", map[string]any{"path": norm})
	}
	sink := c.fileSink
	c.mu.Unlock()

	if existed && notify && sink != nil {
		return sink.FileChanged(norm, nil)
	}
	return nil
}

// File returns a copy of one file's content.
func (c *Container) File(p string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.files[p]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), b...), true
}

// Files returns a copy of the full file map.
func (c *Container) Files() map[string][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string][]byte, len(c.files))
	for p, b := range c.files {
		out[p] = append([]byte(nil), b...)
	}
	return out
}

// FilePaths returns the sorted list of file paths.
func (c *Container) FilePaths() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	paths := make([]string, 0, len(c.files))
	for p := range c.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// FileCount returns the number of files.
func (c *Container) FileCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.files)
}

// AddArtifact appends a typed artifact to its kind bucket and returns the
// artifact ID. Buckets for unknown kinds are created lazily.
func (c *Container) AddArtifact(p Payload, producer Role) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	a := Artifact{
		ID:        uuid.New().String(),
		Kind:      p.ArtifactKind(),
		Payload:   p,
		CreatedAt: time.Now().UTC(),
		CreatedBy: string(producer),
	}
	c.artifacts[a.Kind] = append(c.artifacts[a.Kind], a)
	c.touch()
	c.appendHistory("artifact_add", map[string]any{
		"artifact_id": a.ID,
		"kind":        string(a.Kind),
		"producer":    string(producer),
	})
	return a.ID
}

// Artifacts returns the ordered artifacts of one kind.
func (c *Container) Artifacts(kind Kind) []Artifact {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Artifact(nil), c.artifacts[kind]...)
}

// LatestArtifact returns the most recent artifact of a kind, if any.
func (c *Container) LatestArtifact(kind Kind) (Artifact, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	bucket := c.artifacts[kind]
	if len(bucket) == 0 {
		return Artifact{}, false
	}
	return bucket[len(bucket)-1], true
}

// AllArtifacts returns every artifact across kinds, ordered by creation.
func (c *Container) AllArtifacts() []Artifact {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []Artifact
	for _, bucket := range c.artifacts {
		out = append(out, bucket...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// UpdateState moves the state machine and optionally records the in-flight
// task description.
func (c *Container) UpdateState(s State, taskDesc string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
	if taskDesc != "" {
		c.currentTask = taskDesc
	}
	c.touch()
	c.appendHistory("state_change", map[string]any{"state": string(s)})
}

// State returns the current state.
func (c *Container) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsComplete reports whether the state machine reached a terminal state.
func (c *Container) IsComplete() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateComplete || c.state == StateError
}

// UpdateProgress sets the progress scalar, clamped to [0,1].
func (c *Container) UpdateProgress(x float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if x < 0 {
		x = 0
	}
	if x > 1 {
		x = 1
	}
	c.progress = x
	c.touch()
	c.appendHistory("progress", map[string]any{"progress": x})
}

// Progress returns the current progress scalar.
func (c *Container) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.progress
}

// CurrentTask returns the in-flight iteration description.
func (c *Container) CurrentTask() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTask
}

// SetCurrentTask records the in-flight iteration description.
func (c *Container) SetCurrentTask(desc string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTask = desc
	c.touch()
}

// SetTargetArchitecture stores the designer's output.
func (c *Container) SetTargetArchitecture(d *ArchitectureDoc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.targetArchitecture = d
	c.touch()
}

// TargetArchitecture returns the design document, or nil.
func (c *Container) TargetArchitecture() *ArchitectureDoc {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.targetArchitecture
}

// RecordLLMUsage appends a per-call record and updates the summary
// counters in the same critical section.
func (c *Container) RecordLLMUsage(rec LLMCallRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if rec.TotalTokens == 0 {
		rec.TotalTokens = rec.TokensIn + rec.TokensOut
	}
	c.meta.LLMUsage = append(c.meta.LLMUsage, rec)
	c.meta.LLMSummary.TotalCalls++
	c.meta.LLMSummary.TotalTokensIn += rec.TokensIn
	c.meta.LLMSummary.TotalTokensOut += rec.TokensOut
	c.meta.LLMSummary.TotalTokens += rec.TotalTokens
	c.touch()
	c.appendHistory("llm_usage", map[string]any{
		"stage":        rec.Stage,
		"role":         string(rec.Role),
		"total_tokens": rec.TotalTokens,
	})
}

// Meta returns a copy of the metadata bag.
func (c *Container) Meta() Metadata {
	c.mu.Lock()
	defer c.mu.Unlock()
	m := c.meta
	m.LLMUsage = append([]LLMCallRecord(nil), c.meta.LLMUsage...)
	return m
}

// MutateMeta applies fn to the metadata under the Container lock.
func (c *Container) MutateMeta(fn func(*Metadata)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.meta)
	c.touch()
}

// CaptureBaseline snapshots the current files as the immutable baseline.
// Calling it again after the baseline exists is a no-op.
func (c *Container) CaptureBaseline() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.baseline != nil {
		return
	}
	c.baseline = make(map[string]BaselineFile, len(c.files))
	for p, b := range c.files {
		bf := BaselineFile{
			SHA256:   HashBytes(b),
			Size:     len(b),
			IsBinary: IsBinary(b),
		}
		if !bf.IsBinary {
			bf.Content = append([]byte(nil), b...)
		}
		c.baseline[p] = bf
	}
}

// Baseline returns the baseline snapshot (nil until captured).
func (c *Container) Baseline() map[string]BaselineFile {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.baseline == nil {
		return nil
	}
	out := make(map[string]BaselineFile, len(c.baseline))
	for p, bf := range c.baseline {
		out[p] = bf
	}
	return out
}

// CreatedAt returns the Container creation time.
func (c *Container) CreatedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (c *Container) UpdatedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updatedAt
}

// touch must be called with the lock held.
func (c *Container) touch() {
	c.updatedAt = time.Now().UTC()
}

// HashBytes returns the hex SHA-256 of content.
func HashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// IsBinary reports whether content should be treated as opaque bytes:
// invalid UTF-8 or containing a NUL byte.
func IsBinary(b []byte) bool {
	if !utf8.Valid(b) {
		return true
	}
	for _, c := range b {
		if c == 0 {
			return true
		}
	}
	return false
}
