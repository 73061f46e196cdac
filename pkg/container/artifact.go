package container

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind identifies an artifact bucket. Unknown kinds round-trip as Opaque.
type Kind string

// Recognized artifact kinds.
const (
	KindRequirements           Kind = "requirements"
	KindArchitecture           Kind = "architecture"
	KindCode                   Kind = "code"
	KindReviewReport           Kind = "review_report"
	KindPatchDiff              Kind = "patch_diff"
	KindReproManifest          Kind = "repro_manifest"
	KindUsageReport            Kind = "usage_report"
	KindClarificationQuestions Kind = "clarification_questions"
	KindGitExport              Kind = "git_export"
	KindCommandLog             Kind = "command_log"
)

// Payload is the typed content of an artifact. One implementation per
// recognized kind, plus Opaque for forward compatibility.
type Payload interface {
	ArtifactKind() Kind
}

// Artifact is a typed, immutable document produced by a role.
type Artifact struct {
	ID        string         `json:"id"`
	Kind      Kind           `json:"kind"`
	Payload   Payload        `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
	CreatedBy string         `json:"created_by"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// RequirementsDoc is the researcher's structured output.
type RequirementsDoc struct {
	Summary       string   `json:"summary"`
	Requirements  []string `json:"requirements"`
	UserStories   []string `json:"user_stories,omitempty"`
	OpenQuestions []string `json:"open_questions,omitempty"`
}

func (RequirementsDoc) ArtifactKind() Kind { return KindRequirements }

// ArchitectureComponent maps a design component to the files it produces.
type ArchitectureComponent struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Files       []string `json:"files"`
}

// APIEndpoint describes one endpoint in the designed API surface.
type APIEndpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description,omitempty"`
}

// ArchitectureDoc is the designer's structured output. The coder and
// reviewer both consume it: the coder to pick sub-tasks, the reviewer to
// check that every declared file exists.
type ArchitectureDoc struct {
	Overview     string                  `json:"overview,omitempty"`
	Components   []ArchitectureComponent `json:"components"`
	APIEndpoints []APIEndpoint           `json:"api_endpoints,omitempty"`
	DataModel    map[string]any          `json:"data_model,omitempty"`
}

func (ArchitectureDoc) ArtifactKind() Kind { return KindArchitecture }

// AllFiles returns every file declared across components, in order.
func (d *ArchitectureDoc) AllFiles() []string {
	var out []string
	for _, c := range d.Components {
		out = append(out, c.Files...)
	}
	return out
}

// CodeFile records one file written by the coder.
type CodeFile struct {
	Path     string `json:"path"`
	Language string `json:"language,omitempty"`
	Size     int    `json:"size"`
	SHA256   string `json:"sha256,omitempty"`
}

func (CodeFile) ArtifactKind() Kind { return KindCode }

// ReviewIssue is one finding from the reviewer.
type ReviewIssue struct {
	Severity string `json:"severity"` // "error" or "warning"
	Path     string `json:"path,omitempty"`
	Line     int    `json:"line,omitempty"`
	Message  string `json:"message"`
}

// ReviewReport is the reviewer's verdict over the Container.
type ReviewReport struct {
	Status   string        `json:"status"` // approved, approved_with_warnings, rejected
	Passed   bool          `json:"passed"`
	Issues   []ReviewIssue `json:"issues,omitempty"`
	Warnings []ReviewIssue `json:"warnings,omitempty"`
	RunIDs   []string      `json:"run_ids,omitempty"`
	Tools    []CommandLog  `json:"tools,omitempty"`
	Final    bool          `json:"final,omitempty"`
}

func (ReviewReport) ArtifactKind() Kind { return KindReviewReport }

// FileChange classifies one path in a patch diff.
type FileChange struct {
	Path   string `json:"path"`
	Change string `json:"change"` // added, modified, removed
	Binary bool   `json:"binary,omitempty"`
}

// PatchStats aggregates patch-level counters.
type PatchStats struct {
	ChangedTotal int `json:"changed_total"`
	Added        int `json:"added"`
	Modified     int `json:"modified"`
	Removed      int `json:"removed"`
	TextFiles    int `json:"text_files"`
	BinaryFiles  int `json:"binary_files"`
	DiffLines    int `json:"diff_lines"`
}

// PatchDiff is the baseline-vs-final diff of a completed task.
type PatchDiff struct {
	Diff         string       `json:"diff"`
	ChangedFiles []FileChange `json:"changed_files"`
	Stats        PatchStats   `json:"stats"`
}

func (PatchDiff) ArtifactKind() Kind { return KindPatchDiff }

// ReproManifest captures enough environment detail to reproduce a run.
type ReproManifest struct {
	GoVersion        string            `json:"go_version,omitempty"`
	ToolVersions     map[string]string `json:"tool_versions,omitempty"`
	RequirementsHash string            `json:"requirements_hash,omitempty"`
	CodexHash        string            `json:"codex_hash,omitempty"`
	TemplateID       string            `json:"template_id,omitempty"`
	TemplateHash     string            `json:"template_hash,omitempty"`
	ReviewSummary    string            `json:"review_summary,omitempty"`
}

func (ReproManifest) ArtifactKind() Kind { return KindReproManifest }

// UsageReport summarizes LLM spend for one coder iteration.
type UsageReport struct {
	Stage       string `json:"stage"`
	Calls       int    `json:"calls"`
	TokensIn    int    `json:"tokens_in"`
	TokensOut   int    `json:"tokens_out"`
	TotalTokens int    `json:"total_tokens"`
}

func (UsageReport) ArtifactKind() Kind { return KindUsageReport }

// ClarificationQuestion is one question the pipeline needs answered
// before it can continue.
type ClarificationQuestion struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Type      string   `json:"type"` // "text" or "choice"
	Choices   []string `json:"choices,omitempty"`
	Required  bool     `json:"required"`
	Rationale string   `json:"rationale,omitempty"`
}

// ClarificationQuestions pauses the task until the user answers.
type ClarificationQuestions struct {
	Questions []ClarificationQuestion `json:"questions"`
}

func (ClarificationQuestions) ArtifactKind() Kind { return KindClarificationQuestions }

// GitExportBundle carries the files of the exportable git bundle.
type GitExportBundle struct {
	Files map[string]string `json:"files"` // filename → content
}

func (GitExportBundle) ArtifactKind() Kind { return KindGitExport }

// CommandLog is the full record of one sandboxed command run.
type CommandLog struct {
	RunID           string  `json:"run_id"`
	Ran             bool    `json:"ran"`
	Command         string  `json:"command"`
	ExitCode        int     `json:"exit_code"`
	Stdout          string  `json:"stdout"`
	Stderr          string  `json:"stderr"`
	DurationSeconds float64 `json:"duration_seconds"`
	TimedOut        bool    `json:"timed_out"`
	Blocked         bool    `json:"blocked"`
	Error           string  `json:"error,omitempty"`
	StdoutTruncated bool    `json:"stdout_truncated,omitempty"`
	StderrTruncated bool    `json:"stderr_truncated,omitempty"`
	StartedAt       string  `json:"started_at"`
	FinishedAt      string  `json:"finished_at"`
	Purpose         string  `json:"purpose,omitempty"`
}

func (CommandLog) ArtifactKind() Kind { return KindCommandLog }

// Opaque preserves artifacts of unrecognized kinds byte-for-byte.
type Opaque struct {
	Kind_ Kind            `json:"kind"`
	Raw   json.RawMessage `json:"raw"`
}

func (o Opaque) ArtifactKind() Kind { return o.Kind_ }

// decodePayload unmarshals raw artifact content into the typed payload
// for its kind. Unknown kinds are preserved as Opaque.
func decodePayload(kind Kind, raw json.RawMessage) (Payload, error) {
	var p Payload
	switch kind {
	case KindRequirements:
		p = &RequirementsDoc{}
	case KindArchitecture:
		p = &ArchitectureDoc{}
	case KindCode:
		p = &CodeFile{}
	case KindReviewReport:
		p = &ReviewReport{}
	case KindPatchDiff:
		p = &PatchDiff{}
	case KindReproManifest:
		p = &ReproManifest{}
	case KindUsageReport:
		p = &UsageReport{}
	case KindClarificationQuestions:
		p = &ClarificationQuestions{}
	case KindGitExport:
		p = &GitExportBundle{}
	case KindCommandLog:
		p = &CommandLog{}
	default:
		return Opaque{Kind_: kind, Raw: append(json.RawMessage(nil), raw...)}, nil
	}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("decoding %s payload: %w", kind, err)
	}
	return p, nil
}

// EncodePayload marshals a payload to its wire form. Opaque payloads
// emit their raw bytes unchanged.
func EncodePayload(p Payload) (json.RawMessage, error) {
	if o, ok := p.(Opaque); ok {
		return o.Raw, nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", p.ArtifactKind(), err)
	}
	return b, nil
}
