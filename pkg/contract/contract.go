// Package contract defines the machine-checkable shape of an LLM response
// for a given task mode, validates parsed responses against it, and builds
// the one-shot repair prompt used when a response violates the contract.
package contract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Mode classifies a user task and fixes its output contract.
type Mode string

// Task modes.
const (
	ModeMicroFile Mode = "micro_file" // single-file exact-JSON task
	ModeSmallCode Mode = "small_code" // few-file change
	ModeProject   Mode = "project"    // full pipeline
)

// OutputContract is the machine-checkable response shape for a mode.
type OutputContract struct {
	ExactJSONOnly          bool     `json:"exact_json_only"`
	AllowedFilesCount      int      `json:"allowed_files_count,omitempty"` // 0 = unbounded
	AllowedPaths           []string `json:"allowed_paths,omitempty"`       // glob patterns
	NoExtraFiles           bool     `json:"no_extra_files"`
	NoExtraTextOutsideJSON bool     `json:"no_extra_text_outside_json"`
	RequiredTopLevelKeys   []string `json:"required_json_top_level_keys"`
	StrictTopLevelKeysOnly bool     `json:"strict_top_level_keys_only"`
	MaxFilesPerIteration   int      `json:"max_files_per_iteration,omitempty"`
	ForbidMarkdownFences   bool     `json:"forbid_markdown_fences"`
}

// ForMode returns the contract fixed by a task mode.
func ForMode(m Mode) OutputContract {
	c := OutputContract{
		RequiredTopLevelKeys: []string{"files"},
		NoExtraFiles:         true,
	}
	switch m {
	case ModeMicroFile:
		c.ExactJSONOnly = true
		c.NoExtraTextOutsideJSON = true
		c.ForbidMarkdownFences = true
		c.AllowedFilesCount = 1
		c.StrictTopLevelKeysOnly = true
	case ModeSmallCode:
		c.NoExtraTextOutsideJSON = true
		c.MaxFilesPerIteration = 5
	case ModeProject:
		c.MaxFilesPerIteration = 10
	}
	return c
}

// FileEntry is one entry of the "files" array in a response.
type FileEntry struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Response is the parsed form of a contract-conforming LLM response.
type Response struct {
	Files []FileEntry    `json:"files"`
	Extra map[string]any `json:"-"` // additional top-level keys, if allowed
}

// ViolationError carries every contract violation found in one response.
// Violations are collected, not fail-fast, so the repair prompt can list
// them all at once.
type ViolationError struct {
	Violations []string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("output contract violated: %s", strings.Join(e.Violations, "; "))
}

// Validate checks raw response text and returns the parsed response.
// The raw text is checked first (exact-JSON, nothing outside the object),
// then the parsed object's shape.
func Validate(c OutputContract, raw string) (*Response, error) {
	var violations []string

	candidate := raw
	if c.ExactJSONOnly {
		// The raw text must be a single JSON value with nothing around it.
		trimmed := strings.TrimSpace(raw)
		dec := json.NewDecoder(strings.NewReader(trimmed))
		var probe any
		if err := dec.Decode(&probe); err != nil {
			violations = append(violations, "response is not a single JSON value")
		} else if dec.More() {
			violations = append(violations, "response contains trailing content after the JSON value")
		} else if _, ok := probe.(map[string]any); !ok {
			violations = append(violations, "top-level JSON value is not an object")
		}
		if c.ForbidMarkdownFences && strings.Contains(raw, "```") {
			violations = append(violations, "response wrapped in a markdown code fence")
		}
		candidate = trimmed
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &top); err != nil {
		// Even when the exact-JSON rule already failed, extract the first
		// balanced object so shape violations are reported alongside it.
		obj, exErr := ExtractJSONObject(raw)
		if exErr != nil {
			violations = append(violations, "no JSON object found in response")
			return nil, &ViolationError{Violations: violations}
		}
		candidate = obj
		if err := json.Unmarshal([]byte(candidate), &top); err != nil {
			violations = append(violations, fmt.Sprintf("JSON object does not parse: %v", err))
			return nil, &ViolationError{Violations: violations}
		}
	}

	for _, key := range c.RequiredTopLevelKeys {
		if _, ok := top[key]; !ok {
			violations = append(violations, fmt.Sprintf("missing required top-level key %q", key))
		}
	}
	if c.StrictTopLevelKeysOnly {
		for key := range top {
			if !containsString(c.RequiredTopLevelKeys, key) {
				violations = append(violations, fmt.Sprintf("unexpected top-level key %q", key))
			}
		}
	}

	resp := &Response{}
	if rawFiles, ok := top["files"]; ok {
		var files []FileEntry
		if err := json.Unmarshal(rawFiles, &files); err != nil {
			violations = append(violations, `"files" is not a list of {path, content} objects`)
		} else {
			resp.Files = files
			if c.AllowedFilesCount > 0 && len(files) != c.AllowedFilesCount {
				violations = append(violations, fmt.Sprintf(
					`"files" must contain exactly %d entry(ies), got %d`, c.AllowedFilesCount, len(files)))
			}
			if c.MaxFilesPerIteration > 0 && len(files) > c.MaxFilesPerIteration {
				violations = append(violations, fmt.Sprintf(
					`"files" exceeds the per-iteration limit of %d`, c.MaxFilesPerIteration))
			}
			if len(c.AllowedPaths) > 0 {
				for _, f := range files {
					if !pathAllowed(c.AllowedPaths, f.Path) {
						violations = append(violations, fmt.Sprintf("file path %q is not in the allowed set", f.Path))
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		return nil, &ViolationError{Violations: violations}
	}
	return resp, nil
}

// pathAllowed reports whether path matches at least one allowed pattern.
// Patterns are doublestar globs; a pattern with no metacharacters is an
// exact match.
func pathAllowed(patterns []string, path string) bool {
	for _, pat := range patterns {
		if ok, err := doublestar.Match(pat, path); err == nil && ok {
			return true
		}
	}
	return false
}

// BuildRepairPrompt formats the one-shot correction request sent back to
// the model after a contract violation.
func BuildRepairPrompt(c OutputContract, violations []string) string {
	var b strings.Builder
	b.WriteString("Your previous response violated the required output format:\n")
	for _, v := range violations {
		b.WriteString("- ")
		b.WriteString(v)
		b.WriteString("\n")
	}
	b.WriteString("\nRespond again with ONLY a single JSON object")
	if len(c.RequiredTopLevelKeys) > 0 {
		b.WriteString(fmt.Sprintf(" with top-level keys %s", strings.Join(quoteAll(c.RequiredTopLevelKeys), ", ")))
	}
	b.WriteString(`. The "files" key must be a list of {"path": ..., "content": ...} objects.`)
	if c.AllowedFilesCount > 0 {
		b.WriteString(fmt.Sprintf(" Include exactly %d file(s).", c.AllowedFilesCount))
	}
	if len(c.AllowedPaths) > 0 {
		b.WriteString(fmt.Sprintf(" Only these paths are allowed: %s.", strings.Join(c.AllowedPaths, ", ")))
	}
	if c.NoExtraTextOutsideJSON {
		b.WriteString(" Do not add any text, explanation, or markdown fences outside the JSON object.")
	}
	return b.String()
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
