package config

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Task modes recognized by the workflow.
const (
	ModeMicroFile = "micro_file"
	ModeSmallCode = "small_code"
	ModeProject   = "project"
)

// Workflow stages.
const (
	StageResearch       = "research"
	StageDesign         = "design"
	StageImplementation = "implementation"
	StageReview         = "review"
)

// Codex is the workflow rulebook: which stages each task mode runs,
// iteration caps, and per-role prompting rules. A user codex.yaml is
// merged over the built-in document; the result is immutable and its
// hash is recorded on every task for reproducibility.
type Codex struct {
	Version string               `yaml:"version"`
	Modes   map[string]ModePlan  `yaml:"modes"`
	Roles   map[string]RoleRules `yaml:"roles"`
}

// ModePlan describes the stage sequence for one task mode.
type ModePlan struct {
	Stages        []string `yaml:"stages"`
	MaxIterations int      `yaml:"max_iterations"`
	RequireReview bool     `yaml:"require_review"`
}

// RoleRules holds the prompting rules for one LLM role.
type RoleRules struct {
	SystemPrompt string   `yaml:"system_prompt"`
	Rules        []string `yaml:"rules,omitempty"`

	// Temperature overrides the global LLM temperature when set.
	Temperature *float64 `yaml:"temperature,omitempty"`
}

// BuiltinCodex returns the default workflow document.
func BuiltinCodex() *Codex {
	return &Codex{
		Version: "1",
		Modes: map[string]ModePlan{
			ModeProject: {
				Stages:        []string{StageResearch, StageDesign, StageImplementation, StageReview},
				MaxIterations: 15,
				RequireReview: true,
			},
			ModeSmallCode: {
				Stages:        []string{StageImplementation, StageReview},
				MaxIterations: 8,
				RequireReview: true,
			},
			ModeMicroFile: {
				Stages:        []string{StageImplementation},
				MaxIterations: 3,
				RequireReview: false,
			},
		},
		Roles: map[string]RoleRules{
			"researcher": {
				SystemPrompt: "You are a software requirements analyst. Read the task description and produce precise, testable requirements. When the description is ambiguous, list clarification questions instead of guessing.",
				Rules: []string{
					"Every requirement must be verifiable from the delivered code.",
					"Ask at most three clarification questions, only when the answer changes the design.",
				},
			},
			"designer": {
				SystemPrompt: "You are a software architect. Turn the requirements into a concrete target architecture: modules, files, and the responsibilities of each.",
				Rules: []string{
					"Prefer the smallest design that satisfies every requirement.",
					"Name every file the implementation will create.",
				},
			},
			"coder": {
				SystemPrompt: "You are a senior Python engineer. Produce complete file contents that implement the design. Respond with a single JSON object and nothing else.",
				Rules: []string{
					"Emit full file contents, never fragments or diffs.",
					"Follow the target architecture file list exactly.",
				},
			},
			"reviewer": {
				SystemPrompt: "You are a meticulous code reviewer. Judge the produced files against the requirements and the architecture, and report every defect with its location.",
				Rules: []string{
					"Classify each finding as an error or a warning.",
					"Reject only for findings that break the requirements.",
				},
			},
			"planner": {
				SystemPrompt: "You are a delivery planner. Split the architecture into an ordered list of small implementation steps.",
			},
		},
	}
}

// LoadCodex returns the effective codex and its content hash. With an
// empty path (or a missing file at the default path) the built-in
// document is used as-is; otherwise the user document is merged over
// the built-in one, user values winning.
func LoadCodex(path string) (*Codex, string, error) {
	codex := BuiltinCodex()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, "", fmt.Errorf("reading codex %s: %w", path, err)
			}
		} else {
			var user Codex
			if err := yaml.Unmarshal(ExpandEnv(data), &user); err != nil {
				return nil, "", fmt.Errorf("parsing codex %s: %w", path, err)
			}
			if err := mergo.Merge(codex, user, mergo.WithOverride); err != nil {
				return nil, "", fmt.Errorf("merging codex %s: %w", path, err)
			}
		}
	}

	if err := codex.validate(); err != nil {
		return nil, "", err
	}

	hash, err := codex.Hash()
	if err != nil {
		return nil, "", err
	}
	return codex, hash, nil
}

// Plan returns the stage plan for a task mode.
func (c *Codex) Plan(mode string) (ModePlan, error) {
	plan, ok := c.Modes[mode]
	if !ok {
		return ModePlan{}, fmt.Errorf("codex has no plan for mode %q", mode)
	}
	return plan, nil
}

// Role returns the prompting rules for a role name.
func (c *Codex) Role(name string) (RoleRules, error) {
	rules, ok := c.Roles[name]
	if !ok {
		return RoleRules{}, fmt.Errorf("codex has no rules for role %q", name)
	}
	return rules, nil
}

// Hash returns the hex SHA-256 of the canonical YAML encoding. Two
// processes loading the same effective codex compute the same hash.
func (c *Codex) Hash() (string, error) {
	canonical, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encoding codex for hashing: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func (c *Codex) validate() error {
	if len(c.Modes) == 0 {
		return errors.New("codex defines no modes")
	}

	modes := make([]string, 0, len(c.Modes))
	for mode := range c.Modes {
		modes = append(modes, mode)
	}
	sort.Strings(modes)

	for _, mode := range modes {
		plan := c.Modes[mode]
		if len(plan.Stages) == 0 {
			return fmt.Errorf("codex mode %q has no stages", mode)
		}
		if plan.MaxIterations <= 0 {
			return fmt.Errorf("codex mode %q has non-positive max_iterations", mode)
		}
		for _, stage := range plan.Stages {
			switch stage {
			case StageResearch, StageDesign, StageImplementation, StageReview:
			default:
				return fmt.Errorf("codex mode %q names unknown stage %q", mode, stage)
			}
		}
		if plan.RequireReview && plan.Stages[len(plan.Stages)-1] != StageReview {
			return fmt.Errorf("codex mode %q requires review but does not end with the review stage", mode)
		}
	}

	for _, role := range []string{"researcher", "designer", "coder", "reviewer"} {
		rules, ok := c.Roles[role]
		if !ok || rules.SystemPrompt == "" {
			return fmt.Errorf("codex is missing a system prompt for role %q", role)
		}
	}
	return nil
}
