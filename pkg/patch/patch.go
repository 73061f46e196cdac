// Package patch turns a completed Container into exportable results:
// a unified diff of baseline vs. final files, a git-apply bundle, and a
// reproduction manifest.
package patch

import (
	"encoding/json"
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/forgeproject/forge/pkg/container"
)

const producedBy = container.Role("patch_builder")

const diffContextLines = 3

// BuildDiff diffs the Container's captured baseline against its final
// files. Text files get a unified-diff block; binary files are recorded
// by path only.
func BuildDiff(c *container.Container) (*container.PatchDiff, error) {
	baseline := c.Baseline()
	final := c.Files()

	paths := make(map[string]bool, len(baseline)+len(final))
	for p := range baseline {
		paths[p] = true
	}
	for p := range final {
		paths[p] = true
	}
	ordered := make([]string, 0, len(paths))
	for p := range paths {
		ordered = append(ordered, p)
	}
	sort.Strings(ordered)

	var diff strings.Builder
	result := &container.PatchDiff{}
	for _, p := range ordered {
		before, hadBefore := baseline[p]
		after, hasAfter := final[p]

		var change container.FileChange
		change.Path = p
		switch {
		case !hadBefore:
			change.Change = "added"
		case !hasAfter:
			change.Change = "removed"
		case before.SHA256 == container.HashBytes(after):
			continue
		default:
			change.Change = "modified"
		}
		change.Binary = (hadBefore && before.IsBinary) || (hasAfter && container.IsBinary(after))

		result.ChangedFiles = append(result.ChangedFiles, change)
		switch change.Change {
		case "added":
			result.Stats.Added++
		case "modified":
			result.Stats.Modified++
		case "removed":
			result.Stats.Removed++
		}
		if change.Binary {
			result.Stats.BinaryFiles++
			fmt.Fprintf(&diff, "diff --git a/%s b/%s\nBinary files differ\n", p, p)
			continue
		}
		result.Stats.TextFiles++

		block, err := unifiedBlock(p, before.Content, after, change.Change)
		if err != nil {
			return nil, fmt.Errorf("diffing %s: %w", p, err)
		}
		diff.WriteString(block)
	}

	result.Diff = diff.String()
	result.Stats.ChangedTotal = len(result.ChangedFiles)
	result.Stats.DiffLines = strings.Count(result.Diff, "\n")
	return result, nil
}

func unifiedBlock(path string, before, after []byte, change string) (string, error) {
	from, to := "a/"+path, "b/"+path
	if change == "added" {
		from = "/dev/null"
	}
	if change == "removed" {
		to = "/dev/null"
	}
	body, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: from,
		ToFile:   to,
		Context:  diffContextLines,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("diff --git a/%s b/%s\n%s", path, path, body), nil
}

const applyScript = `#!/usr/bin/env bash
set -euo pipefail
cd "$(dirname "$0")"

if ! git diff --quiet || ! git diff --cached --quiet; then
    echo "error: working tree is not clean; commit or stash first" >&2
    exit 1
fi

git apply --index patch.diff
echo "patch applied and staged; review with: git status"
`

const applyReadme = `# Applying this patch

The bundle contains:

- ` + "`patch.diff`" + ` - unified diff of every generated change
- ` + "`apply.sh`" + ` - helper that applies the diff with ` + "`git apply --index`" + `
- ` + "`changed_files.json`" + ` - machine-readable list of changed paths

From the root of a clean git checkout:

    bash apply.sh

Or apply manually:

    git apply --index patch.diff

Binary files are listed in the diff by path only and must be copied in
separately.
`

// BuildGitExport packages the diff into a self-contained apply bundle.
func BuildGitExport(diff *container.PatchDiff) (*container.GitExportBundle, error) {
	changed, err := json.MarshalIndent(diff.ChangedFiles, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding changed files: %w", err)
	}
	return &container.GitExportBundle{
		Files: map[string]string{
			"patch.diff":         diff.Diff,
			"apply.sh":           applyScript,
			"README_APPLY.md":    applyReadme,
			"changed_files.json": string(changed) + "\n",
		},
	}, nil
}

// BuildReproManifest collects run provenance: runtime and tool
// versions, the requirements hash, the codex/template hashes, and the
// final review verdict.
func BuildReproManifest(c *container.Container, toolVersions map[string]string) *container.ReproManifest {
	meta := c.Meta()
	m := &container.ReproManifest{
		GoVersion:    runtime.Version(),
		ToolVersions: toolVersions,
		CodexHash:    meta.CodexHash,
		TemplateID:   meta.TemplateID,
		TemplateHash: meta.TemplateHash,
	}
	if reqs, ok := c.File("requirements.txt"); ok {
		m.RequirementsHash = container.HashBytes(reqs)
	}
	if a, ok := c.LatestArtifact(container.KindReviewReport); ok {
		if report, ok := a.Payload.(*container.ReviewReport); ok {
			m.ReviewSummary = fmt.Sprintf("%s (%d errors, %d warnings)",
				report.Status, len(report.Issues), len(report.Warnings))
		}
	}
	return m
}

// Attach computes all three export artifacts and appends them to the
// Container.
func Attach(c *container.Container, toolVersions map[string]string) error {
	diff, err := BuildDiff(c)
	if err != nil {
		return err
	}
	c.AddArtifact(diff, producedBy)
	bundle, err := BuildGitExport(diff)
	if err != nil {
		return err
	}
	c.AddArtifact(bundle, producedBy)
	c.AddArtifact(BuildReproManifest(c, toolVersions), producedBy)
	return nil
}
