package orchestrator

import (
	"regexp"
	"strings"

	"github.com/forgeproject/forge/pkg/contract"
)

// filePattern matches explicit file mentions in a task description.
var filePattern = regexp.MustCompile(`\b[\w./-]+\.(py|md|txt|toml|cfg|ini|json|ya?ml)\b`)

// microHints are phrasings that mark a task as a single-file edit.
var microHints = []string{
	"single file", "one file", "a file that", "just a file",
	"single script", "one script", "a script that",
}

// ClassifyMode maps a task description to its mode. Template-based
// tasks are always full projects; otherwise the description's size and
// the number of files it names decide.
func ClassifyMode(description, templateID string) contract.Mode {
	if templateID != "" {
		return contract.ModeProject
	}

	lower := strings.ToLower(description)
	mentioned := len(filePattern.FindAllString(description, -1))

	for _, hint := range microHints {
		if strings.Contains(lower, hint) {
			return contract.ModeMicroFile
		}
	}
	if mentioned == 1 && len(description) < 200 {
		return contract.ModeMicroFile
	}
	if mentioned > 0 && mentioned <= 3 {
		return contract.ModeSmallCode
	}
	if len(description) < 200 {
		return contract.ModeSmallCode
	}
	return contract.ModeProject
}
