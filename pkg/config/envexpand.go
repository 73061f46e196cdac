package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv expands environment variables in YAML content using Go
// template syntax: {{.LLM_API_KEY}} becomes the value of LLM_API_KEY.
// The {{.VAR}} form is used instead of $VAR so literal dollar signs in
// prompts and regex rules survive untouched. Missing variables expand
// to the empty string; content without template syntax passes through
// unchanged.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("codex").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	envMap := make(map[string]string)
	for _, kv := range os.Environ() {
		if idx := strings.IndexByte(kv, '='); idx > 0 {
			envMap[kv[:idx]] = kv[idx+1:]
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}
	return buf.Bytes()
}
