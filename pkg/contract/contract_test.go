package contract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, false},
		{"preamble", `Sure! Here you go: {"a":1}`, `{"a":1}`, false},
		{"trailing prose", `{"a":1} hope that helps`, `{"a":1}`, false},
		{"nested", `{"a":{"b":[1,{"c":2}]}}`, `{"a":{"b":[1,{"c":2}]}}`, false},
		{"braces in strings", `{"text":"closing } inside"}`, `{"text":"closing } inside"}`, false},
		{"escaped quotes", `{"text":"she said \"hi\" {x}"}`, `{"text":"she said \"hi\" {x}"}`, false},
		{"unbalanced", `{"a":1`, "", true},
		{"no object", `nothing here`, "", true},
		{"two objects takes first", `{"a":1}{"b":2}`, `{"a":1}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := FirstJSONObject(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNoJSONObject)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripCodeFences(t *testing.T) {
	fenced := "```json\n{\"files\":[]}\n```"
	assert.Equal(t, "{\"files\":[]}\n", StripCodeFences(fenced))

	plain := `{"files":[]}`
	assert.Equal(t, plain, StripCodeFences(plain))

	// A lone opening fence is left for the balanced scanner.
	partial := "```json\n{\"files\":[]}"
	assert.Equal(t, partial, StripCodeFences(partial))
}

func TestValidate_MicroFileExact(t *testing.T) {
	c := ForMode(ModeMicroFile)

	resp, err := Validate(c, `{"files":[{"path":"hello.txt","content":"hi"}]}`)
	require.NoError(t, err)
	require.Len(t, resp.Files, 1)
	assert.Equal(t, "hello.txt", resp.Files[0].Path)
	assert.Equal(t, "hi", resp.Files[0].Content)
}

func TestValidate_MicroFileRejectsPreamble(t *testing.T) {
	c := ForMode(ModeMicroFile)

	_, err := Validate(c, `Sure! {"files":[{"path":"hello.txt","content":"hi"}]}`)
	require.Error(t, err)
	var ve *ViolationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Violations)

	// The repair prompt names the violations and restates the contract.
	prompt := BuildRepairPrompt(c, ve.Violations)
	assert.Contains(t, prompt, "ONLY a single JSON object")
	assert.Contains(t, prompt, `"files"`)
	for _, v := range ve.Violations {
		assert.Contains(t, prompt, v)
	}
}

func TestValidate_MicroFileRejectsFence(t *testing.T) {
	c := ForMode(ModeMicroFile)
	_, err := Validate(c, "```json\n{\"files\":[{\"path\":\"a\",\"content\":\"b\"}]}\n```")
	require.Error(t, err)
}

func TestValidate_FileCountAndKeys(t *testing.T) {
	c := ForMode(ModeMicroFile)

	_, err := Validate(c, `{"files":[{"path":"a","content":"1"},{"path":"b","content":"2"}]}`)
	var ve *ViolationError
	require.ErrorAs(t, err, &ve)
	assert.True(t, hasViolationContaining(ve, "exactly 1"))

	_, err = Validate(c, `{"files":[{"path":"a","content":"1"}],"notes":"extra"}`)
	require.ErrorAs(t, err, &ve)
	assert.True(t, hasViolationContaining(ve, `unexpected top-level key "notes"`))

	_, err = Validate(c, `{"stuff":[]}`)
	require.ErrorAs(t, err, &ve)
	assert.True(t, hasViolationContaining(ve, `missing required top-level key "files"`))
}

func TestValidate_AllowedPaths(t *testing.T) {
	c := ForMode(ModeSmallCode)
	c.AllowedPaths = []string{"app/**", "README.md"}

	resp, err := Validate(c, `{"files":[{"path":"app/api/routes.py","content":"x"},{"path":"README.md","content":"y"}]}`)
	require.NoError(t, err)
	assert.Len(t, resp.Files, 2)

	_, err = Validate(c, `{"files":[{"path":"secrets/key.pem","content":"x"}]}`)
	var ve *ViolationError
	require.ErrorAs(t, err, &ve)
	assert.True(t, hasViolationContaining(ve, "not in the allowed set"))
}

func TestValidate_ProjectModeToleratesProse(t *testing.T) {
	c := ForMode(ModeProject)

	raw := "Here is the implementation:\n```json\n{\"files\":[{\"path\":\"main.py\",\"content\":\"pass\"}]}\n```"
	resp, err := Validate(c, raw)
	require.NoError(t, err)
	require.Len(t, resp.Files, 1)
	assert.Equal(t, "main.py", resp.Files[0].Path)
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	c := ForMode(ModeMicroFile)
	c.AllowedPaths = []string{"hello.txt"}

	_, err := Validate(c, `junk {"files":[{"path":"a","content":"1"},{"path":"b","content":"2"}],"extra":true} junk`)
	var ve *ViolationError
	require.ErrorAs(t, err, &ve)
	// Multiple independent violations are all reported.
	assert.GreaterOrEqual(t, len(ve.Violations), 3)
}

func hasViolationContaining(ve *ViolationError, substr string) bool {
	for _, v := range ve.Violations {
		if strings.Contains(v, substr) {
			return true
		}
	}
	return false
}
