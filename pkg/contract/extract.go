package contract

import (
	"errors"
	"strings"
)

// ErrNoJSONObject indicates no balanced JSON object was found in the text.
var ErrNoJSONObject = errors.New("no JSON object found in response")

// StripCodeFences removes a single wrapping Markdown code fence
// (``` or ```json) if the whole text is fenced. Partial fences are left
// alone; the balanced scanner handles those.
func StripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return s
	}
	// Drop the opening fence line (``` or ```json etc.).
	nl := strings.IndexByte(trimmed, '\n')
	if nl < 0 {
		return s
	}
	body := trimmed[nl+1:]
	end := strings.LastIndex(body, "```")
	if end < 0 {
		return s
	}
	return body[:end]
}

// FirstJSONObject scans text for the first balanced JSON object and
// returns it along with the index just past its closing brace. The scan
// tracks string and escape state explicitly so braces inside string
// literals do not confuse the depth counter.
func FirstJSONObject(s string) (string, int, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return s[start : i+1], i + 1, nil
			}
		}
	}
	return "", 0, ErrNoJSONObject
}

// ExtractJSONObject is the robust extraction used on raw LLM output:
// strip a wrapping code fence, then take the first balanced object.
func ExtractJSONObject(raw string) (string, error) {
	obj, _, err := FirstJSONObject(StripCodeFences(raw))
	return obj, err
}
