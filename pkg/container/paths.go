package container

import (
	"fmt"
	"path"
	"strings"
)

// RejectedPathError indicates a file path that failed validation.
// Paths must be relative POSIX paths without traversal segments.
type RejectedPathError struct {
	Path   string
	Reason string
}

func (e *RejectedPathError) Error() string {
	return fmt.Sprintf("rejected path %q: %s", e.Path, e.Reason)
}

// NormalizePath validates and canonicalizes a Container file path.
// Returns a RejectedPathError for empty, absolute, or traversing paths.
func NormalizePath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", &RejectedPathError{Path: p, Reason: "empty path"}
	}
	// Windows-style separators and drive letters are never valid here.
	if strings.Contains(p, "\\") {
		return "", &RejectedPathError{Path: p, Reason: "backslash separator"}
	}
	if strings.HasPrefix(p, "/") {
		return "", &RejectedPathError{Path: p, Reason: "absolute path"}
	}
	cleaned := path.Clean(p)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", &RejectedPathError{Path: p, Reason: "path escapes project root"}
	}
	for _, seg := range strings.Split(cleaned, "/") {
		if seg == ".." {
			return "", &RejectedPathError{Path: p, Reason: "path traversal segment"}
		}
	}
	return cleaned, nil
}
