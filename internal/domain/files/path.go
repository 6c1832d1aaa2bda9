package files

import "strings"

// NormalizePath trims surrounding whitespace and rejects empty paths.
// The result is used as-is: no existence check, no canonicalization.
func NormalizePath(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", invalidPathError()
	}
	return trimmed, nil
}
