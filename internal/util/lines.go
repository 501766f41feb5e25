package util

import (
	"os"
	"strings"
)

// ReadLine returns line n (1-based) of a file, trimmed, or "" when the file
// is shorter than n or unreadable. Used for contextual source text next to a
// finding; a missing contract is not an error at render time.
func ReadLine(path string, n int) string {
	if n < 1 {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	lines := strings.Split(string(data), "\n")
	if len(lines) < n {
		return ""
	}
	return strings.TrimSpace(lines[n-1])
}
