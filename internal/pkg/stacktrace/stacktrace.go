// Package stacktrace trims runtime stacks down to this module's frames.
package stacktrace

import "strings"

// InternalPaths returns the "internal/...go:line" locations found in a
// debug.Stack() dump, outermost call last.
func InternalPaths(stack []byte) []string {
	var paths []string
	for _, line := range strings.Split(string(stack), "\n") {
		line = strings.TrimSpace(line)

		_, rest, found := strings.Cut(line, "/internal/")
		if !found {
			continue
		}
		loc, _, _ := strings.Cut(rest, " ")
		if !strings.Contains(loc, ".go:") {
			continue
		}
		paths = append(paths, "internal/"+loc)
	}
	return paths
}
