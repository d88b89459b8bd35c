package discover

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchAny reports whether relPath (forward-slashed, relative to root)
// matches any of patterns, using doublestar glob semantics where "**"
// matches any depth (spec.md §4.2).
func MatchAny(relPath string, patterns []string) bool {
	norm := filepath.ToSlash(relPath)
	for _, p := range patterns {
		for _, expanded := range SplitBraceList(p) {
			if matchOne(norm, filepath.ToSlash(expanded)) {
				return true
			}
		}
	}
	return false
}

func matchOne(path, pattern string) bool {
	if pattern == "" {
		return false
	}
	if ok, _ := doublestar.Match(pattern, path); ok {
		return true
	}
	// A directory pattern like "dist/**" also covers the directory path
	// itself, not only its descendants.
	if prefix := strings.TrimSuffix(pattern, "/**"); prefix != pattern {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}
