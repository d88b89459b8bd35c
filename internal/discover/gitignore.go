package discover

import (
	"os"
	"path/filepath"

	ignorefile "github.com/sabhiram/go-gitignore"
)

// gitignoreSource is one parsed .gitignore (or .git/info/exclude), scoped
// to the directory it was found in so its patterns only apply to that
// subtree, as real git does (spec.md §4.2).
type gitignoreSource struct {
	dir     string // relative to discovery root, "" for root-level
	matcher *ignorefile.GitIgnore
}

// loadGitignores walks root and compiles every reachable .gitignore and
// .git/info/exclude file (spec.md §4.2).
func loadGitignores(root string) ([]gitignoreSource, error) {
	var sources []gitignoreSource

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // best-effort: unreadable subtree just contributes no patterns
		}
		if d.IsDir() && d.Name() == ".git" {
			excludePath := filepath.Join(path, "info", "exclude")
			if m, lerr := compileIgnoreFile(excludePath); lerr == nil && m != nil {
				rel, _ := filepath.Rel(root, filepath.Dir(path))
				sources = append(sources, gitignoreSource{dir: normDir(rel), matcher: m})
			}
			return filepath.SkipDir
		}
		if !d.IsDir() && d.Name() == ".gitignore" {
			if m, lerr := compileIgnoreFile(path); lerr == nil && m != nil {
				rel, _ := filepath.Rel(root, filepath.Dir(path))
				sources = append(sources, gitignoreSource{dir: normDir(rel), matcher: m})
			}
		}
		return nil
	})
	return sources, err
}

func normDir(rel string) string {
	if rel == "." {
		return ""
	}
	return filepath.ToSlash(rel)
}

func compileIgnoreFile(path string) (*ignorefile.GitIgnore, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil //nolint:nilerr // missing file is not an error, just "no patterns"
	}
	return ignorefile.CompileIgnoreFile(path)
}

// matchesGitignore reports whether relPath (relative to the discovery
// root) is ignored by any loaded .gitignore scoped to an ancestor
// directory of the path.
func matchesGitignore(sources []gitignoreSource, relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	for _, src := range sources {
		scoped := relPath
		if src.dir != "" {
			prefix := src.dir + "/"
			if relPath != src.dir && !hasPrefixSlash(relPath, prefix) {
				continue
			}
			scoped = trimPrefixSlash(relPath, prefix)
		}
		if src.matcher.MatchesPath(scoped) {
			return true
		}
	}
	return false
}

func hasPrefixSlash(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

func trimPrefixSlash(s, prefix string) string {
	if hasPrefixSlash(s, prefix) {
		return s[len(prefix):]
	}
	return s
}
