// Package discover walks a root directory and returns a canonical sorted
// set of relative file paths (plus empty directories), filtered through
// layered include/ignore rules (spec.md §4.2).
package discover

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/repomix-go/repomix-go/internal/model"
)

// Result is the outcome of a single Discover call.
type Result struct {
	FilePaths     []string // sorted, relative, forward-slashed
	EmptyDirPaths []string // populated only when IncludeEmptyDirectories is set
}

// Discover walks root applying cfg's include/ignore layering and returns
// the canonical sorted file set (spec.md §4.2).
func Discover(root string, cfg model.Config) (Result, error) {
	includePatterns, err := resolveIncludePatterns(root, cfg.Include)
	if err != nil {
		return Result{}, err
	}

	ignorePatterns := buildIgnorePatterns(cfg)

	var gitignoreSources []gitignoreSource
	if cfg.Ignore.UseGitignore {
		gitignoreSources, err = loadGitignores(root)
		if err != nil {
			return Result{}, err
		}
	}

	var files []string
	dirsWithFiles := map[string]bool{}
	allDirs := map[string]bool{}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, werr error) error {
		if werr != nil {
			return werr
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel == ".git" {
				return filepath.SkipDir
			}
			allDirs[rel] = true
			return nil
		}

		if !included(rel, includePatterns) {
			return nil
		}
		if matchesIgnore(rel, ignorePatterns, gitignoreSources) {
			return nil
		}

		files = append(files, rel)
		dirsWithFiles[filepath.ToSlash(filepath.Dir(rel))] = true
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	sort.Strings(files)

	result := Result{FilePaths: files}

	if cfg.Output.IncludeEmptyDirectories {
		var empty []string
		for dir := range allDirs {
			if dir == "." {
				continue
			}
			if dirsWithFiles[dir] {
				continue
			}
			if hasDescendantWithFiles(dir, dirsWithFiles) {
				continue
			}
			if !included(dir, includePatterns) && len(includePatterns) > 0 {
				continue
			}
			if matchesIgnore(dir, ignorePatterns, gitignoreSources) {
				continue
			}
			empty = append(empty, dir)
		}
		sort.Strings(empty)
		result.EmptyDirPaths = empty
	}

	return result, nil
}

func hasDescendantWithFiles(dir string, dirsWithFiles map[string]bool) bool {
	prefix := dir + "/"
	for d := range dirsWithFiles {
		if strings.HasPrefix(d, prefix) {
			return true
		}
	}
	return false
}

func included(rel string, includePatterns []string) bool {
	if len(includePatterns) == 0 {
		return true
	}
	return MatchAny(rel, includePatterns)
}

func matchesIgnore(rel string, ignorePatterns []string, gitignoreSources []gitignoreSource) bool {
	if MatchAny(rel, ignorePatterns) {
		return true
	}
	ext := filepath.Ext(rel)
	if IsBinaryExtension(ext) {
		return true
	}
	return matchesGitignore(gitignoreSources, rel)
}

// buildIgnorePatterns unions, in spec.md §4.2 order: default patterns,
// custom patterns, and the output file path (the gitignore-sourced
// patterns are applied separately via matchesGitignore, since they are
// directory-scoped rather than root-relative).
func buildIgnorePatterns(cfg model.Config) []string {
	var patterns []string
	if cfg.Ignore.UseDefaultPatterns {
		patterns = append(patterns, DefaultIgnorePatterns...)
	}
	patterns = append(patterns, cfg.Ignore.CustomPatterns...)
	if cfg.Output.FilePath != "" {
		patterns = append(patterns, cfg.Output.FilePath)
	}
	return patterns
}

// resolveIncludePatterns expands literal-path include entries against the
// filesystem: a directory expands to "path/**/*", a file to its escaped
// literal path, and a non-existent literal passes through unchanged
// (spec.md §4.2).
func resolveIncludePatterns(root string, include []string) ([]string, error) {
	var resolved []string
	for _, entry := range include {
		if !IsLiteralPath(entry) {
			resolved = append(resolved, escapeLiteralComponents(entry))
			continue
		}
		abs := filepath.Join(root, entry)
		info, err := os.Stat(abs)
		switch {
		case err != nil:
			resolved = append(resolved, escapeLiteralComponents(entry))
		case info.IsDir():
			resolved = append(resolved, filepath.ToSlash(filepath.Join(entry, "**", "*")))
		default:
			resolved = append(resolved, escapeLiteralComponents(entry))
		}
	}
	return resolved, nil
}

// escapeLiteralComponents escapes glob metacharacters in every path
// component so route-group-style directory names like "(site)" match
// literally (spec.md §4.2).
func escapeLiteralComponents(p string) string {
	parts := strings.Split(filepath.ToSlash(p), "/")
	for i, part := range parts {
		parts[i] = EscapeLiteral(part)
	}
	return strings.Join(parts, "/")
}
