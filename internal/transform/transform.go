// Package transform implements the per-file content transformation stage:
// blame annotation, base64 truncation, comment stripping, blank-line and
// whitespace cleanup, compression, line numbering, and truncation-metadata
// recording (spec.md §4.4). Transformation is pure and local to one file.
package transform

import (
	"path/filepath"
	"strings"

	"github.com/repomix-go/repomix-go/internal/gitinfo"
	"github.com/repomix-go/repomix-go/internal/model"
)

// Compressor reduces content for a given extension, returning ok=false when
// the extension or content cannot be compressed (e.g. parse failure). It is
// injected so this package does not depend on a tree-sitter runtime.
type Compressor func(content, ext string) (compressed string, ok bool)

// Options controls which steps of the pipeline in spec.md §4.4 run.
type Options struct {
	RemoveComments  bool
	RemoveEmptyLines bool
	Compress        bool
	ShowLineNumbers bool
	TruncateBase64  bool
	LineLimit       int // 0 disables per-file line-limit truncation

	Blame      []gitinfo.BlameLine // non-nil when git.showBlame and blame succeeded
	Compressor Compressor
}

// Apply runs the content-transformation steps in spec.md §4.4 order and
// returns the resulting ProcessedFile.
func Apply(raw model.RawFile, opts Options) model.ProcessedFile {
	ext := strings.ToLower(filepath.Ext(raw.Path))
	content := raw.Content

	blameApplied := false
	if len(opts.Blame) > 0 {
		content = gitinfo.Annotate(opts.Blame)
		blameApplied = true
	}

	if opts.TruncateBase64 {
		content = TruncateBase64(content)
	}

	if opts.RemoveComments && !blameApplied {
		content = StripComments(content, ext)
	}

	if opts.RemoveEmptyLines {
		content = RemoveEmptyLines(content)
	}

	content = TrimTrailingWhitespace(content)

	compressed := false
	if opts.Compress && !blameApplied && opts.Compressor != nil {
		if out, ok := opts.Compressor(content, ext); ok {
			content = out
			compressed = true
		}
	}

	if !compressed && opts.ShowLineNumbers {
		content = AddLineNumbers(content)
	}

	pf := model.ProcessedFile{Path: raw.Path, Content: content, Language: raw.Language}

	if opts.LineLimit > 0 {
		lines := strings.Split(content, "\n")
		if len(lines) > opts.LineLimit {
			pf.OriginalContent = content
			truncatedLines := lines[:opts.LineLimit]
			pf.Content = strings.Join(truncatedLines, "\n")
			pf.Truncation = &model.TruncationInfo{
				Truncated:          true,
				OriginalLineCount:  len(lines),
				TruncatedLineCount: opts.LineLimit,
				LineLimit:          opts.LineLimit,
			}
		}
	}

	return pf
}

// LanguageTag returns a code-fence language hint for path's extension,
// used by the Markdown renderer (spec.md §4.9).
func LanguageTag(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	ext = strings.TrimPrefix(ext, ".")
	if tag, ok := languageTags[ext]; ok {
		return tag
	}
	return ext
}

// LanguageTagFor prefers the go-enry classification recorded on a processed
// file (useful for extension-less or misleadingly-named files) and falls
// back to the extension-based guess (spec.md §4.9).
func LanguageTagFor(path, language string) string {
	if language != "" {
		return strings.ToLower(strings.ReplaceAll(language, " ", "-"))
	}
	return LanguageTag(path)
}

var languageTags = map[string]string{
	"js":   "javascript",
	"jsx":  "jsx",
	"ts":   "typescript",
	"tsx":  "tsx",
	"py":   "python",
	"rb":   "ruby",
	"rs":   "rust",
	"md":   "markdown",
	"yml":  "yaml",
	"sh":   "bash",
	"cs":   "csharp",
	"kt":   "kotlin",
	"cpp":  "cpp",
	"h":    "c",
	"hpp":  "cpp",
	"ex":   "elixir",
	"exs":  "elixir",
}
