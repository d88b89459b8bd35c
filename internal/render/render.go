// Package render turns a finished pipeline result into one of four
// textual artifact styles: XML, Markdown, JSON, and plain (spec.md §4.9).
// Rendering is pure and deterministic: it never touches the filesystem.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/repomix-go/repomix-go/internal/model"
)

// Input bundles everything a renderer needs. It is assembled by the
// pipeline from a PackResult plus the original configuration.
type Input struct {
	Style         model.OutputStyle
	ParsableStyle bool

	HeaderText  string
	Instruction string

	FileSummary        bool
	DirectoryStructure  bool
	Files               bool
	TopFilesLength      int

	// DirectoryPaths is the path set the directory-structure block is
	// computed from: either the safe/rendered set or the full discovery
	// set when includeFullDirectoryStructure is configured.
	DirectoryPaths []string
	EmptyDirPaths  []string
	TokenCountTree model.TokenCountTree

	ProcessedFiles  []model.ProcessedFile
	FileCharCounts  map[string]int
	FileTokenCounts map[string]int

	GitDiffText string // pre-rendered worktree+staged diff section, empty to omit
	GitLogText  string // pre-rendered log section (simple or comprehensive), empty to omit

	TotalFiles      int
	TotalCharacters int
	TotalTokens     int
}

// Render dispatches to the configured style (spec.md §4.9).
func Render(in Input) (string, error) {
	switch in.Style {
	case model.StyleXML:
		return renderXML(in), nil
	case model.StyleMarkdown:
		return renderMarkdown(in), nil
	case model.StyleJSON:
		return renderJSON(in), nil
	case model.StylePlain:
		return renderPlain(in), nil
	default:
		return "", fmt.Errorf("render: unknown style %q", in.Style)
	}
}

// topFileEntry is one row of the file-summary "largest files" table.
type topFileEntry struct {
	Path  string
	Chars int
}

// topFiles returns up to n files ordered by character count descending,
// path ascending as tiebreak (spec.md §4.9 file-summary block).
func topFiles(counts map[string]int, n int) []topFileEntry {
	entries := make([]topFileEntry, 0, len(counts))
	for p, c := range counts {
		entries = append(entries, topFileEntry{Path: p, Chars: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Chars != entries[j].Chars {
			return entries[i].Chars > entries[j].Chars
		}
		return entries[i].Path < entries[j].Path
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// buildTree computes the directory-structure tree for in, honoring the
// tokenCountTree annotation option.
func buildTree(in Input) *model.TreeNode {
	tree := BuildTree(in.DirectoryPaths, in.EmptyDirPaths)
	if in.TokenCountTree.Enabled {
		AnnotateTokenCounts(tree, "", in.FileTokenCounts)
	}
	return tree
}

func directoryStructureLines(in Input) []string {
	return RenderLines(buildTree(in), 0)
}

func summaryLines(in Input) []string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Total Files: %d", in.TotalFiles))
	lines = append(lines, fmt.Sprintf("Total Characters: %d", in.TotalCharacters))
	lines = append(lines, fmt.Sprintf("Total Tokens: %d", in.TotalTokens))
	top := topFiles(in.FileCharCounts, in.TopFilesLength)
	if len(top) > 0 {
		lines = append(lines, "Top Files by Character Count:")
		for _, e := range top {
			lines = append(lines, fmt.Sprintf("  %s: %d chars", e.Path, e.Chars))
		}
	}
	return lines
}

func joinNonEmpty(parts []string, sep string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
