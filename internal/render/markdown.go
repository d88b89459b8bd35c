package render

import (
	"fmt"
	"strings"

	"github.com/repomix-go/repomix-go/internal/transform"
)

func renderMarkdown(in Input) string {
	var sections []string

	if in.HeaderText != "" {
		sections = append(sections, in.HeaderText)
	}

	if in.FileSummary {
		var b strings.Builder
		b.WriteString("# File Summary\n\n")
		for _, l := range summaryLines(in) {
			fmt.Fprintf(&b, "- %s\n", l)
		}
		sections = append(sections, strings.TrimRight(b.String(), "\n"))
	}

	if in.DirectoryStructure {
		var b strings.Builder
		b.WriteString("# Directory Structure\n\n```\n")
		for _, l := range directoryStructureLines(in) {
			b.WriteString(l + "\n")
		}
		b.WriteString("```")
		sections = append(sections, b.String())
	}

	if in.Files {
		var b strings.Builder
		b.WriteString("# Files\n")
		for _, f := range in.ProcessedFiles {
			fmt.Fprintf(&b, "\n## File: %s\n\n```%s\n%s\n```\n", f.Path, transform.LanguageTagFor(f.Path, f.Language), f.Content)
		}
		sections = append(sections, strings.TrimRight(b.String(), "\n"))
	}

	if in.GitDiffText != "" {
		sections = append(sections, "# Git Diffs\n\n```diff\n"+in.GitDiffText+"\n```")
	}
	if in.GitLogText != "" {
		sections = append(sections, "# Git Logs\n\n```\n"+in.GitLogText+"\n```")
	}
	if in.Instruction != "" {
		sections = append(sections, "# Instruction\n\n"+in.Instruction)
	}

	return joinNonEmpty(sections, "\n\n") + "\n"
}
