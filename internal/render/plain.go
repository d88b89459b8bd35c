package render

import (
	"fmt"
	"strings"
)

const plainBannerWide = "================"
const plainBannerThin = "----------------"

func renderPlain(in Input) string {
	var sections []string

	if in.HeaderText != "" {
		sections = append(sections, in.HeaderText)
	}

	if in.FileSummary {
		var b strings.Builder
		fmt.Fprintf(&b, "%s\nFile Summary\n%s\n", plainBannerWide, plainBannerWide)
		for _, l := range summaryLines(in) {
			b.WriteString(l + "\n")
		}
		sections = append(sections, strings.TrimRight(b.String(), "\n"))
	}

	if in.DirectoryStructure {
		var b strings.Builder
		fmt.Fprintf(&b, "%s\nDirectory Structure\n%s\n", plainBannerWide, plainBannerWide)
		for _, l := range directoryStructureLines(in) {
			b.WriteString(l + "\n")
		}
		sections = append(sections, strings.TrimRight(b.String(), "\n"))
	}

	if in.Files {
		var b strings.Builder
		fmt.Fprintf(&b, "%s\nFiles\n%s\n", plainBannerWide, plainBannerWide)
		for i, f := range in.ProcessedFiles {
			if i > 0 {
				b.WriteString(plainBannerThin + "\n")
			}
			fmt.Fprintf(&b, "File: %s\n%s\n%s\n", f.Path, plainBannerThin, f.Content)
		}
		sections = append(sections, strings.TrimRight(b.String(), "\n"))
	}

	if in.GitDiffText != "" {
		sections = append(sections, fmt.Sprintf("%s\nGit Diffs\n%s\n%s", plainBannerWide, plainBannerWide, in.GitDiffText))
	}
	if in.GitLogText != "" {
		sections = append(sections, fmt.Sprintf("%s\nGit Logs\n%s\n%s", plainBannerWide, plainBannerWide, in.GitLogText))
	}
	if in.Instruction != "" {
		sections = append(sections, fmt.Sprintf("%s\nInstruction\n%s\n%s", plainBannerWide, plainBannerWide, in.Instruction))
	}

	return joinNonEmpty(sections, "\n\n") + "\n"
}
