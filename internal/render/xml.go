package render

import (
	"fmt"
	"strings"
)

func renderXML(in Input) string {
	var b strings.Builder

	if in.HeaderText != "" {
		fmt.Fprintf(&b, "<!-- %s -->\n", xmlEscapeAttr(in.HeaderText))
	}

	b.WriteString("<repomix>\n")

	if in.FileSummary {
		b.WriteString("  <file_summary>\n")
		for _, l := range summaryLines(in) {
			fmt.Fprintf(&b, "    %s\n", xmlText(l))
		}
		b.WriteString("  </file_summary>\n")
	}

	if in.DirectoryStructure {
		b.WriteString("  <directory_structure>\n")
		for _, l := range directoryStructureLines(in) {
			fmt.Fprintf(&b, "    %s\n", xmlText(l))
		}
		b.WriteString("  </directory_structure>\n")
	}

	if in.Files {
		b.WriteString("  <files>\n")
		for _, f := range in.ProcessedFiles {
			fmt.Fprintf(&b, "    <file path=%q>", xmlEscapeAttr(f.Path))
			b.WriteString(xmlFileBody(f.Content, in.ParsableStyle))
			b.WriteString("</file>\n")
		}
		b.WriteString("  </files>\n")
	}

	if in.GitDiffText != "" {
		fmt.Fprintf(&b, "  <git_diffs>%s</git_diffs>\n", xmlFileBody(in.GitDiffText, in.ParsableStyle))
	}
	if in.GitLogText != "" {
		fmt.Fprintf(&b, "  <git_logs>%s</git_logs>\n", xmlFileBody(in.GitLogText, in.ParsableStyle))
	}

	if in.Instruction != "" {
		fmt.Fprintf(&b, "  <instruction>%s</instruction>\n", xmlFileBody(in.Instruction, in.ParsableStyle))
	}

	b.WriteString("</repomix>\n")
	return b.String()
}

// xmlFileBody renders content either as strict-escaped text (parsableStyle)
// or as one or more CDATA sections, split wherever the content would
// otherwise contain the CDATA terminator (spec.md §6).
func xmlFileBody(content string, parsable bool) string {
	if parsable {
		return xmlText(content)
	}
	segments := strings.Split(content, "]]>")
	var b strings.Builder
	for i, seg := range segments {
		if i > 0 {
			b.WriteString("]]]]><![CDATA[>")
		}
		b.WriteString("<![CDATA[")
		b.WriteString(seg)
		b.WriteString("]]>")
	}
	return b.String()
}

func xmlText(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	return replacer.Replace(s)
}

func xmlEscapeAttr(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return replacer.Replace(s)
}
