package render

import (
	"encoding/json"
	"strings"
)

// renderJSON builds { fileSummary, directoryStructure, files, gitDiffs?,
// gitLogs?, instruction? } by hand so object key order matches insertion
// order rather than whatever map iteration or struct-tag sorting would
// otherwise produce (spec.md §6).
func renderJSON(in Input) string {
	var b strings.Builder
	b.WriteByte('{')

	first := true
	field := func(key string, value any) {
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.Write(mustMarshal(key))
		b.WriteByte(':')
		b.Write(mustMarshal(value))
	}

	if in.FileSummary {
		field("fileSummary", strings.Join(summaryLines(in), "\n"))
	}
	if in.DirectoryStructure {
		field("directoryStructure", strings.Join(directoryStructureLines(in), "\n"))
	}
	if in.Files {
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.Write(mustMarshal("files"))
		b.WriteByte(':')
		b.WriteByte('{')
		for i, f := range in.ProcessedFiles {
			if i > 0 {
				b.WriteByte(',')
			}
			b.Write(mustMarshal(f.Path))
			b.WriteByte(':')
			b.Write(mustMarshal(f.Content))
		}
		b.WriteByte('}')
	}
	if in.GitDiffText != "" {
		field("gitDiffs", in.GitDiffText)
	}
	if in.GitLogText != "" {
		field("gitLogs", in.GitLogText)
	}
	if in.Instruction != "" {
		field("instruction", in.Instruction)
	}

	b.WriteByte('}')
	return b.String()
}

func mustMarshal(v any) []byte {
	out, err := json.Marshal(v)
	if err != nil {
		// Only plain strings are ever passed in; Marshal cannot fail for them.
		panic(err)
	}
	return out
}
