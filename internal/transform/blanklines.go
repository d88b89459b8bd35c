package transform

import "strings"

// RemoveEmptyLines drops lines that are empty or contain only whitespace
// (spec.md §4.4 step 4).
func RemoveEmptyLines(content string) string {
	lines := strings.Split(content, "\n")
	out := lines[:0]
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, l)
	}
	return strings.Join(out, "\n")
}

// TrimTrailingWhitespace strips trailing spaces and tabs from every line
// (spec.md §4.4 step 5).
func TrimTrailingWhitespace(content string) string {
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.Join(lines, "\n")
}
