package transform

import (
	"fmt"
	"strconv"
	"strings"
)

// AddLineNumbers prefixes every line with its 1-based line number,
// right-aligned to the width of the final line number (spec.md §4.4 step 6).
func AddLineNumbers(content string) string {
	if content == "" {
		return content
	}
	lines := strings.Split(content, "\n")
	width := len(strconv.Itoa(len(lines)))

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%*d: %s", width, i+1, l)
	}
	return b.String()
}
