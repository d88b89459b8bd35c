package transform

import (
	"fmt"
	"regexp"
)

// minBase64RunLen is how long a base64-alphabet run must be before it is
// treated as an embedded blob rather than ordinary source text
// (spec.md §4.4 step 2).
const minBase64RunLen = 100

var base64RunPattern = regexp.MustCompile(fmt.Sprintf(`[A-Za-z0-9+/]{%d,}={0,2}`, minBase64RunLen))

// TruncateBase64 replaces long embedded base64-looking runs with a short
// marker noting how many characters were elided (spec.md §4.4 step 2).
func TruncateBase64(content string) string {
	return base64RunPattern.ReplaceAllStringFunc(content, func(match string) string {
		return fmt.Sprintf("[base64 data truncated, %d chars]", len(match))
	})
}
