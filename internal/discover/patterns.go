package discover

import "strings"

// globMeta is the set of glob metacharacters recognized when deciding
// whether an include entry is a literal path or a pattern (spec.md §4.2).
const globMeta = "*?[]{}!+@|"

// IsLiteralPath reports whether s contains no glob metacharacters.
func IsLiteralPath(s string) bool {
	return !strings.ContainsAny(s, globMeta)
}

// EscapeLiteral escapes every glob metacharacter in a literal path
// component so names like "(site)" match themselves literally rather than
// being interpreted as pattern syntax (spec.md §4.2).
func EscapeLiteral(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(globMeta, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SplitBraceList splits a comma-separated pattern list, honoring brace
// nesting so "{a,b}/{c,d}" is not split inside the braces (spec.md §4.2
// "Pattern splitting preserves brace expansion: comma separation only at
// top brace level; whitespace trimmed").
func SplitBraceList(s string) []string {
	var result []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				result = append(result, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	result = append(result, strings.TrimSpace(s[start:]))
	return result
}
