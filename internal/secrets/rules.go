package secrets

import "regexp"

// rule is one lint-style secret-detection pattern: a compiled regex and the
// message emitted when it matches (spec.md §4.5).
type rule struct {
	Name    string
	Pattern *regexp.Regexp
	Message string
}

// rules is the fixed set of pattern checks run against every file and diff.
// Patterns are deliberately conservative (prefix/shape-based) rather than
// exhaustive provider coverage.
var rules = []rule{
	{
		Name:    "aws-access-key-id",
		Pattern: regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`),
		Message: "Suspicious AWS access key ID detected",
	},
	{
		Name:    "aws-secret-access-key",
		Pattern: regexp.MustCompile(`(?i)aws_secret_access_key["'\s:=]+[A-Za-z0-9/+=]{40}`),
		Message: "Suspicious AWS secret access key detected",
	},
	{
		Name:    "github-token",
		Pattern: regexp.MustCompile(`\bgh[pousr]_[A-Za-z0-9]{36,}\b`),
		Message: "Suspicious GitHub token detected",
	},
	{
		Name:    "slack-token",
		Pattern: regexp.MustCompile(`\bxox[baprs]-[A-Za-z0-9-]{10,}\b`),
		Message: "Suspicious Slack token detected",
	},
	{
		Name:    "private-key-block",
		Pattern: regexp.MustCompile(`-----BEGIN (RSA |EC |OPENSSH |DSA |)PRIVATE KEY-----`),
		Message: "Private key material detected",
	},
	{
		Name:    "generic-api-key",
		Pattern: regexp.MustCompile(`(?i)(api[_-]?key|secret|token)["'\s:=]+[A-Za-z0-9_\-]{20,}`),
		Message: "Suspicious hard-coded credential detected",
	},
	{
		Name:    "basic-auth-url",
		Pattern: regexp.MustCompile(`(?i)\b[a-z][a-z0-9+.\-]*://[^/\s:@]+:[^/\s:@]+@`),
		Message: "Credentials embedded in URL detected",
	},
	{
		Name:    "google-api-key",
		Pattern: regexp.MustCompile(`\bAIza[0-9A-Za-z\-_]{35}\b`),
		Message: "Suspicious Google API key detected",
	},
}

// scan runs every rule against content and returns the messages of the
// rules that matched, in rule order.
func scan(content string) []string {
	var messages []string
	for _, r := range rules {
		if r.Pattern.MatchString(content) {
			messages = append(messages, r.Message)
		}
	}
	return messages
}
