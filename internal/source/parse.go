package source

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Reference is a parsed remote repository reference (spec.md §4.1).
type Reference struct {
	RepoURL      string
	RemoteBranch string // may itself encode "branch/subpath"
}

var shorthandSegment = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9._-]*[a-zA-Z0-9])?$`)

// ParseReference extracts {repoUrl, remoteBranch} from either an
// "owner/repo" shorthand or a full git URL, per spec.md §4.1.
func ParseReference(raw string) (Reference, error) {
	raw = strings.TrimSpace(raw)

	if owner, repo, rest, ok := parseShorthand(raw); ok {
		return Reference{
			RepoURL:      fmt.Sprintf("https://github.com/%s/%s.git", owner, repo),
			RemoteBranch: rest,
		}, nil
	}

	return Reference{RepoURL: raw}, nil
}

// parseShorthand recognizes "owner/repo" or "owner/repo/branch/subpath".
// Each of owner and repo must match shorthandSegment; anything after the
// second "/" is carried through unparsed as the remote-branch field.
func parseShorthand(raw string) (owner, repo, rest string, ok bool) {
	if strings.Contains(raw, "://") || strings.HasPrefix(raw, "git@") {
		return "", "", "", false
	}
	parts := strings.SplitN(raw, "/", 3)
	if len(parts) < 2 {
		return "", "", "", false
	}
	if !shorthandSegment.MatchString(parts[0]) || !shorthandSegment.MatchString(parts[1]) {
		return "", "", "", false
	}
	if len(parts) == 3 {
		rest = parts[2]
	}
	return parts[0], parts[1], rest, true
}

// forbiddenSubstrings are git option injections that must never appear in a
// URL passed to the git binary (spec.md §4.1).
var forbiddenSubstrings = []string{"--upload-pack", "--config", "--exec"}

// ValidateURL enforces spec.md §4.1's pre-network checks: must start with
// git@ or https://, must not contain option-injection substrings, and an
// https:// URL must parse. Credentials before '@' are redacted from any
// returned error.
func ValidateURL(raw string) error {
	for _, bad := range forbiddenSubstrings {
		if strings.Contains(raw, bad) {
			return &UrlValidationError{URL: redact(raw), Reason: fmt.Sprintf("URL contains forbidden option %q", bad)}
		}
	}

	switch {
	case strings.HasPrefix(raw, "git@"):
		return nil
	case strings.HasPrefix(raw, "https://"):
		if _, err := url.Parse(raw); err != nil {
			return &UrlValidationError{URL: redact(raw), Reason: "URL failed to parse"}
		}
		return nil
	default:
		return &UrlValidationError{URL: redact(raw), Reason: "URL must start with git@ or https://"}
	}
}

// redact strips userinfo (credentials before '@') from a URL for safe
// inclusion in error messages (spec.md §4.1).
func redact(raw string) string {
	if !strings.HasPrefix(raw, "https://") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	u.User = nil
	return u.String()
}

// shortSHA matches a bare short or full commit hash (spec.md §4.1,
// "short-SHA recovery").
var shortSHA = regexp.MustCompile(`^[0-9a-f]{4,39}$`)

// IsShortSHA reports whether ref looks like a short or full hex commit hash.
func IsShortSHA(ref string) bool {
	return shortSHA.MatchString(ref)
}
