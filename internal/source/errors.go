package source

import "fmt"

// PreconditionError reports a missing prerequisite for remote acquisition,
// such as the git binary not being on PATH (spec.md §4.1, §7).
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("Error: %s\n  Fix: install git and ensure it is on PATH", e.Message)
}

// UrlValidationError reports a malformed or dangerous repository reference
// (spec.md §4.1, §7). Never raised until remote mode is actually selected.
type UrlValidationError struct {
	URL     string
	Reason  string
}

func (e *UrlValidationError) Error() string {
	return fmt.Sprintf("Error: invalid repository URL\n  Context: %s\n  Fix: pass a git@ or https:// URL with no embedded git options", e.Reason)
}

// CloneError wraps a failed clone/fetch/checkout, with the attempted URL
// (credentials redacted) and the underlying cause (spec.md §4.1, §7).
type CloneError struct {
	URL   string // credential-redacted
	Cause error
}

func (e *CloneError) Error() string {
	return fmt.Sprintf("Error: failed to clone repository\n  Context: %s\n  Fix: check network connectivity and repository access: %v", e.URL, e.Cause)
}

func (e *CloneError) Unwrap() error { return e.Cause }
