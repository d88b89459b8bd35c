package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/repomix-go/repomix-go/internal/gitrun"
)

// CloneResult is the outcome of acquiring a remote repository into a local
// temp directory (spec.md §4.1).
type CloneResult struct {
	Dir     string
	Cleanup func() error // always safe to call more than once
}

// Clone acquires ref into a freshly created temp directory, using a shallow
// clone strategy, then deletes .git (spec.md §4.1). The caller must invoke
// Cleanup on every exit path.
func Clone(ctx context.Context, ref Reference) (CloneResult, error) {
	if !gitrun.IsInstalled() {
		return CloneResult{}, &PreconditionError{Message: "git is not installed or not on PATH"}
	}
	if err := ValidateURL(ref.RepoURL); err != nil {
		return CloneResult{}, err
	}

	dir, err := os.MkdirTemp("", "repomix-go-"+uuid.NewString())
	if err != nil {
		return CloneResult{}, err
	}
	cleanup := func() error { return os.RemoveAll(dir) }

	branch, _ := splitBranchSubpath(ref.RemoteBranch)

	if err := cloneInto(ctx, dir, ref.RepoURL, branch); err != nil {
		_ = cleanup()
		return CloneResult{}, &CloneError{URL: redact(ref.RepoURL), Cause: err}
	}

	if err := os.RemoveAll(filepath.Join(dir, ".git")); err != nil {
		_ = cleanup()
		return CloneResult{}, err
	}

	return CloneResult{Dir: dir, Cleanup: cleanup}, nil
}

// splitBranchSubpath splits a RemoteBranch of "branch/subpath" shape. Only
// the first path segment is treated as the ref; the remainder (if any) is
// the subdirectory the caller should additionally scope discovery to.
func splitBranchSubpath(remoteBranch string) (branch, subpath string) {
	if remoteBranch == "" {
		return "", ""
	}
	parts := strings.SplitN(remoteBranch, "/", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return parts[0], ""
}

// cloneInto implements the shallow-clone strategy from spec.md §4.1:
// with a ref, init + remote + fetch --depth 1 + checkout FETCH_HEAD; on a
// "couldn't find remote ref" failure for what looks like a short SHA, retry
// unshallow; with no ref, a plain `clone --depth 1`.
func cloneInto(ctx context.Context, dir, repoURL, ref string) error {
	r := gitrun.New(dir)

	if ref == "" {
		return r.RunSilent(ctx, []string{"clone", "--depth", "1"}, repoURL, ".")
	}

	if err := r.RunSilent(ctx, []string{"init"}); err != nil {
		return err
	}
	if err := r.RunSilent(ctx, []string{"remote", "add", "origin"}, repoURL); err != nil {
		return err
	}
	err := r.RunSilent(ctx, []string{"fetch", "--depth", "1", "origin"}, ref)
	if err != nil {
		if isMissingRemoteRef(err, ref) && IsShortSHA(ref) {
			if err2 := r.RunSilent(ctx, []string{"fetch", "origin"}); err2 != nil {
				return err2
			}
			return r.RunSilent(ctx, []string{"checkout", ref})
		}
		return err
	}
	return r.RunSilent(ctx, []string{"checkout", "FETCH_HEAD"})
}

// isMissingRemoteRef reports whether err is git's "couldn't find remote ref
// <ref>" failure for the given ref (spec.md §4.1 short-SHA recovery).
func isMissingRemoteRef(err error, ref string) bool {
	var gitErr *gitrun.Error
	if !isGitError(err, &gitErr) {
		return false
	}
	return strings.Contains(gitErr.Stderr, "couldn't find remote ref") && strings.Contains(gitErr.Stderr, ref)
}

func isGitError(err error, target **gitrun.Error) bool {
	ge, ok := err.(*gitrun.Error)
	if ok {
		*target = ge
	}
	return ok
}
