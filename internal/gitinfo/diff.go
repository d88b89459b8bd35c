package gitinfo

import (
	"context"

	"github.com/repomix-go/repomix-go/internal/gitrun"
)

// DiffOptions configures which diffs to capture (spec.md §4.6).
type DiffOptions struct {
	MaxChars int // truncate each diff body to this many characters, 0 = no cap
}

// Diffs holds the worktree and staged diff bodies.
type Diffs struct {
	WorkTree string
	Staged   string
}

// CaptureDiffs returns the worktree and staged diffs for root. Each is the
// empty string when root is not a working tree or there is nothing to diff.
func CaptureDiffs(ctx context.Context, root string, opts DiffOptions) (Diffs, error) {
	r := gitrun.New(root)
	if !r.IsWorkingTree(ctx) {
		return Diffs{}, nil
	}

	workTree, err := r.Run(ctx, []string{"diff", "--no-color"})
	if err != nil {
		return Diffs{}, err
	}
	staged, err := r.Run(ctx, []string{"diff", "--no-color", "--cached"})
	if err != nil {
		return Diffs{}, err
	}

	return Diffs{
		WorkTree: truncate(workTree, opts.MaxChars),
		Staged:   truncate(staged, opts.MaxChars),
	}, nil
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max]
}
