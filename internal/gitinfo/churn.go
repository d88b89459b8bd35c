// Package gitinfo implements the optional git-enrichment stage: change-count
// churn maps (for sort), diffs, logs, and blame annotation (spec.md §4.6).
// Every operation is skipped (zero value, no error) when the root is not a
// git working tree; git itself is invoked through internal/gitrun so every
// command carries an explicit -C <dir>.
package gitinfo

import (
	"context"
	"strconv"
	"sync"

	"github.com/repomix-go/repomix-go/internal/gitrun"
)

// churnCache memoizes change-count maps by (root, maxCommits) across calls
// within a process, as spec.md §4.6 requires.
var churnCache sync.Map // key: churnCacheKey, value: map[string]int

type churnCacheKey struct {
	root       string
	maxCommits int
}

// ChangeCounts returns how many of the last maxCommits commits touched each
// path, via `git log --name-only --pretty=format: -n maxCommits`. Returns an
// empty map (not an error) when root is not a git working tree.
func ChangeCounts(ctx context.Context, root string, maxCommits int) (map[string]int, error) {
	key := churnCacheKey{root: root, maxCommits: maxCommits}
	if cached, ok := churnCache.Load(key); ok {
		return cached.(map[string]int), nil
	}

	r := gitrun.New(root)
	if !r.IsWorkingTree(ctx) {
		counts := map[string]int{}
		churnCache.Store(key, counts)
		return counts, nil
	}

	sub := []string{"log", "--name-only", "--pretty=format:", "-n", strconv.Itoa(maxCommits)}
	lines, err := r.RunLines(ctx, sub)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, line := range lines {
		if line == "" {
			continue
		}
		counts[line]++
	}
	churnCache.Store(key, counts)
	return counts, nil
}
