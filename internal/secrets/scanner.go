// Package secrets implements the security filter stage: a parallel,
// rule-based scan of raw file content and git diffs for likely secrets
// (spec.md §4.5).
package secrets

import (
	"context"
	"runtime"
	"sync"

	"github.com/repomix-go/repomix-go/internal/model"
)

// Input is one unit of content to scan: a raw file or a synthetic git-diff
// entry (spec.md §4.5).
type Input struct {
	Path    string
	Content string
	Kind    model.FindingKind
}

// Scan runs every input through the rule set on a bounded worker pool,
// mirroring the collection stage's pool, and returns one SuspiciousFinding
// per input with at least one match, in input order.
func Scan(ctx context.Context, inputs []Input) []model.SuspiciousFinding {
	if len(inputs) == 0 {
		return nil
	}

	type indexed struct {
		idx     int
		finding *model.SuspiciousFinding
	}

	jobs := make(chan int, len(inputs))
	results := make(chan indexed, len(inputs))

	workers := runtime.NumCPU()
	if workers > len(inputs) {
		workers = len(inputs)
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results <- indexed{idx: idx}
					continue
				}
				in := inputs[idx]
				messages := scan(in.Content)
				if len(messages) == 0 {
					results <- indexed{idx: idx}
					continue
				}
				results <- indexed{idx: idx, finding: &model.SuspiciousFinding{
					FilePath: in.Path,
					Messages: messages,
					Kind:     in.Kind,
				}}
			}
		}()
	}

	for i := range inputs {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	ordered := make([]*model.SuspiciousFinding, len(inputs))
	for r := range results {
		ordered[r.idx] = r.finding
	}

	var findings []model.SuspiciousFinding
	for _, f := range ordered {
		if f != nil {
			findings = append(findings, *f)
		}
	}
	return findings
}

// Filter partitions processed files into those whose path is not present
// among suspicious findings and those that are, preserving order
// (spec.md §4.5 invariant: safeFilePaths = discovered − suspicious).
func Filter(files []model.ProcessedFile, findings []model.SuspiciousFinding) (safe []model.ProcessedFile, safePaths []string) {
	suspicious := make(map[string]bool, len(findings))
	for _, f := range findings {
		if f.Kind == model.FindingFile {
			suspicious[f.FilePath] = true
		}
	}

	for _, pf := range files {
		if suspicious[pf.Path] {
			continue
		}
		safe = append(safe, pf)
		safePaths = append(safePaths, pf.Path)
	}
	return safe, safePaths
}
