// Package sortfiles implements the sort stage: a stable ordering of
// processed files by git change count ascending, with input order as
// tiebreak (spec.md §4.7).
package sortfiles

import (
	"sort"

	"github.com/repomix-go/repomix-go/internal/model"
)

// ByChurn stably sorts files ascending by changes[path] (files absent from
// the map count as zero), preserving relative order among equal counts.
// files is sorted in place.
func ByChurn(files []model.ProcessedFile, changes map[string]int) {
	sort.SliceStable(files, func(i, j int) bool {
		return changes[files[i].Path] < changes[files[j].Path]
	})
}
