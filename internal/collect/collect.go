// Package collect implements the raw-collection stage: a bounded parallel
// worker pool that reads each discovered path bytes-to-text, skipping
// files by size, binary extension, encoding error, or binary content
// (spec.md §4.3).
package collect

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-enry/go-enry/v2"

	"github.com/repomix-go/repomix-go/internal/discover"
	"github.com/repomix-go/repomix-go/internal/model"
)

// SkipReason explains why a path did not produce a RawFile.
type SkipReason string

// Recognized skip reasons (spec.md §4.3).
const (
	SkipSizeLimit     SkipReason = "size-limit"
	SkipBinaryExt     SkipReason = "binary-extension"
	SkipEncodingError SkipReason = "encoding-error"
	SkipBinaryContent SkipReason = "binary-content"
)

// Skip records one path excluded during collection, with its reason.
type Skip struct {
	Path   string
	Reason SkipReason
}

// Result is the outcome of collecting a set of discovered paths.
type Result struct {
	Files []model.RawFile
	Skips []Skip
}

// PoolSize computes the worker count from spec.md §4.3: min(available
// parallelism, ceil(numTasks/100)), minimum 1.
func PoolSize(numTasks int) int {
	if numTasks <= 0 {
		return 1
	}
	byTasks := int(math.Ceil(float64(numTasks) / 100))
	avail := runtime.NumCPU()
	size := avail
	if byTasks < size {
		size = byTasks
	}
	if size < 1 {
		size = 1
	}
	return size
}

// Collect reads every relPath under root in parallel, classifying and
// skipping as described in spec.md §4.3. Results are re-ordered back into
// the input (discovery) order before being returned, per spec.md §5's
// ordering guarantee.
func Collect(ctx context.Context, root string, relPaths []string, maxFileSize int64) Result {
	type indexed struct {
		idx  int
		file *model.RawFile
		skip *Skip
	}

	jobs := make(chan int, len(relPaths))
	results := make(chan indexed, len(relPaths))

	workers := PoolSize(len(relPaths))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results <- indexed{idx: idx, skip: &Skip{Path: relPaths[idx], Reason: SkipEncodingError}}
					continue
				}
				rel := relPaths[idx]
				file, skip := collectOne(root, rel, maxFileSize)
				results <- indexed{idx: idx, file: file, skip: skip}
			}
		}()
	}

	for i := range relPaths {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	ordered := make([]indexed, len(relPaths))
	for r := range results {
		ordered[r.idx] = r
	}

	var out Result
	for _, r := range ordered {
		if r.file != nil {
			out.Files = append(out.Files, *r.file)
		}
		if r.skip != nil {
			out.Skips = append(out.Skips, *r.skip)
		}
	}
	return out
}

func collectOne(root, rel string, maxFileSize int64) (*model.RawFile, *Skip) {
	abs := filepath.Join(root, rel)

	info, err := os.Stat(abs)
	if err != nil {
		return nil, &Skip{Path: rel, Reason: SkipEncodingError}
	}
	if maxFileSize > 0 && info.Size() > maxFileSize {
		return nil, &Skip{Path: rel, Reason: SkipSizeLimit}
	}

	ext := filepath.Ext(rel)
	if discover.IsBinaryExtension(ext) {
		return nil, &Skip{Path: rel, Reason: SkipBinaryExt}
	}

	raw, err := os.ReadFile(abs)
	if err != nil {
		return nil, &Skip{Path: rel, Reason: SkipEncodingError}
	}

	raw = stripBOM(raw)

	text, ok := decodeUTF8Strict(raw)
	if !ok {
		return nil, &Skip{Path: rel, Reason: SkipEncodingError}
	}

	if looksBinary(text) || enry.IsBinary(raw) {
		return nil, &Skip{Path: rel, Reason: SkipBinaryContent}
	}

	lang := enry.GetLanguage(rel, raw)

	return &model.RawFile{Path: filepath.ToSlash(rel), Content: text, Language: lang}, nil
}

func stripBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}

// decodeUTF8Strict accepts raw only when it is already well-formed UTF-8.
// A legitimate U+FFFD in well-formed source is a real, valid encoding of
// that rune and is preserved; malformed byte sequences (which would force
// the runtime to substitute U+FFFD at a position the source never had one)
// are rejected outright (spec.md §4.3 step 3).
func decodeUTF8Strict(raw []byte) (string, bool) {
	if !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

// looksBinary reports whether text contains a NUL byte or an excessive
// ratio of non-printable control characters (spec.md §4.3 step 4).
func looksBinary(text string) bool {
	if strings.ContainsRune(text, 0) {
		return true
	}
	if len(text) == 0 {
		return false
	}
	var control int
	var total int
	for _, r := range text {
		total++
		if r == '\n' || r == '\r' || r == '\t' {
			continue
		}
		if r < 0x20 || r == 0x7f {
			control++
		}
	}
	if total == 0 {
		return false
	}
	return float64(control)/float64(total) > 0.3
}
