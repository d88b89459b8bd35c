package gitinfo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/repomix-go/repomix-go/internal/gitrun"
)

// BlameLine is one source line annotated with its most recent author and
// commit date (spec.md §4.4 step 1, §4.6).
type BlameLine struct {
	Author string
	Date   string // ISO date, e.g. "2024-03-10"
	Text   string
}

// Blame runs `git blame --porcelain path` and returns one BlameLine per
// source line, accumulating the most recent author/author-time headers as
// described in spec.md §4.6.
func Blame(ctx context.Context, root, path string) ([]BlameLine, error) {
	r := gitrun.New(root)
	if !r.IsWorkingTree(ctx) {
		return nil, nil
	}

	sub := []string{"blame", "--porcelain"}
	lines, err := r.RunLines(ctx, sub, path)
	if err != nil {
		return nil, err
	}

	var result []BlameLine
	var curAuthor string
	var curTime int64

	i := 0
	for i < len(lines) {
		line := lines[i]
		switch {
		case strings.HasPrefix(line, "author "):
			curAuthor = strings.TrimPrefix(line, "author ")
		case strings.HasPrefix(line, "author-time "):
			ts, _ := strconv.ParseInt(strings.TrimPrefix(line, "author-time "), 10, 64)
			curTime = ts
		case strings.HasPrefix(line, "\t"):
			result = append(result, BlameLine{
				Author: curAuthor,
				Date:   formatAuthorTime(curTime),
				Text:   strings.TrimPrefix(line, "\t"),
			})
		}
		i++
	}
	return result, nil
}

func formatAuthorTime(unixSeconds int64) string {
	if unixSeconds == 0 {
		return ""
	}
	return time.Unix(unixSeconds, 0).UTC().Format("2006-01-02")
}

// Annotate renders blame lines as "[Author Date] code", one per line,
// matching the content transformation step in spec.md §4.4.
func Annotate(lines []BlameLine) string {
	var b strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&b, "[%s %s] %s\n", l.Author, l.Date, l.Text)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
