package gitinfo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/repomix-go/repomix-go/internal/gitrun"
)

// LogEntry is one parsed commit record, simple-mode shape (spec.md §4.6).
type LogEntry struct {
	Date    string
	Subject string
	Files   []string
}

// SimpleLog returns the last count commits, one NUL/record-separated block
// per commit carrying date|subject followed by the touched file list.
func SimpleLog(ctx context.Context, root string, count int) ([]LogEntry, error) {
	r := gitrun.New(root)
	if !r.IsWorkingTree(ctx) {
		return nil, nil
	}

	const sep = "\x1e"
	format := fmt.Sprintf("--pretty=format:%s%%ad|%%s", sep)
	sub := []string{"log", format, "--date=iso", "--name-only", "-n", strconv.Itoa(count)}
	out, err := r.Run(ctx, sub)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}

	var entries []LogEntry
	for _, rec := range strings.Split(out, sep) {
		rec = strings.TrimSpace(rec)
		if rec == "" {
			continue
		}
		lines := strings.Split(rec, "\n")
		head := strings.SplitN(lines[0], "|", 2)
		if len(head) != 2 {
			continue
		}
		entry := LogEntry{Date: head[0], Subject: head[1]}
		for _, f := range lines[1:] {
			f = strings.TrimSpace(f)
			if f != "" {
				entry.Files = append(entry.Files, f)
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// CommitEntry is one parsed commit record, comprehensive-mode shape.
type CommitEntry struct {
	Hash       string
	ParentHashes []string
	Author     string
	Date       time.Time
	Subject    string
	Body       string
}

// IsMerge reports whether the commit has more than one parent.
func (c CommitEntry) IsMerge() bool { return len(c.ParentHashes) > 1 }

// ComprehensiveOptions configures the extended log query (spec.md §4.6).
type ComprehensiveOptions struct {
	MaxCount int
	Patch    bool
	Stat     bool
	Numstat  bool
	Graph    bool
	All      bool
}

const (
	recordSep = "\x1e"
	fieldSep  = "\x1f"
)

// ComprehensiveLog runs a single `git log` call with a fixed %H…%b template
// using \x1e record and \x1f field separators, optionally with
// --patch/--stat/--numstat and --graph --all (spec.md §4.6).
func ComprehensiveLog(ctx context.Context, root string, opts ComprehensiveOptions) ([]CommitEntry, error) {
	r := gitrun.New(root)
	if !r.IsWorkingTree(ctx) {
		return nil, nil
	}

	format := fmt.Sprintf("--pretty=format:%s%%H%s%%P%s%%an%s%%aI%s%%s%s%%b", recordSep, fieldSep, fieldSep, fieldSep, fieldSep, fieldSep)
	sub := []string{"log", format}
	if opts.MaxCount > 0 {
		sub = append(sub, "-n", strconv.Itoa(opts.MaxCount))
	}
	if opts.Patch {
		sub = append(sub, "--patch")
	}
	if opts.Stat {
		sub = append(sub, "--stat")
	}
	if opts.Numstat {
		sub = append(sub, "--numstat")
	}
	if opts.Graph {
		sub = append(sub, "--graph")
	}
	if opts.All {
		sub = append(sub, "--all")
	}

	out, err := r.Run(ctx, sub)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}

	var commits []CommitEntry
	for _, rec := range strings.Split(out, recordSep) {
		rec = strings.TrimSpace(rec)
		if rec == "" {
			continue
		}
		parts := strings.SplitN(rec, fieldSep, 6)
		if len(parts) < 6 {
			continue
		}
		date, _ := time.Parse(time.RFC3339, parts[3])
		var parents []string
		if parts[1] != "" {
			parents = strings.Fields(parts[1])
		}
		commits = append(commits, CommitEntry{
			Hash:         parts[0],
			ParentHashes: parents,
			Author:       parts[2],
			Date:         date,
			Subject:      parts[4],
			Body:         strings.TrimSpace(parts[5]),
		})
	}
	return commits, nil
}

// MermaidGraph renders a `gitGraph` Mermaid diagram from a comprehensive
// commit list, tagging merge commits with `type: HIGHLIGHT` and escaping
// commit IDs for the Mermaid grammar (spec.md §4.6).
func MermaidGraph(commits []CommitEntry) string {
	var b strings.Builder
	b.WriteString("gitGraph\n")
	// Render oldest-first: `git log` yields newest-first.
	for i := len(commits) - 1; i >= 0; i-- {
		c := commits[i]
		id := escapeMermaidID(c.Hash[:shortLen(c.Hash)])
		if c.IsMerge() {
			fmt.Fprintf(&b, "  commit id: %q type: HIGHLIGHT\n", id)
		} else {
			fmt.Fprintf(&b, "  commit id: %q\n", id)
		}
	}
	return b.String()
}

func shortLen(hash string) int {
	if len(hash) < 7 {
		return len(hash)
	}
	return 7
}

func escapeMermaidID(id string) string {
	replacer := strings.NewReplacer(`"`, `'`, "\n", " ")
	return replacer.Replace(id)
}
