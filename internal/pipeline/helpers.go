package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/repomix-go/repomix-go/internal/gitinfo"
	"github.com/repomix-go/repomix-go/internal/model"
)

// renderLogText produces the git-logs section body: either the simple
// date|subject|files listing or, when comprehensive mode is requested, the
// extended commit log plus its Mermaid gitGraph rendering (spec.md §4.6).
func renderLogText(ctx context.Context, root string, cfg model.Config) string {
	if cfg.Git.Comprehensive {
		commits, err := gitinfo.ComprehensiveLog(ctx, root, gitinfo.ComprehensiveOptions{
			MaxCount: cfg.Git.IncludeLogsCount,
		})
		if err != nil || len(commits) == 0 {
			return ""
		}
		var b strings.Builder
		for _, c := range commits {
			fmt.Fprintf(&b, "%s %s %s %s\n", shortHash(c.Hash), c.Author, c.Date.Format("2006-01-02"), c.Subject)
		}
		b.WriteString("\n")
		b.WriteString(gitinfo.MermaidGraph(commits))
		return strings.TrimRight(b.String(), "\n")
	}

	entries, err := gitinfo.SimpleLog(ctx, root, cfg.Git.IncludeLogsCount)
	if err != nil || len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %s\n", e.Date, e.Subject)
		for _, f := range e.Files {
			fmt.Fprintf(&b, "  %s\n", f)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func shortHash(hash string) string {
	if len(hash) < 7 {
		return hash
	}
	return hash[:7]
}

// readInstructionFile loads the user-supplied instruction text, resolved
// relative to cwd. A missing or unreadable file yields an empty string
// rather than aborting the run (spec.md §7 IOError policy for user files).
func readInstructionFile(cfg model.Config) string {
	path := cfg.Output.InstructionFilePath
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.Cwd, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}
