// Package sink implements the output stage: writing the rendered artifact
// to a file or standard output, optionally also to the clipboard
// (spec.md §4.10).
package sink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
)

// Options controls where the rendered content goes (spec.md §4.10).
type Options struct {
	FilePath        string // resolved relative to cwd by the caller
	Stdout          bool
	CopyToClipboard bool
}

// Write sends content to the configured destination. File writes create
// parent directories as needed and write the whole body in one call, so a
// partially-written file is never observable (spec.md §4.10 "atomic-last").
func Write(out io.Writer, content string, opts Options) error {
	if opts.Stdout {
		if _, err := io.WriteString(out, content); err != nil {
			return fmt.Errorf("sink: write stdout: %w", err)
		}
	} else {
		if err := writeFile(opts.FilePath, content); err != nil {
			return err
		}
	}

	if opts.CopyToClipboard {
		if err := clipboard.WriteAll(content); err != nil {
			return fmt.Errorf("sink: write clipboard: %w", err)
		}
	}
	return nil
}

func writeFile(path string, content string) error {
	if path == "" {
		return fmt.Errorf("sink: empty output file path")
	}
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("sink: create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("sink: write %s: %w", path, err)
	}
	return nil
}

// DefaultFilePath returns the style-dependent default output path
// (spec.md §6).
func DefaultFilePath(style string) string {
	switch style {
	case "markdown":
		return "repomix-output.md"
	case "json":
		return "repomix-output.json"
	case "plain":
		return "repomix-output.txt"
	default:
		return "repomix-output.xml"
	}
}
