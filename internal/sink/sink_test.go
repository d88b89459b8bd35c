package sink

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteStdout(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "hello", Options{Stdout: true}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.String() != "hello" {
		t.Errorf("got %q", buf.String())
	}
}

func TestWriteFileCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "out.xml")
	if err := Write(nil, "content", Options{FilePath: target}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "content" {
		t.Errorf("got %q", got)
	}
}

func TestDefaultFilePath(t *testing.T) {
	cases := map[string]string{
		"xml": "repomix-output.xml", "markdown": "repomix-output.md",
		"json": "repomix-output.json", "plain": "repomix-output.txt",
	}
	for style, want := range cases {
		if got := DefaultFilePath(style); got != want {
			t.Errorf("DefaultFilePath(%q) = %q, want %q", style, got, want)
		}
	}
}
