package discover

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/repomix-go/repomix-go/internal/model"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDiscoverS1Shorthand(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".gitignore":    "dist/\n",
		"README.md":     "# X",
		"dist/bundle.js": "console.log(1)",
		"src/a.ts":      "export const x=1;",
	})

	cfg := model.DefaultConfig()
	result, err := Discover(root, cfg)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{"README.md", "src/a.ts"}
	if !reflect.DeepEqual(result.FilePaths, want) {
		t.Errorf("FilePaths = %v, want %v", result.FilePaths, want)
	}
}

func TestDiscoverCustomIgnore(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"keep.go":   "package a",
		"drop.secret": "nope",
	})

	cfg := model.DefaultConfig()
	cfg.Ignore.CustomPatterns = []string{"*.secret"}
	result, err := Discover(root, cfg)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(result.FilePaths) != 1 || result.FilePaths[0] != "keep.go" {
		t.Errorf("FilePaths = %v", result.FilePaths)
	}
}

func TestDiscoverIncludeOverride(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.ts": "1",
		"b.md": "2",
	})
	cfg := model.DefaultConfig()
	cfg.Include = []string{"*.ts"}
	result, err := Discover(root, cfg)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(result.FilePaths) != 1 || result.FilePaths[0] != "a.ts" {
		t.Errorf("FilePaths = %v", result.FilePaths)
	}
}

func TestDiscoverEmptyDirectories(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "empty", "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeTree(t, root, map[string]string{"a.go": "package a"})

	cfg := model.DefaultConfig()
	cfg.Output.IncludeEmptyDirectories = true
	result, err := Discover(root, cfg)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	found := false
	for _, d := range result.EmptyDirPaths {
		if d == "empty/nested" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected empty/nested in EmptyDirPaths, got %v", result.EmptyDirPaths)
	}
}

func TestDiscoverBinaryExtensionAlwaysIgnored(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"image.png": "binarydata", "code.go": "package a"})
	cfg := model.DefaultConfig()
	cfg.Ignore.UseDefaultPatterns = false
	result, err := Discover(root, cfg)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	for _, f := range result.FilePaths {
		if f == "image.png" {
			t.Errorf("image.png should never be included")
		}
	}
}
