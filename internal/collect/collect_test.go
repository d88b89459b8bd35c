package collect

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestCollectSkipsBySize(t *testing.T) {
	root := t.TempDir()
	big := filepath.Join(root, "big.txt")
	if err := os.WriteFile(big, []byte("0123456789"), 0o644); err != nil {
		t.Fatal(err)
	}

	result := Collect(context.Background(), root, []string{"big.txt"}, 5)
	if len(result.Files) != 0 {
		t.Fatalf("expected file to be skipped, got %v", result.Files)
	}
	if len(result.Skips) != 1 || result.Skips[0].Reason != SkipSizeLimit {
		t.Fatalf("skips = %v", result.Skips)
	}
}

func TestCollectSkipsBinaryExtension(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "img.png"), []byte("fakepng"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := Collect(context.Background(), root, []string{"img.png"}, 0)
	if len(result.Files) != 0 {
		t.Fatalf("expected skip, got %v", result.Files)
	}
	if result.Skips[0].Reason != SkipBinaryExt {
		t.Fatalf("reason = %v", result.Skips[0].Reason)
	}
}

func TestCollectSkipsBinaryContent(t *testing.T) {
	root := t.TempDir()
	content := make([]byte, 100)
	for i := range content {
		content[i] = byte(i % 31) // low control bytes, avoids \n \r \t ranges mostly
	}
	if err := os.WriteFile(filepath.Join(root, "blob.dat"), content, 0o644); err != nil {
		t.Fatal(err)
	}
	result := Collect(context.Background(), root, []string{"blob.dat"}, 0)
	if len(result.Files) != 0 {
		t.Fatalf("expected skip, got %v", result.Files)
	}
}

func TestCollectPreservesOrderAndStripsBOM(t *testing.T) {
	root := t.TempDir()
	bom := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello")...)
	if err := os.WriteFile(filepath.Join(root, "a.txt"), bom, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "b.txt"), []byte("world"), 0o644); err != nil {
		t.Fatal(err)
	}

	result := Collect(context.Background(), root, []string{"a.txt", "b.txt"}, 0)
	if len(result.Files) != 2 {
		t.Fatalf("got %d files, want 2", len(result.Files))
	}
	if result.Files[0].Path != "a.txt" || result.Files[0].Content != "hello" {
		t.Errorf("a.txt = %+v", result.Files[0])
	}
	if result.Files[1].Path != "b.txt" || result.Files[1].Content != "world" {
		t.Errorf("b.txt = %+v", result.Files[1])
	}
}

func TestPoolSize(t *testing.T) {
	if got := PoolSize(0); got != 1 {
		t.Errorf("PoolSize(0) = %d, want 1", got)
	}
	if got := PoolSize(1); got < 1 {
		t.Errorf("PoolSize(1) = %d, want >=1", got)
	}
}
