package gitinfo

import (
	"context"
	"testing"

	"github.com/repomix-go/repomix-go/internal/testrepo"
)

func TestChangeCounts(t *testing.T) {
	repo := testrepo.New(t)
	repo.Commit("first", map[string]string{"a.ts": "1", "b.ts": "1"})
	repo.Commit("second", map[string]string{"a.ts": "2"})
	repo.Commit("third", map[string]string{"a.ts": "3", "c.ts": "1"})

	counts, err := ChangeCounts(context.Background(), repo.Dir, 100)
	if err != nil {
		t.Fatalf("ChangeCounts: %v", err)
	}
	if counts["a.ts"] != 3 {
		t.Errorf("a.ts churn = %d, want 3", counts["a.ts"])
	}
	if counts["b.ts"] != 1 {
		t.Errorf("b.ts churn = %d, want 1", counts["b.ts"])
	}
	if counts["c.ts"] != 1 {
		t.Errorf("c.ts churn = %d, want 1", counts["c.ts"])
	}
}

func TestChangeCountsNotAWorkingTree(t *testing.T) {
	dir := t.TempDir()
	counts, err := ChangeCounts(context.Background(), dir, 100)
	if err != nil {
		t.Fatalf("ChangeCounts: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("expected empty map for non-repo dir, got %v", counts)
	}
}

func TestSimpleLog(t *testing.T) {
	repo := testrepo.New(t)
	repo.Commit("add readme", map[string]string{"README.md": "hi"})

	entries, err := SimpleLog(context.Background(), repo.Dir, 10)
	if err != nil {
		t.Fatalf("SimpleLog: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Subject != "add readme" {
		t.Errorf("subject = %q", entries[0].Subject)
	}
	if len(entries[0].Files) != 1 || entries[0].Files[0] != "README.md" {
		t.Errorf("files = %v", entries[0].Files)
	}
}

func TestComprehensiveLogAndMermaid(t *testing.T) {
	repo := testrepo.New(t)
	repo.Commit("base", map[string]string{"a.txt": "1"})

	commits, err := ComprehensiveLog(context.Background(), repo.Dir, ComprehensiveOptions{MaxCount: 10})
	if err != nil {
		t.Fatalf("ComprehensiveLog: %v", err)
	}
	if len(commits) != 1 {
		t.Fatalf("got %d commits, want 1", len(commits))
	}
	if commits[0].IsMerge() {
		t.Errorf("single-parent commit reported as merge")
	}

	graph := MermaidGraph(commits)
	if graph == "" {
		t.Errorf("expected non-empty mermaid graph")
	}
}

func TestBlame(t *testing.T) {
	repo := testrepo.New(t)
	repo.Commit("initial", map[string]string{"f.go": "package main\n"})

	lines, err := Blame(context.Background(), repo.Dir, "f.go")
	if err != nil {
		t.Fatalf("Blame: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("got %d blame lines, want 1", len(lines))
	}
	if lines[0].Author != "Test User" {
		t.Errorf("author = %q", lines[0].Author)
	}
	annotated := Annotate(lines)
	if annotated == "" {
		t.Errorf("expected non-empty annotated output")
	}
}

func TestCaptureDiffs(t *testing.T) {
	repo := testrepo.New(t)
	repo.Commit("base", map[string]string{"a.txt": "one\n"})
	repo.WriteFile("a.txt", "two\n")

	diffs, err := CaptureDiffs(context.Background(), repo.Dir, DiffOptions{})
	if err != nil {
		t.Fatalf("CaptureDiffs: %v", err)
	}
	if diffs.WorkTree == "" {
		t.Errorf("expected non-empty worktree diff")
	}
	if diffs.Staged != "" {
		t.Errorf("expected empty staged diff, got %q", diffs.Staged)
	}
}
