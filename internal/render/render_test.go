package render

import (
	"strings"
	"testing"

	"github.com/repomix-go/repomix-go/internal/model"
)

func sampleInput(style model.OutputStyle) Input {
	return Input{
		Style:              style,
		FileSummary:        true,
		DirectoryStructure: true,
		Files:              true,
		TopFilesLength:     5,
		DirectoryPaths:     []string{"a/b.go", "a.md"},
		ProcessedFiles: []model.ProcessedFile{
			{Path: "a/b.go", Content: "package a"},
			{Path: "a.md", Content: "# hi"},
		},
		FileCharCounts:  map[string]int{"a/b.go": 9, "a.md": 4},
		FileTokenCounts: map[string]int{"a/b.go": 3, "a.md": 2},
		TotalFiles:      2,
		TotalCharacters: 13,
		TotalTokens:     5,
	}
}

func TestRenderXML(t *testing.T) {
	out, err := Render(sampleInput(model.StyleXML))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, `<file path="a/b.go">`) {
		t.Errorf("missing file element, got %q", out)
	}
	if !strings.Contains(out, "<![CDATA[package a]]>") {
		t.Errorf("missing CDATA body, got %q", out)
	}
}

func TestRenderXMLParsableEscapes(t *testing.T) {
	in := sampleInput(model.StyleXML)
	in.ParsableStyle = true
	out, err := Render(in)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(out, "CDATA") {
		t.Errorf("parsable style should not use CDATA, got %q", out)
	}
}

func TestRenderXMLSplitsEmbeddedCDATATerminator(t *testing.T) {
	in := sampleInput(model.StyleXML)
	in.ProcessedFiles = []model.ProcessedFile{{Path: "a.txt", Content: "x]]>y"}}
	out, err := Render(in)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "]]]]><![CDATA[>") {
		t.Errorf("expected split CDATA sequence, got %q", out)
	}
}

func TestRenderMarkdown(t *testing.T) {
	out, err := Render(sampleInput(model.StyleMarkdown))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "## File: a/b.go") {
		t.Errorf("missing file header, got %q", out)
	}
	if !strings.Contains(out, "```go") {
		t.Errorf("missing language fence, got %q", out)
	}
}

func TestRenderJSON(t *testing.T) {
	out, err := Render(sampleInput(model.StyleJSON))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(out, `{"fileSummary"`) {
		t.Errorf("expected fileSummary to be the first key, got %q", out)
	}
	if !strings.Contains(out, `"a/b.go":"package a"`) {
		t.Errorf("missing file entry, got %q", out)
	}
}

func TestRenderPlain(t *testing.T) {
	out, err := Render(sampleInput(model.StylePlain))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "================\nFiles\n================") {
		t.Errorf("missing files banner, got %q", out)
	}
}

func TestBuildTreeOrdersDirsBeforeFiles(t *testing.T) {
	tree := BuildTree([]string{"b.go", "a/c.go"}, nil)
	lines := RenderLines(tree, 0)
	want := []string{"a/", "  c.go", "b.go"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v", lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestTopFilesOrdering(t *testing.T) {
	top := topFiles(map[string]int{"a": 5, "b": 10, "c": 10}, 2)
	if len(top) != 2 || top[0].Path != "b" || top[1].Path != "c" {
		t.Errorf("top = %+v", top)
	}
}
