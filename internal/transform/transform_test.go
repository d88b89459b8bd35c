package transform

import (
	"strings"
	"testing"

	"github.com/repomix-go/repomix-go/internal/gitinfo"
	"github.com/repomix-go/repomix-go/internal/model"
)

func TestTruncateBase64(t *testing.T) {
	blob := strings.Repeat("A", 150)
	content := "prefix " + blob + " suffix"
	out := TruncateBase64(content)
	if strings.Contains(out, blob) {
		t.Errorf("expected blob to be truncated, got %q", out)
	}
	if !strings.Contains(out, "base64 data truncated") {
		t.Errorf("expected truncation marker, got %q", out)
	}
}

func TestStripCommentsGo(t *testing.T) {
	src := "package a\n// a comment\nfunc f() {} /* block */\nvar s = \"// not a comment\"\n"
	out := StripComments(src, ".go")
	if strings.Contains(out, "a comment") {
		t.Errorf("line comment not stripped: %q", out)
	}
	if strings.Contains(out, "block") {
		t.Errorf("block comment not stripped: %q", out)
	}
	if !strings.Contains(out, "// not a comment") {
		t.Errorf("string literal content should survive: %q", out)
	}
}

func TestStripCommentsUnknownExtBypasses(t *testing.T) {
	src := "# not touched\n"
	out := StripComments(src, ".unknownext")
	if out != src {
		t.Errorf("expected no change, got %q", out)
	}
}

func TestRemoveEmptyLines(t *testing.T) {
	out := RemoveEmptyLines("a\n\n  \nb\n")
	if out != "a\nb" {
		t.Errorf("got %q", out)
	}
}

func TestTrimTrailingWhitespace(t *testing.T) {
	out := TrimTrailingWhitespace("a  \nb\t\n")
	if out != "a\nb" {
		t.Errorf("got %q", out)
	}
}

func TestAddLineNumbers(t *testing.T) {
	out := AddLineNumbers("a\nb\nc")
	want := "1: a\n2: b\n3: c"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestApplyBlameSkipsCommentsAndCompress(t *testing.T) {
	raw := model.RawFile{Path: "a.go", Content: "// c\nfunc f() {}\n"}
	opts := Options{
		RemoveComments: true,
		Compress:       true,
		Compressor: func(content, ext string) (string, bool) {
			return "COMPRESSED", true
		},
		Blame: []gitinfo.BlameLine{{Author: "A", Date: "2024-01-01", Text: "// c"}},
	}
	pf := Apply(raw, opts)
	if !strings.Contains(pf.Content, "[A 2024-01-01]") {
		t.Errorf("expected blame annotation, got %q", pf.Content)
	}
	if strings.Contains(pf.Content, "COMPRESSED") {
		t.Errorf("compress should be skipped when blame applied")
	}
}

func TestApplyCompressSkipsLineNumbers(t *testing.T) {
	raw := model.RawFile{Path: "a.go", Content: "func f() {}\n"}
	opts := Options{
		Compress:        true,
		ShowLineNumbers: true,
		Compressor: func(content, ext string) (string, bool) {
			return "func f()", true
		},
	}
	pf := Apply(raw, opts)
	if pf.Content != "func f()" {
		t.Errorf("got %q", pf.Content)
	}
}

func TestApplyLineLimitTruncation(t *testing.T) {
	raw := model.RawFile{Path: "a.txt", Content: "1\n2\n3\n4\n5\n"}
	opts := Options{LineLimit: 2}
	pf := Apply(raw, opts)
	if pf.Truncation == nil || !pf.Truncation.Truncated {
		t.Fatalf("expected truncation, got %+v", pf.Truncation)
	}
	if pf.Truncation.OriginalLineCount != 6 || pf.Truncation.TruncatedLineCount != 2 {
		t.Errorf("truncation = %+v", pf.Truncation)
	}
	if pf.OriginalContent == "" {
		t.Errorf("expected original content retained")
	}
}

func TestLanguageTag(t *testing.T) {
	if got := LanguageTag("a/b.ts"); got != "typescript" {
		t.Errorf("got %q", got)
	}
	if got := LanguageTag("a/b.unknown"); got != "unknown" {
		t.Errorf("got %q", got)
	}
}
