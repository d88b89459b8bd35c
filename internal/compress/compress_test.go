package compress

import (
	"strings"
	"testing"
)

func TestCompressGoDropsBodyKeepsSignature(t *testing.T) {
	src := `package main

// Add sums two ints.
func Add(a, b int) int {
	result := a + b
	return result
}
`
	out, ok := Compress(src, ".go")
	if !ok {
		t.Fatalf("expected compression to succeed")
	}
	if strings.Contains(out, "result := a + b") {
		t.Errorf("body should be dropped, got %q", out)
	}
	if !strings.Contains(out, "func Add(a, b int) int") {
		t.Errorf("signature should survive, got %q", out)
	}
	if !strings.Contains(out, "Add sums two ints") {
		t.Errorf("doc comment should survive, got %q", out)
	}
}

func TestCompressUnsupportedExt(t *testing.T) {
	if _, ok := Compress("anything", ".unknownext"); ok {
		t.Errorf("expected unsupported extension to fail")
	}
}

func TestSupported(t *testing.T) {
	if !Supported(".go") {
		t.Errorf("expected .go to be supported")
	}
	if !Supported(".xml") {
		t.Errorf("expected .xml to be supported")
	}
	if !Supported(".html") {
		t.Errorf("expected .html to be supported")
	}
	if !Supported(".ex") {
		t.Errorf("expected .ex to be supported")
	}
	if Supported(".bin") {
		t.Errorf("expected .bin to be unsupported")
	}
}

func TestCompressXMLKeepsTagNamesIndentedByDepth(t *testing.T) {
	src := `<repomix><file_summary>hi</file_summary><files><file path="a">body</file></files></repomix>`
	out, ok := Compress(src, ".xml")
	if !ok {
		t.Fatalf("expected compression to succeed")
	}
	if strings.Contains(out, "body") || strings.Contains(out, "hi") {
		t.Errorf("element text should be dropped, got %q", out)
	}
	if !strings.Contains(out, "<repomix") || !strings.Contains(out, "  <file_summary") {
		t.Errorf("expected indented tag names, got %q", out)
	}
}

func TestCompressXMLInvalidFallsBack(t *testing.T) {
	if _, ok := Compress("<unclosed>", ".xml"); ok {
		t.Errorf("expected malformed XML to fail compression")
	}
}

func TestCompressHTMLKeepsTagNamesOnly(t *testing.T) {
	src := `<html><body><p>hello world</p></body></html>`
	out, ok := Compress(src, ".html")
	if !ok {
		t.Fatalf("expected compression to succeed")
	}
	if strings.Contains(out, "hello world") {
		t.Errorf("element text should be dropped, got %q", out)
	}
	if !strings.Contains(out, "<html") || !strings.Contains(out, "<body") || !strings.Contains(out, "<p") {
		t.Errorf("expected nested tag names, got %q", out)
	}
}

func TestCompressElixirKeepsDefSignature(t *testing.T) {
	src := `defmodule Greeter do
  def hello(name) do
    message = "hi " <> name
    IO.puts(message)
  end
end
`
	out, ok := Compress(src, ".ex")
	if !ok {
		t.Fatalf("expected compression to succeed")
	}
	if strings.Contains(out, "IO.puts") {
		t.Errorf("body should be dropped, got %q", out)
	}
	if !strings.Contains(out, "defmodule Greeter") {
		t.Errorf("module signature missing, got %q", out)
	}
	if !strings.Contains(out, "def hello(name)") {
		t.Errorf("function signature missing, got %q", out)
	}
}

func TestCompressPythonKeepsDocstring(t *testing.T) {
	src := `def greet(name):
    """Say hello."""
    message = "hi " + name
    print(message)
`
	out, ok := Compress(src, ".py")
	if !ok {
		t.Fatalf("expected compression to succeed")
	}
	if !strings.Contains(out, "def greet(name):") {
		t.Errorf("signature missing, got %q", out)
	}
	if !strings.Contains(out, "Say hello") {
		t.Errorf("docstring missing, got %q", out)
	}
	if strings.Contains(out, "message = ") {
		t.Errorf("body should be dropped, got %q", out)
	}
}
