package compress

import (
	"context"
	"encoding/xml"
	"io"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Compress parses content as the language registered for ext and returns
// source reduced to definition signatures, doc comments, and (for Python)
// an immediately following docstring, dropping bodies and values
// (spec.md §4.4 step 6). ok is false when ext is unsupported or the parse
// fails, in which case the caller falls back to the original content.
func Compress(content, ext string) (out string, ok bool) {
	if ext == ".xml" {
		return compressXML(content)
	}

	spec, found := registry[ext]
	if !found {
		return "", false
	}

	parser := sitter.NewParser()
	parser.SetLanguage(spec.lang)

	src := []byte(content)
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil || tree == nil {
		return "", false
	}
	root := tree.RootNode()
	if root == nil || root.HasError() {
		return "", false
	}

	var lines []string
	collect(root, src, spec, 0, &lines)
	if len(lines) == 0 {
		return "", false
	}
	return strings.Join(lines, "\n"), true
}

// collect walks the tree depth-first, emitting one rendered line per
// definition, bare tag name, or decorative comment it finds, and recursing
// into children that are not themselves bodies (so nested definitions and
// nested elements still surface).
func collect(node *sitter.Node, src []byte, spec langSpec, depth int, out *[]string) {
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		typ := child.Type()

		if spec.commentTypes[typ] {
			*out = append(*out, indent(depth)+singleLine(child.Content(src)))
			continue
		}

		if spec.tagOnly {
			if typ == "element" {
				if name := htmlTagName(child, src); name != "" {
					*out = append(*out, indent(depth)+"<"+name)
				}
				collect(child, src, spec, depth+1, out)
				continue
			}
			collect(child, src, spec, depth, out)
			continue
		}

		if def, body := matchDefinition(child, src, spec); def {
			*out = append(*out, indent(depth)+signatureOf(child, src, body))

			if spec.keepDocstring {
				if doc := pythonDocstring(child, src); doc != "" {
					*out = append(*out, indent(depth+1)+doc)
				}
			}

			if body != nil {
				collect(body, src, spec, depth+1, out)
			}
			continue
		}

		collect(child, src, spec, depth, out)
	}
}

// matchDefinition reports whether node counts as a kept definition under
// spec, and returns the node (if any) holding its dropped body.
//
// Most languages identify definitions purely by node type, with the body
// found via a named field (spec.bodyField). Elixir's grammar instead
// represents `def`/`defmodule`/etc. as ordinary "call" nodes, so those are
// matched by inspecting the call target identifier, and their body (if
// any) is the "do_block" child found by type.
func matchDefinition(node *sitter.Node, src []byte, spec langSpec) (bool, *sitter.Node) {
	typ := node.Type()

	if spec.callTargetNames != nil {
		if typ != "call" {
			return false, nil
		}
		target := node.ChildByFieldName("target")
		if target == nil {
			target = node.Child(0)
		}
		if target == nil || !spec.callTargetNames[target.Content(src)] {
			return false, nil
		}
		return true, findChildByType(node, "do_block")
	}

	if !spec.definitionTypes[typ] {
		return false, nil
	}
	return true, node.ChildByFieldName(spec.bodyField)
}

// findChildByType returns node's first direct child of the given type, or
// nil if none matches.
func findChildByType(node *sitter.Node, typ string) *sitter.Node {
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		child := node.Child(i)
		if child != nil && child.Type() == typ {
			return child
		}
	}
	return nil
}

// htmlTagName returns the tag name of an "element" node's start tag, or ""
// if the structure doesn't match what's expected (defensive: a shape
// mismatch just drops that tag rather than failing the whole compression).
func htmlTagName(element *sitter.Node, src []byte) string {
	startTag := findChildByType(element, "start_tag")
	if startTag == nil {
		startTag = findChildByType(element, "self_closing_tag")
	}
	if startTag == nil {
		return ""
	}
	name := findChildByType(startTag, "tag_name")
	if name == nil {
		return ""
	}
	return singleLine(name.Content(src))
}

// signatureOf renders a definition node's text up to (but not including)
// its body node, trimmed of surrounding whitespace and collapsed to a
// single line. A nil body (no body field/block present, e.g. a one-line
// Elixir `def foo, do: bar`) collapses the whole node to one line instead.
func signatureOf(node *sitter.Node, src []byte, body *sitter.Node) string {
	full := node.Content(src)
	if body == nil {
		return singleLine(full)
	}
	offset := int(body.StartByte() - node.StartByte())
	if offset < 0 || offset > len(full) {
		return singleLine(full)
	}
	sig := strings.TrimRight(full[:offset], " \t\n")
	if sig == "" {
		return singleLine(full)
	}
	return singleLine(sig)
}

// compressXML keeps only element tag names, indented by nesting depth —
// not a full serialization (spec.md §4.4 step 6, §9). No XML grammar
// ships in smacker/go-tree-sitter, so this walks encoding/xml's token
// stream instead of an AST; a real syntax error aborts and reports ok=false
// so the caller falls back to the original content.
func compressXML(content string) (string, bool) {
	dec := xml.NewDecoder(strings.NewReader(content))
	var lines []string
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", false
		}
		switch t := tok.(type) {
		case xml.StartElement:
			lines = append(lines, indent(depth)+"<"+t.Name.Local)
			depth++
		case xml.EndElement:
			depth--
		}
	}
	if len(lines) == 0 {
		return "", false
	}
	return strings.Join(lines, "\n"), true
}

// pythonDocstring returns the text of a string-literal expression
// statement immediately following the start of def's body, if any
// (the Python docstring convention, spec.md §4.4 step 6).
func pythonDocstring(def *sitter.Node, src []byte) string {
	body := def.ChildByFieldName("body")
	if body == nil || body.ChildCount() == 0 {
		return ""
	}
	first := body.Child(0)
	if first == nil || first.Type() != "expression_statement" {
		return ""
	}
	if first.ChildCount() == 0 {
		return ""
	}
	lit := first.Child(0)
	if lit == nil || lit.Type() != "string" {
		return ""
	}
	return singleLine(lit.Content(src))
}

func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.Join(strings.Fields(s), " ")
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
