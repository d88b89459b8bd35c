// Package compress implements the tree-sitter-backed compression stage:
// parsing source per-language and keeping only definition-level structure
// (signatures, selectors, doc comments) while dropping bodies and values
// (spec.md §4.4 step 6, §6).
package compress

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/csharp"
	"github.com/smacker/go-tree-sitter/css"
	"github.com/smacker/go-tree-sitter/elixir"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/html"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/kotlin"
	"github.com/smacker/go-tree-sitter/php"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/scala"
	"github.com/smacker/go-tree-sitter/swift"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// langSpec describes, for one language, which node types count as
// definitions worth keeping, which of their fields hold the body to drop,
// and whether a following string-literal docstring should be preserved
// (the Python convention, spec.md §4.4 step 6).
//
// Two languages need a different strategy than "signature text up to a
// named body field":
//
//   - tagOnly marks markup languages (HTML) where the kept unit isn't a
//     signature at all but a bare element tag name, indented by nesting
//     depth (spec.md §4.4 step 6, §9: "emits only a tag name with leading
//     indent, not a full serialization").
//   - callTargetNames marks languages (Elixir) whose grammar represents
//     definitions as ordinary call expressions (`def foo do ... end`
//     parses as a "call" node, not a dedicated "function_definition"
//     node); only calls whose target identifier is in this set count as
//     definitions, and their body is whatever "do_block" child they have,
//     found by type rather than by field name.
type langSpec struct {
	lang            *sitter.Language
	definitionTypes map[string]bool
	bodyField       string
	keepDocstring   bool
	commentTypes    map[string]bool
	tagOnly         bool
	callTargetNames map[string]bool
}

var registry = map[string]langSpec{
	".go": {
		lang: golang.GetLanguage(),
		definitionTypes: set(
			"function_declaration", "method_declaration", "type_declaration",
			"import_declaration", "package_clause",
		),
		bodyField:    "body",
		commentTypes: set("comment"),
	},
	".py": {
		lang: python.GetLanguage(),
		definitionTypes: set(
			"function_definition", "class_definition", "import_statement",
			"import_from_statement",
		),
		bodyField:     "body",
		keepDocstring: true,
		commentTypes:  set("comment"),
	},
	".js":  jsSpec(javascript.GetLanguage()),
	".jsx": jsSpec(javascript.GetLanguage()),
	".ts":  jsSpec(typescript.GetLanguage()),
	".tsx": jsSpec(tsx.GetLanguage()),
	".java": {
		lang: java.GetLanguage(),
		definitionTypes: set(
			"class_declaration", "interface_declaration", "enum_declaration",
			"method_declaration", "import_declaration", "package_declaration",
		),
		bodyField:    "body",
		commentTypes: set("line_comment", "block_comment"),
	},
	".c": {
		lang:            c.GetLanguage(),
		definitionTypes: set("function_definition", "struct_specifier", "enum_specifier", "preproc_include"),
		bodyField:       "body",
		commentTypes:    set("comment"),
	},
	".cpp": {
		lang:            cpp.GetLanguage(),
		definitionTypes: set("function_definition", "class_specifier", "struct_specifier", "enum_specifier", "preproc_include", "namespace_definition"),
		bodyField:       "body",
		commentTypes:    set("comment"),
	},
	".cs": {
		lang:            csharp.GetLanguage(),
		definitionTypes: set("class_declaration", "interface_declaration", "method_declaration", "struct_declaration", "enum_declaration", "using_directive", "namespace_declaration"),
		bodyField:       "body",
		commentTypes:    set("comment"),
	},
	".rb": {
		lang:            ruby.GetLanguage(),
		definitionTypes: set("module", "class", "method", "singleton_method"),
		bodyField:       "body",
		commentTypes:    set("comment"),
	},
	".php": {
		lang:            php.GetLanguage(),
		definitionTypes: set("class_declaration", "interface_declaration", "function_definition", "method_declaration", "namespace_definition"),
		bodyField:       "body",
		commentTypes:    set("comment"),
	},
	".swift": {
		lang:            swift.GetLanguage(),
		definitionTypes: set("class_declaration", "function_declaration", "protocol_declaration", "import_declaration"),
		bodyField:       "body",
		commentTypes:    set("comment", "multiline_comment"),
	},
	".kt": {
		lang:            kotlin.GetLanguage(),
		definitionTypes: set("class_declaration", "function_declaration", "object_declaration", "import_header"),
		bodyField:       "body",
		commentTypes:    set("comment", "multiline_comment"),
	},
	".scala": {
		lang:            scala.GetLanguage(),
		definitionTypes: set("class_definition", "object_definition", "trait_definition", "function_definition", "import_declaration"),
		bodyField:       "body",
		commentTypes:    set("comment", "block_comment"),
	},
	".rs": {
		lang:            rust.GetLanguage(),
		definitionTypes: set("function_item", "struct_item", "enum_item", "trait_item", "impl_item", "use_declaration", "mod_item"),
		bodyField:       "body",
		commentTypes:    set("line_comment", "block_comment"),
	},
	".sh": {
		lang:            bash.GetLanguage(),
		definitionTypes: set("function_definition"),
		bodyField:       "body",
		commentTypes:    set("comment"),
	},
	".css": {
		lang:            css.GetLanguage(),
		definitionTypes: set("rule_set", "at_rule", "media_statement"),
		bodyField:       "block",
		commentTypes:    set("comment"),
	},
	".html": {
		lang:         html.GetLanguage(),
		commentTypes: set("comment"),
		tagOnly:      true,
	},
	".ex": {
		lang: elixir.GetLanguage(),
		callTargetNames: set(
			"def", "defp", "defmacro", "defmacrop", "defmodule",
			"defprotocol", "defimpl", "defdelegate", "defstruct",
			"defexception", "defguard", "defguardp",
		),
		commentTypes: set("comment"),
	},
	".exs": {
		lang: elixir.GetLanguage(),
		callTargetNames: set(
			"def", "defp", "defmacro", "defmacrop", "defmodule",
			"defprotocol", "defimpl", "defdelegate", "defstruct",
			"defexception", "defguard", "defguardp",
		),
		commentTypes: set("comment"),
	},
}

func jsSpec(lang *sitter.Language) langSpec {
	return langSpec{
		lang: lang,
		definitionTypes: set(
			"function_declaration", "class_declaration", "method_definition",
			"interface_declaration", "import_statement", "export_statement",
			"lexical_declaration",
		),
		bodyField:    "body",
		commentTypes: set("comment"),
	}
}

func set(vals ...string) map[string]bool {
	m := make(map[string]bool, len(vals))
	for _, v := range vals {
		m[v] = true
	}
	return m
}

// Supported reports whether ext has a registered compression strategy
// (spec.md §6's recognized-language list). XML is handled outside the
// tree-sitter registry (see compressXML) since no XML grammar ships in
// smacker/go-tree-sitter.
func Supported(ext string) bool {
	if ext == ".xml" {
		return true
	}
	_, ok := registry[ext]
	return ok
}
