// Package model defines the data structures shared across the packaging
// pipeline: configuration, per-file records, and the final pack result.
package model

// OutputStyle selects the rendered artifact format.
type OutputStyle string

// Recognized output styles.
const (
	StyleXML      OutputStyle = "xml"
	StyleMarkdown OutputStyle = "markdown"
	StyleJSON     OutputStyle = "json"
	StylePlain    OutputStyle = "plain"
)

// TokenCountTree controls per-entry token annotation on the rendered
// directory tree. The upstream config accepts bool, number, or string;
// this is a pass-through, not a policy (see SPEC_FULL.md open questions).
type TokenCountTree struct {
	Enabled bool
	Number  int
	String  string
}

// InputConfig groups file-discovery-affecting knobs.
type InputConfig struct {
	MaxFileSize int64
}

// GitConfig groups git-enrichment knobs.
type GitConfig struct {
	SortByChanges         bool
	SortByChangesMaxCommits int
	IncludeDiffs          bool
	IncludeLogs           bool
	IncludeLogsCount      int
	ShowBlame             bool
	Comprehensive         bool // comprehensive log mode (graph + mermaid), spec.md §4.6
}

// IgnoreConfig groups ignore-layering knobs.
type IgnoreConfig struct {
	UseGitignore       bool
	UseDefaultPatterns bool
	CustomPatterns     []string
}

// SecurityConfig groups the secret-scanning knob.
type SecurityConfig struct {
	EnableSecurityCheck bool
}

// TokenCountConfig groups tokenizer knobs.
type TokenCountConfig struct {
	Encoding string
}

// OutputConfig groups rendering/output knobs.
type OutputConfig struct {
	Style                       OutputStyle
	FilePath                    string
	ParsableStyle               bool
	HeaderText                  string
	InstructionFilePath         string
	FileSummary                 bool
	DirectoryStructure          bool
	Files                       bool
	RemoveComments              bool
	RemoveEmptyLines            bool
	Compress                    bool
	TopFilesLength              int
	ShowLineNumbers             bool
	TruncateBase64              bool
	CopyToClipboard             bool
	IncludeEmptyDirectories     bool
	IncludeFullDirectoryStructure bool
	TokenCountTree              TokenCountTree
	Stdout                      bool
}

// Config is the immutable, already-merged configuration the core consumes.
// Command-line parsing and config-file discovery live outside this module
// (spec.md §1 Out of scope); callers hand in the fully merged value.
type Config struct {
	Cwd      string
	Input    InputConfig
	Output   OutputConfig
	Include  []string
	Ignore   IgnoreConfig
	Security SecurityConfig
	TokenCount TokenCountConfig
	Git      GitConfig
}

// DefaultConfig returns the defaults enumerated in spec.md §3.
func DefaultConfig() Config {
	return Config{
		Input: InputConfig{MaxFileSize: 52428800},
		Output: OutputConfig{
			Style:              StyleXML,
			FileSummary:        true,
			DirectoryStructure: true,
			Files:              true,
			TopFilesLength:     5,
		},
		Ignore: IgnoreConfig{
			UseGitignore:       true,
			UseDefaultPatterns: true,
		},
		Security:   SecurityConfig{EnableSecurityCheck: true},
		TokenCount: TokenCountConfig{Encoding: "o200k_base"},
		Git: GitConfig{
			SortByChanges:           true,
			SortByChangesMaxCommits: 100,
			IncludeLogsCount:        50,
		},
	}
}

// TruncationInfo records per-file line-limit truncation metadata.
type TruncationInfo struct {
	Truncated          bool
	OriginalLineCount  int
	TruncatedLineCount int
	LineLimit          int
}

// RawFile is a discovered file after decode/skip-classification, before
// transformation (spec.md §3).
type RawFile struct {
	Path     string // relative, forward-slashed
	Content  string
	Language string // go-enry classification, empty when undetected
}

// ProcessedFile is a RawFile after content transformation (spec.md §3).
type ProcessedFile struct {
	Path            string
	Content         string
	OriginalContent string // set only when Truncation.Truncated
	Truncation      *TruncationInfo
	Language        string
}

// FindingKind distinguishes where a suspicious finding was produced.
type FindingKind string

// Recognized finding kinds.
const (
	FindingFile    FindingKind = "file"
	FindingGitDiff FindingKind = "gitDiff"
)

// SuspiciousFinding is a non-empty secret-scan result for a file or diff
// (spec.md §3, §4.5).
type SuspiciousFinding struct {
	FilePath string
	Messages []string
	Kind     FindingKind
}

// TreeNode is a rendered directory-tree entry (spec.md §3, §4.9).
type TreeNode struct {
	Name        string
	IsDirectory bool
	Children    []*TreeNode
	TokenCount  int // populated only when Output.TokenCountTree is enabled
}

// PackResult is the programmatic output of a pipeline run (spec.md §3, §6).
type PackResult struct {
	TotalFiles      int
	TotalCharacters int
	TotalTokens     int
	FileCharCounts  map[string]int
	FileTokenCounts map[string]int

	ProcessedFiles []ProcessedFile

	SuspiciousFilesResults []SuspiciousFinding
	SuspiciousGitDiffResults []SuspiciousFinding
	SafeFilePaths          []string

	GitDiffTokenCount int
	GitLogTokenCount  int
}
