package config

import (
	"github.com/repomix-go/repomix-go/internal/model"
)

// FileConfig is the on-disk shape of repomix.config.yaml. Every field is a
// pointer so an absent key in the file is distinguishable from an
// explicit zero value, letting Merge only override what was actually set
// (spec.md §3).
type FileConfig struct {
	Input    *fileInput    `yaml:"input,omitempty"`
	Output   *fileOutput   `yaml:"output,omitempty"`
	Include  []string      `yaml:"include,omitempty"`
	Ignore   *fileIgnore   `yaml:"ignore,omitempty"`
	Security *fileSecurity `yaml:"security,omitempty"`
	TokenCount *fileTokenCount `yaml:"tokenCount,omitempty"`
}

type fileInput struct {
	MaxFileSize *int64 `yaml:"maxFileSize,omitempty"`
}

type fileOutput struct {
	Style                         *string `yaml:"style,omitempty"`
	FilePath                      *string `yaml:"filePath,omitempty"`
	ParsableStyle                 *bool   `yaml:"parsableStyle,omitempty"`
	HeaderText                    *string `yaml:"headerText,omitempty"`
	InstructionFilePath           *string `yaml:"instructionFilePath,omitempty"`
	FileSummary                   *bool   `yaml:"fileSummary,omitempty"`
	DirectoryStructure            *bool   `yaml:"directoryStructure,omitempty"`
	Files                         *bool   `yaml:"files,omitempty"`
	RemoveComments                *bool   `yaml:"removeComments,omitempty"`
	RemoveEmptyLines              *bool   `yaml:"removeEmptyLines,omitempty"`
	Compress                      *bool   `yaml:"compress,omitempty"`
	TopFilesLength                *int    `yaml:"topFilesLength,omitempty"`
	ShowLineNumbers               *bool   `yaml:"showLineNumbers,omitempty"`
	TruncateBase64                *bool   `yaml:"truncateBase64,omitempty"`
	CopyToClipboard               *bool   `yaml:"copyToClipboard,omitempty"`
	IncludeEmptyDirectories       *bool   `yaml:"includeEmptyDirectories,omitempty"`
	IncludeFullDirectoryStructure *bool   `yaml:"includeFullDirectoryStructure,omitempty"`
	Stdout                        *bool   `yaml:"stdout,omitempty"`
	Git                           *fileGit `yaml:"git,omitempty"`
}

type fileGit struct {
	SortByChanges           *bool `yaml:"sortByChanges,omitempty"`
	SortByChangesMaxCommits *int  `yaml:"sortByChangesMaxCommits,omitempty"`
	IncludeDiffs            *bool `yaml:"includeDiffs,omitempty"`
	IncludeLogs             *bool `yaml:"includeLogs,omitempty"`
	IncludeLogsCount        *int  `yaml:"includeLogsCount,omitempty"`
	ShowBlame               *bool `yaml:"showBlame,omitempty"`
	Comprehensive           *bool `yaml:"comprehensive,omitempty"`
}

type fileIgnore struct {
	UseGitignore       *bool    `yaml:"useGitignore,omitempty"`
	UseDefaultPatterns *bool    `yaml:"useDefaultPatterns,omitempty"`
	CustomPatterns     []string `yaml:"customPatterns,omitempty"`
}

type fileSecurity struct {
	EnableSecurityCheck *bool `yaml:"enableSecurityCheck,omitempty"`
}

type fileTokenCount struct {
	Encoding *string `yaml:"encoding,omitempty"`
}

// Merge overlays non-nil fields from fc onto base and returns the result.
// base is typically model.DefaultConfig().
func Merge(base model.Config, fc FileConfig) model.Config {
	cfg := base

	if fc.Input != nil {
		if fc.Input.MaxFileSize != nil {
			cfg.Input.MaxFileSize = *fc.Input.MaxFileSize
		}
	}

	if fc.Output != nil {
		o := fc.Output
		if o.Style != nil {
			cfg.Output.Style = model.OutputStyle(*o.Style)
		}
		setStr(&cfg.Output.FilePath, o.FilePath)
		setBool(&cfg.Output.ParsableStyle, o.ParsableStyle)
		setStr(&cfg.Output.HeaderText, o.HeaderText)
		setStr(&cfg.Output.InstructionFilePath, o.InstructionFilePath)
		setBool(&cfg.Output.FileSummary, o.FileSummary)
		setBool(&cfg.Output.DirectoryStructure, o.DirectoryStructure)
		setBool(&cfg.Output.Files, o.Files)
		setBool(&cfg.Output.RemoveComments, o.RemoveComments)
		setBool(&cfg.Output.RemoveEmptyLines, o.RemoveEmptyLines)
		setBool(&cfg.Output.Compress, o.Compress)
		setInt(&cfg.Output.TopFilesLength, o.TopFilesLength)
		setBool(&cfg.Output.ShowLineNumbers, o.ShowLineNumbers)
		setBool(&cfg.Output.TruncateBase64, o.TruncateBase64)
		setBool(&cfg.Output.CopyToClipboard, o.CopyToClipboard)
		setBool(&cfg.Output.IncludeEmptyDirectories, o.IncludeEmptyDirectories)
		setBool(&cfg.Output.IncludeFullDirectoryStructure, o.IncludeFullDirectoryStructure)
		setBool(&cfg.Output.Stdout, o.Stdout)

		if o.Git != nil {
			g := o.Git
			setBool(&cfg.Git.SortByChanges, g.SortByChanges)
			setInt(&cfg.Git.SortByChangesMaxCommits, g.SortByChangesMaxCommits)
			setBool(&cfg.Git.IncludeDiffs, g.IncludeDiffs)
			setBool(&cfg.Git.IncludeLogs, g.IncludeLogs)
			setInt(&cfg.Git.IncludeLogsCount, g.IncludeLogsCount)
			setBool(&cfg.Git.ShowBlame, g.ShowBlame)
			setBool(&cfg.Git.Comprehensive, g.Comprehensive)
		}
	}

	if len(fc.Include) > 0 {
		cfg.Include = fc.Include
	}

	if fc.Ignore != nil {
		setBool(&cfg.Ignore.UseGitignore, fc.Ignore.UseGitignore)
		setBool(&cfg.Ignore.UseDefaultPatterns, fc.Ignore.UseDefaultPatterns)
		if len(fc.Ignore.CustomPatterns) > 0 {
			cfg.Ignore.CustomPatterns = fc.Ignore.CustomPatterns
		}
	}

	if fc.Security != nil {
		setBool(&cfg.Security.EnableSecurityCheck, fc.Security.EnableSecurityCheck)
	}

	if fc.TokenCount != nil {
		setStr(&cfg.TokenCount.Encoding, fc.TokenCount.Encoding)
	}

	return cfg
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setStr(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// Load reads repomix.config.yaml from dir (if present) and merges it over
// model.DefaultConfig(). A missing file yields the defaults unchanged.
func Load(dir string) (model.Config, error) {
	store := NewStore[FileConfig](dir, ConfigFileName, true)
	fc, err := store.Load()
	if err != nil {
		return model.Config{}, err
	}
	cfg := Merge(model.DefaultConfig(), fc)
	cfg.Cwd = dir
	return cfg, nil
}
