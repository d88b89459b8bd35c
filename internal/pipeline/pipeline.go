// Package pipeline wires the discovery, collection, transformation,
// security, git-enrichment, sort, tokenization, rendering, and output
// stages into one run, producing a model.PackResult and a rendered
// artifact (spec.md §2, §5).
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/repomix-go/repomix-go/internal/collect"
	"github.com/repomix-go/repomix-go/internal/compress"
	"github.com/repomix-go/repomix-go/internal/ctxio"
	"github.com/repomix-go/repomix-go/internal/discover"
	"github.com/repomix-go/repomix-go/internal/gitinfo"
	"github.com/repomix-go/repomix-go/internal/model"
	"github.com/repomix-go/repomix-go/internal/render"
	"github.com/repomix-go/repomix-go/internal/secrets"
	"github.com/repomix-go/repomix-go/internal/sink"
	"github.com/repomix-go/repomix-go/internal/sortfiles"
	"github.com/repomix-go/repomix-go/internal/source"
	"github.com/repomix-go/repomix-go/internal/tokenize"
	"github.com/repomix-go/repomix-go/internal/transform"
)

// Request describes one packaging run: either one or more local roots, or
// a single remote reference to clone first (spec.md §4.1).
type Request struct {
	Config    model.Config
	Roots     []string
	RemoteRef *source.Reference
}

// Output is the result of a run: the finished PackResult plus the rendered
// artifact text.
type Output struct {
	Result   model.PackResult
	Rendered string
}

// Run executes the full pipeline (spec.md §2). Collaborators injects the
// clock and git-runner factory used by the git-enrichment stage.
func Run(ctx context.Context, req Request, collab ctxio.Collaborators) (Output, error) {
	cfg := req.Config

	roots := req.Roots
	if req.RemoteRef != nil {
		cloneResult, err := source.Clone(ctx, *req.RemoteRef)
		if err != nil {
			return Output{}, err
		}
		defer cloneResult.Cleanup()
		roots = []string{cloneResult.Dir}
	}
	if len(roots) == 0 {
		return Output{}, fmt.Errorf("pipeline: no root directories to package")
	}

	var allRaw []model.RawFile
	var allSafePathSet []string // discovery-order paths across all roots, for full directory structure
	var allEmptyDirs []string

	for _, root := range roots {
		discovered, err := discover.Discover(root, cfg)
		if err != nil {
			return Output{}, fmt.Errorf("pipeline: discover %s: %w", root, err)
		}
		allSafePathSet = append(allSafePathSet, discovered.FilePaths...)
		allEmptyDirs = append(allEmptyDirs, discovered.EmptyDirPaths...)

		collected := collect.Collect(ctx, root, discovered.FilePaths, cfg.Input.MaxFileSize)
		allRaw = append(allRaw, collected.Files...)
	}

	primaryRoot := roots[0]
	runner := collab.NewRunner(primaryRoot)
	isGitRoot := runner.IsWorkingTree(ctx)

	var blameByPath map[string][]gitinfo.BlameLine
	if cfg.Git.ShowBlame && isGitRoot {
		blameByPath = make(map[string][]gitinfo.BlameLine, len(allRaw))
		for _, raw := range allRaw {
			lines, err := gitinfo.Blame(ctx, primaryRoot, raw.Path)
			if err == nil && len(lines) > 0 {
				blameByPath[raw.Path] = lines
			}
		}
	}

	processed := make([]model.ProcessedFile, 0, len(allRaw))
	for _, raw := range allRaw {
		opts := transform.Options{
			RemoveComments:   cfg.Output.RemoveComments,
			RemoveEmptyLines: cfg.Output.RemoveEmptyLines,
			Compress:         cfg.Output.Compress,
			ShowLineNumbers:  cfg.Output.ShowLineNumbers,
			TruncateBase64:   cfg.Output.TruncateBase64,
			Blame:            blameByPath[raw.Path],
			Compressor:       compress.Compress,
		}
		processed = append(processed, transform.Apply(raw, opts))
	}

	var findings []model.SuspiciousFinding
	var gitDiffFindings []model.SuspiciousFinding
	if cfg.Security.EnableSecurityCheck {
		inputs := make([]secrets.Input, len(allRaw))
		for i, raw := range allRaw {
			inputs[i] = secrets.Input{Path: raw.Path, Content: raw.Content, Kind: model.FindingFile}
		}
		findings = secrets.Scan(ctx, inputs)
	}

	safeFiles, safePaths := secrets.Filter(processed, findings)

	fileCharCounts := make(map[string]int, len(safeFiles))
	for _, f := range safeFiles {
		fileCharCounts[f.Path] = len(f.Content)
	}

	var gitDiffText, gitLogText string
	var gitDiffTokens, gitLogTokens int
	if isGitRoot {
		if cfg.Git.IncludeDiffs {
			diffs, err := gitinfo.CaptureDiffs(ctx, primaryRoot, gitinfo.DiffOptions{})
			if err == nil {
				gitDiffText = strings.TrimSpace(diffs.WorkTree + "\n" + diffs.Staged)
				if cfg.Security.EnableSecurityCheck && gitDiffText != "" {
					diffFindings := secrets.Scan(ctx, []secrets.Input{{Path: "git-diff", Content: gitDiffText, Kind: model.FindingGitDiff}})
					gitDiffFindings = append(gitDiffFindings, diffFindings...)
				}
			}
		}
		if cfg.Git.IncludeLogs {
			gitLogText = renderLogText(ctx, primaryRoot, cfg)
		}
	}

	if cfg.Git.SortByChanges && isGitRoot {
		changes, err := gitinfo.ChangeCounts(ctx, primaryRoot, cfg.Git.SortByChangesMaxCommits)
		if err == nil {
			sortfiles.ByChurn(safeFiles, changes)
		}
	}

	counter, err := tokenize.ForEncoding(cfg.TokenCount.Encoding)
	if err != nil {
		return Output{}, fmt.Errorf("pipeline: %w", err)
	}

	fileTokenCounts := make(map[string]int, len(safeFiles))
	var totalTokens int
	for _, f := range safeFiles {
		n := counter.Count(f.Content)
		fileTokenCounts[f.Path] = n
		totalTokens += n
	}
	if gitDiffText != "" {
		gitDiffTokens = counter.Count(gitDiffText)
	}
	if gitLogText != "" {
		gitLogTokens = counter.Count(gitLogText)
	}

	var totalCharacters int
	for _, f := range safeFiles {
		totalCharacters += len(f.Content)
	}

	instruction := ""
	if cfg.Output.InstructionFilePath != "" {
		instruction = readInstructionFile(cfg)
	}

	directoryPaths := safePaths
	if cfg.Output.IncludeFullDirectoryStructure {
		directoryPaths = allSafePathSet
	}

	renderInput := render.Input{
		Style:                      cfg.Output.Style,
		ParsableStyle:              cfg.Output.ParsableStyle,
		HeaderText:                 cfg.Output.HeaderText,
		Instruction:                instruction,
		FileSummary:                cfg.Output.FileSummary,
		DirectoryStructure:         cfg.Output.DirectoryStructure,
		Files:                      cfg.Output.Files,
		TopFilesLength:             cfg.Output.TopFilesLength,
		DirectoryPaths:             directoryPaths,
		EmptyDirPaths:              allEmptyDirs,
		TokenCountTree:             cfg.Output.TokenCountTree,
		ProcessedFiles:             safeFiles,
		FileCharCounts:             fileCharCounts,
		FileTokenCounts:            fileTokenCounts,
		GitDiffText:                gitDiffText,
		GitLogText:                 gitLogText,
		TotalFiles:                 len(safeFiles),
		TotalCharacters:            totalCharacters,
		TotalTokens:                totalTokens,
	}

	rendered, err := render.Render(renderInput)
	if err != nil {
		return Output{}, fmt.Errorf("pipeline: %w", err)
	}

	outPath := cfg.Output.FilePath
	if outPath == "" {
		outPath = sink.DefaultFilePath(string(cfg.Output.Style))
	}
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(cfg.Cwd, outPath)
	}

	result := model.PackResult{
		TotalFiles:               len(safeFiles),
		TotalCharacters:          totalCharacters,
		TotalTokens:              totalTokens,
		FileCharCounts:           fileCharCounts,
		FileTokenCounts:          fileTokenCounts,
		ProcessedFiles:           safeFiles,
		SuspiciousFilesResults:   findings,
		SuspiciousGitDiffResults: gitDiffFindings,
		SafeFilePaths:            safePaths,
		GitDiffTokenCount:        gitDiffTokens,
		GitLogTokenCount:         gitLogTokens,
	}

	if !cfg.Output.Stdout {
		if err := sink.Write(nil, rendered, sink.Options{
			FilePath:        outPath,
			CopyToClipboard: cfg.Output.CopyToClipboard,
		}); err != nil {
			return Output{}, err
		}
	}

	return Output{Result: result, Rendered: rendered}, nil
}
