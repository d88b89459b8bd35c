// Command repomix-go packages a local directory tree or a freshly cloned
// remote Git repository into a single structured artifact for LLM context
// (spec.md §1). This binary is a thin composition root: it resolves a
// target, loads configuration, and calls the packaging pipeline; argument
// parsing stays intentionally minimal (spec.md §1 "Out of scope").
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/repomix-go/repomix-go/internal/config"
	"github.com/repomix-go/repomix-go/internal/ctxio"
	"github.com/repomix-go/repomix-go/internal/pipeline"
	"github.com/repomix-go/repomix-go/internal/source"
)

// statusResponse is the machine-readable side channel emitted by
// --json-status, distinct from the four rendered output styles
// (spec.md §6, SPEC_FULL.md supplemental features).
type statusResponse struct {
	Success bool              `json:"success"`
	Data    *statusData       `json:"data,omitempty"`
	Error   *statusErrorDetail `json:"error,omitempty"`
}

type statusData struct {
	TotalFiles      int `json:"totalFiles"`
	TotalCharacters int `json:"totalCharacters"`
	TotalTokens     int `json:"totalTokens"`
	SuspiciousFiles int `json:"suspiciousFiles"`
}

type statusErrorDetail struct {
	Message string `json:"message"`
}

func emitStatus(resp statusResponse) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

func main() {
	args := os.Args[1:]
	jsonStatus := false
	var target string

	for _, a := range args {
		switch a {
		case "--json-status":
			jsonStatus = true
		default:
			if target == "" {
				target = a
			}
		}
	}
	if target == "" {
		target = "."
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cwd, err := os.Getwd()
	if err != nil {
		fail(jsonStatus, err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		fail(jsonStatus, err)
	}

	req := pipeline.Request{Config: cfg}
	if info, statErr := os.Stat(target); statErr == nil && info.IsDir() {
		req.Roots = []string{target}
	} else {
		ref, parseErr := source.ParseReference(target)
		if parseErr != nil {
			fail(jsonStatus, parseErr)
		}
		req.RemoteRef = &ref
	}

	out, err := pipeline.Run(ctx, req, ctxio.Default())
	if err != nil {
		fail(jsonStatus, err)
	}

	if jsonStatus {
		emitStatus(statusResponse{
			Success: true,
			Data: &statusData{
				TotalFiles:      out.Result.TotalFiles,
				TotalCharacters: out.Result.TotalCharacters,
				TotalTokens:     out.Result.TotalTokens,
				SuspiciousFiles: len(out.Result.SuspiciousFilesResults),
			},
		})
		return
	}

	if cfg.Output.Stdout {
		fmt.Print(out.Rendered)
	}
}

func fail(jsonStatus bool, err error) {
	if jsonStatus {
		emitStatus(statusResponse{Success: false, Error: &statusErrorDetail{Message: err.Error()}})
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
