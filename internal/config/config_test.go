package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/repomix-go/repomix-go/internal/model"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := model.DefaultConfig()
	if cfg.Output.Style != want.Output.Style {
		t.Errorf("Style = %v, want %v", cfg.Output.Style, want.Output.Style)
	}
	if cfg.Input.MaxFileSize != want.Input.MaxFileSize {
		t.Errorf("MaxFileSize = %v, want %v", cfg.Input.MaxFileSize, want.Input.MaxFileSize)
	}
}

func TestLoadOverridesSpecifiedFields(t *testing.T) {
	dir := t.TempDir()
	yamlContent := "output:\n  style: markdown\n  compress: true\nsecurity:\n  enableSecurityCheck: false\n"
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yamlContent), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Style != model.StyleMarkdown {
		t.Errorf("Style = %v", cfg.Output.Style)
	}
	if !cfg.Output.Compress {
		t.Errorf("expected Compress = true")
	}
	if cfg.Security.EnableSecurityCheck {
		t.Errorf("expected EnableSecurityCheck = false")
	}
	// Unspecified fields should retain their default values.
	if cfg.Output.TopFilesLength != 5 {
		t.Errorf("TopFilesLength = %d, want 5", cfg.Output.TopFilesLength)
	}
}

func TestMergeIncludePatterns(t *testing.T) {
	base := model.DefaultConfig()
	fc := FileConfig{Include: []string{"*.go"}}
	cfg := Merge(base, fc)
	if len(cfg.Include) != 1 || cfg.Include[0] != "*.go" {
		t.Errorf("Include = %v", cfg.Include)
	}
}
