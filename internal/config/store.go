// Package config loads repomix.config.yaml and merges it over the built-in
// defaults to produce the already-merged model.Config the pipeline consumes
// (spec.md §3, §6). Command-line parsing and config-file discovery
// (walking up parent directories, flag overrides) are out of scope here;
// callers hand this package one known directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store provides generic YAML file I/O for one config-shaped type T.
type Store[T any] struct {
	dir          string
	filename     string
	allowMissing bool
}

// NewStore creates a Store rooted at dir for filename. When allowMissing is
// true, Load returns the zero value instead of an error for a missing file.
func NewStore[T any](dir, filename string, allowMissing bool) *Store[T] {
	return &Store[T]{dir: dir, filename: filename, allowMissing: allowMissing}
}

// Path returns the full file path.
func (s *Store[T]) Path() string {
	return filepath.Join(s.dir, s.filename)
}

// Load reads and unmarshals the YAML file into T.
func (s *Store[T]) Load() (T, error) {
	var result T

	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && s.allowMissing {
			return result, nil
		}
		return result, err
	}

	if err := yaml.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("invalid %s: %w", s.filename, err)
	}
	return result, nil
}

// Save marshals and writes T to the YAML file.
func (s *Store[T]) Save(data T) error {
	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", s.filename, err)
	}
	if err := os.WriteFile(s.Path(), out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.filename, err)
	}
	return nil
}

// ConfigFileName is the default repomix config filename looked for in a
// project root.
const ConfigFileName = "repomix.config.yaml"
