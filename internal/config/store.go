package config

import (
	"encoding/json" // For JSON encoding and decoding of dora.config.json
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"dora-styles/internal/logger"
)

// Store reads and writes dora.config.json at a project root.
type Store struct {
	fs   afero.Fs
	root string
}

// NewStore returns a Store for the config file directly under root.
func NewStore(fsys afero.Fs, root string) *Store {
	return &Store{fs: fsys, root: root}
}

// Path is the absolute location of the config file.
func (s *Store) Path() string {
	return filepath.Join(s.root, FileName)
}

// Exists reports whether the config file is present.
func (s *Store) Exists() (bool, error) {
	ok, err := afero.Exists(s.fs, s.Path())
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", s.Path(), err)
	}
	return ok, nil
}

// Read loads the config file.
// It returns (nil, nil) when the file does not exist and a *ParseError
// when the file exists but is not valid JSON.
func (s *Store) Read() (*Record, error) {
	path := s.Path()
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("No config at %s\n", path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &rec, nil
}

// Write serializes rec as two-space indented JSON and overwrites the config file.
func (s *Store) Write(rec *Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	path := s.Path()
	logger.Debug("Writing config to %s:\n%s", path, data)

	if err := afero.WriteFile(s.fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
