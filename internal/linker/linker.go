// Package linker keeps the global stylesheet's @import list in sync with generated style files.
package linker

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"dora-styles/internal/logger"
)

// Result reports what EnsureLinked did to the global stylesheet.
type Result int

const (
	// Created means the global stylesheet did not exist and was written with the import.
	Created Result = iota
	// AlreadyLinked means the import was present and nothing was written.
	AlreadyLinked
	// Linked means the import was prepended to an existing stylesheet.
	Linked
)

func (r Result) String() string {
	switch r {
	case Created:
		return "created"
	case AlreadyLinked:
		return "already linked"
	case Linked:
		return "linked"
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// ImportStatement builds the @import for targetFile relative to the directory of globalStyleFile.
// The path always uses forward slashes and starts with ./ or ../.
func ImportStatement(globalStyleFile, targetFile string) (string, error) {
	rel, err := filepath.Rel(filepath.Dir(globalStyleFile), targetFile)
	if err != nil {
		return "", fmt.Errorf("failed to compute import path from %s to %s: %w", globalStyleFile, targetFile, err)
	}
	rel = strings.ReplaceAll(filepath.ToSlash(rel), `\`, "/")
	if !strings.HasPrefix(rel, "./") && !strings.HasPrefix(rel, "../") {
		rel = "./" + rel
	}
	return fmt.Sprintf("@import '%s';", rel), nil
}

// EnsureLinked makes sure statement appears in globalStyleFile exactly once.
// A missing stylesheet is created with only the statement; an existing one gets the
// statement prepended unless it already contains it verbatim.
func EnsureLinked(fsys afero.Fs, globalStyleFile, statement string) (Result, error) {
	exists, err := afero.Exists(fsys, globalStyleFile)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", globalStyleFile, err)
	}

	if !exists {
		if err := fsys.MkdirAll(filepath.Dir(globalStyleFile), 0755); err != nil {
			return 0, fmt.Errorf("failed to create directory for %s: %w", globalStyleFile, err)
		}
		if err := afero.WriteFile(fsys, globalStyleFile, []byte(statement+"\n"), 0644); err != nil {
			return 0, fmt.Errorf("failed to create %s: %w", globalStyleFile, err)
		}
		logger.Debug("Created %s with %s\n", globalStyleFile, statement)
		return Created, nil
	}

	content, err := afero.ReadFile(fsys, globalStyleFile)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", globalStyleFile, err)
	}
	if strings.Contains(string(content), statement) {
		logger.Debug("%s already contains %s\n", globalStyleFile, statement)
		return AlreadyLinked, nil
	}

	updated := statement + "\n" + string(content)
	if err := afero.WriteFile(fsys, globalStyleFile, []byte(updated), 0644); err != nil {
		return 0, fmt.Errorf("failed to update %s: %w", globalStyleFile, err)
	}
	logger.Debug("Prepended %s to %s\n", statement, globalStyleFile)
	return Linked, nil
}

// CountImports returns how many times statement occurs in content.
func CountImports(content, statement string) int {
	return strings.Count(content, statement)
}
