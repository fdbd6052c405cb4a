package installer

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"dora-styles/internal/logger"
)

// SassPackage is the npm package providing the SCSS compiler.
const SassPackage = "sass"

// Runner executes a command in dir and returns its combined output.
type Runner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec.
func ExecRunner(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	logger.Debug("Running command: %s (in %s)\n", strings.Join(cmd.Args, " "), dir)
	return cmd.CombinedOutput()
}

// Toolchain installs the local packages a project needs to compile its styles.
type Toolchain struct {
	FS   afero.Fs
	Root string
	Run  Runner
}

// NewToolchain returns a Toolchain for the project at root using os/exec.
func NewToolchain(fsys afero.Fs, root string) *Toolchain {
	return &Toolchain{FS: fsys, Root: root, Run: ExecRunner}
}

// SassInstalled reports whether node_modules already holds the sass package.
func (t *Toolchain) SassInstalled() (bool, error) {
	manifest := filepath.Join(t.Root, "node_modules", SassPackage, "package.json")
	ok, err := afero.Exists(t.FS, manifest)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", manifest, err)
	}
	return ok, nil
}

// EnsureSass installs sass as a dev dependency unless it is already present.
// It reports whether an install was performed.
func (t *Toolchain) EnsureSass(ctx context.Context) (bool, error) {
	ok, err := t.SassInstalled()
	if err != nil {
		return false, err
	}
	if ok {
		logger.Info("SCSS is already installed.\n")
		return false, nil
	}

	logger.Info("Installing SCSS support...\n")
	run := t.Run
	if run == nil {
		run = ExecRunner
	}
	output, err := run(ctx, t.Root, "npm", "install", SassPackage, "-D")
	if err != nil {
		return false, fmt.Errorf("npm install %s failed: %w\nOutput: %s", SassPackage, err, output)
	}
	logger.Debug("npm install output: %s\n", output)
	logger.Info("SCSS installed.\n")
	return true, nil
}
