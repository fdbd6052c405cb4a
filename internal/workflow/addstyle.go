package workflow

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"dora-styles/internal/config"
	"dora-styles/internal/linker"
	"dora-styles/internal/logger"
	"dora-styles/internal/source"
	"dora-styles/internal/version"
)

// AddStyle copies one named style into the project and links it from the global stylesheet.
type AddStyle struct {
	FS     afero.Fs
	Root   string
	Source source.StyleSource
}

// AddResult describes what Run did.
type AddResult struct {
	StylePath  string
	GlobalPath string
	Link       linker.Result
}

// LoadConfig reads dora.config.json under root, failing with ErrConfigNotFound when absent.
func LoadConfig(fsys afero.Fs, root string) (*config.Record, error) {
	rec, err := config.NewStore(fsys, root).Read()
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrConfigNotFound
	}
	if version.IsNewer(rec.Version) {
		logger.Warn("%s was written by dora-styles %s, newer than this binary (%s).\n",
			config.FileName, rec.Version, version.String())
	}
	return rec, nil
}

// Run fetches the style, writes it to <stylesDir>/<name>.<lang> (overwriting any
// previous copy) and ensures the global stylesheet imports it once.
func (a *AddStyle) Run(ctx context.Context, name string) (AddResult, error) {
	var res AddResult

	name = strings.TrimSpace(name)
	if name == "" {
		return res, ErrMissingArgument
	}

	rec, err := LoadConfig(a.FS, a.Root)
	if err != nil {
		return res, err
	}
	lang, err := config.ParseStyleLanguage(string(rec.StyleLanguage))
	if err != nil {
		return res, &config.ParseError{Path: filepath.Join(a.Root, config.FileName), Err: err}
	}

	logger.Debug("Resolving %q (%s) from %s\n", name, lang, a.Source.Describe())
	content, err := a.Source.Fetch(ctx, name, lang)
	if err != nil {
		return res, err
	}

	stylesDir := rec.StylesDir(a.Root)
	if err := a.FS.MkdirAll(stylesDir, 0755); err != nil {
		return res, fmt.Errorf("failed to create styles directory %s: %w", stylesDir, err)
	}

	res.StylePath = filepath.Join(stylesDir, name+"."+lang.Ext())
	if err := afero.WriteFile(a.FS, res.StylePath, []byte(content), 0644); err != nil {
		return res, fmt.Errorf("failed to write %s: %w", res.StylePath, err)
	}
	logger.Info("Style %q added to %s\n", name, res.StylePath)

	res.GlobalPath = rec.GlobalStyleFile(a.Root)
	stmt, err := linker.ImportStatement(res.GlobalPath, res.StylePath)
	if err != nil {
		return res, err
	}
	if res.Link, err = linker.EnsureLinked(a.FS, res.GlobalPath, stmt); err != nil {
		return res, err
	}
	logLink(res.Link, name, rec.GlobalStylePath)
	return res, nil
}
