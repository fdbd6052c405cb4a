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
	"dora-styles/internal/prompt"
	"dora-styles/internal/source"
)

// VariablesStyle is the name of the shared design-token stylesheet.
const VariablesStyle = "variables"

// SassInstaller makes sure the SCSS compiler is available in the project.
type SassInstaller interface {
	EnsureSass(ctx context.Context) (bool, error)
}

// Setup initializes a project: it writes dora.config.json, materializes the
// variables stylesheet and links it from the global stylesheet.
// A project that already has a config is left untouched.
type Setup struct {
	FS       afero.Fs
	Root     string
	Prompter prompt.Prompter
	Source   source.StyleSource
	// Toolchain may be nil to skip the SCSS install step.
	Toolchain SassInstaller
	Version   string
}

// SetupResult describes what Run did.
type SetupResult struct {
	Skipped       bool
	ConfigPath    string
	VariablesPath string
	GlobalPath    string
	Link          linker.Result
}

// Run executes the setup steps in order and stops at the first error.
// Files written before a failure are left in place; every step is safe to repeat.
func (s *Setup) Run(ctx context.Context) (SetupResult, error) {
	store := config.NewStore(s.FS, s.Root)
	res := SetupResult{ConfigPath: store.Path()}

	logger.Info("Welcome to Dora Styles\n")

	exists, err := store.Exists()
	if err != nil {
		return res, err
	}
	if exists {
		logger.Warn("%s already exists. Skipping configuration.\n", config.FileName)
		res.Skipped = true
		return res, nil
	}

	choices, err := s.Prompter.Collect(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to collect setup choices: %w", err)
	}
	if strings.TrimSpace(choices.GlobalStylePath) == "" {
		choices.GlobalStylePath = prompt.DefaultGlobalStylePath(choices.StyleLanguage)
	}
	logger.Debug("Setup choices: %+v\n", choices)

	if choices.StyleLanguage == config.SCSS && s.Toolchain != nil {
		if _, err := s.Toolchain.EnsureSass(ctx); err != nil {
			return res, err
		}
	}

	rec := &config.Record{
		Version:         s.Version,
		Aliases:         config.DefaultAliases(choices.UseAliases),
		IconLibrary:     config.DefaultIconLibrary,
		StyleLanguage:   choices.StyleLanguage,
		GlobalStylePath: filepath.ToSlash(choices.GlobalStylePath),
	}
	if err := store.Write(rec); err != nil {
		return res, err
	}
	logger.Info("%s created.\n", config.FileName)

	lang := rec.StyleLanguage
	res.VariablesPath = filepath.Join(rec.StylesDir(s.Root), VariablesStyle+"."+lang.Ext())
	res.GlobalPath = rec.GlobalStyleFile(s.Root)

	if err := s.materializeVariables(ctx, lang, res.VariablesPath); err != nil {
		return res, err
	}

	stmt, err := linker.ImportStatement(res.GlobalPath, res.VariablesPath)
	if err != nil {
		return res, err
	}
	if res.Link, err = linker.EnsureLinked(s.FS, res.GlobalPath, stmt); err != nil {
		return res, err
	}
	logLink(res.Link, VariablesStyle, rec.GlobalStylePath)

	logger.Info("Dora Styles setup complete!\n")
	return res, nil
}

// materializeVariables writes the variables stylesheet unless it already exists.
func (s *Setup) materializeVariables(ctx context.Context, lang config.StyleLanguage, path string) error {
	exists, err := afero.Exists(s.FS, path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if exists {
		logger.Info("%s already exists, keeping it.\n", path)
		return nil
	}

	logger.Debug("Fetching %s variables from %s\n", lang, s.Source.Describe())
	content, err := s.Source.Fetch(ctx, VariablesStyle, lang)
	if err != nil {
		return fmt.Errorf("failed to fetch Dora variables: %w", err)
	}

	if err := s.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	header := fmt.Sprintf("/* %s variables created by Dora Styles */\n\n", strings.ToUpper(lang.Ext()))
	if err := afero.WriteFile(s.FS, path, []byte(header+content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Info("Created %s with Dora variables.\n", path)
	return nil
}

func logLink(r linker.Result, name, global string) {
	switch r {
	case linker.Created:
		logger.Info("Created %s linking %q\n", global, name)
	case linker.Linked:
		logger.Info("Linked %q in %s\n", name, global)
	case linker.AlreadyLinked:
		logger.Info("%q already linked in %s\n", name, global)
	}
}
