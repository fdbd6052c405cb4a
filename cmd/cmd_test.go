package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dora-styles/internal/config"
	"dora-styles/internal/linker"
	"dora-styles/internal/logger"
	"dora-styles/internal/source"
	"dora-styles/internal/workflow"
)

const projectDir = "/project"

// newProject points the commands at an empty in-memory project and resets flag state.
func newProject(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	origFS, origWd := appFS, getwd
	appFS = fsys
	getwd = func() (string, error) { return projectDir, nil }
	logger.SetOutput(io.Discard)
	resetFlags(rootCmd)
	t.Cleanup(func() {
		appFS, getwd = origFS, origWd
		resetFlags(rootCmd)
	})
	return fsys
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(bytes.NewReader(nil))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	})
	err := run(context.Background(), args)
	return out.String(), err
}

func TestVersionFlag(t *testing.T) {
	newProject(t)
	for _, flag := range []string{"--version", "-v"} {
		out, err := execute(t, flag)
		require.NoError(t, err)
		assert.Regexp(t, `^dora-styles version \d+\.\d+\.\d+`, out)
		resetFlags(rootCmd)
	}
}

func TestHelp(t *testing.T) {
	newProject(t)
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "dora-styles add styles button")

	resetFlags(rootCmd)
	out, err = execute(t, "-h")
	require.NoError(t, err)
	assert.Contains(t, out, "init")
}

func TestUnknownCommand(t *testing.T) {
	newProject(t)
	_, err := execute(t, "build")
	require.Error(t, err)
	assert.True(t, isUnknownCommand(err))
}

func TestAddRequiresKnownTarget(t *testing.T) {
	newProject(t)
	_, err := execute(t, "add")
	assert.Error(t, err)

	_, err = execute(t, "add", "icons", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown add target")
}

func TestAddStylesMissingName(t *testing.T) {
	newProject(t)
	_, err := execute(t, "add", "styles")
	assert.ErrorIs(t, err, workflow.ErrMissingArgument)
}

func TestAddStylesWithoutConfig(t *testing.T) {
	newProject(t)
	_, err := execute(t, "add", "styles", "button")
	assert.ErrorIs(t, err, workflow.ErrConfigNotFound)
}

func TestInitThenAddFromBundledLibrary(t *testing.T) {
	fsys := newProject(t)

	_, err := execute(t, "init", "--yes", "--skip-install", "--source", "library")
	require.NoError(t, err)

	rec, err := config.NewStore(fsys, projectDir).Read()
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, config.SCSS, rec.StyleLanguage)
	assert.Equal(t, "@/styles", rec.Aliases.Styles)

	resetFlags(rootCmd)
	_, err = execute(t, "add", "styles", "button", "--source", "library")
	require.NoError(t, err)

	global, err := afero.ReadFile(fsys, filepath.Join(projectDir, "src", "styles", "global.scss"))
	require.NoError(t, err)
	assert.Equal(t, 1, linker.CountImports(string(global), "@import './button.scss';"))
	assert.Equal(t, 1, linker.CountImports(string(global), "@import './variables.scss';"))

	resetFlags(rootCmd)
	_, err = execute(t, "add", "styles", "nonexistent", "--source", "library")
	assert.ErrorIs(t, err, source.ErrStyleNotFound)
}

func TestAddStylesFromCatalog(t *testing.T) {
	fsys := newProject(t)
	require.NoError(t, config.NewStore(fsys, projectDir).Write(&config.Record{
		Version:         "0.1.0",
		Aliases:         config.DefaultAliases(true),
		IconLibrary:     config.DefaultIconLibrary,
		StyleLanguage:   config.CSS,
		GlobalStylePath: "src/styles/global.css",
	}))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/css/button.css" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(".dora-button{}\n"))
	}))
	defer srv.Close()

	_, err := execute(t, "add", "styles", "button", "--source", "catalog", "--catalog-url", srv.URL)
	require.NoError(t, err)

	body, err := afero.ReadFile(fsys, filepath.Join(projectDir, "src", "styles", "button.css"))
	require.NoError(t, err)
	assert.Equal(t, ".dora-button{}\n", string(body))

	resetFlags(rootCmd)
	_, err = execute(t, "add", "styles", "nonexistent", "--source", "catalog", "--catalog-url", srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, source.ErrStyleNotFound))

	exists, err := afero.Exists(fsys, filepath.Join(projectDir, "src", "styles", "nonexistent.css"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestListStyles(t *testing.T) {
	newProject(t)
	out, err := execute(t, "list", "styles", "--language", "css")
	require.NoError(t, err)
	assert.Contains(t, out, "button")
	assert.Contains(t, out, "Buttons with primary")
	assert.NotContains(t, out, "scss styles")
}
