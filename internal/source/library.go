package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"dora-styles/internal/config"
	"dora-styles/internal/logger"
)

// ManifestFile optionally describes a library's styles.
const ManifestFile = "manifest.yaml"

// Manifest is the parsed manifest.yaml of a style library.
type Manifest struct {
	Name    string       `yaml:"name"`
	Version string       `yaml:"version"`
	Styles  []StyleEntry `yaml:"styles"`
}

// StyleEntry describes one style. Languages empty means every language.
type StyleEntry struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Languages   []string `yaml:"languages,omitempty"`
}

// Library serves styles from a local tree laid out as <lang>/<name>.<lang>.
type Library struct {
	FS      fs.FS
	Name    string
	cleanup func() error
}

// NewLibrary wraps fsys; name is used in log lines.
func NewLibrary(fsys fs.FS, name string) *Library {
	return &Library{FS: fsys, Name: name}
}

// OpenLibrary opens a library directory or archive (.zip, .7z, .tar, .tar.gz, .tgz, .tar.bz2, .tar.xz).
// Archives are extracted to a temporary directory removed by Close.
func OpenLibrary(p string) (*Library, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open style library: %w", err)
	}
	if info.IsDir() {
		return NewLibrary(os.DirFS(libraryRoot(p)), p), nil
	}

	if !IsArchive(p) {
		return nil, fmt.Errorf("style library %s is neither a directory nor a supported archive", p)
	}

	tmp, err := os.MkdirTemp("", "dora-styles-library-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir for %s: %w", p, err)
	}
	if err := ExtractArchive(p, tmp); err != nil {
		_ = os.RemoveAll(tmp)
		return nil, fmt.Errorf("failed to extract style library %s: %w", p, err)
	}
	lib := NewLibrary(os.DirFS(libraryRoot(tmp)), p)
	lib.cleanup = func() error { return os.RemoveAll(tmp) }
	return lib, nil
}

// Close releases anything OpenLibrary extracted.
func (l *Library) Close() error {
	if l.cleanup == nil {
		return nil
	}
	return l.cleanup()
}

// Fetch reads <lang>/<name>.<lang> from the library.
func (l *Library) Fetch(_ context.Context, name string, lang config.StyleLanguage) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	p := stylePath(name, lang)
	logger.Debug("Reading %s from %s\n", p, l.Describe())

	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", notFound(name, lang, l.Describe())
		}
		return "", fmt.Errorf("failed to read style %q from %s: %w", name, l.Describe(), err)
	}
	return string(data), nil
}

func (l *Library) Describe() string {
	if l.Name == "" {
		return "style library"
	}
	return l.Name
}

// Manifest parses manifest.yaml, returning (nil, nil) when the library has none.
func (l *Library) Manifest() (*Manifest, error) {
	data, err := fs.ReadFile(l.FS, ManifestFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", ManifestFile, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ManifestFile, err)
	}
	return &m, nil
}

// List returns the styles available for lang, sorted by name.
// Files on disk decide availability; the manifest only contributes descriptions.
func (l *Library) List(lang config.StyleLanguage) ([]StyleEntry, error) {
	entries, err := fs.ReadDir(l.FS, lang.Ext())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list %s styles: %w", lang, err)
	}

	m, err := l.Manifest()
	if err != nil {
		return nil, err
	}
	described := make(map[string]string)
	if m != nil {
		for _, s := range m.Styles {
			described[s.Name] = s.Description
		}
	}

	suffix := "." + lang.Ext()
	var styles []StyleEntry
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != suffix {
			continue
		}
		name := strings.TrimSuffix(e.Name(), suffix)
		styles = append(styles, StyleEntry{Name: name, Description: described[name]})
	}
	sort.Slice(styles, func(i, j int) bool { return styles[i].Name < styles[j].Name })
	return styles, nil
}

// libraryRoot descends into a lone wrapping folder, as release archives usually have one.
func libraryRoot(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return dir
	}
	var dirs []os.DirEntry
	for _, e := range entries {
		switch e.Name() {
		case string(config.CSS), string(config.SCSS), ManifestFile:
			return dir
		}
		if e.IsDir() {
			dirs = append(dirs, e)
		}
	}
	if len(dirs) == 1 && len(entries) == 1 {
		return libraryRoot(filepath.Join(dir, dirs[0].Name()))
	}
	return dir
}
