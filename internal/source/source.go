// Package source resolves the content of a named style.
//
// Two strategies sit behind StyleSource: the remote Catalog, fetched over
// HTTP, and a Library read from the binary's embedded files, a directory or
// an archive. Which one is the default is decided at build time.
package source

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"dora-styles/internal/config"
)

// ErrStyleNotFound is returned when the catalog or library has no file for the requested style.
var ErrStyleNotFound = errors.New("style not found")

// StyleSource returns the content of <name>.<lang>.
type StyleSource interface {
	Fetch(ctx context.Context, name string, lang config.StyleLanguage) (string, error)
	// Describe names the source in log lines, e.g. a URL or a library path.
	Describe() string
}

// Kind selects a StyleSource strategy.
type Kind string

const (
	KindCatalog Kind = "catalog"
	KindLibrary Kind = "library"
)

// ParseKind accepts "catalog" or "library".
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindCatalog:
		return KindCatalog, nil
	case KindLibrary:
		return KindLibrary, nil
	}
	return "", fmt.Errorf("unknown style source %q (expected %s or %s)", s, KindCatalog, KindLibrary)
}

// ValidateName rejects names that would escape the language directory.
func ValidateName(name string) error {
	if name == "" {
		return errors.New("style name is empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." || strings.Contains(name, "..") {
		return fmt.Errorf("invalid style name %q", name)
	}
	return nil
}

// stylePath is the slash-separated location of a style inside a catalog or library: <lang>/<name>.<lang>.
func stylePath(name string, lang config.StyleLanguage) string {
	return path.Join(lang.Ext(), name+"."+lang.Ext())
}

func notFound(name string, lang config.StyleLanguage, where string) error {
	return fmt.Errorf("%w: %q (%s) in %s", ErrStyleNotFound, name, lang, where)
}
