package config

import (
	"fmt"
	"strings"
)

// FileName is the configuration file written at the project root by `init`.
const FileName = "dora.config.json"

// DefaultIconLibrary is recorded in every config. It is informational only.
const DefaultIconLibrary = "lucide"

// StyleLanguage selects the extension of every generated or fetched style file.
type StyleLanguage string

const (
	SCSS StyleLanguage = "scss"
	CSS  StyleLanguage = "css"
)

// Languages lists the supported style languages in prompt order.
var Languages = []StyleLanguage{SCSS, CSS}

// ParseStyleLanguage accepts "scss" or "css" in any case.
func ParseStyleLanguage(s string) (StyleLanguage, error) {
	switch StyleLanguage(strings.ToLower(strings.TrimSpace(s))) {
	case SCSS:
		return SCSS, nil
	case CSS:
		return CSS, nil
	}
	return "", fmt.Errorf("unsupported style language %q (expected scss or css)", s)
}

// Ext returns the file extension without a leading dot.
func (l StyleLanguage) Ext() string { return string(l) }

// Aliases maps each fixed project role to an alias-prefixed (@/styles) or relative (./src/styles) path.
type Aliases struct {
	Styles     string `json:"styles"`
	Utils      string `json:"utils"`
	Components string `json:"components"`
	Lib        string `json:"lib"`
	Hooks      string `json:"hooks"`
}

// Record is the content of dora.config.json.
// - Version: version of the dora-styles binary that wrote the file.
// - Aliases: role to path mapping chosen during init.
// - IconLibrary: always "lucide" for now.
// - StyleLanguage: scss or css.
// - GlobalStylePath: project-relative path of the stylesheet aggregating imports.
type Record struct {
	Version         string        `json:"version"`
	Aliases         Aliases       `json:"aliases"`
	IconLibrary     string        `json:"iconLibrary"`
	StyleLanguage   StyleLanguage `json:"styleLanguage"`
	GlobalStylePath string        `json:"globalStylePath"`
}

// ParseError reports a config file that exists but cannot be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
