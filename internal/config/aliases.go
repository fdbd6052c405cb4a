package config

import (
	"path/filepath"
	"strings"
)

// aliasPrefix is the project alias most bundlers map to ./src.
const aliasPrefix = "@/"

// aliasRoot is the directory aliasPrefix stands for.
const aliasRoot = "src"

// DefaultAliases derives the alias map from the init-time choice.
func DefaultAliases(useAlias bool) Aliases {
	if useAlias {
		return Aliases{
			Styles:     "@/styles",
			Utils:      "@/lib/utils",
			Components: "@/components",
			Lib:        "@/lib",
			Hooks:      "@/hooks",
		}
	}
	return Aliases{
		Styles:     "./src/styles",
		Utils:      "./src/lib/utils",
		Components: "./src/components",
		Lib:        "./src/lib",
		Hooks:      "./src/hooks",
	}
}

// ResolveAlias turns an alias map value into a filesystem path under root.
// "@/styles" resolves to <root>/src/styles; "./src/styles" to <root>/src/styles;
// absolute paths are returned cleaned.
func ResolveAlias(root, value string) string {
	value = filepath.FromSlash(strings.TrimSpace(value))
	if strings.HasPrefix(value, filepath.FromSlash(aliasPrefix)) {
		return filepath.Join(root, aliasRoot, value[len(aliasPrefix):])
	}
	if filepath.IsAbs(value) {
		return filepath.Clean(value)
	}
	return filepath.Join(root, value)
}

// StylesDir is the resolved directory style files are written to.
func (r *Record) StylesDir(root string) string {
	return ResolveAlias(root, r.Aliases.Styles)
}

// GlobalStyleFile is the resolved path of the global stylesheet.
func (r *Record) GlobalStyleFile(root string) string {
	return ResolveAlias(root, r.GlobalStylePath)
}
