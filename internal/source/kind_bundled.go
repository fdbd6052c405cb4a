//go:build bundled

package source

// DefaultKind is the style source used when --source is not given.
const DefaultKind = KindLibrary
