//go:build !bundled

package source

// DefaultKind is the style source used when --source is not given.
// Build with -tags bundled to default to the embedded library instead.
const DefaultKind = KindCatalog
