// Package version holds the release version of the dora-styles binary.
package version

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Version is set via ldflags during release builds:
//
//	-ldflags "-X dora-styles/internal/version.Version=1.2.0"
var Version = "0.1.0"

func init() {
	if !semver.IsValid(canonical(Version)) {
		panic(fmt.Sprintf("invalid version set via ldflags: %q (must be valid semver)", Version))
	}
}

// String returns the version without a leading "v", the form written to dora.config.json.
func String() string {
	return strings.TrimPrefix(Version, "v")
}

// IsNewer reports whether other is a strictly newer semver than the running binary.
// Unparseable versions are never considered newer.
func IsNewer(other string) bool {
	o := canonical(other)
	if !semver.IsValid(o) {
		return false
	}
	return semver.Compare(o, canonical(Version)) > 0
}

// canonical adds the "v" prefix x/mod/semver expects.
func canonical(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}
