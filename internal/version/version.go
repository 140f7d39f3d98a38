// Package version holds this module's embedded semantic version, reported
// by the CLI's version subcommand and stamped into every proof bundle header
// (internal/proofbundle) so a verifier can tell which circuit revision
// produced a given proof.
package version

import (
	"fmt"

	"github.com/blang/semver/v4"
)

// Current is this build's semantic version.
var Current = semver.MustParse("0.1.0")

// String returns the version in "vX.Y.Z" form.
func String() string {
	return fmt.Sprintf("v%s", Current.String())
}

// Compatible reports whether a proof bundle stamped with other can be
// verified by this build: same major version, and not newer than Current.
func Compatible(other semver.Version) bool {
	if other.Major != Current.Major {
		return false
	}
	return other.LE(Current)
}
