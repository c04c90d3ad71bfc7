// Package parc records build metadata for the parser combinator module.
package parc

import (
	"github.com/maloquacious/semver"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 1,
		Patch: 0,
		Build: semver.Commit(),
	}
)

// Version returns the module version.
func Version() semver.Version {
	return version
}
