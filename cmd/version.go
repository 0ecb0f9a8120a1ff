// Package cmd contains build-time variables injected via ldflags.
package cmd

import (
	"runtime/debug"
)

// DevVersion is reported when no release version is known.
const DevVersion = "0.0.0-dev"

// Build-time variables set via ldflags:
//
//	go build -ldflags "-X github.com/gitstory/gitstory/cmd.Version=1.2.0"
var (
	// Version is the semantic version of the build. Empty means unknown.
	Version = ""
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)

// readBuildInfo is swapped out in tests.
var readBuildInfo = debug.ReadBuildInfo

// ResolveVersion returns the version to report. It prefers the ldflags
// value, then the main module version recorded by `go install`. ok is false
// when neither is available and DevVersion is returned.
func ResolveVersion() (version string, ok bool) {
	if Version != "" {
		return Version, true
	}
	if info, found := readBuildInfo(); found {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v, true
		}
	}
	return DevVersion, false
}
