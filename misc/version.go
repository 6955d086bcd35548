// Package misc provides build and version information.
package misc

import (
	"runtime/debug"
)

const appName = "mapsheet"

// Set with -ldflags "-X mapsheet/misc.version=... -X mapsheet/misc.gitHash=..."
var (
	version = "dev"
	gitHash = ""
)

// GetAppName returns program name used for logs and report files.
func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns commit program was built from, falling back to VCS
// information recorded by the Go toolchain.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
