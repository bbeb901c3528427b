// Package version holds build metadata of the aoc binary.
package version

import (
	"fmt"
	"runtime/debug"
)

const develVersion = "dev"

// Build metadata, normally set with -ldflags "-X".
var (
	Version = develVersion
	Commit  = "none"
	Date    = "unknown"
)

// InitBinaryVersion fills metadata not set by the linker from the module
// build info embedded by the Go toolchain.
func InitBinaryVersion() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if Version == develVersion && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if Commit == "none" {
				Commit = setting.Value
			}
		case "vcs.time":
			if Date == "unknown" {
				Date = setting.Value
			}
		}
	}
}

// String formats the metadata for display.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
