// Package coinchange makes change for a target amount from a set of coin
// denominations.
//
// Version: 0.1.0
//
// Two solvers share one contract. Greedy takes the largest coin that fits,
// which is fast but only optimal for canonical coin systems. Exact runs a
// bottom-up dynamic program over every sub-amount and reconstructs a
// minimum-count decomposition by tracing back the last coin used.
package coinchange

import (
	"runtime"
	"runtime/debug"
)

// Version is the release of the solvers.
const Version = "0.1.0"

// VersionInfo describes the running build.
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Revision  string `json:"vcs_revision,omitempty"`
	Modified  bool   `json:"vcs_modified,omitempty"`
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetVersionInfo reports Version together with the toolchain and, when the
// binary was built from a checkout, the VCS revision stamped by go build.
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GoVersion: runtime.Version(),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Revision = s.Value
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}
	return info
}
