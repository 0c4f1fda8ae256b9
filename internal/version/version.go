package version

import "runtime/debug"

// Version information for line
const (
	// Version is the current semantic version of line
	Version = "1.0.0"
)

var (
	// BuildDate is set during build time (use -ldflags)
	BuildDate = "development"

	// GitCommit is set during build time (use -ldflags)
	GitCommit = "unknown"
)

// Info returns version information as a string
func Info() string {
	return Version
}

// FullInfo returns detailed version information
func FullInfo() string {
	return "line " + Version + " (commit: " + commit() + ", built: " + BuildDate + ")"
}

// commit falls back to the VCS revision stamped into the binary
func commit() string {
	if GitCommit != "unknown" {
		return GitCommit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				return s.Value[:7]
			}
		}
	}
	return GitCommit
}
