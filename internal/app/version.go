package app

import (
	"fmt"
	"runtime/debug"
)

// Build metadata, overridden with -ldflags "-X .../internal/app.Version=1.2.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion describes the running binary for startup logs and /health.
// Without ldflags the VCS stamp embedded by the go tool is used instead.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "unknown" {
		commit, built = vcsStamp(built)
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

func vcsStamp(built string) (string, string) {
	commit := "unknown"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return commit, built
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
			if len(commit) > 12 {
				commit = commit[:12]
			}
		case "vcs.time":
			if built == "unknown" {
				built = s.Value
			}
		}
	}
	return commit, built
}
