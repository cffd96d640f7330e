package app

import (
	"fmt"
	"runtime/debug"
)

// Version and Commit are set via ldflags, e.g.
// -ldflags "-X github.com/heartmarshall/customtrack-backend/internal/app.Version=1.4.0".
var (
	Version = "dev"
	Commit  = ""
)

// BuildVersion returns the version string used in startup logs. Without a
// Commit from ldflags it falls back to the VCS revision stamped by the Go
// toolchain.
func BuildVersion() string {
	commit := Commit
	if commit == "" {
		commit = vcsRevision()
	}
	if commit == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, commit)
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 12 {
			return s.Value[:12]
		}
	}
	return ""
}
