// Package version reports the build version of tuikit-demo.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Version and Commit may be set at build time:
//
//	go build -ldflags="-X github.com/muurk/tuikit/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/tuikit/internal/version.Commit=abc123"
//
// Otherwise they are filled from the module and VCS build info, falling back
// to a timestamped dev version.
var (
	Version = ""
	Commit  = ""
)

const shortCommitLen = 7

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildInfo(info)
	}
	if Version == "" {
		Version = "dev-" + time.Now().Format("20060102-150405")
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fillFromBuildInfo sets whichever of Version and Commit are still empty.
// A module version is used when the binary was built by 'go install
// module@version'; a source build gets dev-<commit date>.
func fillFromBuildInfo(info *debug.BuildInfo) {
	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	if Commit == "" {
		if rev := settings["vcs.revision"]; rev != "" {
			Commit = rev[:min(len(rev), shortCommitLen)]
			if settings["vcs.modified"] == "true" {
				Commit += "-dirty"
			}
		}
	}

	if Version != "" {
		return
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		Version = v
		return
	}
	if t, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
		Version = "dev-" + t.Format("20060102")
	}
}

// Full returns the version with its commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Info returns the version details shown by the version command, in
// display order.
func Info() [][2]string {
	return [][2]string{
		{"Version", Version},
		{"Commit", Commit},
		{"Go", runtime.Version()},
		{"Platform", runtime.GOOS + "/" + runtime.GOARCH},
	}
}
