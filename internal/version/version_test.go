package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFull(t *testing.T) {
	if Version == "" || Commit == "" {
		t.Fatal("Version and Commit should always be populated")
	}
	if got := Full(); !strings.Contains(got, Version) || !strings.Contains(got, "commit: "+Commit) {
		t.Errorf("Full() = %q", got)
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	if len(info) != 4 || info[0][0] != "Version" || info[0][1] != Version {
		t.Errorf("Info() = %v", info)
	}
}

func TestFillFromBuildInfo(t *testing.T) {
	tests := []struct {
		name          string
		info          debug.BuildInfo
		expectVersion string
		expectCommit  string
	}{
		{
			name: "installed module",
			info: debug.BuildInfo{
				Main:     debug.Module{Version: "v1.4.0"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}},
			},
			expectVersion: "v1.4.0",
			expectCommit:  "0123456",
		},
		{
			name: "dirty source build",
			info: debug.BuildInfo{
				Main: debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc"},
					{Key: "vcs.modified", Value: "true"},
					{Key: "vcs.time", Value: "2026-03-04T10:00:00Z"},
				},
			},
			expectVersion: "dev-20260304",
			expectCommit:  "abc-dirty",
		},
		{
			name: "no vcs",
			info: debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldVersion, oldCommit := Version, Commit
			t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })
			Version, Commit = "", ""

			fillFromBuildInfo(&tt.info)
			if Version != tt.expectVersion || Commit != tt.expectCommit {
				t.Errorf("got %q/%q, want %q/%q", Version, Commit, tt.expectVersion, tt.expectCommit)
			}
		})
	}
}

func TestFillFromBuildInfoKeepsLinkerValues(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })
	Version, Commit = "v9.9.9", "feed"

	fillFromBuildInfo(&debug.BuildInfo{
		Main:     debug.Module{Version: "v1.0.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789"}},
	})
	if Version != "v9.9.9" || Commit != "feed" {
		t.Errorf("got %q/%q, want linker values kept", Version, Commit)
	}
}
