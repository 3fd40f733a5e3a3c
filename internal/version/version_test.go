package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFullContainsVersion(t *testing.T) {
	result := Full()
	if result == "" {
		t.Fatal("Full() returned empty string")
	}
	if !strings.Contains(result, Version) {
		t.Errorf("Full() = %q, does not contain version %q", result, Version)
	}
}

func TestShort(t *testing.T) {
	if got := Short(); got != Version {
		t.Errorf("Short() = %q, want %q", got, Version)
	}
}

func TestBackfill(t *testing.T) {
	savedVersion, savedCommit, savedDate := Version, Commit, Date
	defer func() {
		Version, Commit, Date = savedVersion, savedCommit, savedDate
	}()

	Version, Commit, Date = "dev", "none", "unknown"
	backfill(&debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abcdef0123456789"},
			{Key: "vcs.time", Value: "2026-01-15T10:00:00Z"},
		},
	})

	if Version != "v1.2.3" {
		t.Errorf("Version = %q, want v1.2.3", Version)
	}
	if Commit != "abcdef0" {
		t.Errorf("Commit = %q, want truncated revision abcdef0", Commit)
	}
	if Date != "2026-01-15T10:00:00Z" {
		t.Errorf("Date = %q", Date)
	}

	// ldflags values take precedence over build info.
	Version, Commit, Date = "v9.9.9", "release", "today"
	backfill(&debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abcdef0123456789"},
		},
	})
	if Version != "v9.9.9" || Commit != "release" || Date != "today" {
		t.Errorf("backfill overwrote ldflags values: %s %s %s", Version, Commit, Date)
	}

	// An untagged build keeps "dev".
	Version = "dev"
	backfill(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if Version != "dev" {
		t.Errorf("Version = %q, want dev for (devel) builds", Version)
	}

	backfill(nil)
}
