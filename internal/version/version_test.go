package version

import (
	"strings"
	"testing"
)

func TestGetVersionString(t *testing.T) {
	origVersion, origBuildTime := Version, BuildTime
	defer func() {
		Version, BuildTime = origVersion, origBuildTime
	}()

	tests := []struct {
		name      string
		version   string
		buildTime string
		expected  string
	}{
		{"dev build", "dev", "unknown", "dev"},
		{"unparseable build time", "v1.2.0", "yesterday", "v1.2.0"},
		{"release build", "v1.2.0", "2026-01-15T10:30:00Z", "v1.2.0 (built 2026-01-15 10:30:00 UTC)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, BuildTime = tt.version, tt.buildTime
			if got := GetVersionString(); got != tt.expected {
				t.Errorf("GetVersionString() = %q; want %q", got, tt.expected)
			}
		})
	}
}

func TestInfoShortensCommit(t *testing.T) {
	origVersion, origBuildTime, origCommit := Version, BuildTime, GitCommit
	defer func() {
		Version, BuildTime, GitCommit = origVersion, origBuildTime, origCommit
	}()

	Version = "v1.0.0"
	BuildTime = "2026-01-15T10:30:00Z"
	GitCommit = "0123456789abcdef"

	got := Info()
	if !strings.Contains(got, "commit 01234567") {
		t.Errorf("Info() = %q; want shortened commit", got)
	}
	if strings.Contains(got, "89abcdef") {
		t.Errorf("Info() = %q; commit not truncated", got)
	}
}
