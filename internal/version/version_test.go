package version

import (
	"strings"
	"testing"
)

func stamp(t *testing.T, version, commit, buildDate string) {
	t.Helper()
	origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
	t.Cleanup(func() {
		Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
	})
	Version, Commit, BuildDate = version, commit, buildDate
}

func TestInfo(t *testing.T) {
	tests := []struct {
		name   string
		commit string
		want   string
	}{
		{"unstamped", "unknown", "1.0.0"},
		{"short commit ignored", "abc", "1.0.0"},
		{"exactly seven chars ignored", "1234567", "1.0.0"},
		{"full hash shortened", "abc1234567890", "1.0.0 (abc1234)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stamp(t, "1.0.0", tt.commit, "unknown")
			if got := Info(); got != tt.want {
				t.Errorf("Info() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLine(t *testing.T) {
	stamp(t, "2.1.0", "unknown", "unknown")
	if got := Line(); got != "gitai version 2.1.0" {
		t.Errorf("Line() = %q", got)
	}
}

func TestFull(t *testing.T) {
	stamp(t, "1.2.3", "abcdef123456", "2024-01-15")

	want := "gitai version 1.2.3 (abcdef1)\nCommit: abcdef123456\nBuilt: 2024-01-15"
	if got := Full(); got != want {
		t.Errorf("Full() = %q, want %q", got, want)
	}
}

func TestDefaultVersionIsSemver(t *testing.T) {
	if parts := strings.Split(Version, "."); len(parts) != 3 {
		t.Errorf("Version %q doesn't appear to be semver", Version)
	}
}
