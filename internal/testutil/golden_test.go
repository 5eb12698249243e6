package testutil

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestCompareGolden_Match(t *testing.T) {
	path := filepath.Join(t.TempDir(), "testdata", "out.golden")
	UpdateGolden(t, path, []byte("line one\nline two\n"))

	CompareGolden(t, path, []byte("line one\nline two\n"))
}

func TestUnifiedDiff(t *testing.T) {
	diff := unifiedDiff("a\nb\nc", "a\nB\nc\nd", "x.golden")

	for _, want := range []string{"--- x.golden (expected)", "+++ x.golden (got)", "-b", "+B", "+d", " a"} {
		if !strings.Contains(diff, want) {
			t.Errorf("diff missing %q:\n%s", want, diff)
		}
	}
}

func TestGoldenPath(t *testing.T) {
	if got := GoldenPath("report.md"); got != filepath.Join("testdata", "report.md") {
		t.Errorf("GoldenPath() = %s", got)
	}
}
