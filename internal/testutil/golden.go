// Package testutil provides testing utilities for golden tests.
package testutil

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// updateGolden controls whether golden files should be updated.
// Use: go test ./... -run TestGolden -update
var updateGolden = flag.Bool("update", false, "update golden files")

// ShouldUpdate returns true if golden files should be updated.
func ShouldUpdate() bool {
	return *updateGolden
}

// GoldenPath returns testdata/<name> relative to the calling package.
func GoldenPath(name string) string {
	return filepath.Join("testdata", name)
}

// CompareGolden compares got against the golden file at path, failing with a
// diff on mismatch. If -update is set, it rewrites the golden file instead.
func CompareGolden(t *testing.T, path string, got []byte) {
	t.Helper()

	if *updateGolden {
		UpdateGolden(t, path, got)
		t.Logf("Updated golden: %s", path)
		return
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("Golden file missing: %s\n\nGot:\n%s\n\nRun with -update to create:\n  go test ./... -run %s -update",
				path, string(got), t.Name())
		}
		t.Fatalf("Failed to read golden file: %v", err)
	}

	if !bytes.Equal(got, expected) {
		diff := unifiedDiff(string(expected), string(got), path)
		t.Fatalf("Golden mismatch for %s:\n%s\n\nRun with -update to refresh:\n  go test ./... -run %s -update",
			path, diff, t.Name())
	}
}

// UpdateGolden writes data to the golden file, creating parent directories.
func UpdateGolden(t *testing.T, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create golden directory: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write golden file: %v", err)
	}
}

// unifiedDiff produces a line-by-line diff between two strings with up to
// three lines of leading context per hunk.
func unifiedDiff(expected, got, path string) string {
	var buf bytes.Buffer

	expectedLines := strings.Split(expected, "\n")
	gotLines := strings.Split(got, "\n")

	fmt.Fprintf(&buf, "--- %s (expected)\n", path)
	fmt.Fprintf(&buf, "+++ %s (got)\n", path)

	var hunk []string
	hunkStart := -1
	flush := func() {
		if len(hunk) > 0 {
			fmt.Fprintf(&buf, "@@ line %d @@\n", hunkStart+1)
			buf.WriteString(strings.Join(hunk, "\n"))
			buf.WriteString("\n")
		}
		hunk = nil
		hunkStart = -1
	}

	for i := 0; i < max(len(expectedLines), len(gotLines)); i++ {
		var expLine, gotLine string
		hasExp, hasGot := i < len(expectedLines), i < len(gotLines)
		if hasExp {
			expLine = expectedLines[i]
		}
		if hasGot {
			gotLine = gotLines[i]
		}

		if hasExp && hasGot && expLine == gotLine {
			if hunkStart >= 0 {
				hunk = append(hunk, " "+expLine)
				if i-hunkStart > 6 {
					flush()
				}
			}
			continue
		}

		if hunkStart < 0 {
			hunkStart = i
			for j := max(0, i-3); j < i; j++ {
				hunk = append(hunk, " "+expectedLines[j])
			}
		}
		if hasExp {
			hunk = append(hunk, "-"+expLine)
		}
		if hasGot {
			hunk = append(hunk, "+"+gotLine)
		}
	}
	flush()

	return buf.String()
}
