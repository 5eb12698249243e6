package history

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gitai/internal/git"
)

// ChangelogFileName returns the changelog file name for a branch. Slashes in
// the branch name become underscores so the file lands directly in the
// output directory.
func ChangelogFileName(branch string) string {
	return "changelog_" + strings.ReplaceAll(branch, "/", "_") + ".md"
}

// RenderChangelog renders a markdown changelog: commits grouped by date,
// newest date first, history order within a date.
func RenderChangelog(branch string, commits []git.Commit) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Changelog for %s\n\n", branch)

	byDate := make(map[string][]git.Commit)
	for _, commit := range commits {
		byDate[commit.Date] = append(byDate[commit.Date], commit)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	for _, date := range dates {
		fmt.Fprintf(&b, "## %s\n\n", date)

		for _, commit := range byDate[date] {
			fmt.Fprintf(&b, "- %s (%s, %s)\n", commit.Message, commit.Author, commit.ShortHash())

			paths := make(map[Category][]string)
			for _, change := range commit.Changes {
				if category, ok := Classify(change.Status); ok {
					paths[category] = append(paths[category], change.Path)
				}
			}
			for _, category := range categories {
				if len(paths[category]) > 0 {
					fmt.Fprintf(&b, "  - %s: %s\n", category.Title(), strings.Join(paths[category], ", "))
				}
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// WriteChangelog writes the changelog of branch into dir and returns the
// file path. dir is created if missing.
func WriteChangelog(dir, branch string, commits []git.Commit) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create changelog directory: %w", err)
	}

	path := filepath.Join(dir, ChangelogFileName(branch))
	if err := os.WriteFile(path, []byte(RenderChangelog(branch, commits)), 0644); err != nil {
		return "", fmt.Errorf("failed to write changelog: %w", err)
	}
	return path, nil
}
