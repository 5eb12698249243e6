// Package history turns commit logs into change summaries and markdown
// changelogs, and selects the changed source files to score.
package history

import (
	"fmt"
	"sort"
	"strings"

	"gitai/internal/git"
)

// Category is a change category in summaries and changelogs.
type Category string

const (
	Added    Category = "added"
	Modified Category = "modified"
	Deleted  Category = "deleted"
)

// categories lists the categories in output order.
var categories = []Category{Added, Modified, Deleted}

// Title returns the capitalized category name.
func (c Category) Title() string {
	switch c {
	case Added:
		return "Added"
	case Modified:
		return "Modified"
	case Deleted:
		return "Deleted"
	}
	return string(c)
}

// Classify maps a git status code to a category. Only the exact codes A, M,
// R and D are classified; scored codes such as R100 or C75 are not.
func Classify(status string) (Category, bool) {
	switch status {
	case "A":
		return Added, true
	case "M", "R":
		return Modified, true
	case "D":
		return Deleted, true
	}
	return "", false
}

// ChangeSummary counts, per category, the commits that touched each path.
type ChangeSummary map[Category]map[string]int

// Summarize counts per-category file changes across commits.
func Summarize(commits []git.Commit) ChangeSummary {
	summary := ChangeSummary{}
	for _, c := range categories {
		summary[c] = map[string]int{}
	}

	for _, commit := range commits {
		for _, change := range commit.Changes {
			if category, ok := Classify(change.Status); ok {
				summary[category][change.Path]++
			}
		}
	}
	return summary
}

// FormatSummary renders the plain-text branch summary printed by the summary
// command.
func FormatSummary(branch string, commits []git.Commit) string {
	if len(commits) == 0 {
		return fmt.Sprintf("Branch '%s': No commits found.", branch)
	}

	changes := Summarize(commits)
	lines := []string{fmt.Sprintf("Branch '%s': %d commits", branch, len(commits))}

	for _, category := range categories {
		counts := changes[category]
		if len(counts) == 0 {
			continue
		}

		lines = append(lines, "", category.Title()+" files:")
		for _, path := range sortedKeys(counts) {
			lines = append(lines, fmt.Sprintf("  - %s (in %d commits)", path, counts[path]))
		}
	}

	return strings.Join(lines, "\n")
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
