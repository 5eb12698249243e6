package history

import (
	"os"
	"path/filepath"

	"gitai/internal/git"
	"gitai/internal/quality"
)

// ChangedSourceFiles returns the files added or modified by commits that
// carry one of exts and still exist under root, in first-seen order.
// Returned paths are joined with root.
func ChangedSourceFiles(commits []git.Commit, root string, exts []string) []string {
	seen := make(map[string]bool)
	var files []string

	for _, commit := range commits {
		for _, change := range commit.Changes {
			category, ok := Classify(change.Status)
			if !ok || category == Deleted || seen[change.Path] {
				continue
			}
			seen[change.Path] = true

			if !quality.HasSourceExtension(change.Path, exts) {
				continue
			}
			path := filepath.Join(root, filepath.FromSlash(change.Path))
			if info, err := os.Stat(path); err != nil || info.IsDir() {
				continue
			}
			files = append(files, path)
		}
	}
	return files
}
