package git

import (
	"os/exec"
	"strings"

	"gitai/internal/errors"
)

// IsRepository reports whether dir is inside a git work tree.
func IsRepository(dir string) bool {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = dir
	return cmd.Run() == nil
}

// RepoRoot finds the git repository root from the given directory.
func RepoRoot(dir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir

	output, err := cmd.Output()
	if err != nil {
		return "", errors.New(
			errors.NotARepository,
			"Not a git repository",
			err,
			append(errors.GetSuggestedFixes(errors.NotARepository), errors.FixAction{
				Type:        errors.RunCommand,
				Command:     "git init",
				Safe:        false,
				Description: "Initialize a git repository",
			}),
		).WithDetails(map[string]interface{}{"dir": dir})
	}

	return strings.TrimSpace(string(output)), nil
}
