package git

import (
	"context"
	"strings"
)

// logFormat is the --pretty format of a commit header line. The trailing
// delimiter keeps every header line distinguishable from a change line.
const logFormat = "%H|%an|%ad|%s|"

// CommitHistory returns the commits of branch, newest first, each with the
// files it changed.
func (g *Adapter) CommitHistory(ctx context.Context, branch string) ([]Commit, error) {
	output, err := g.executeGitCommand(ctx,
		"log",
		branch,
		"--pretty=format:"+logFormat,
		"--date=short",
		"--name-status",
	)
	if err != nil {
		return nil, err
	}

	commits := parseLog(output)
	g.logger.Debug("Read commit history",
		"branch", branch,
		"commits", len(commits),
	)
	return commits, nil
}

// parseLog parses `git log --name-status` output in logFormat.
//
// A line containing "|" starts a new commit; its first four fields are the
// hash, author, date and subject, so a subject containing "|" is cut at the
// first one. A header with fewer fields is dropped along with its changes.
// Any other line is a tab-separated change of the current commit.
func parseLog(output string) []Commit {
	var commits []Commit
	var current *Commit

	flush := func() {
		if current != nil {
			commits = append(commits, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.Contains(line, "|") {
			flush()
			parts := strings.Split(line, "|")
			if len(parts) >= 4 {
				current = &Commit{
					Hash:    parts[0],
					Author:  parts[1],
					Date:    parts[2],
					Message: parts[3],
					Changes: []Change{},
				}
			}
			continue
		}

		if current == nil {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) >= 2 {
			current.Changes = append(current.Changes, Change{Status: parts[0], Path: parts[1]})
		}
	}
	flush()

	return commits
}
