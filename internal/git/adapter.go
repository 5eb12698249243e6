package git

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"gitai/internal/errors"
	"gitai/internal/slogutil"
)

// DefaultTimeout is the default timeout for a single git command (5000ms).
const DefaultTimeout = 5000 * time.Millisecond

// Adapter runs git commands inside one repository.
type Adapter struct {
	repoRoot string
	timeout  time.Duration
	logger   *slog.Logger
}

// NewAdapter creates an adapter for the repository containing dir.
// A non-positive timeout means DefaultTimeout; a nil logger discards.
func NewAdapter(dir string, timeout time.Duration, logger *slog.Logger) (*Adapter, error) {
	logger = slogutil.OrDiscard(logger)
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	root, err := RepoRoot(dir)
	if err != nil {
		return nil, err
	}

	logger.Debug("Git adapter initialized",
		"repoRoot", root,
		"timeout", timeout.String(),
	)

	return &Adapter{
		repoRoot: root,
		timeout:  timeout,
		logger:   logger,
	}, nil
}

// RepoRoot returns the top-level directory of the repository.
func (g *Adapter) RepoRoot() string {
	return g.repoRoot
}

// Branches returns the names of all local branches.
func (g *Adapter) Branches(ctx context.Context) ([]string, error) {
	return g.executeGitCommandLines(ctx, "branch", "--format=%(refname:short)")
}

// executeGitCommand runs a git command with timeout and returns the trimmed output.
func (g *Adapter) executeGitCommand(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.repoRoot

	g.logger.Debug("Executing git command",
		"args", args,
		"timeout", g.timeout.String(),
	)

	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", errors.New(
				errors.Timeout,
				"Git command timed out",
				err,
				errors.GetSuggestedFixes(errors.Timeout),
			).WithDetails(map[string]interface{}{
				"args":    args,
				"timeout": g.timeout.String(),
			})
		}

		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", errors.New(
				errors.GitCommandFailed,
				"Git command failed",
				err,
				nil,
			).WithDetails(map[string]interface{}{
				"args":   args,
				"stderr": strings.TrimSpace(string(exitErr.Stderr)),
			})
		}

		return "", errors.New(
			errors.GitCommandFailed,
			"Failed to execute git command",
			err,
			errors.GetSuggestedFixes(errors.GitCommandFailed),
		)
	}

	return strings.TrimSpace(string(output)), nil
}

// executeGitCommandLines runs a git command and returns its non-empty output lines.
func (g *Adapter) executeGitCommandLines(ctx context.Context, args ...string) ([]string, error) {
	output, err := g.executeGitCommand(ctx, args...)
	if err != nil {
		return nil, err
	}

	if output == "" {
		return []string{}, nil
	}

	lines := strings.Split(output, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			result = append(result, line)
		}
	}

	return result, nil
}
