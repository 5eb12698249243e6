package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"gitai/internal/errors"
	"gitai/internal/git"
	"gitai/internal/history"
	"gitai/internal/quality"
	"gitai/internal/report"
	"gitai/internal/version"
)

var (
	qualityFormat    string
	qualityOut       string
	qualityChangedIn string
)

var qualityCmd = &cobra.Command{
	Use:   "quality [path]",
	Short: "Score Python code quality",
	Long: `Score Python functions by cyclomatic complexity, method length and
working memory, and report the worst files and functions first.

path may be a file or a directory (default: current directory). With
--changed-in, the files added or modified on a branch are scored instead;
files that can no longer be read score as empty.

Examples:
  gitai quality
  gitai quality src/app.py
  gitai quality --format=json --out=quality.json src
  gitai quality --changed-in=feature/login`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuality,
}

func init() {
	qualityCmd.Flags().StringVar(&qualityFormat, "format", "", "Output format: markdown, json, yaml (default from config)")
	qualityCmd.Flags().StringVar(&qualityOut, "out", "", "Write the report to a file instead of stdout")
	qualityCmd.Flags().StringVar(&qualityChangedIn, "changed-in", "", "Score the source files changed on this branch")
	rootCmd.AddCommand(qualityCmd)
}

func runQuality(cmd *cobra.Command, args []string) error {
	start := time.Now()

	if !quality.IsAvailable() {
		return errors.New(errors.InternalError, "Quality analysis requires CGO (tree-sitter); this binary was built without it", nil, nil)
	}

	format := cfg.Output.Format
	if qualityFormat != "" {
		format = qualityFormat
	}
	if !report.IsSupportedFormat(format) {
		return errors.New(errors.InvalidArgument, "Unsupported format: "+format, nil, nil)
	}
	if qualityChangedIn != "" && len(args) > 0 {
		return errors.New(errors.InvalidArgument, "A path cannot be combined with --changed-in", nil, nil)
	}

	engine := quality.NewEngine(quality.Options{
		Limits: quality.Limits{
			MaxComplexity:    cfg.Quality.MaxComplexity,
			MaxMethodLength:  cfg.Quality.MaxMethodLength,
			MaxWorkingMemory: cfg.Quality.MaxWorkingMemory,
		},
		Extensions: cfg.Quality.Extensions,
		Ignore:     cfg.Quality.Ignore,
		Logger:     logger,
	})

	var evals []quality.FileEvaluation
	var err error
	if qualityChangedIn != "" {
		evals, err = evaluateChanged(cmd, engine, qualityChangedIn)
	} else {
		target := "."
		if len(args) == 1 {
			target = args[0]
		}
		evals, err = evaluateTarget(cmd, engine, target)
	}
	if err != nil {
		return err
	}

	output, err := report.Render(format, evals, version.Version)
	if err != nil {
		return errors.New(errors.InternalError, "Failed to render report", err, nil)
	}
	if err := writeOutput(cmd, qualityOut, output); err != nil {
		return err
	}

	logger.Info("Quality report generated",
		"files", len(evals),
		"format", format,
		"duration", time.Since(start).Milliseconds(),
	)
	return nil
}

// evaluateTarget scores a single file or every source file under a directory.
func evaluateTarget(cmd *cobra.Command, engine *quality.Engine, target string) ([]quality.FileEvaluation, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, errors.New(errors.FileReadFailure, "Cannot read "+target, err, nil)
	}

	if info.IsDir() {
		return engine.EvaluateDirectory(cmd.Context(), target)
	}

	fe, err := engine.EvaluateFile(cmd.Context(), target)
	if err != nil {
		return nil, err
	}
	return []quality.FileEvaluation{*fe}, nil
}

// evaluateChanged scores the source files a branch added or modified.
func evaluateChanged(cmd *cobra.Command, engine *quality.Engine, branch string) ([]quality.FileEvaluation, error) {
	adapter, err := git.NewAdapter(workRoot, cfg.GitTimeout(), logger)
	if err != nil {
		return nil, err
	}

	commits, err := adapter.CommitHistory(cmd.Context(), branch)
	if err != nil {
		return nil, err
	}

	paths := history.ChangedSourceFiles(commits, adapter.RepoRoot(), cfg.Quality.Extensions)
	logger.Debug("Changed source files",
		"branch", branch,
		"commits", len(commits),
		"files", len(paths),
	)
	return engine.EvaluatePaths(cmd.Context(), paths)
}
