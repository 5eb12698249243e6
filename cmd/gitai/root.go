package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"gitai/internal/config"
	"gitai/internal/errors"
	"gitai/internal/git"
	"gitai/internal/slogutil"
	"gitai/internal/version"
)

var (
	// verbosity is the number of -v flags
	verbosity int
	quiet     bool

	// Set by the persistent pre-run hooks.
	workRoot string
	cfg      *config.Config
	logger   = slogutil.NewDiscardLogger()
	logFile  io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "gitai",
	Short: "gitai - git history summaries and Python code quality reports",
	Long: `gitai summarizes the commit history of git branches, writes markdown
changelogs, and scores Python code by cyclomatic complexity, method length
and working memory.`,
	Version:           version.Info(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupWithConfig,
}

func init() {
	rootCmd.SetVersionTemplate("gitai version {{.Version}}\n")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
}

// setupWithConfig resolves the working root, loads and validates the
// configuration, then configures logging from it.
func setupWithConfig(cmd *cobra.Command, args []string) error {
	if err := resolveWorkRoot(); err != nil {
		return err
	}

	loaded, err := config.LoadConfig(workRoot)
	if err != nil {
		return errors.New(errors.InvalidArgument, "Failed to load configuration", err, nil).
			WithDetails(map[string]interface{}{"path": config.Path(workRoot)})
	}
	if err := loaded.Validate(); err != nil {
		return errors.New(errors.InvalidArgument, "Invalid configuration", err, []errors.FixAction{
			{
				Type:        errors.RunCommand,
				Command:     "gitai init --force",
				Safe:        false,
				Description: "Rewrite the configuration with defaults",
			},
		})
	}
	cfg = loaded

	return setupLogging(cmd, cfg.Logging)
}

// setupWithoutConfig is used by commands that must work with a missing or
// broken configuration file.
func setupWithoutConfig(cmd *cobra.Command, args []string) error {
	if err := resolveWorkRoot(); err != nil {
		return err
	}
	cfg = config.DefaultConfig()
	return setupLogging(cmd, config.LoggingConfig{Level: "warn"})
}

// resolveWorkRoot uses the repository root when the working directory is
// inside one, and the working directory otherwise.
func resolveWorkRoot() error {
	cwd, err := os.Getwd()
	if err != nil {
		return errors.New(errors.InternalError, "Failed to get current directory", err, nil)
	}

	workRoot = cwd
	if !git.IsRepository(cwd) {
		return nil
	}
	root, err := git.RepoRoot(cwd)
	if err != nil {
		return err
	}
	workRoot = root
	return nil
}

// setupLogging builds the process logger. Verbosity flags override the
// configured level.
func setupLogging(cmd *cobra.Command, opts config.LoggingConfig) error {
	level := slogutil.ParseLevel(opts.Level)
	flags := cmd.Flags()
	if flags.Changed("verbose") || flags.Changed("quiet") {
		level = slogutil.VerbosityLevel(verbosity, quiet)
	}

	l, closer, err := slogutil.New(cmd.ErrOrStderr(), slogutil.Config{
		Level:      level,
		Root:       workRoot,
		File:       opts.File,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
	})
	if err != nil {
		return errors.New(errors.InvalidArgument, "Failed to open log file", err, nil).
			WithDetails(map[string]interface{}{"path": opts.File})
	}
	logger, logFile = l, closer
	return nil
}

func closeLogFile() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}
