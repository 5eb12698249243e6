package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gitai/internal/config"
	"gitai/internal/errors"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:               "init",
	Short:             "Initialize gitai configuration",
	Long:              "Creates .gitai/config.toml with default settings in the repository root (or the current directory outside a repository).",
	Args:              cobra.NoArgs,
	PersistentPreRunE: setupWithoutConfig,
	RunE:              runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing configuration")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configPath := config.Path(workRoot)

	if _, err := os.Stat(configPath); err == nil && !initForce {
		// Already initialized is success (CI-friendly)
		fmt.Fprintln(out, "gitai already initialized.")
		fmt.Fprintf(out, "Configuration at: %s\n", configPath)
		fmt.Fprintln(out, "\nRun 'gitai init --force' to overwrite it.")
		return nil
	}

	if err := config.DefaultConfig().Save(workRoot); err != nil {
		return errors.New(errors.InternalError, "Failed to write config file", err, nil).
			WithDetails(map[string]interface{}{"path": configPath})
	}

	logger.Info("gitai initialized", "configPath", configPath)

	fmt.Fprintln(out, "gitai initialized successfully!")
	fmt.Fprintf(out, "Configuration written to: %s\n", configPath)
	return nil
}
