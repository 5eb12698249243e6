package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitai/internal/version"
)

var versionFull bool

var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print the gitai version",
	Args:              cobra.NoArgs,
	PersistentPreRunE: setupWithoutConfig,
	Run: func(cmd *cobra.Command, args []string) {
		if versionFull {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), version.Line())
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionFull, "full", false, "Include commit and build date")
	rootCmd.AddCommand(versionCmd)
}
