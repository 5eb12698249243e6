package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gitai/internal/git"
	"gitai/internal/history"
)

var (
	summaryBranch    string
	summaryChangelog bool
	summaryOutput    string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize branch history",
	Long: `Print the files added, modified and deleted on each branch, counted by
commit. With --changelog, also write a markdown changelog per branch.

Examples:
  gitai summary
  gitai summary -b main
  gitai summary -b feature/login -c -o docs/changelogs`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVarP(&summaryBranch, "branch", "b", "", "Branch to summarize (default: all local branches)")
	summaryCmd.Flags().BoolVarP(&summaryChangelog, "changelog", "c", false, "Write a changelog file per branch")
	summaryCmd.Flags().StringVarP(&summaryOutput, "output", "o", "", "Changelog directory (default from config, \".\")")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	adapter, err := git.NewAdapter(workRoot, cfg.GitTimeout(), logger)
	if err != nil {
		return err
	}

	branches := []string{summaryBranch}
	if summaryBranch == "" {
		branches, err = adapter.Branches(ctx)
		if err != nil {
			return err
		}
	}

	outputDir := cfg.Output.ChangelogDir
	if summaryOutput != "" {
		outputDir = summaryOutput
	}

	for _, branch := range branches {
		commits, err := adapter.CommitHistory(ctx, branch)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, history.FormatSummary(branch, commits))
		fmt.Fprintln(out, "\n"+strings.Repeat("-", 50)+"\n")

		if summaryChangelog {
			path, err := history.WriteChangelog(outputDir, branch, commits)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Changelog generated: %s\n", path)
		}
	}

	logger.Info("Summarized branches", "branches", len(branches))
	return nil
}
