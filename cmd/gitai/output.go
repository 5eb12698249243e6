package main

import (
	"os"

	"github.com/spf13/cobra"

	"gitai/internal/errors"
)

// writeOutput writes data to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New(errors.InternalError, "Failed to write report", err, nil).
			WithDetails(map[string]interface{}{"path": path})
	}
	logger.Info("Report written", "path", path)
	return nil
}
