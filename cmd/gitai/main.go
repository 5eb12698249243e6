package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"gitai/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	closeLogFile()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, fix := range fixesOf(err) {
			fmt.Fprintf(os.Stderr, "  hint: %s\n", fix)
		}
		os.Exit(1)
	}
}

// fixesOf renders the suggested fixes carried by a coded error.
func fixesOf(err error) []string {
	e, ok := errors.AsError(err)
	if !ok {
		return nil
	}

	var hints []string
	for _, fix := range e.SuggestedFixes {
		switch {
		case fix.Command != "":
			hints = append(hints, fmt.Sprintf("%s (run: %s)", fix.Description, fix.Command))
		case fix.Description != "":
			hints = append(hints, fix.Description)
		}
	}
	return hints
}
