package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tenzin/deskctl/internal/gitstatus"
)

// createGitStatusCommand creates the gitstatus command.
func createGitStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gitstatus",
		Short: "Print a status-bar line for the current git repository",
		Long: "Print a status-bar line for the current git repository: the ref name plus a " +
			"clean/dirty marker. Outside a repository nothing is printed. Diagnostics go to " +
			"the log file, never stdout.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := initLogging("gitstatus", zerolog.DebugLevel)
			if err != nil {
				// The status line must stay clean even when the log sink
				// cannot be set up.
				ctx = context.Background()
			}

			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			line, err := gitstatus.Report(ctx, dir)
			if err != nil {
				return fmt.Errorf("failed to report status: %w", err)
			}
			if line != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
