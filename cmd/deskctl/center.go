package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tenzin/deskctl/internal/center"
)

// createCenterCommand creates the center command.
func createCenterCommand() *cobra.Command {
	return newCenterCommand(center.TerminalWidth)
}

// newCenterCommand builds the center command with an injectable terminal
// width source.
func newCenterCommand(width center.WidthFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "center <text>",
		Short: "Print text centered in the terminal",
		Long:  "Print text padded with spaces so it sits centered in the current terminal width.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cols, err := width()
			if err != nil {
				return fmt.Errorf("failed to determine terminal width: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), center.Line(cols, args[0]))
			return nil
		},
	}
}
