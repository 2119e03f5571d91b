package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tenzin/deskctl/internal/logging"
)

// createRootCommand creates the main root command that shows help by default.
func createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "deskctl",
		Short: "Personal desktop session utilities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Show help when run without subcommands
			return cmd.Help()
		},
	}

	// Add subcommands
	rootCmd.AddCommand(
		createSwitchCommand(),
		createGitStatusCommand(),
		createScaffoldCommand(),
		createCenterCommand(),
		createTreeCommand(),
		createLidwatchCommand(),
		createPgadminCommand(),
		createCleanCommand(),
		createFocusCommand(),
		createDotwatchCommand(),
	)

	return rootCmd
}

// initLogging attaches the file-backed logger to a fresh context. Commands
// that feed status bars keep stdout clean this way.
func initLogging(component string, level zerolog.Level) (context.Context, error) {
	ctx, err := logging.New(context.Background(), afero.NewOsFs(), logging.Config{
		Component: component,
		Level:     level,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return ctx, nil
}
