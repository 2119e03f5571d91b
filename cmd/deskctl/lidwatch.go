package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tenzin/deskctl/internal/execx"
	"github.com/tenzin/deskctl/internal/lid"
	"github.com/tenzin/deskctl/internal/media"
)

const lidPollInterval = time.Second

// createLidwatchCommand creates the lidwatch command.
func createLidwatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lidwatch",
		Short: "Pause media players when the laptop lid closes",
		Long: "Poll the ACPI lid switch and pause every media player on each transition into " +
			"the closed state. Runs until interrupted.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			statePath, err := cmd.Flags().GetString("state")
			if err != nil {
				return err
			}

			ctx, err := initLogging("lidwatch", zerolog.DebugLevel)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fs := afero.NewOsFs()
			monitor := lid.NewMonitor(
				lid.FileStateReader(fs, statePath),
				media.NewPlayerctl(execx.NewOSRunner()),
				lidPollInterval,
			)

			if err := monitor.Run(ctx); !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().String("state", lid.DefaultStatePath, "Path to the ACPI lid state file")

	return cmd
}
