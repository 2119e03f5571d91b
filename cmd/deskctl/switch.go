package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tenzin/deskctl/internal/headermatch"
	"github.com/tenzin/deskctl/internal/logging"
	"github.com/tenzin/deskctl/internal/osrelease"
	"github.com/tenzin/deskctl/internal/scratch"
	"github.com/tenzin/deskctl/internal/storage"
)

// containerDistro marks the distribution this tool runs inside of when
// containerized. Containers have no journal, so logging is dialed down.
const containerDistro = "ubuntu"

// createSwitchCommand creates the switch command.
func createSwitchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "switch [file] [dir]",
		Short: "Find the header for a source file (or vice versa)",
		Long: "Find the header for a source file (or vice versa). Both arguments " +
			"and the result are recorded in fixed scratch files for editor keybindings to read back.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, dir := "", ""
			if len(args) > 0 {
				file = args[0]
			}
			if len(args) > 1 {
				dir = args[1]
			}
			return runSwitch(cmd, file, dir)
		},
	}
}

func runSwitch(cmd *cobra.Command, file, dir string) error {
	fs := afero.NewOsFs()

	// Arguments are recorded before anything else, empty strings included.
	store := scratch.New(fs, storage.New(fs).ScratchDir())
	if err := store.WriteInputs(file, dir); err != nil {
		return fmt.Errorf("failed to record arguments: %w", err)
	}

	level := zerolog.DebugLevel
	if osrelease.Contains(fs, osrelease.Path, containerDistro) {
		level = zerolog.WarnLevel
	}
	ctx, err := initLogging("switch", level)
	if err != nil {
		return err
	}

	// Matching failure is not a process error: the empty result is still
	// recorded and printed, and the exit code stays zero.
	result, err := headermatch.New(fs).Match(ctx, dir, file)
	if err != nil {
		logging.Get(ctx).Debug().Err(err).Msg("no counterpart found")
		result = ""
	}

	if err := store.WriteResult(result); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
