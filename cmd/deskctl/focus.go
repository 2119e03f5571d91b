package main

import (
	"github.com/spf13/cobra"
	"github.com/tenzin/deskctl/internal/execx"
	"github.com/tenzin/deskctl/internal/hypr"
)

// createFocusCommand creates the focus command.
func createFocusCommand() *cobra.Command {
	return newFocusCommand(execx.NewOSRunner())
}

// newFocusCommand builds the focus command against the given runner.
func newFocusCommand(runner execx.Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "focus <command> <class>",
		Short: "Focus a window by class, starting it if absent",
		Long: "Focus the Hyprland window with the given class. When no such window exists, " +
			"launch the command through the compositor instead.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			command, class := args[0], args[1]

			client := hypr.NewClient(runner)
			found, err := client.HasWindow(ctx, class)
			if err != nil {
				return err
			}

			if found {
				return client.FocusWindow(ctx, class)
			}
			return client.Exec(ctx, command)
		},
	}
}
