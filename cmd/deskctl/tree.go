package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tenzin/deskctl/internal/execx"
	"github.com/tenzin/deskctl/internal/kitty"
	"github.com/tenzin/deskctl/internal/storage"
)

// treeTargetColumns is the pane width the file tree settles at.
const treeTargetColumns = 25

// createTreeCommand creates the tree command.
func createTreeCommand() *cobra.Command {
	return newTreeCommand(execx.NewOSRunner())
}

// newTreeCommand builds the tree command against the given runner.
func newTreeCommand(runner execx.Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Run a file tree in this kitty window and shrink it to a side pane",
		Long: "Run the file browser in the current kitty window with a tree-style profile, then " +
			"resize the window to a fixed narrow width once it exits. Requires kitty remote " +
			"control and KITTY_WINDOW_ID.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			id, err := strconv.Atoi(os.Getenv("KITTY_WINDOW_ID"))
			if err != nil {
				return fmt.Errorf("KITTY_WINDOW_ID not set or not numeric: %w", err)
			}

			// The browser runs in the foreground with an alternate config
			// profile; the window is resized only after it exits.
			profile := storage.New(afero.NewOsFs()).GetConfigPath("yazi")
			env := []string{"YAZI_CONFIG_HOME=" + profile}
			if err := runner.RunWithEnv(ctx, env, "yazi"); err != nil {
				return fmt.Errorf("file browser failed: %w", err)
			}

			client := kitty.NewClient(runner)
			cols, err := client.WindowColumns(ctx, id)
			if err != nil {
				return err
			}

			if err := client.ResizeWindow(ctx, treeTargetColumns-cols); err != nil {
				return err
			}
			return nil
		},
	}
}
