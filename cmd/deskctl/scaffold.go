package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tenzin/deskctl/internal/scaffold"
)

// createScaffoldCommand creates the scaffold command.
func createScaffoldCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scaffold [dir]",
		Short: "Lay out a C project skeleton",
		Long: "Lay out a C project skeleton: src/, include/, build/ plus empty src/main.c and " +
			"makefile. Existing files are never touched. Without a valid directory argument the " +
			"current directory is used.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := afero.NewOsFs()

			dir, err := scaffoldTarget(fs, args)
			if err != nil {
				return err
			}

			if err := scaffold.Create(fs, dir); err != nil {
				return fmt.Errorf("failed to scaffold project: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("scaffolded C project in %s", dir))
			return nil
		},
	}
}

// scaffoldTarget picks the target directory: the argument when it names an
// existing directory, the working directory otherwise.
func scaffoldTarget(fs afero.Fs, args []string) (string, error) {
	if len(args) == 1 {
		isDir, err := afero.IsDir(fs, args[0])
		if err == nil && isDir {
			return args[0], nil
		}
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return dir, nil
}
