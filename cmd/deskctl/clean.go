package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tenzin/deskctl/internal/clean"
	"github.com/tenzin/deskctl/internal/prompt"
)

// createCleanCommand creates the clean command.
func createCleanCommand() *cobra.Command {
	return newCleanCommand(afero.NewOsFs(), prompt.NewLinerPrompter)
}

// newCleanCommand builds the clean command against the given filesystem
// and prompter factory.
func newCleanCommand(fs afero.Fs, newPrompter func() prompt.Prompter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [dir]",
		Short: "Remove duplicate downloads",
		Long: "Remove browser-style duplicate downloads: files named like \"report(1).pdf\" " +
			"whose original still exists. Defaults to ~/Downloads.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, err := cmd.Flags().GetBool("dry-run")
			if err != nil {
				return err
			}
			interactive, err := cmd.Flags().GetBool("interactive")
			if err != nil {
				return err
			}

			dir, err := cleanTarget(args)
			if err != nil {
				return err
			}

			return runClean(cmd, fs, newPrompter, dir, dryRun, interactive)
		},
	}

	cmd.Flags().Bool("dry-run", false, "List duplicates without removing them")
	cmd.Flags().BoolP("interactive", "i", false, "Confirm each removal")

	return cmd
}

func cleanTarget(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, "Downloads"), nil
}

func runClean(
	cmd *cobra.Command, fs afero.Fs, newPrompter func() prompt.Prompter,
	dir string, dryRun, interactive bool,
) error {
	out := cmd.OutOrStdout()

	cleaner := clean.New(fs)
	dups, err := cleaner.Scan(dir)
	if err != nil {
		return err
	}
	if len(dups) == 0 {
		_, _ = fmt.Fprintln(out, "no duplicates found")
		return nil
	}

	var prompter prompt.Prompter
	if interactive && !dryRun {
		prompter = newPrompter()
		defer func() { _ = prompter.Close() }()
	}

	removed := 0
	for _, dup := range dups {
		if dryRun {
			_, _ = fmt.Fprintf(out, "%s %s (duplicate of %s)\n",
				color.YellowString("would remove"), dup.Name, dup.Original)
			continue
		}

		if prompter != nil {
			ok, err := prompt.Confirm(prompter, fmt.Sprintf("remove %s (duplicate of %s)?", dup.Name, dup.Original))
			if errors.Is(err, prompt.ErrCancelled) {
				break
			}
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
		}

		if err := cleaner.Remove(dir, dup); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "%s %s (duplicate of %s)\n",
			color.RedString("removed"), dup.Name, dup.Original)
		removed++
	}

	if !dryRun {
		_, _ = fmt.Fprintf(out, "removed %d of %d duplicates\n", removed, len(dups))
	}
	return nil
}
