package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tenzin/deskctl/internal/execx"
	"github.com/tenzin/deskctl/internal/tmux"
)

const (
	pgadminSession = "pgadmin"
	pgadminURL     = "http://localhost:5050"

	// No readiness check: the server gets a fixed head start before the
	// browser opens.
	pgadminStartupDelay = 2 * time.Second
)

// createPgadminCommand creates the pgadmin command.
func createPgadminCommand() *cobra.Command {
	return newPgadminCommand(tmux.NewClient(execx.NewOSRunner()), time.Sleep)
}

// newPgadminCommand builds the pgadmin command against the given tmux
// implementation and sleep function.
func newPgadminCommand(mux tmux.Tmux, sleep func(time.Duration)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pgadmin",
		Short: "Start pgAdmin in a tmux session and open it in the browser",
		Long: "Ensure a tmux session running pgAdmin exists, starting one if needed, then open " +
			"its web interface in the default browser from a split pane.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			virtualenv, err := cmd.Flags().GetBool("virtualenv")
			if err != nil {
				return err
			}
			return runPgadmin(cmd.Context(), mux, sleep, virtualenv)
		},
	}

	cmd.Flags().Bool("virtualenv", false,
		"Activate the environment by sourcing the virtualenv activate script instead of workon")

	return cmd
}

func runPgadmin(ctx context.Context, mux tmux.Tmux, sleep func(time.Duration), virtualenv bool) error {
	if !mux.HasSession(ctx, pgadminSession) {
		if err := mux.NewSession(ctx, pgadminSession); err != nil {
			return err
		}

		activate := "workon pgadmin"
		if virtualenv {
			activate = "source ~/.virtualenvs/pgadmin/bin/activate"
		}
		start := "cd ~/pgadmin && " + activate + " && pgadmin4"
		if err := mux.SendKeys(ctx, pgadminSession, start); err != nil {
			return err
		}

		sleep(pgadminStartupDelay)
	}

	if err := mux.SplitWindow(ctx, "xdg-open "+pgadminURL); err != nil {
		return fmt.Errorf("failed to open %s: %w", pgadminURL, err)
	}
	return nil
}
