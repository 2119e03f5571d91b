package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tenzin/deskctl/internal/config"
	"github.com/tenzin/deskctl/internal/database"
	"github.com/tenzin/deskctl/internal/dotwatch"
	"github.com/tenzin/deskctl/internal/execx"
	"github.com/tenzin/deskctl/internal/logging"
	"github.com/tenzin/deskctl/internal/notify"
	"github.com/tenzin/deskctl/internal/storage"
)

// createDotwatchCommand creates the dotwatch command.
func createDotwatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dotwatch",
		Short: "Watch the dotfiles repository and auto-commit changes",
		Long: "Watch the dotfiles repository, commit change bursts after a quiet period, push " +
			"them, and periodically check origin for commits made on other machines. Runs " +
			"until interrupted.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			return runDotwatch(configPath)
		},
	}

	cmd.Flags().StringP("config", "c", "", "Path to the watcher config file")

	return cmd
}

func runDotwatch(configPath string) error {
	fs := afero.NewOsFs()
	store := storage.New(fs)

	ctx, err := initLogging("dotwatch", zerolog.DebugLevel)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logging.Get(ctx)

	if configPath == "" {
		configPath = store.GetConfigPath("dotwatch.yml")
	}
	cfg, err := config.LoadWatch(fs, configPath)
	if err != nil {
		return err
	}

	repo, err := dotwatch.OpenRepo(cfg.RepoDirectory)
	if err != nil {
		return err
	}

	var notifier notify.Notifier = notify.Discard{}
	if cfg.EnableNotifications {
		notifier = notify.NewDesktop(execx.NewOSRunner(), "git")
	}

	// The state store only suppresses repeat notifications; running
	// without it just means a restart re-announces known remote changes.
	var state *database.Manager
	if statePath, err := store.GetStatePath(); err == nil {
		state, err = database.NewManager(ctx, statePath)
		if err != nil {
			log.Warn().Err(err).Msg("state store unavailable, notifications may repeat")
			state = nil
		}
	}
	if state != nil {
		defer func() { _ = state.Close() }()
	}

	watcher, err := dotwatch.New(cfg, repo, notifier, state)
	if err != nil {
		return err
	}

	if err := watcher.Run(ctx); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
