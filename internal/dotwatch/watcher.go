// Package dotwatch auto-commits a dotfiles repository: it watches the
// tree, debounces change bursts into single commits, pushes them, and
// periodically checks origin for commits made elsewhere.
package dotwatch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-co-op/gocron/v2"
	"github.com/tenzin/deskctl/internal/config"
	"github.com/tenzin/deskctl/internal/database"
	"github.com/tenzin/deskctl/internal/logging"
	"github.com/tenzin/deskctl/internal/notify"
)

const (
	commitNotifyTimeout = 5 * time.Second
	remoteNotifyTimeout = 10 * time.Second
)

// Watcher is the dotfile watcher daemon.
type Watcher struct {
	cfg      config.Watch
	repo     *Repo
	notifier notify.Notifier
	state    *database.Manager
	watcher  *fsnotify.Watcher
	debounce *debouncer
}

// New creates a watcher for the configured repository. state may be nil,
// in which case every remote change is announced again after a restart.
func New(cfg config.Watch, repo *Repo, notifier notify.Notifier, state *database.Manager) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		cfg:      cfg,
		repo:     repo,
		notifier: notifier,
		state:    state,
		watcher:  fsWatcher,
	}
	return w, nil
}

// Run watches until ctx is canceled. Pending debounced commits are
// flushed on the way out so a shutdown never loses observed changes.
func (w *Watcher) Run(ctx context.Context) error {
	log := logging.Get(ctx)
	log.Info().Str("dir", w.cfg.WatchDirectory).Msg("dotfile watcher started")
	defer log.Info().Msg("dotfile watcher stopped")

	w.debounce = newDebouncer(w.cfg.CommitDelay, func() { w.commitCycle(ctx) })

	// Anything that changed while the watcher was down gets committed first.
	w.commitCycle(ctx)

	if err := w.addRecursive(w.cfg.WatchDirectory); err != nil {
		_ = w.watcher.Close()
		return err
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		_ = w.watcher.Close()
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	_, err = scheduler.NewJob(
		gocron.DurationJob(w.cfg.FetchInterval),
		gocron.NewTask(func() { w.fetchCycle(ctx) }),
		gocron.WithName("remote-fetch"),
	)
	if err != nil {
		_ = w.watcher.Close()
		_ = scheduler.Shutdown()
		return fmt.Errorf("failed to schedule fetch job: %w", err)
	}
	scheduler.Start()

	defer func() {
		w.debounce.flush()
		if err := scheduler.Shutdown(); err != nil {
			log.Error().Err(err).Msg("failed to stop scheduler")
		}
		if err := w.watcher.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close file watcher")
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, event)
		case watchErr, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(watchErr).Msg("file watcher error")
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	log := logging.Get(ctx)

	rel, err := filepath.Rel(w.cfg.WatchDirectory, event.Name)
	if err != nil {
		rel = event.Name
	}
	if shouldExclude(rel, w.cfg.ExcludedPatterns) {
		return
	}

	// New directories need their own watch for recursion.
	if event.Op.Has(fsnotify.Create) {
		if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
			if addErr := w.addRecursive(event.Name); addErr != nil {
				log.Error().Err(addErr).Str("dir", event.Name).Msg("failed to watch new directory")
			}
			return
		}
	}

	log.Debug().Str("file", rel).Str("op", event.Op.String()).Msg("change observed")
	w.debounce.trigger()
}

// commitCycle commits and pushes whatever is pending in the work tree.
func (w *Watcher) commitCycle(ctx context.Context) {
	log := logging.Get(ctx)

	message, committed, err := w.repo.CommitAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("commit failed")
		return
	}
	if !committed {
		return
	}
	log.Info().Str("message", message).Msg("committed")

	if w.cfg.EnableNotifications && w.cfg.NotifyOnCommit {
		if err := w.notifier.Send(ctx, "Dotfiles Committed", message, commitNotifyTimeout); err != nil {
			log.Error().Err(err).Msg("commit notification failed")
		}
	}

	if w.cfg.AutoPush {
		if err := w.repo.Push(ctx); err != nil {
			log.Error().Err(err).Msg("push failed")
		}
	}
}

// fetchCycle fetches origin and announces branches whose remote moved
// since the last announcement.
func (w *Watcher) fetchCycle(ctx context.Context) {
	log := logging.Get(ctx)

	if err := w.repo.Fetch(ctx); err != nil {
		log.Error().Err(err).Msg("fetch failed")
		return
	}

	changes, err := w.repo.RemoteChanges()
	if err != nil {
		log.Error().Err(err).Msg("remote comparison failed")
		return
	}

	fresh := w.filterNotified(ctx, changes)
	if len(fresh) == 0 {
		return
	}

	if w.cfg.EnableNotifications && w.cfg.NotifyOnRemoteChanges {
		body := formatRemoteChanges(w.repo.Name(), fresh)
		if err := w.notifier.Send(ctx, "Remote Changes Detected", body, remoteNotifyTimeout); err != nil {
			log.Error().Err(err).Msg("remote change notification failed")
		}
	}
	log.Info().Int("branches", len(fresh)).Msg("remote changes detected")
}

// filterNotified drops changes whose remote head was already announced
// and records the rest in the state store.
func (w *Watcher) filterNotified(ctx context.Context, changes []BranchChange) []BranchChange {
	if w.state == nil {
		return changes
	}
	log := logging.Get(ctx)

	var fresh []BranchChange
	for _, change := range changes {
		last, ok, err := w.state.RemoteHead(ctx, w.repo.Name(), change.Branch)
		if err != nil {
			log.Error().Err(err).Msg("state lookup failed")
			fresh = append(fresh, change)
			continue
		}
		if ok && last == change.RemoteSHA {
			continue
		}
		if err := w.state.SetRemoteHead(ctx, w.repo.Name(), change.Branch, change.RemoteSHA); err != nil {
			log.Error().Err(err).Msg("state update failed")
		}
		fresh = append(fresh, change)
	}
	return fresh
}

func formatRemoteChanges(repo string, changes []BranchChange) string {
	parts := make([]string, len(changes))
	for i, change := range changes {
		parts[i] = fmt.Sprintf("%s (%d commits)", change.Branch, change.Commits)
	}
	return fmt.Sprintf("%s: %s", repo, strings.Join(parts, ", "))
}

// addRecursive watches root and every subdirectory, skipping .git.
func (w *Watcher) addRecursive(root string) error {
	err := filepath.WalkDir(root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		if entry.Name() == ".git" {
			return filepath.SkipDir
		}
		if addErr := w.watcher.Add(path); addErr != nil {
			return fmt.Errorf("failed to watch %s: %w", path, addErr)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to watch tree %s: %w", root, err)
	}
	return nil
}
