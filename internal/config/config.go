// Package config loads the dotfile watcher configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Watch configures the dotfile watcher daemon.
type Watch struct {
	WatchDirectory        string        `yaml:"watch_directory"`
	RepoDirectory         string        `yaml:"repo_directory"`
	CommitDelay           time.Duration `yaml:"commit_delay"`
	FetchInterval         time.Duration `yaml:"fetch_interval"`
	EnableNotifications   bool          `yaml:"enable_notifications"`
	NotifyOnCommit        bool          `yaml:"notify_on_commit"`
	NotifyOnRemoteChanges bool          `yaml:"notify_on_remote_changes"`
	AutoPush              bool          `yaml:"auto_push"`
	ExcludedPatterns      []string      `yaml:"excluded_patterns"`
}

// DefaultWatch returns the configuration used when no file exists.
func DefaultWatch() Watch {
	return Watch{
		WatchDirectory:        "~/.dotfiles",
		RepoDirectory:         "~/.dotfiles",
		CommitDelay:           time.Minute,
		FetchInterval:         10 * time.Minute,
		EnableNotifications:   true,
		NotifyOnCommit:        true,
		NotifyOnRemoteChanges: true,
		AutoPush:              true,
		ExcludedPatterns: []string{
			".git/", "index.lock", "COMMIT_EDITMSG", "FETCH_HEAD", "ORIG_HEAD",
			"__pycache__/", ".swp", ".swo", ".tmp", "~", ".bak",
		},
	}
}

// LoadWatch reads a watch config from path, falling back to defaults when
// the file is missing. Fields absent from the file keep their defaults.
func LoadWatch(fs afero.Fs, path string) (Watch, error) {
	cfg := DefaultWatch()

	data, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg.expand(), nil
	}
	if err != nil {
		return Watch{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Watch{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Watch{}, err
	}
	return cfg.expand(), nil
}

func (w Watch) validate() error {
	if w.CommitDelay <= 0 {
		return errors.New("commit_delay must be positive")
	}
	if w.FetchInterval <= 0 {
		return errors.New("fetch_interval must be positive")
	}
	return nil
}

// expand resolves ~ in the directory fields.
func (w Watch) expand() Watch {
	w.WatchDirectory = expandHome(w.WatchDirectory)
	w.RepoDirectory = expandHome(w.RepoDirectory)
	return w
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}
