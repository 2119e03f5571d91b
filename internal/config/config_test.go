package config

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWatchMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadWatch(afero.NewMemMapFs(), "/etc/deskctl/dotwatch.yml")
	require.NoError(t, err)

	defaults := DefaultWatch().expand()
	assert.Equal(t, defaults, cfg)
	assert.Equal(t, time.Minute, cfg.CommitDelay)
	assert.True(t, cfg.AutoPush)
}

func TestLoadWatchOverrides(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	content := `
watch_directory: /srv/dotfiles
repo_directory: /srv/dotfiles
commit_delay: 30s
fetch_interval: 5m
auto_push: false
`
	require.NoError(t, afero.WriteFile(fs, "/cfg.yml", []byte(content), 0o644))

	cfg, err := LoadWatch(fs, "/cfg.yml")
	require.NoError(t, err)

	assert.Equal(t, "/srv/dotfiles", cfg.WatchDirectory)
	assert.Equal(t, 30*time.Second, cfg.CommitDelay)
	assert.Equal(t, 5*time.Minute, cfg.FetchInterval)
	assert.False(t, cfg.AutoPush)
	// Untouched fields keep their defaults.
	assert.True(t, cfg.EnableNotifications)
	assert.NotEmpty(t, cfg.ExcludedPatterns)
}

func TestLoadWatchInvalidYAML(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg.yml", []byte("commit_delay: ["), 0o644))

	_, err := LoadWatch(fs, "/cfg.yml")
	assert.Error(t, err)
}

func TestLoadWatchRejectsNonPositiveIntervals(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg.yml", []byte("commit_delay: 0s"), 0o644))

	_, err := LoadWatch(fs, "/cfg.yml")
	assert.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	t.Parallel()

	expanded := expandHome("~/.dotfiles")
	assert.NotContains(t, expanded, "~")

	assert.Equal(t, "/abs/path", expandHome("/abs/path"))
}
