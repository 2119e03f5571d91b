// Package database persists the dotfile watcher's small bits of state in
// sqlite, currently the last remote head we notified about per branch, so
// a restart does not re-announce unchanged remotes.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

type Manager struct {
	db *sql.DB
}

func NewManager(ctx context.Context, dsn string) (*Manager, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to execute pragma %s: %w", pragma, err)
		}
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(time.Hour)

	manager := &Manager{db: db}
	if err := manager.runMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return manager, nil
}

func (m *Manager) Close() error {
	if m.db != nil {
		if err := m.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}

// RemoteHead returns the last recorded remote head for a repo/branch pair.
// The second return is false when nothing has been recorded yet.
func (m *Manager) RemoteHead(ctx context.Context, repo, branch string) (string, bool, error) {
	var sha string
	err := m.db.QueryRowContext(ctx,
		"SELECT sha FROM remote_heads WHERE repo = ? AND branch = ?",
		repo, branch).Scan(&sha)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query remote head: %w", err)
	}
	return sha, true, nil
}

// SetRemoteHead records the remote head for a repo/branch pair.
func (m *Manager) SetRemoteHead(ctx context.Context, repo, branch, sha string) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO remote_heads (repo, branch, sha, updated_at)
		VALUES (?, ?, ?, unixepoch())
		ON CONFLICT(repo, branch) DO UPDATE SET sha = excluded.sha, updated_at = excluded.updated_at`,
		repo, branch, sha)
	if err != nil {
		return fmt.Errorf("failed to record remote head: %w", err)
	}
	return nil
}
