// Package storage provides XDG-compliant storage path management for deskctl.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
)

const (
	// AppName is the application name used for XDG directory paths
	AppName = "deskctl"

	logFilename   = "deskctl.log"
	stateFilename = "state.db"
)

// Manager handles storage operations with filesystem abstraction
type Manager struct {
	fs afero.Fs
}

// New creates a new storage manager with the given filesystem
func New(fs afero.Fs) *Manager {
	return &Manager{fs: fs}
}

// GetDataDir returns the XDG data directory for deskctl, creating it if necessary
func (m *Manager) GetDataDir() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, AppName)
	err := m.fs.MkdirAll(dataDir, 0o750)
	if err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return dataDir, nil
}

// GetLogPath returns the full path to the deskctl log file
func (m *Manager) GetLogPath() (string, error) {
	dataDir, err := m.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, logFilename), nil
}

// GetStatePath returns the full path to the deskctl state database
func (m *Manager) GetStatePath() (string, error) {
	dataDir, err := m.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, stateFilename), nil
}

// GetConfigPath returns the path of a named config file under the XDG
// config directory. The file is not created.
func (*Manager) GetConfigPath(name string) string {
	return filepath.Join(xdg.ConfigHome, AppName, name)
}

// ScratchDir returns the directory for scratch handoff files. These live
// under the system temp directory on purpose: downstream consumers read
// them at fixed well-known paths.
func (*Manager) ScratchDir() string {
	return os.TempDir()
}
