// Package scratch manages the fixed-name handoff files the source/header
// switcher shares with downstream consumers (editor keybindings read the
// result path back). Files are overwritten on every invocation with no
// locking: last writer wins, matching single-user usage.
package scratch

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const (
	fileName   = "switchsourceheader_file"
	dirName    = "switchsourceheader_dir"
	resultName = "switchsourceheader_result"
)

// Store writes and reads the switcher handoff files in a fixed directory.
type Store struct {
	fs  afero.Fs
	dir string
}

// New creates a store rooted at dir (normally the system temp directory).
func New(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir}
}

// FilePath returns the scratch path holding the current file argument.
func (s *Store) FilePath() string { return filepath.Join(s.dir, fileName) }

// DirPath returns the scratch path holding the directory argument.
func (s *Store) DirPath() string { return filepath.Join(s.dir, dirName) }

// ResultPath returns the scratch path holding the computed counterpart path.
func (s *Store) ResultPath() string { return filepath.Join(s.dir, resultName) }

// WriteInputs records both arguments verbatim, empty strings included.
func (s *Store) WriteInputs(file, dir string) error {
	if err := s.write(s.FilePath(), file); err != nil {
		return err
	}
	return s.write(s.DirPath(), dir)
}

// WriteResult records the switcher's output verbatim.
func (s *Store) WriteResult(result string) error {
	return s.write(s.ResultPath(), result)
}

// ReadInputs returns the recorded file and directory arguments, trimmed of
// trailing whitespace the way the downstream consumer reads them.
func (s *Store) ReadInputs() (file, dir string, err error) {
	file, err = s.read(s.FilePath())
	if err != nil {
		return "", "", err
	}
	dir, err = s.read(s.DirPath())
	if err != nil {
		return "", "", err
	}
	return file, dir, nil
}

func (s *Store) write(path, content string) error {
	if err := afero.WriteFile(s.fs, path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write scratch file %s: %w", path, err)
	}
	return nil
}

func (s *Store) read(path string) (string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read scratch file %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}
