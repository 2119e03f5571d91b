// Package scaffold creates the fixed directory skeleton for a new C project.
package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

var (
	dirs  = []string{"src", "include", "build"}
	files = []string{filepath.Join("src", "main.c"), "makefile"}
)

// Create lays out src/, include/ and build/ plus empty src/main.c and
// makefile under root. Existing directories and files are left untouched,
// so re-running on a scaffolded project is a no-op.
func Create(fs afero.Fs, root string) error {
	for _, dir := range dirs {
		if err := fs.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	for _, file := range files {
		path := filepath.Join(root, file)
		exists, err := afero.Exists(fs, path)
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", path, err)
		}
		if exists {
			continue
		}
		if err := afero.WriteFile(fs, path, []byte{}, 0o644); err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
	}

	return nil
}
