// Package clean removes browser-style duplicate downloads: files named
// "report(1).pdf" whose original "report.pdf" still exists.
package clean

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/spf13/afero"
)

var dupPattern = regexp.MustCompile(`^(.+?)\((\d+)\)(\.[^.]+)?$`)

// Duplicate pairs a duplicate file with the original it shadows.
type Duplicate struct {
	Name     string
	Original string
}

// Cleaner scans directories for duplicate downloads.
type Cleaner struct {
	fs afero.Fs
}

// New creates a cleaner over the given filesystem.
func New(fs afero.Fs) *Cleaner {
	return &Cleaner{fs: fs}
}

// Scan returns every duplicate in dir whose original exists, sorted by
// name. Directories and files without the "(N)" marker are skipped.
func (c *Cleaner) Scan(dir string) ([]Duplicate, error) {
	entries, err := afero.ReadDir(c.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var dups []Duplicate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := dupPattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		original := m[1] + m[3]
		exists, err := afero.Exists(c.fs, filepath.Join(dir, original))
		if err != nil {
			return nil, fmt.Errorf("failed to check %s: %w", original, err)
		}
		if exists {
			dups = append(dups, Duplicate{Name: entry.Name(), Original: original})
		}
	}

	sort.Slice(dups, func(i, j int) bool { return dups[i].Name < dups[j].Name })
	return dups, nil
}

// Remove deletes the duplicate file from dir.
func (c *Cleaner) Remove(dir string, dup Duplicate) error {
	if err := c.fs.Remove(filepath.Join(dir, dup.Name)); err != nil {
		return fmt.Errorf("failed to remove %s: %w", dup.Name, err)
	}
	return nil
}
