// Package headermatch finds the header that belongs to a source file (or
// the other way around) by walking a project tree and picking the
// counterpart-extension file whose path looks most like the current one.
package headermatch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	dmp "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/afero"
	"github.com/tenzin/deskctl/internal/logging"
)

var (
	// ErrNotSourceFile means the file is not a .c/.h or .cpp/.hpp file.
	ErrNotSourceFile = errors.New("not a c/c++ source or header file")
	// ErrNoCandidates means no file with the counterpart extension exists.
	ErrNoCandidates = errors.New("no counterpart candidates found")
)

// Matcher locates source/header counterparts under a directory.
type Matcher struct {
	fs afero.Fs
}

// New creates a matcher that walks the given filesystem.
func New(fsys afero.Fs) *Matcher {
	return &Matcher{fs: fsys}
}

// Match returns the absolute path of the best counterpart for file, which
// is given relative to dir. The counterpart extension is derived from the
// file: .c<->.h and .cpp<->.hpp.
func (m *Matcher) Match(ctx context.Context, dir, file string) (string, error) {
	log := logging.Get(ctx)

	if dir == "" {
		return "", errors.New("directory argument is empty")
	}
	if isDir, err := afero.IsDir(m.fs, dir); err != nil || !isDir {
		return "", fmt.Errorf("not a valid directory: %s", dir)
	}
	if file == "" {
		return "", errors.New("file argument is empty")
	}
	if exists, err := afero.Exists(m.fs, filepath.Join(dir, file)); err != nil || !exists {
		return "", fmt.Errorf("not a valid file under %s: %s", dir, file)
	}

	newExt, err := counterpartExt(file)
	if err != nil {
		return "", err
	}

	candidates, err := m.collect(dir, newExt)
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}

	current := strings.TrimSuffix(file, filepath.Ext(file))
	best := ""
	bestScore := -1.0
	for _, candidate := range candidates {
		score := similarity(current, candidate)
		log.Debug().Str("candidate", candidate).Float64("score", score).Msg("scored candidate")
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}

	result := dir + "/" + best + newExt
	log.Debug().Str("result", result).Float64("score", bestScore).Msg("selected counterpart")
	return result, nil
}

// counterpartExt maps the file's extension to the one being searched for.
func counterpartExt(file string) (string, error) {
	switch filepath.Ext(file) {
	case ".c":
		return ".h", nil
	case ".h":
		return ".c", nil
	case ".cpp":
		return ".hpp", nil
	case ".hpp":
		return ".cpp", nil
	default:
		return "", ErrNotSourceFile
	}
}

// collect returns extension-stripped paths, relative to dir, of every file
// under dir ending in ext.
func (m *Matcher) collect(dir, ext string) ([]string, error) {
	var out []string
	err := afero.Walk(m.fs, dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ext) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return fmt.Errorf("failed to relativize %s: %w", path, err)
		}
		out = append(out, strings.TrimSuffix(rel, ext))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	return out, nil
}

// similarity scores two paths in [0,1]: twice the matched character count
// over the total length, the classic sequence-matcher ratio.
func similarity(a, b string) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1
	}
	differ := dmp.New()
	matched := 0
	for _, diff := range differ.DiffMain(a, b, false) {
		if diff.Type == dmp.DiffEqual {
			matched += len(diff.Text)
		}
	}
	return 2 * float64(matched) / float64(total)
}
