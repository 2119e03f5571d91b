package dotwatch

import (
	"path/filepath"
	"strings"
)

// gitMetadataNames are files git writes next to or inside .git that must
// never trigger a commit cycle.
var gitMetadataNames = map[string]struct{}{
	"COMMIT_EDITMSG":   {},
	"ORIG_HEAD":        {},
	"FETCH_HEAD":       {},
	"MERGE_HEAD":       {},
	"CHERRY_PICK_HEAD": {},
	"HEAD":             {},
	"index":            {},
}

var tempSuffixes = []string{".lock", ".tmp", ".swp", ".swo", "~", ".bak", ".orig", ".rej"}

// shouldExclude reports whether a change to path is noise: git internals,
// editor temp files, or anything matching a configured pattern.
func shouldExclude(path string, patterns []string) bool {
	name := filepath.Base(path)

	for _, pattern := range patterns {
		if strings.Contains(path, pattern) {
			return true
		}
	}

	for _, suffix := range tempSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}

	// Editor lock/backup conventions: emacs .#f/#f#, vim numeric temps.
	if strings.HasPrefix(name, ".#") || strings.HasPrefix(name, "#") || strings.HasSuffix(name, "#") {
		return true
	}
	if isAllDigits(name) {
		return true
	}

	if _, ok := gitMetadataNames[name]; ok {
		return true
	}

	for _, part := range strings.Split(path, string(filepath.Separator)) {
		if part == ".git" || strings.HasPrefix(part, ".git") && part != ".gitignore" && part != ".gitmodules" {
			return true
		}
	}

	return false
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
