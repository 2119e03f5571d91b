// Package osrelease detects the running distribution from the os-release
// descriptor. The switcher uses this to pick its logging mode: inside an
// Ubuntu container there is no journal to log to.
package osrelease

import (
	"strings"

	"github.com/spf13/afero"
)

// Path is the standard os-release location.
const Path = "/etc/os-release"

// Contains reports whether the os-release descriptor at path mentions id,
// case-insensitively. A missing or unreadable descriptor matches nothing.
func Contains(fs afero.Fs, path, id string) bool {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(data)), strings.ToLower(id))
}
