package dotwatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldExclude(t *testing.T) {
	t.Parallel()

	patterns := []string{"__pycache__/", ".cache/"}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"plain dotfile", "vimrc", false},
		{"nested config", "nvim/init.lua", false},
		{"gitignore is tracked", ".gitignore", false},
		{"git internals", ".git/index", true},
		{"nested git dir", "modules/tool/.git/HEAD", true},
		{"vim swap", "nvim/.init.lua.swp", true},
		{"backup suffix", "bashrc~", true},
		{"lock file", "index.lock", true},
		{"emacs lock", ".#bashrc", true},
		{"numeric temp", "4913", true},
		{"configured pattern", "__pycache__/mod.pyc", true},
		{"configured dir pattern", ".cache/something", true},
		{"commit editmsg", "COMMIT_EDITMSG", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, shouldExclude(tt.path, patterns), "path %s", tt.path)
		})
	}
}
