package scaffold

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLayout(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, Create(fs, "/proj"))

	for _, dir := range []string{"src", "include", "build"} {
		exists, err := afero.DirExists(fs, filepath.Join("/proj", dir))
		require.NoError(t, err)
		assert.True(t, exists, "expected directory %s", dir)
	}

	for _, file := range []string{"src/main.c", "makefile"} {
		data, err := afero.ReadFile(fs, filepath.Join("/proj", file))
		require.NoError(t, err, "expected file %s", file)
		assert.Empty(t, data, "seed file %s should be empty", file)
	}
}

func TestCreateIsIdempotent(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, Create(fs, "/proj"))

	// Simulate work done after scaffolding.
	mainPath := filepath.Join("/proj", "src", "main.c")
	require.NoError(t, afero.WriteFile(fs, mainPath, []byte("int main(void) { return 0; }\n"), 0o644))

	require.NoError(t, Create(fs, "/proj"))

	data, err := afero.ReadFile(fs, mainPath)
	require.NoError(t, err)
	assert.Equal(t, "int main(void) { return 0; }\n", string(data), "existing files must not be truncated")
}

func TestCreateLeavesUnrelatedFilesAlone(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proj/notes.txt", []byte("keep me"), 0o644))

	require.NoError(t, Create(fs, "/proj"))

	data, err := afero.ReadFile(fs, "/proj/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
}
