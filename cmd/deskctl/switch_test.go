package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenzin/deskctl/internal/scratch"
	"github.com/tenzin/deskctl/internal/storage"
)

// isolateSwitchDirs points the scratch and data directories at per-test
// locations so invocations do not touch the real home directory.
func isolateSwitchDirs(t *testing.T) {
	t.Helper()

	t.Setenv("TMPDIR", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func runSwitchCommand(t *testing.T, args ...string) string {
	t.Helper()

	cmd := createSwitchCommand()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute())
	return buf.String()
}

func readScratch(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSwitchFindsHeader(t *testing.T) {
	isolateSwitchDirs(t)

	project := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(project, "src"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(project, "include"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(project, "src", "util.c"), []byte("int x;"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(project, "include", "util.h"), []byte("int x;"), 0o644))

	out := runSwitchCommand(t, "src/util.c", project)

	want := project + "/include/util.h\n"
	assert.Equal(t, want, out)

	store := scratch.New(afero.NewOsFs(), storage.New(afero.NewOsFs()).ScratchDir())
	assert.Equal(t, "src/util.c", readScratch(t, store.FilePath()))
	assert.Equal(t, project, readScratch(t, store.DirPath()))
	assert.Equal(t, project+"/include/util.h", readScratch(t, store.ResultPath()))
}

func TestSwitchEmptyArgumentsRecorded(t *testing.T) {
	isolateSwitchDirs(t)

	out := runSwitchCommand(t)
	assert.Equal(t, "\n", out, "matching failure still prints the empty result")

	store := scratch.New(afero.NewOsFs(), storage.New(afero.NewOsFs()).ScratchDir())
	assert.Empty(t, readScratch(t, store.FilePath()))
	assert.Empty(t, readScratch(t, store.DirPath()))
	assert.Empty(t, readScratch(t, store.ResultPath()))
}

func TestSwitchOverwritesPreviousInvocation(t *testing.T) {
	isolateSwitchDirs(t)

	project := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(project, "a.c"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(project, "a.h"), nil, 0o644))

	runSwitchCommand(t, "a.c", project)
	runSwitchCommand(t)

	store := scratch.New(afero.NewOsFs(), storage.New(afero.NewOsFs()).ScratchDir())
	assert.Empty(t, readScratch(t, store.FilePath()), "scratch files reflect the latest invocation")
	assert.Empty(t, readScratch(t, store.ResultPath()))
}
