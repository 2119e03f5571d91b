package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenzin/deskctl/internal/prompt"
)

type queuePrompter struct {
	answers []string
}

func (q *queuePrompter) Prompt(string) (string, error) {
	if len(q.answers) == 0 {
		return "", nil
	}
	answer := q.answers[0]
	q.answers = q.answers[1:]
	return answer, nil
}

func (*queuePrompter) Close() error { return nil }

func seedDownloads(t *testing.T, fs afero.Fs, dir string) {
	t.Helper()

	files := []string{"report.pdf", "report(1).pdf", "photo(2).jpg", "notes.txt"}
	for _, name := range files {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, name), []byte(name), 0o644))
	}
}

func runCleanCommand(t *testing.T, fs afero.Fs, prompter prompt.Prompter, args ...string) string {
	t.Helper()

	cmd := newCleanCommand(fs, func() prompt.Prompter { return prompter })

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestCleanRemovesDuplicates(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	seedDownloads(t, fs, "/downloads")

	out := runCleanCommand(t, fs, nil, "/downloads")

	assert.Contains(t, out, "report(1).pdf")
	assert.Contains(t, out, "removed 1 of 1 duplicates")

	gone, err := afero.Exists(fs, "/downloads/report(1).pdf")
	require.NoError(t, err)
	assert.False(t, gone, "duplicate should be removed")

	// photo(2).jpg has no original, notes.txt is not a duplicate
	for _, name := range []string{"report.pdf", "photo(2).jpg", "notes.txt"} {
		exists, err := afero.Exists(fs, filepath.Join("/downloads", name))
		require.NoError(t, err)
		assert.True(t, exists, "%s should survive", name)
	}
}

func TestCleanDryRunKeepsFiles(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	seedDownloads(t, fs, "/downloads")

	out := runCleanCommand(t, fs, nil, "--dry-run", "/downloads")

	assert.Contains(t, out, "would remove")

	exists, err := afero.Exists(fs, "/downloads/report(1).pdf")
	require.NoError(t, err)
	assert.True(t, exists, "dry run must not remove anything")
}

func TestCleanInteractiveDecline(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	seedDownloads(t, fs, "/downloads")

	out := runCleanCommand(t, fs, &queuePrompter{answers: []string{"n"}}, "--interactive", "/downloads")

	assert.Contains(t, out, "removed 0 of 1 duplicates")

	exists, err := afero.Exists(fs, "/downloads/report(1).pdf")
	require.NoError(t, err)
	assert.True(t, exists, "declined duplicate should survive")
}

func TestCleanInteractiveAccept(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	seedDownloads(t, fs, "/downloads")

	out := runCleanCommand(t, fs, &queuePrompter{answers: []string{"y"}}, "--interactive", "/downloads")

	assert.Contains(t, out, "removed 1 of 1 duplicates")
}

func TestCleanEmptyDirectory(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/downloads", 0o755))

	out := runCleanCommand(t, fs, nil, "/downloads")

	assert.Contains(t, out, "no duplicates found")
}
