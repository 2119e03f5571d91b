package execx

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenzin/deskctl/internal/testutil"
)

func TestFakeRunnerRecordsCalls(t *testing.T) {
	testutil.InitTestLogger(t)
	t.Parallel()

	runner := NewFakeRunner()

	_, err := runner.Output(context.Background(), "tmux", "has-session", "-t", "pgadmin")
	require.NoError(t, err)

	err = runner.Run(context.Background(), "playerctl", "--all-players", "pause")
	require.NoError(t, err)

	lines := runner.CallLines()
	require.Len(t, lines, 2)
	assert.Equal(t, "tmux has-session -t pgadmin", lines[0])
	assert.Equal(t, "playerctl --all-players pause", lines[1])
}

func TestFakeRunnerScriptedOutput(t *testing.T) {
	t.Parallel()

	runner := NewFakeRunner()
	runner.Respond("git rev-parse --is-inside-work-tree", []byte("true\n"))

	out, err := runner.Output(context.Background(), "git", "rev-parse", "--is-inside-work-tree")
	require.NoError(t, err)
	assert.Equal(t, "true\n", string(out))
}

func TestFakeRunnerScriptedError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("no server running")
	runner := NewFakeRunner()
	runner.Fail("tmux has-session -t pgadmin", wantErr)

	err := runner.Run(context.Background(), "tmux", "has-session", "-t", "pgadmin")
	assert.ErrorIs(t, err, wantErr)
}

func TestOSRunnerOutput(t *testing.T) {
	testutil.InitTestLogger(t)
	t.Parallel()

	runner := NewOSRunner()
	out, err := runner.Output(context.Background(), "sh", "-c", "printf hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(out))
}

func TestOSRunnerCommandNotFound(t *testing.T) {
	t.Parallel()

	runner := NewOSRunner()
	_, err := runner.Output(context.Background(), "deskctl-no-such-binary")
	assert.Error(t, err)
}
