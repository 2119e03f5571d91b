package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenzin/deskctl/internal/execx"
)

const kittyListing = `[{"tabs":[{"windows":[{"id":1,"columns":210},{"id":3,"columns":100}]}]}]`

func runTreeCommand(t *testing.T, runner *execx.FakeRunner) error {
	t.Helper()

	cmd := newTreeCommand(runner)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	return cmd.Execute()
}

func TestTreeResizesToTargetWidth(t *testing.T) {
	t.Setenv("KITTY_WINDOW_ID", "3")

	runner := execx.NewFakeRunner()
	runner.Respond("kitten @ ls", []byte(kittyListing))

	require.NoError(t, runTreeCommand(t, runner))

	lines := runner.CallLines()
	assert.Contains(t, lines, "yazi", "file browser should run before any resize")
	assert.Contains(t, lines, "kitten @ resize-window --axis horizontal --increment -75")
}

func TestTreeOverridesBrowserConfig(t *testing.T) {
	t.Setenv("KITTY_WINDOW_ID", "3")

	runner := execx.NewFakeRunner()
	runner.Respond("kitten @ ls", []byte(kittyListing))

	require.NoError(t, runTreeCommand(t, runner))

	var envs []string
	for _, call := range runner.Calls() {
		if call.Name == "yazi" {
			envs = call.Env
		}
	}
	found := false
	for _, kv := range envs {
		if strings.HasPrefix(kv, "YAZI_CONFIG_HOME=") {
			found = true
		}
	}
	assert.True(t, found, "yazi should run with an alternate config profile")
}

func TestTreeFailsWithoutWindowID(t *testing.T) {
	t.Setenv("KITTY_WINDOW_ID", "")

	err := runTreeCommand(t, execx.NewFakeRunner())
	assert.Error(t, err)
}

func TestTreeFailsWhenWindowMissing(t *testing.T) {
	t.Setenv("KITTY_WINDOW_ID", "9")

	runner := execx.NewFakeRunner()
	runner.Respond("kitten @ ls", []byte(kittyListing))

	err := runTreeCommand(t, runner)
	assert.Error(t, err)
}
