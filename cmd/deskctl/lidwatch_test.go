package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenzin/deskctl/internal/lid"
)

func TestLidwatchCommandStateFlag(t *testing.T) {
	t.Parallel()

	cmd := createLidwatchCommand()

	flag := cmd.Flags().Lookup("state")
	require.NotNil(t, flag, "expected state flag to exist")
	assert.Equal(t, lid.DefaultStatePath, flag.DefValue)
}

func TestLidwatchCommandRejectsArguments(t *testing.T) {
	t.Parallel()

	cmd := createLidwatchCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"unexpected"})

	assert.Error(t, cmd.Execute())
}
