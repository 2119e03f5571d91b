package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDotwatchCommandConfigFlag(t *testing.T) {
	t.Parallel()

	cmd := createDotwatchCommand()

	flag := cmd.Flags().Lookup("config")
	require.NotNil(t, flag, "expected config flag to exist")
	assert.Empty(t, flag.DefValue, "empty default resolves to the XDG config path at runtime")
}
