package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandVersion(t *testing.T) {

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "smash version 1.0\n", out.String())

}

func TestRootCommandRejectsArguments(t *testing.T) {

	cmd := newRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"list"})

	assert.Error(t, cmd.Execute())

}

func TestRootCommandFlags(t *testing.T) {

	cmd := newRootCommand()

	require.NotNil(t, cmd.Flags().Lookup("config"))
	level := cmd.Flags().Lookup("log-level")
	require.NotNil(t, level)
	assert.Equal(t, "warn", level.DefValue)

}
