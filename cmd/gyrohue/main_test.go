package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	root := newRootCmd()

	flag := root.Flags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)

	console, _, err := root.Find([]string{"console"})
	require.NoError(t, err)
	assert.Equal(t, "console", console.Name())
	assert.NotNil(t, console.Flags().Lookup("interval"))
}

func TestRootRejectsArguments(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"extra"})

	assert.Error(t, root.Execute())
}
