package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUICmd_ShortDescription(t *testing.T) {
	assert.Equal(t, "Launch the interactive application wizard", tuiCmd.Short)
}

func TestTUICmd_LongDescription(t *testing.T) {
	assert.Contains(t, tuiCmd.Long, "interactive terminal wizard")
	assert.Contains(t, tuiCmd.Long, "Controls:")
}

func TestTUICmd_HelpOutput(t *testing.T) {
	t.Cleanup(resetCLI)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"tui", "--help"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "interactive terminal wizard")
	assert.Contains(t, output, "Ctrl+R")
}

func TestTUICmd_NotATerminal(t *testing.T) {
	setupServices(t)
	original := isTerminal
	isTerminal = func() bool { return false }
	defer func() { isTerminal = original }()

	_, err := execute(t, "tui")

	assert.ErrorIs(t, err, ErrNotTerminal)
}

func TestTUICmd_MissingServices(t *testing.T) {
	t.Cleanup(resetCLI)
	original := isTerminal
	isTerminal = func() bool { return true }
	defer func() { isTerminal = original }()

	_, err := execute(t, "tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create TUI")
}
