package main

import (
	"strings"
	"testing"

	"github.com/hashicorp/cli"
	"github.com/stretchr/testify/require"
)

func TestRandomCommandEmitsOneLinePerFormula(t *testing.T) {
	ui := cli.NewMockUi()
	c := &randomCommand{ui: ui}

	status := c.Run([]string{"5", "3", "6", "42"})
	require.Equal(t, 0, status)

	lines := strings.Split(strings.TrimRight(ui.OutputWriter.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		require.True(t, strings.HasPrefix(line, "'"), "line %q should start with a quoted formula", line)
	}
}

func TestRandomCommandRejectsWrongArgCount(t *testing.T) {
	ui := cli.NewMockUi()
	c := &randomCommand{ui: ui}

	status := c.Run([]string{"5", "3"})
	require.Equal(t, 1, status)
	require.NotEmpty(t, ui.ErrorWriter.String())
}

func TestRandomCommandRejectsNonIntegerArg(t *testing.T) {
	ui := cli.NewMockUi()
	c := &randomCommand{ui: ui}

	status := c.Run([]string{"five", "3", "6", "42"})
	require.Equal(t, 1, status)
}
