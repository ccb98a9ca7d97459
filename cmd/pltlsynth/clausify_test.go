package main

import (
	"strings"
	"testing"

	"github.com/hashicorp/cli"
	"github.com/stretchr/testify/require"

	"github.com/ravelin-labs/pltlsynth/pkg/qbf"
)

func TestClausifyCommandEmitsValidQdimacs(t *testing.T) {
	ui := cli.NewMockUi()
	c := &clausifyCommand{ui: ui}

	status := c.Run([]string{"F(O(u0) & c0)", "u0"})
	require.Equal(t, 0, status)

	out := ui.OutputWriter.String()
	require.True(t, strings.HasPrefix(out, "p cnf "), "expected a QDIMACS header")

	cnf, err := qbf.Parse(out)
	require.NoError(t, err)
	require.NotEmpty(t, cnf.Clauses)
	require.NotEmpty(t, cnf.Blocks)
}

func TestClausifyCommandRejectsMissingFormula(t *testing.T) {
	ui := cli.NewMockUi()
	c := &clausifyCommand{ui: ui}

	status := c.Run(nil)
	require.Equal(t, 1, status)
}
