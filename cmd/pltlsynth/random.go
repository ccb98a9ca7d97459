package main

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
	"github.com/posener/complete"

	"github.com/ravelin-labs/pltlsynth/pkg/randgen"
)

// randomCommand implements spec.md §6's second CLI shape:
//
//	<prog> random <n_formulas> <n_vars> <size> <seed>
type randomCommand struct {
	log hclog.Logger
	ui  cli.Ui
}

func randomCommandFactory(log hclog.Logger) cli.CommandFactory {
	return func() (cli.Command, error) {
		return &randomCommand{log: log, ui: newUi()}, nil
	}
}

func (c *randomCommand) Help() string {
	return `Usage: pltlsynth random <n_formulas> <n_vars> <size> <seed>

  Emits n_formulas lines of the form '<formula>' u0 u1 ... u_{k-1},
  each a seeded pseudo-random F(phi)/G(phi) pLTL formula of the
  requested size over propositions u0..u_{k-1} (inputs) and
  c0..c_{m-1} (outputs).
`
}

func (c *randomCommand) Synopsis() string {
	return "Generate seeded random pLTL benchmark formulas"
}

func (c *randomCommand) AutocompleteArgs() complete.Predictor {
	return complete.PredictAnything
}

func (c *randomCommand) AutocompleteFlags() complete.Flags {
	return complete.Flags{}
}

func (c *randomCommand) Run(args []string) int {
	if len(args) != 4 {
		c.ui.Error("pltlsynth: random requires exactly 4 arguments: n_formulas n_vars size seed")
		return 1
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		c.ui.Error(fmt.Sprintf("pltlsynth: n_formulas: %v", err))
		return 1
	}
	nvars, err := strconv.Atoi(args[1])
	if err != nil {
		c.ui.Error(fmt.Sprintf("pltlsynth: n_vars: %v", err))
		return 1
	}
	size, err := strconv.Atoi(args[2])
	if err != nil {
		c.ui.Error(fmt.Sprintf("pltlsynth: size: %v", err))
		return 1
	}
	seed, err := strconv.ParseInt(args[3], 10, 64)
	if err != nil {
		c.ui.Error(fmt.Sprintf("pltlsynth: seed: %v", err))
		return 1
	}

	for _, g := range randgen.New(n, nvars, size, seed) {
		c.ui.Output(g.String())
	}
	return 0
}
