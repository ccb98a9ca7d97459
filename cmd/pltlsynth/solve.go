package main

import (
	"fmt"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
	"github.com/posener/complete"

	"github.com/ravelin-labs/pltlsynth/pkg/automaton"
	bddgame "github.com/ravelin-labs/pltlsynth/pkg/game/bdd"
	"github.com/ravelin-labs/pltlsynth/pkg/game/classic"
	"github.com/ravelin-labs/pltlsynth/pkg/game/novel"
	"github.com/ravelin-labs/pltlsynth/pkg/parse"
	"github.com/ravelin-labs/pltlsynth/pkg/prop"
	"github.com/ravelin-labs/pltlsynth/pkg/synthresult"
)

// solver is the common shape of spec.md §2's two (plus the placeholder
// third) game solvers, letting solveCommand dispatch on algorithm name
// without caring which package backs it.
type solver interface {
	Solve(aut *automaton.Aut) (synthresult.Verdict, error)
}

// solveCommand implements spec.md §6's first CLI shape:
//
//	<prog> <classic|novel|bdd> <formula> [input_1 … input_n]
type solveCommand struct {
	algorithm string
	log       hclog.Logger
	ui        cli.Ui
}

func solveCommandFactory(algorithm string, log hclog.Logger) cli.CommandFactory {
	return func() (cli.Command, error) {
		return &solveCommand{algorithm: algorithm, log: log, ui: newUi()}, nil
	}
}

func (c *solveCommand) Help() string {
	return fmt.Sprintf(`Usage: pltlsynth %s <formula> [input_1 ... input_n]

  Decides realizability of an F(phi)/G(phi) pure-past temporal
  specification using the %s algorithm. Propositions named after the
  formula are declared inputs (environment-controlled); every other
  proposition mentioned in phi is inferred as an output
  (agent-controlled).

  Prints exactly one of REALIZABLE, UNREALIZABLE, or UNKNOWN to stdout.
`, c.algorithm, c.algorithm)
}

func (c *solveCommand) Synopsis() string {
	return fmt.Sprintf("Decide realizability with the %s algorithm", c.algorithm)
}

func (c *solveCommand) AutocompleteArgs() complete.Predictor {
	return complete.PredictAnything
}

func (c *solveCommand) AutocompleteFlags() complete.Flags {
	return complete.Flags{}
}

func (c *solveCommand) Run(args []string) int {
	if c.log == nil {
		c.log = hclog.NewNullLogger()
	}
	if len(args) < 1 {
		c.ui.Error("pltlsynth: missing formula argument")
		return 1
	}
	formulaSrc, declaredInputs := args[0], args[1:]

	ctx := prop.NewContext()
	kind, body, err := parse.TopLevel(ctx, formulaSrc)
	if err != nil {
		c.ui.Error(err.Error())
		return 1
	}
	spec := parse.BuildSpec(ctx, kind, body, declaredInputs)
	if err := spec.Validate(); err != nil {
		c.ui.Error(err.Error())
		return 1
	}

	enc := automaton.NewEncoder(ctx, c.log)
	aut, err := enc.Encode(spec, automaton.Agent)
	if err != nil {
		c.ui.Error(err.Error())
		return 1
	}

	s, err := c.solver()
	if err != nil {
		c.ui.Error(err.Error())
		return 1
	}

	verdict, err := s.Solve(aut)
	if err != nil {
		c.log.Warn("solve returned an error; reporting UNKNOWN", "algorithm", c.algorithm, "error", err)
		c.ui.Output(synthresult.Unknown.String())
		return 0
	}

	c.ui.Output(verdict.String())
	return 0
}

func (c *solveCommand) solver() (solver, error) {
	switch c.algorithm {
	case "classic":
		return classic.NewSolver(nil, c.log), nil
	case "bdd":
		return bddgame.NewSolver(c.log), nil
	case "novel":
		return novel.NewSolver(c.log), nil
	default:
		return nil, fmt.Errorf("pltlsynth: unknown algorithm %q", c.algorithm)
	}
}
