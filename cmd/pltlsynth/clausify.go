package main

import (
	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
	"github.com/posener/complete"

	"github.com/ravelin-labs/pltlsynth/pkg/automaton"
	"github.com/ravelin-labs/pltlsynth/pkg/formula"
	"github.com/ravelin-labs/pltlsynth/pkg/parse"
	"github.com/ravelin-labs/pltlsynth/pkg/prop"
	"github.com/ravelin-labs/pltlsynth/pkg/qbf"
)

// clausifyCommand emits the QDIMACS text (spec.md §6) for the classic
// solver's first fixpoint-step query — ∃outputs.∀inputs.∀primed(vars).
// (trans → objective') — rather than deciding it in-process: this is the
// shape an external QBF solver (as opposed to pkg/qbf's own
// RecursiveSolver) would be handed.
type clausifyCommand struct {
	log hclog.Logger
	ui  cli.Ui
}

func clausifyCommandFactory(log hclog.Logger) cli.CommandFactory {
	return func() (cli.Command, error) {
		return &clausifyCommand{log: log, ui: newUi()}, nil
	}
}

func (c *clausifyCommand) Help() string {
	return `Usage: pltlsynth clausify <formula> [input_1 ... input_n]

  Compiles the given F(phi)/G(phi) specification to a symbolic
  automaton and prints the QDIMACS encoding of the classic algorithm's
  first fixpoint-step query, for consumption by an external QBF solver.
`
}

func (c *clausifyCommand) Synopsis() string {
	return "Emit the first fixpoint step as QDIMACS"
}

func (c *clausifyCommand) AutocompleteArgs() complete.Predictor {
	return complete.PredictAnything
}

func (c *clausifyCommand) AutocompleteFlags() complete.Flags {
	return complete.Flags{}
}

func (c *clausifyCommand) Run(args []string) int {
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

	query := firstStepQuery(ctx, aut)
	flattened := qbf.Flatten(ctx, query)
	prenexed := qbf.Prenex(flattened)
	cnf, err := qbf.ToCNF(prenexed, true)
	if err != nil {
		c.ui.Error(err.Error())
		return 1
	}

	c.ui.Output(qbf.Emit(cnf))
	return 0
}

// firstStepQuery mirrors pkg/game/classic's own step(objective) (spec.md
// §4.4): ∃outputs.∀inputs.∀primed(vars).(trans → objective').
func firstStepQuery(ctx *prop.Context, aut *automaton.Aut) formula.QForm {
	w := formula.Lift(aut.Objective)
	wPrimed := qbf.Rename(w, ctx.Primed)
	body := formula.ImpliesQ(aut.Trans, wPrimed)
	body = formula.Forall(aut.PrimedVars(), body)
	body = formula.Forall(aut.Inputs, body)
	return formula.Exists(aut.Outputs, body)
}
