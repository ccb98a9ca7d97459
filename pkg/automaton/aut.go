package automaton

import (
	"fmt"

	"github.com/ravelin-labs/pltlsynth/pkg/formula"
	"github.com/ravelin-labs/pltlsynth/pkg/prop"
	"github.com/ravelin-labs/pltlsynth/pkg/synthresult"
)

// Aut is the symbolic deterministic automaton of spec.md §3: a triple
// (init, trans, objective) over state variables Vars, built from inputs,
// outputs, and one proposition per grounded temporal subterm.
type Aut struct {
	Kind      Kind // F (reachability) or G (safety) — the objective's fixpoint polarity
	Inputs    []prop.Prop
	Outputs   []prop.Prop
	Vars      []prop.Prop // deterministic order: sorted by canonical lifted-formula key
	Init      formula.BForm
	Trans     formula.QForm
	// Defs maps each state variable's id to its own defining formula over
	// inputs/outputs/vars (the right-hand side of Trans's
	// primed(x) ↔ snf(...) conjunct for x) — the per-variable compose
	// vector entry pkg/game/bdd's Pre operator substitutes for primed(x).
	Defs      map[int64]formula.BForm
	Objective formula.BForm

	// StartingPlayer records who moves first, which the BDD solver's Pre
	// projection policy (spec.md §4.5) depends on. The QBF-fixpoint
	// solver doesn't need it — its ∃outputs'.∀inputs'.∀primed(vars)' shape
	// is fixed regardless of who moves first in the underlying game, since
	// it's a one-step unfold of a fixpoint rather than a move order.
	StartingPlayer Player

	ctx *prop.Context
}

// Player is who moves first in the BDD attractor game (spec.md §4.5).
type Player int

const (
	// Agent moves first: Pre projects with ∃outputs.∀inputs.
	Agent Player = iota
	// Environment moves first: Pre projects with ∀inputs.∃outputs.
	Environment
)

// Context returns the proposition interning table the automaton's
// propositions were minted from.
func (a *Aut) Context() *prop.Context { return a.ctx }

// Validate checks the three inclusion invariants of spec.md §3/§8
// property 3:
//
//	props(Init) ⊆ Vars
//	props(Trans) ⊆ Vars ∪ primed(Vars) ∪ Inputs ∪ Outputs
//	props(Objective) ⊆ Vars
func (a *Aut) Validate() error {
	vars := toSet(a.Vars)

	for _, p := range a.Init.Props() {
		if !vars.Contains(p) {
			return fmt.Errorf("%w: init mentions %s, which is not a state variable", synthresult.ErrUnreachable, p)
		}
	}
	for _, p := range a.Objective.Props() {
		if !vars.Contains(p) {
			return fmt.Errorf("%w: objective mentions %s, which is not a state variable", synthresult.ErrUnreachable, p)
		}
	}

	allowed := prop.NewSet()
	for _, p := range a.Vars {
		allowed.Add(p)
		allowed.Add(a.ctx.Primed(p))
	}
	for _, p := range a.Inputs {
		allowed.Add(p)
	}
	for _, p := range a.Outputs {
		allowed.Add(p)
	}
	for _, p := range a.Trans.Props() {
		if !allowed.Contains(p) {
			return fmt.Errorf("%w: trans mentions %s, which is outside vars/primed(vars)/inputs/outputs", synthresult.ErrUnreachable, p)
		}
	}
	return nil
}

// PrimedVars returns primed(Vars) in the same order as Vars.
func (a *Aut) PrimedVars() []prop.Prop {
	out := make([]prop.Prop, len(a.Vars))
	for i, v := range a.Vars {
		out[i] = a.ctx.Primed(v)
	}
	return out
}

func (a *Aut) String() string {
	return fmt.Sprintf("Aut{vars=%d, inputs=%d, outputs=%d}", len(a.Vars), len(a.Inputs), len(a.Outputs))
}
