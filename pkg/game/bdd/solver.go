// Package bdd implements the BDD attractor game solver of spec.md §4.5:
// a variable manager over inputs/outputs/vars, a Pre
// operator built from the automaton's compose vector, and the
// reachability/safety fixpoint loops.
package bdd

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/ravelin-labs/pltlsynth/pkg/automaton"
	"github.com/ravelin-labs/pltlsynth/pkg/bdd"
	"github.com/ravelin-labs/pltlsynth/pkg/prop"
	"github.com/ravelin-labs/pltlsynth/pkg/synthresult"
)

// maxIterations bounds the attractor loop the same way pkg/game/classic
// bounds its Kleene iteration: a finite state space guarantees
// convergence well inside this cap.
const maxIterations = 1 << 20

// Solver runs the BDD attractor algorithm, each call building its own
// decision-diagram manager (spec.md §5: "each solver owns its own DD
// manager... no cross-solver sharing is permitted").
type Solver struct {
	log hclog.Logger
}

func NewSolver(log hclog.Logger) *Solver {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Solver{log: log.Named("bdd")}
}

// game bundles the manager and compose vector every loop iteration needs,
// built once per Solve call.
type game struct {
	aut     *automaton.Aut
	mgr     *bdd.Manager
	compose map[prop.Prop]bdd.DD // x -> compiled tau_x(inputs, outputs, vars)
	init    bdd.DD
	obj     bdd.DD
}

func (s *Solver) newGame(aut *automaton.Aut) *game {
	// Defs are stated purely over inputs/outputs/vars (no primed names), so
	// unlike pkg/game/classic this manager never needs primed(vars) at all:
	// Pre substitutes each var's compose diagram directly, rather than
	// renaming and re-quantifying a primed copy.
	order := make([]prop.Prop, 0, len(aut.Inputs)+len(aut.Outputs)+len(aut.Vars))
	order = append(order, aut.Inputs...)
	order = append(order, aut.Outputs...)
	order = append(order, aut.Vars...)
	mgr := bdd.NewManager(order)

	compose := make(map[prop.Prop]bdd.DD, len(aut.Vars))
	for _, v := range aut.Vars {
		compose[v] = bdd.ToDDB(mgr, aut.Defs[v.ID()])
	}

	return &game{
		aut:     aut,
		mgr:     mgr,
		compose: compose,
		init:    bdd.ToDDB(mgr, aut.Init),
		obj:     bdd.ToDDB(mgr, aut.Objective),
	}
}

// pre computes the controllable predecessor of target (spec.md §4.5):
//
//	Pre(S) = QI( S[x := tau(x)] )
//
// target is a predicate over state variables (vars); substituting each x
// by its compose-vector diagram tau_x yields a predicate over
// inputs/outputs/vars — the set of (input, output, current-state)
// combinations whose successor state satisfies target. QI then projects
// out the non-state variables, per the starting player's policy.
func (g *game) pre(target bdd.DD) bdd.DD {
	substituted := g.mgr.Compose(target, g.compose)
	return g.quantifyIndependent(substituted)
}

// quantifyIndependent projects out inputs and outputs (spec.md §4.5's
// `QI`) in the order set by aut.StartingPlayer: ∃outputs.∀inputs when the
// agent moves first, ∀inputs.∃outputs when the environment moves first.
// The fixpoint loops below are shared by both starting players — see
// DESIGN.md for the resolution of this Open Question.
func (g *game) quantifyIndependent(f bdd.DD) bdd.DD {
	if g.aut.StartingPlayer == automaton.Environment {
		f = g.mgr.ExistAbstract(g.aut.Outputs, f)
		return g.mgr.ForallAbstract(g.aut.Inputs, f)
	}
	f = g.mgr.ForallAbstract(g.aut.Inputs, f)
	f = g.mgr.ExistAbstract(g.aut.Outputs, f)
	return f
}

// Solve decides realizability of aut's objective via the attractor
// fixpoint appropriate to its kind (spec.md §4.5).
func (s *Solver) Solve(aut *automaton.Aut) (synthresult.Verdict, error) {
	if err := aut.Validate(); err != nil {
		return synthresult.Unknown, err
	}
	g := s.newGame(aut)

	if aut.Kind == automaton.F {
		return g.reachability()
	}
	return g.safety()
}

// reachability implements spec.md §4.5's reachability loop (least
// fixpoint of S ∨ Pre(S) from the objective region).
func (g *game) reachability() (synthresult.Verdict, error) {
	sK := g.obj
	for k := 0; k < maxIterations; k++ {
		p := g.pre(sK)
		sNext := g.mgr.Or(sK, p)

		if g.satisfiesInit(sNext) {
			return synthresult.Realizable, nil
		}
		if g.mgr.Equal(sNext, sK) {
			return synthresult.Unrealizable, nil
		}
		sK = sNext
	}
	return synthresult.Unknown, fmt.Errorf("%w: BDD reachability loop did not converge within %d iterations", synthresult.ErrUnreachable, maxIterations)
}

// safety implements spec.md §4.5's safety loop (greatest fixpoint of
// S ∧ Pre(S) from the objective region).
func (g *game) safety() (synthresult.Verdict, error) {
	sK := g.obj
	for k := 0; k < maxIterations; k++ {
		p := g.pre(sK)
		sNext := g.mgr.And(sK, p)

		if !g.satisfiesInit(sNext) {
			return synthresult.Unrealizable, nil
		}
		if g.mgr.Equal(sNext, sK) {
			return synthresult.Realizable, nil
		}
		sK = sNext
	}
	return synthresult.Unknown, fmt.Errorf("%w: BDD safety loop did not converge within %d iterations", synthresult.ErrUnreachable, maxIterations)
}

// satisfiesInit reports whether the initial state (aut.Init) is
// contained in f: init ⊨ f.
func (g *game) satisfiesInit(f bdd.DD) bool {
	return g.mgr.IsValid(g.mgr.Or(g.mgr.Not(g.init), f))
}
