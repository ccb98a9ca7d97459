// Package automaton implements the temporal encoder of spec.md §4.1: it
// turns a [Spec] (F(φ) or G(φ) over pure-past φ) into an [Aut] — a
// symbolic deterministic automaton over propositional state variables,
// ready for either game solver in pkg/game/classic or pkg/game/bdd.
package automaton

import (
	"fmt"

	"github.com/ravelin-labs/pltlsynth/pkg/formula"
	"github.com/ravelin-labs/pltlsynth/pkg/prop"
	"github.com/ravelin-labs/pltlsynth/pkg/synthresult"
)

// Kind distinguishes a reachability objective (F) from a safety objective
// (G), spec.md §3.
type Kind int

const (
	F Kind = iota
	G
)

func (k Kind) String() string {
	if k == F {
		return "F"
	}
	return "G"
}

// Spec is the input to the encoder (spec.md §3): a temporal type, a
// pure-past body, and a partition of the propositions it mentions into
// environment-controlled inputs and agent-controlled outputs.
type Spec struct {
	Kind    Kind
	Body    formula.PForm
	Inputs  []prop.Prop
	Outputs []prop.Prop
}

// Validate checks the Spec invariant of spec.md §3: every proposition in
// Body is in Inputs or Outputs, and Inputs/Outputs are disjoint.
func (s Spec) Validate() error {
	in := toSet(s.Inputs)
	out := toSet(s.Outputs)
	for _, p := range s.Inputs {
		if out.Contains(p) {
			return fmt.Errorf("%w: proposition %s is in both inputs and outputs", synthresult.ErrSpecShape, p)
		}
	}
	for _, p := range s.Body.Props() {
		if !in.Contains(p) && !out.Contains(p) {
			return fmt.Errorf("%w: proposition %s in body is neither an input nor an output", synthresult.ErrSpecShape, p)
		}
	}
	return nil
}

func toSet(ps []prop.Prop) *prop.Set {
	s := prop.NewSet()
	for _, p := range ps {
		s.Add(p)
	}
	return s
}
