package qbf

import (
	"github.com/ravelin-labs/pltlsynth/pkg/formula"
	"github.com/ravelin-labs/pltlsynth/pkg/prop"
)

// Solver is the external oracle of spec.md §4.3: it decides the
// satisfiability of a (possibly quantified) formula.
type Solver interface {
	Decide(f formula.QForm) Outcome
}

// RecursiveSolver answers a QBF query by recursing down the quantifier
// prefix — expanding each block into its (exponentially many, but in
// practice small: the classic solver quantifies the automaton's vars,
// outputs, inputs and primed(vars), and primed copies of them) constant
// assignments — and delegating the quantifier-free residue to a
// SATOracle. No pure-Go QBF solver exists in the retrieved pack or a
// maintained form in the wider ecosystem, so the quantifier-elimination
// logic is domain code; only its propositional SAT leaf is a real
// third-party dependency (gini).
//
// Decide only peels a *leading* quantifier block at each level: it
// assumes f is already in prenex form (every quantifier pulled to the
// front, no quantifier buried under a boolean connective). Callers must
// run qbf.Flatten then qbf.Prenex before handing a formula to Decide —
// pkg/game/classic's step builds W_k+1 by nesting a fresh quantifier
// block under OrQ/AndQ/ImpliesQ, so it is never already prenex.
type RecursiveSolver struct {
	sat *SATOracle
}

func NewRecursiveSolver(sat *SATOracle) *RecursiveSolver {
	if sat == nil {
		sat = NewSATOracle()
	}
	return &RecursiveSolver{sat: sat}
}

func (s *RecursiveSolver) Decide(f formula.QForm) Outcome {
	switch {
	case f.IsExists():
		return s.decideBlock(f.Bound(), f.Body(), true)
	case f.IsForall():
		return s.decideBlock(f.Bound(), f.Body(), false)
	default:
		return s.sat.IsSat(f.AsBForm())
	}
}

// decideBlock instantiates every assignment to a quantifier block in
// turn, short-circuiting as soon as the block's quantifier is decided:
// one Sat residue settles an Exists block, one Unsat residue settles a
// Forall block.
func (s *RecursiveSolver) decideBlock(vars []prop.Prop, body formula.QForm, existential bool) Outcome {
	for _, assign := range assignments(vars) {
		inst := SubstituteConst(body, assign)
		outcome := s.Decide(inst)
		if outcome == Unknown {
			return Unknown
		}
		if existential && outcome == Sat {
			return Sat
		}
		if !existential && outcome == Unsat {
			return Unsat
		}
	}
	if existential {
		return Unsat
	}
	return Sat
}
