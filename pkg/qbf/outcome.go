// Package qbf implements the symbolic machinery of spec.md §4.2/§4.3: the
// tagging algebra's QForm-level renaming, flatten/prenex normalization,
// Tseitin CNF + QDIMACS emission, and the QbfSolver oracle the classic
// fixpoint solver (pkg/game/classic) queries.
package qbf

// Outcome is the oracle's three-valued satisfiability answer (spec.md
// §4.3's "returns Sat | Unsat | Unknown"). It is distinct from
// synthresult.Verdict: Outcome answers "is this formula satisfiable",
// Verdict answers "does a winning strategy exist" — callers translate
// between the two at the solver layer.
type Outcome int

const (
	Unknown Outcome = iota
	Sat
	Unsat
)

func (o Outcome) String() string {
	switch o {
	case Sat:
		return "Sat"
	case Unsat:
		return "Unsat"
	default:
		return "Unknown"
	}
}
