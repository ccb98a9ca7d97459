package qbf

import (
	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"

	"github.com/ravelin-labs/pltlsynth/pkg/formula"
)

// SATOracle is the propositional-SAT leaf of the QBF oracle (spec.md
// §4.3's "external oracle"): it Tseitin-converts a quantifier-free BForm
// and hands the clauses to a real CDCL solver rather than hand-rolling
// one, the same way the teacher delegates the hard combinatorial core of
// a search to a well-tested external routine instead of inlining it.
type SATOracle struct{}

func NewSATOracle() *SATOracle { return &SATOracle{} }

// IsSat reports whether f is satisfiable.
func (o *SATOracle) IsSat(f formula.BForm) Outcome {
	ix := newIndexer()
	root, clauses, err := tseitin(f, ix)
	if err != nil {
		return Unknown
	}
	clauses = append(clauses, []int{root})
	return solveClauses(clauses)
}

func solveClauses(clauses [][]int) Outcome {
	g := gini.New()
	for _, cl := range clauses {
		for _, lit := range cl {
			g.Add(z.Dimacs2Lit(lit))
		}
		g.Add(0)
	}
	switch g.Solve() {
	case 1:
		return Sat
	case -1:
		return Unsat
	default:
		return Unknown
	}
}
