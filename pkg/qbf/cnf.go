package qbf

import (
	"fmt"

	"github.com/ravelin-labs/pltlsynth/pkg/formula"
	"github.com/ravelin-labs/pltlsynth/pkg/prop"
)

// BlockKind distinguishes an existential from a universal quantifier
// block in a prenex QDIMACS-style formula.
type BlockKind int

const (
	BlockExists BlockKind = iota
	BlockForall
)

// Block is one quantifier block: a kind and the (already-numbered)
// variable indices it binds, in prenex order.
type Block struct {
	Kind BlockKind
	Vars []int
}

// CNF is a fully numbered, prenex-quantified CNF formula ready for
// QDIMACS emission (spec.md §4.3/§6).
type CNF struct {
	NumVars int
	Blocks  []Block
	Clauses [][]int
}

// indexer assigns QDIMACS variable numbers 1..N, first to the
// already-bound quantifier variables in prenex order, then to any
// proposition seen for the first time in the matrix (free variables and
// Tseitin's own gate variables), which are appended as a trailing
// innermost existential block per spec.md §4.3.
type indexer struct {
	next    int
	idOf    map[int64]int
	trailer []int
}

func newIndexer() *indexer {
	return &indexer{next: 1, idOf: make(map[int64]int)}
}

func (ix *indexer) bind(p prop.Prop) int {
	if n, ok := ix.idOf[p.ID()]; ok {
		return n
	}
	n := ix.next
	ix.next++
	ix.idOf[p.ID()] = n
	return n
}

// of returns the index for a proposition, minting a trailing-block slot
// if this is the first time it's referenced anywhere (a free variable or
// a Tseitin gate).
func (ix *indexer) of(p prop.Prop) int {
	if n, ok := ix.idOf[p.ID()]; ok {
		return n
	}
	n := ix.next
	ix.next++
	ix.idOf[p.ID()] = n
	ix.trailer = append(ix.trailer, n)
	return n
}

// fresh mints a brand-new Tseitin gate index with no backing proposition.
func (ix *indexer) fresh() int {
	n := ix.next
	ix.next++
	ix.trailer = append(ix.trailer, n)
	return n
}

// ToCNF converts a Prenex-normalized, Flattened QForm into a CNF via
// Tseitin transformation of the quantifier-free matrix (spec.md §4.3).
// assertTrue, when true, adds a unit clause asserting the formula holds,
// as cmd/pltlsynth's clausify command does for its QDIMACS output.
func ToCNF(f formula.QForm, assertTrue bool) (*CNF, error) {
	ix := newIndexer()
	var blocks []Block
	matrix := f
	for {
		switch {
		case matrix.IsExists():
			vars := make([]int, len(matrix.Bound()))
			for i, p := range matrix.Bound() {
				vars[i] = ix.bind(p)
			}
			blocks = append(blocks, Block{Kind: BlockExists, Vars: vars})
			matrix = matrix.Body()
		case matrix.IsForall():
			vars := make([]int, len(matrix.Bound()))
			for i, p := range matrix.Bound() {
				vars[i] = ix.bind(p)
			}
			blocks = append(blocks, Block{Kind: BlockForall, Vars: vars})
			matrix = matrix.Body()
		default:
			goto matrixDone
		}
	}
matrixDone:
	// matrix has had every leading quantifier stripped above, so AsBForm
	// is guaranteed not to panic here.
	root, clauses, err := tseitin(matrix.AsBForm(), ix)
	if err != nil {
		return nil, err
	}
	if assertTrue {
		clauses = append(clauses, []int{root})
	}
	if len(ix.trailer) > 0 {
		blocks = append(blocks, Block{Kind: BlockExists, Vars: append([]int(nil), ix.trailer...)})
	}
	return &CNF{NumVars: ix.next - 1, Blocks: blocks, Clauses: clauses}, nil
}

// tseitin converts a quantifier-free BForm into an equisatisfiable CNF,
// introducing one gate variable per internal node (the classic Tseitin
// transform) and returns the literal for the root gate.
func tseitin(f formula.BForm, ix *indexer) (int, [][]int, error) {
	switch {
	case f.IsFalse():
		g := ix.fresh()
		return g, [][]int{{-g}}, nil
	case f.IsTrue():
		g := ix.fresh()
		return g, [][]int{{g}}, nil
	case f.IsAtom():
		return ix.of(f.Atom()), nil, nil
	case f.IsNot():
		a, cl, err := tseitin(f.Operand(), ix)
		if err != nil {
			return 0, nil, err
		}
		g := ix.fresh()
		// g <-> -a
		cl = append(cl, []int{-g, -a}, []int{g, a})
		return g, cl, nil
	case f.IsAnd():
		a, clA, err := tseitin(f.Left(), ix)
		if err != nil {
			return 0, nil, err
		}
		b, clB, err := tseitin(f.Right(), ix)
		if err != nil {
			return 0, nil, err
		}
		g := ix.fresh()
		cl := append(clA, clB...)
		// g <-> (a & b)
		cl = append(cl, []int{-g, a}, []int{-g, b}, []int{g, -a, -b})
		return g, cl, nil
	case f.IsOr():
		a, clA, err := tseitin(f.Left(), ix)
		if err != nil {
			return 0, nil, err
		}
		b, clB, err := tseitin(f.Right(), ix)
		if err != nil {
			return 0, nil, err
		}
		g := ix.fresh()
		cl := append(clA, clB...)
		// g <-> (a | b)
		cl = append(cl, []int{g, -a}, []int{g, -b}, []int{-g, a, b})
		return g, cl, nil
	case f.IsImplies():
		a, clA, err := tseitin(f.Left(), ix)
		if err != nil {
			return 0, nil, err
		}
		b, clB, err := tseitin(f.Right(), ix)
		if err != nil {
			return 0, nil, err
		}
		g := ix.fresh()
		cl := append(clA, clB...)
		// g <-> (-a | b)
		cl = append(cl, []int{g, a}, []int{g, -b}, []int{-g, -a, b})
		return g, cl, nil
	case f.IsIff():
		a, clA, err := tseitin(f.Left(), ix)
		if err != nil {
			return 0, nil, err
		}
		b, clB, err := tseitin(f.Right(), ix)
		if err != nil {
			return 0, nil, err
		}
		g := ix.fresh()
		cl := append(clA, clB...)
		// g <-> (a <-> b)
		cl = append(cl, []int{-g, -a, b}, []int{-g, a, -b}, []int{g, a, b}, []int{g, -a, -b})
		return g, cl, nil
	default:
		return 0, nil, fmt.Errorf("qbf: tseitin encountered an unrecognized node kind")
	}
}
