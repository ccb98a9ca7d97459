package qbf

import (
	"github.com/ravelin-labs/pltlsynth/pkg/formula"
	"github.com/ravelin-labs/pltlsynth/pkg/prop"
)

// SubstituteConst replaces every atom in f naming a proposition present
// in assign by the literal True()/False() it maps to, leaving every other
// atom untouched. Used by the enumeration oracle (oracle.go) to
// instantiate a quantifier block one assignment at a time.
func SubstituteConst(f formula.QForm, assign map[int64]bool) formula.QForm {
	switch {
	case f.IsFalse():
		return formula.FalseQ()
	case f.IsTrue():
		return formula.TrueQ()
	case f.IsAtom():
		if v, ok := assign[f.Atom().ID()]; ok {
			if v {
				return formula.TrueQ()
			}
			return formula.FalseQ()
		}
		return f
	case f.IsNot():
		return formula.NotQ(SubstituteConst(f.Operand(), assign))
	case f.IsAnd():
		return formula.AndQ(SubstituteConst(f.Left(), assign), SubstituteConst(f.Right(), assign))
	case f.IsOr():
		return formula.OrQ(SubstituteConst(f.Left(), assign), SubstituteConst(f.Right(), assign))
	case f.IsImplies():
		return formula.ImpliesQ(SubstituteConst(f.Left(), assign), SubstituteConst(f.Right(), assign))
	case f.IsIff():
		return formula.IffQ(SubstituteConst(f.Left(), assign), SubstituteConst(f.Right(), assign))
	case f.IsExists():
		return formula.Exists(f.Bound(), SubstituteConst(f.Body(), assign))
	case f.IsForall():
		return formula.Forall(f.Bound(), SubstituteConst(f.Body(), assign))
	default:
		panic("qbf: SubstituteConst encountered an unrecognized node kind")
	}
}

// assignments enumerates every total boolean assignment to vars, in
// ascending bitmask order, as assign-maps keyed by proposition id.
func assignments(vars []prop.Prop) []map[int64]bool {
	n := len(vars)
	total := 1 << uint(n)
	out := make([]map[int64]bool, total)
	for mask := 0; mask < total; mask++ {
		m := make(map[int64]bool, n)
		for i, v := range vars {
			m[v.ID()] = mask&(1<<uint(i)) != 0
		}
		out[mask] = m
	}
	return out
}
