package bdd

import (
	"github.com/ravelin-labs/pltlsynth/pkg/formula"
	"github.com/ravelin-labs/pltlsynth/pkg/prop"
)

// ToDD compiles a QForm into a diagram (spec.md §4.6): quantifiers become
// iterated variable-at-a-time projections, conjunction/disjunction fold
// via the boolean monoid, everything else recurses structurally.
func ToDD(m *Manager, f formula.QForm) DD {
	switch {
	case f.IsFalse():
		return m.False()
	case f.IsTrue():
		return m.True()
	case f.IsAtom():
		return m.Var(f.Atom())
	case f.IsNot():
		return m.Not(ToDD(m, f.Operand()))
	case f.IsAnd():
		return m.And(ToDD(m, f.Left()), ToDD(m, f.Right()))
	case f.IsOr():
		return m.Or(ToDD(m, f.Left()), ToDD(m, f.Right()))
	case f.IsImplies():
		return m.Or(m.Not(ToDD(m, f.Left())), ToDD(m, f.Right()))
	case f.IsIff():
		l, r := ToDD(m, f.Left()), ToDD(m, f.Right())
		return m.Or(m.And(l, r), m.And(m.Not(l), m.Not(r)))
	case f.IsExists():
		return m.ExistAbstract(f.Bound(), ToDD(m, f.Body()))
	case f.IsForall():
		return m.ForallAbstract(f.Bound(), ToDD(m, f.Body()))
	default:
		panic("bdd: ToDD encountered an unrecognized node kind")
	}
}

// ToDDB is ToDD specialized to the quantifier-free BForm type.
func ToDDB(m *Manager, f formula.BForm) DD {
	return ToDD(m, formula.Lift(f))
}

// ToFormula decompiles a diagram back into a BForm via memoized recursion
// on node identity (spec.md §4.6): atoms map back to their propositions
// through the variable manager, decision nodes become disjunctions of
// `prime ∧ sub`, constants map to ⊤/⊥.
func ToFormula(m *Manager, f DD) formula.BForm {
	memo := make(map[id]formula.BForm)
	return toFormula1(m, f.id, memo)
}

func toFormula1(m *Manager, i id, memo map[id]formula.BForm) formula.BForm {
	if i == falseID {
		return formula.False()
	}
	if i == trueID {
		return formula.True()
	}
	if cached, ok := memo[i]; ok {
		return cached
	}
	n := m.nodeAt(i)
	p := m.propAt[n.level]
	lo := toFormula1(m, n.lo, memo)
	hi := toFormula1(m, n.hi, memo)
	atom := formula.AtomB(p)
	result := formula.Or(
		formula.And(atom, hi),
		formula.And(formula.Not(atom), lo),
	)
	memo[i] = result
	return result
}

// VarOrder returns the proposition-to-level assignment the manager was
// constructed with, in level order.
func (m *Manager) VarOrder() []prop.Prop {
	return append([]prop.Prop(nil), m.propAt...)
}
