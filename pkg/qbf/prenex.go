package qbf

import "github.com/ravelin-labs/pltlsynth/pkg/formula"

// Prenex pulls every quantifier in f outward, preserving semantics, per
// spec.md §4.3. It assumes f has already been passed through Flatten so
// that no bound variable shadows another — that guarantee is what makes
// pulling a quantifier past a sibling subformula (the Q ∩ free(G) = ∅
// side condition) sound without doing the occurs-check here.
func Prenex(f formula.QForm) formula.QForm {
	switch {
	case f.IsFalse(), f.IsTrue(), f.IsAtom():
		return f
	case f.IsNot():
		return pushNot(Prenex(f.Operand()))
	case f.IsAnd():
		return combine(Prenex(f.Left()), Prenex(f.Right()), formula.AndQ)
	case f.IsOr():
		return combine(Prenex(f.Left()), Prenex(f.Right()), formula.OrQ)
	case f.IsImplies():
		return combineImplies(Prenex(f.Left()), Prenex(f.Right()))
	case f.IsIff():
		// Desugar <-> to two implications, per spec.md §4.3.
		a, b := f.Left(), f.Right()
		return Prenex(formula.AndQ(formula.ImpliesQ(a, b), formula.ImpliesQ(b, a)))
	case f.IsExists():
		return formula.Exists(f.Bound(), Prenex(f.Body()))
	case f.IsForall():
		return formula.Forall(f.Bound(), Prenex(f.Body()))
	default:
		panic("qbf: Prenex encountered an unrecognized node kind")
	}
}

// pushNot implements ¬(∃Q.F) = ∀Q.¬F and its dual, descending through
// every quantifier already pulled to the front of an already-prenexed f.
func pushNot(f formula.QForm) formula.QForm {
	switch {
	case f.IsExists():
		return formula.Forall(f.Bound(), pushNot(f.Body()))
	case f.IsForall():
		return formula.Exists(f.Bound(), pushNot(f.Body()))
	default:
		return formula.NotQ(f)
	}
}

// combine merges the quantifier prefixes of two already-prenexed formulas
// under a quantifier-free binary connective, peeling one quantifier at a
// time off whichever side still has one.
func combine(l, r formula.QForm, op func(a, b formula.QForm) formula.QForm) formula.QForm {
	switch {
	case l.IsExists():
		return formula.Exists(l.Bound(), combine(l.Body(), r, op))
	case l.IsForall():
		return formula.Forall(l.Bound(), combine(l.Body(), r, op))
	case r.IsExists():
		return formula.Exists(r.Bound(), combine(l, r.Body(), op))
	case r.IsForall():
		return formula.Forall(r.Bound(), combine(l, r.Body(), op))
	default:
		return op(l, r)
	}
}

// combineImplies merges quantifier prefixes under ->, flipping the
// quantifier on the antecedent side per spec.md §4.3.
func combineImplies(l, r formula.QForm) formula.QForm {
	switch {
	case l.IsExists():
		return formula.Forall(l.Bound(), combineImplies(l.Body(), r))
	case l.IsForall():
		return formula.Exists(l.Bound(), combineImplies(l.Body(), r))
	case r.IsExists():
		return formula.Exists(r.Bound(), combineImplies(l, r.Body()))
	case r.IsForall():
		return formula.Forall(r.Bound(), combineImplies(l, r.Body()))
	default:
		return formula.ImpliesQ(l, r)
	}
}
