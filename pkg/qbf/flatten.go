package qbf

import (
	"github.com/ravelin-labs/pltlsynth/pkg/formula"
	"github.com/ravelin-labs/pltlsynth/pkg/prop"
)

// Flatten alpha-renames quantifier-bound variables that shadow an outer
// binding, using ctx's fresh generator, so prenex can later assume every
// bound variable's scope is unique and freely pull quantifiers past
// sibling subformulas without capturing a shadowed name (spec.md §4.3).
func Flatten(ctx *prop.Context, f formula.QForm) formula.QForm {
	return flatten1(ctx, f, map[int64]prop.Prop{})
}

// bound maps an in-scope original proposition id to the fresh prop it was
// renamed to (or to itself, if this is its first binding).
func flatten1(ctx *prop.Context, f formula.QForm, bound map[int64]prop.Prop) formula.QForm {
	switch {
	case f.IsFalse():
		return formula.FalseQ()
	case f.IsTrue():
		return formula.TrueQ()
	case f.IsAtom():
		p := f.Atom()
		if repl, ok := bound[p.ID()]; ok {
			return formula.AtomQ(repl)
		}
		return formula.AtomQ(p)
	case f.IsNot():
		return formula.NotQ(flatten1(ctx, f.Operand(), bound))
	case f.IsAnd():
		return formula.AndQ(flatten1(ctx, f.Left(), bound), flatten1(ctx, f.Right(), bound))
	case f.IsOr():
		return formula.OrQ(flatten1(ctx, f.Left(), bound), flatten1(ctx, f.Right(), bound))
	case f.IsImplies():
		return formula.ImpliesQ(flatten1(ctx, f.Left(), bound), flatten1(ctx, f.Right(), bound))
	case f.IsIff():
		return formula.IffQ(flatten1(ctx, f.Left(), bound), flatten1(ctx, f.Right(), bound))
	case f.IsExists():
		q, inner := rebind(ctx, f.Bound(), bound)
		return formula.Exists(q, flatten1(ctx, f.Body(), inner))
	case f.IsForall():
		q, inner := rebind(ctx, f.Bound(), bound)
		return formula.Forall(q, flatten1(ctx, f.Body(), inner))
	default:
		panic("qbf: Flatten encountered an unrecognized node kind")
	}
}

// rebind extends bound with a fresh alpha-variant for every name in q that
// is already in scope (already present in bound, or bound to itself by an
// enclosing quantifier on the same name), leaving names seen for the
// first time untouched.
func rebind(ctx *prop.Context, q []prop.Prop, bound map[int64]prop.Prop) ([]prop.Prop, map[int64]prop.Prop) {
	inner := make(map[int64]prop.Prop, len(bound)+len(q))
	for k, v := range bound {
		inner[k] = v
	}
	seenBefore := make(map[int64]bool, len(q))
	for id := range bound {
		seenBefore[id] = true
	}
	out := make([]prop.Prop, len(q))
	for i, p := range q {
		if seenBefore[p.ID()] {
			fresh := ctx.FreshProp(p.Name().Base().String())
			inner[p.ID()] = fresh
			out[i] = fresh
		} else {
			inner[p.ID()] = p
			out[i] = p
		}
	}
	return out, inner
}
