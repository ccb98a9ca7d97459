package qbf

import (
	"github.com/ravelin-labs/pltlsynth/pkg/formula"
	"github.com/ravelin-labs/pltlsynth/pkg/prop"
)

// Rename rewrites every proposition in f through fn, recursing into
// quantifiers by renaming the bound variable list element-wise (spec.md
// §4.2: "a rename on a QForm recurses into quantifiers by renaming the
// bound variable list element-wise"). fn must be a total function over
// the propositions f actually mentions; it is consulted at every atom and
// every quantifier binder.
func Rename(f formula.QForm, fn func(prop.Prop) prop.Prop) formula.QForm {
	switch {
	case f.IsFalse():
		return formula.FalseQ()
	case f.IsTrue():
		return formula.TrueQ()
	case f.IsAtom():
		return formula.AtomQ(fn(f.Atom()))
	case f.IsNot():
		return formula.NotQ(Rename(f.Operand(), fn))
	case f.IsAnd():
		return formula.AndQ(Rename(f.Left(), fn), Rename(f.Right(), fn))
	case f.IsOr():
		return formula.OrQ(Rename(f.Left(), fn), Rename(f.Right(), fn))
	case f.IsImplies():
		return formula.ImpliesQ(Rename(f.Left(), fn), Rename(f.Right(), fn))
	case f.IsIff():
		return formula.IffQ(Rename(f.Left(), fn), Rename(f.Right(), fn))
	case f.IsExists():
		return formula.Exists(renameList(f.Bound(), fn), Rename(f.Body(), fn))
	case f.IsForall():
		return formula.Forall(renameList(f.Bound(), fn), Rename(f.Body(), fn))
	default:
		panic("qbf: Rename encountered an unrecognized node kind")
	}
}

func renameList(ps []prop.Prop, fn func(prop.Prop) prop.Prop) []prop.Prop {
	out := make([]prop.Prop, len(ps))
	for i, p := range ps {
		out[i] = fn(p)
	}
	return out
}

// RenameB is Rename specialized to quantifier-free BForm.
func RenameB(f formula.BForm, fn func(prop.Prop) prop.Prop) formula.BForm {
	return Rename(formula.Lift(f), fn).AsBForm()
}

// Primed, Stepped, Starred apply the tagging algebra of spec.md §4.2 to
// every proposition in f via ctx's canonical tagging.
func Primed(ctx *prop.Context, f formula.QForm) formula.QForm {
	return Rename(f, ctx.Primed)
}

func Stepped(ctx *prop.Context, f formula.QForm, k int) formula.QForm {
	return Rename(f, func(p prop.Prop) prop.Prop { return ctx.Stepped(p, k) })
}

func Starred(ctx *prop.Context, f formula.QForm) formula.QForm {
	return Rename(f, ctx.Starred)
}

func Untag(ctx *prop.Context, f formula.QForm) formula.QForm {
	return Rename(f, ctx.Untag)
}
