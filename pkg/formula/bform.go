package formula

import "github.com/ravelin-labs/pltlsynth/pkg/prop"

// BForm is the propositional formula tree of spec.md §3: a tree over
// {⊥, ⊤, proposition, ¬, ∧, ∨, →, ↔}. The zero BForm is invalid; use
// False()/True()/AtomB() etc. to build one.
type BForm struct{ n *node }

// False, True are the boolean constants.
func False() BForm { return BForm{leaf(kFalse)} }
func True() BForm  { return BForm{leaf(kTrue)} }

// AtomB lifts a proposition into a BForm leaf.
func AtomB(p prop.Prop) BForm { return BForm{&node{k: kAtom, atom: p}} }

// Not, And, Or, Implies, Iff build the corresponding connective.
func Not(f BForm) BForm          { return BForm{unary(kNot, f.n)} }
func And(a, b BForm) BForm       { return BForm{binary(kAnd, a.n, b.n)} }
func Or(a, b BForm) BForm        { return BForm{binary(kOr, a.n, b.n)} }
func Implies(a, b BForm) BForm   { return BForm{binary(kImplies, a.n, b.n)} }
func Iff(a, b BForm) BForm       { return BForm{binary(kIff, a.n, b.n)} }

// AndAll, OrAll fold a (possibly empty) slice with And/Or, using the
// respective identity element (⊤ for And, ⊥ for Or) for the empty case —
// the encoder's init assembly (spec.md §4.1 step 4) folds over vars with
// AndAll.
func AndAll(fs []BForm) BForm {
	acc := True()
	for _, f := range fs {
		acc = And(acc, f)
	}
	return acc
}

func OrAll(fs []BForm) BForm {
	acc := False()
	for _, f := range fs {
		acc = Or(acc, f)
	}
	return acc
}

// IsFalse, IsTrue, IsAtom, IsNot, IsAnd, IsOr, IsImplies, IsIff report the
// node's kind.
func (f BForm) IsFalse() bool    { return f.n.k == kFalse }
func (f BForm) IsTrue() bool     { return f.n.k == kTrue }
func (f BForm) IsAtom() bool     { return f.n.k == kAtom }
func (f BForm) IsNot() bool      { return f.n.k == kNot }
func (f BForm) IsAnd() bool      { return f.n.k == kAnd }
func (f BForm) IsOr() bool       { return f.n.k == kOr }
func (f BForm) IsImplies() bool  { return f.n.k == kImplies }
func (f BForm) IsIff() bool      { return f.n.k == kIff }

// Atom returns the proposition of an atom node; valid only if IsAtom().
func (f BForm) Atom() prop.Prop { return f.n.atom }

// Operand returns the single child of a Not node; valid only if IsNot().
func (f BForm) Operand() BForm { return BForm{f.n.a} }

// Left, Right return the children of a binary node (And/Or/Implies/Iff).
func (f BForm) Left() BForm  { return BForm{f.n.a} }
func (f BForm) Right() BForm { return BForm{f.n.b} }

// String renders a canonical textual form.
func (f BForm) String() string { return f.n.String() }

// Equal reports structural (not semantic) equality: same tree shape, same
// atoms. Two logically-equivalent-but-differently-shaped formulas are not
// Equal; callers wanting semantic equality should go through pkg/bdd.
func (f BForm) Equal(other BForm) bool { return nodeEqual(f.n, other.n) }

func nodeEqual(a, b *node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.k != b.k {
		return false
	}
	switch a.k {
	case kFalse, kTrue:
		return true
	case kAtom:
		return a.atom.ID() == b.atom.ID()
	case kNot, kYesterday, kWeakYesterday, kOnce, kHistorically:
		return nodeEqual(a.a, b.a)
	case kAnd, kOr, kImplies, kIff, kSince, kTriggered:
		return nodeEqual(a.a, b.a) && nodeEqual(a.b, b.b)
	case kExists, kForall:
		if len(a.quant) != len(b.quant) {
			return false
		}
		for i := range a.quant {
			if a.quant[i].ID() != b.quant[i].ID() {
				return false
			}
		}
		return nodeEqual(a.a, b.a)
	default:
		panic("formula: unreachable node kind")
	}
}

// Props returns every distinct proposition occurring in f, in canonical
// sorted order.
func (f BForm) Props() []prop.Prop {
	set := prop.NewSet()
	collectProps(f.n, set)
	return set.Sorted()
}

func collectProps(n *node, set *prop.Set) {
	if n == nil {
		return
	}
	switch n.k {
	case kFalse, kTrue:
	case kAtom:
		set.Add(n.atom)
	case kNot, kYesterday, kWeakYesterday, kOnce, kHistorically:
		collectProps(n.a, set)
	case kAnd, kOr, kImplies, kIff, kSince, kTriggered:
		collectProps(n.a, set)
		collectProps(n.b, set)
	case kExists, kForall:
		for _, p := range n.quant {
			set.Add(p)
		}
		collectProps(n.a, set)
	default:
		panic("formula: unreachable node kind")
	}
}
