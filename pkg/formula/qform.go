package formula

import "github.com/ravelin-labs/pltlsynth/pkg/prop"

// QForm is BForm extended with quantifier nodes ∃Q.F and ∀Q.F, Q a finite
// ordered list of propositions (spec.md §3). Every BForm is trivially a
// QForm (they share the same underlying node representation); use Lift to
// convert explicitly at call sites so the type system still documents
// intent.
type QForm struct{ n *node }

// Lift embeds a BForm into the quantified formula language.
func Lift(f BForm) QForm { return QForm{f.n} }

// FalseQ, TrueQ, AtomQ, NotQ, AndQ, OrQ, ImpliesQ, IffQ mirror the BForm
// constructors at the QForm type.
func FalseQ() QForm                  { return QForm{leaf(kFalse)} }
func TrueQ() QForm                   { return QForm{leaf(kTrue)} }
func AtomQ(p prop.Prop) QForm        { return QForm{&node{k: kAtom, atom: p}} }
func NotQ(f QForm) QForm             { return QForm{unary(kNot, f.n)} }
func AndQ(a, b QForm) QForm          { return QForm{binary(kAnd, a.n, b.n)} }
func OrQ(a, b QForm) QForm           { return QForm{binary(kOr, a.n, b.n)} }
func ImpliesQ(a, b QForm) QForm      { return QForm{binary(kImplies, a.n, b.n)} }
func IffQ(a, b QForm) QForm          { return QForm{binary(kIff, a.n, b.n)} }

// AndAllQ folds with AndQ using ⊤ as the identity for an empty slice.
func AndAllQ(fs []QForm) QForm {
	acc := TrueQ()
	for _, f := range fs {
		acc = AndQ(acc, f)
	}
	return acc
}

// Exists, Forall build a quantifier node over an ordered, finite list of
// propositions. An empty Q is legal (a no-op quantifier) and arises
// naturally when prenexing formulas with no free variables left to bind.
func Exists(q []prop.Prop, f QForm) QForm {
	return QForm{&node{k: kExists, quant: append([]prop.Prop(nil), q...), a: f.n}}
}

func Forall(q []prop.Prop, f QForm) QForm {
	return QForm{&node{k: kForall, quant: append([]prop.Prop(nil), q...), a: f.n}}
}

func (f QForm) IsFalse() bool   { return f.n.k == kFalse }
func (f QForm) IsTrue() bool    { return f.n.k == kTrue }
func (f QForm) IsAtom() bool    { return f.n.k == kAtom }
func (f QForm) IsNot() bool     { return f.n.k == kNot }
func (f QForm) IsAnd() bool     { return f.n.k == kAnd }
func (f QForm) IsOr() bool      { return f.n.k == kOr }
func (f QForm) IsImplies() bool { return f.n.k == kImplies }
func (f QForm) IsIff() bool     { return f.n.k == kIff }
func (f QForm) IsExists() bool  { return f.n.k == kExists }
func (f QForm) IsForall() bool  { return f.n.k == kForall }

func (f QForm) Atom() prop.Prop  { return f.n.atom }
func (f QForm) Operand() QForm   { return QForm{f.n.a} }
func (f QForm) Left() QForm      { return QForm{f.n.a} }
func (f QForm) Right() QForm     { return QForm{f.n.b} }
func (f QForm) Bound() []prop.Prop {
	out := make([]prop.Prop, len(f.n.quant))
	copy(out, f.n.quant)
	return out
}
func (f QForm) Body() QForm { return QForm{f.n.a} }

// AsBForm downcasts a quantifier-free QForm back to a BForm. Panics if f
// still contains a quantifier node anywhere — callers should only call
// this after prenexing has been undone or on formulas known quantifier-free
// (e.g. the automaton's init/objective, which spec.md §3 guarantees are
// quantifier-free).
func (f QForm) AsBForm() BForm {
	if containsQuantifier(f.n) {
		panic("formula: AsBForm called on a formula containing a quantifier")
	}
	return BForm{f.n}
}

func containsQuantifier(n *node) bool {
	if n == nil {
		return false
	}
	switch n.k {
	case kExists, kForall:
		return true
	case kFalse, kTrue, kAtom:
		return false
	case kNot, kYesterday, kWeakYesterday, kOnce, kHistorically:
		return containsQuantifier(n.a)
	default:
		return containsQuantifier(n.a) || containsQuantifier(n.b)
	}
}

func (f QForm) String() string { return f.n.String() }

func (f QForm) Equal(other QForm) bool { return nodeEqual(f.n, other.n) }

// Props returns every free or bound proposition occurring in f (including
// quantified variables), in canonical sorted order.
func (f QForm) Props() []prop.Prop {
	set := prop.NewSet()
	collectProps(f.n, set)
	return set.Sorted()
}
