package formula

import "github.com/ravelin-labs/pltlsynth/pkg/prop"

// PForm is BForm extended with the pure-past operators Y (yesterday), Z
// (weak yesterday), O (once), H (historically), S (since), T (triggered),
// per spec.md §3.
type PForm struct{ n *node }

func FalseP() PForm           { return PForm{leaf(kFalse)} }
func TrueP() PForm            { return PForm{leaf(kTrue)} }
func AtomP(p prop.Prop) PForm { return PForm{&node{k: kAtom, atom: p}} }
func NotP(f PForm) PForm      { return PForm{unary(kNot, f.n)} }
func AndP(a, b PForm) PForm   { return PForm{binary(kAnd, a.n, b.n)} }
func OrP(a, b PForm) PForm    { return PForm{binary(kOr, a.n, b.n)} }
func ImpliesP(a, b PForm) PForm { return PForm{binary(kImplies, a.n, b.n)} }
func IffP(a, b PForm) PForm   { return PForm{binary(kIff, a.n, b.n)} }

// Y, Z, O, H are the unary past operators; S, T the binary ones.
func Y(f PForm) PForm    { return PForm{unary(kYesterday, f.n)} }
func Z(f PForm) PForm    { return PForm{unary(kWeakYesterday, f.n)} }
func O(f PForm) PForm    { return PForm{unary(kOnce, f.n)} }
func H(f PForm) PForm    { return PForm{unary(kHistorically, f.n)} }
func S(a, b PForm) PForm { return PForm{binary(kSince, a.n, b.n)} }
func T(a, b PForm) PForm { return PForm{binary(kTriggered, a.n, b.n)} }

func (f PForm) IsFalse() bool         { return f.n.k == kFalse }
func (f PForm) IsTrue() bool          { return f.n.k == kTrue }
func (f PForm) IsAtom() bool          { return f.n.k == kAtom }
func (f PForm) IsNot() bool           { return f.n.k == kNot }
func (f PForm) IsAnd() bool           { return f.n.k == kAnd }
func (f PForm) IsOr() bool            { return f.n.k == kOr }
func (f PForm) IsImplies() bool       { return f.n.k == kImplies }
func (f PForm) IsIff() bool           { return f.n.k == kIff }
func (f PForm) IsYesterday() bool     { return f.n.k == kYesterday }
func (f PForm) IsWeakYesterday() bool { return f.n.k == kWeakYesterday }
func (f PForm) IsOnce() bool          { return f.n.k == kOnce }
func (f PForm) IsHistorically() bool  { return f.n.k == kHistorically }
func (f PForm) IsSince() bool         { return f.n.k == kSince }
func (f PForm) IsTriggered() bool     { return f.n.k == kTriggered }

func (f PForm) Atom() prop.Prop { return f.n.atom }
func (f PForm) Operand() PForm  { return PForm{f.n.a} }
func (f PForm) Left() PForm     { return PForm{f.n.a} }
func (f PForm) Right() PForm    { return PForm{f.n.b} }

func (f PForm) String() string { return f.n.String() }

func (f PForm) Equal(other PForm) bool { return nodeEqual(f.n, other.n) }

// Props returns every distinct proposition occurring in f, sorted
// canonically.
func (f PForm) Props() []prop.Prop {
	set := prop.NewSet()
	collectProps(f.n, set)
	return set.Sorted()
}
