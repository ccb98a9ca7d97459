// Package formula implements the three formula trees of spec.md §3 — the
// propositional [BForm], the QBF-extended [QForm], and the pure-past
// [PForm] — plus the NNF rewrite of spec.md §4.1 step 1.
//
// All three trees share one underlying node representation (this file) so
// that the boolean connectives don't need to be implemented three times,
// while each exported type (BForm, QForm, PForm) only exposes the
// constructors valid for its own kind subset — matching spec.md §9's
// instruction to use tagged unions with exhaustive pattern matching rather
// than runtime reflection.
package formula

import "github.com/ravelin-labs/pltlsynth/pkg/prop"

// kind tags every node in every tree. Dispatch on kind is always an
// exhaustive switch; there is no reflection in this package.
type kind int

const (
	kFalse kind = iota
	kTrue
	kAtom
	kNot
	kAnd
	kOr
	kImplies
	kIff
	kExists
	kForall
	kYesterday
	kWeakYesterday
	kOnce
	kHistorically
	kSince
	kTriggered
)

// node is the shared tagged-union representation. Exactly one group of
// fields is meaningful per kind:
//
//	kAtom:                    atom
//	kNot, kYesterday,
//	  kWeakYesterday,
//	  kOnce, kHistorically:   a
//	kAnd, kOr, kImplies,
//	  kIff, kSince,
//	  kTriggered:             a, b
//	kExists, kForall:         quant, a
type node struct {
	k     kind
	atom  prop.Prop
	a, b  *node
	quant []prop.Prop
}

func leaf(k kind) *node { return &node{k: k} }

func unary(k kind, a *node) *node { return &node{k: k, a: a} }

func binary(k kind, a, b *node) *node { return &node{k: k, a: a, b: b} }

// String renders a fully-parenthesized textual form. Used both for
// debugging and, critically, as a stable cache/comparison key wherever a
// node needs a canonical textual identity (the encoder's ground/lift
// bidirectional map keys on it — see pkg/automaton).
func (n *node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.k {
	case kFalse:
		return "⊥"
	case kTrue:
		return "⊤"
	case kAtom:
		return n.atom.String()
	case kNot:
		return "¬" + n.a.String()
	case kAnd:
		return "(" + n.a.String() + " ∧ " + n.b.String() + ")"
	case kOr:
		return "(" + n.a.String() + " ∨ " + n.b.String() + ")"
	case kImplies:
		return "(" + n.a.String() + " → " + n.b.String() + ")"
	case kIff:
		return "(" + n.a.String() + " ↔ " + n.b.String() + ")"
	case kExists:
		return "∃" + quantString(n.quant) + "." + n.a.String()
	case kForall:
		return "∀" + quantString(n.quant) + "." + n.a.String()
	case kYesterday:
		return "Y(" + n.a.String() + ")"
	case kWeakYesterday:
		return "Z(" + n.a.String() + ")"
	case kOnce:
		return "O(" + n.a.String() + ")"
	case kHistorically:
		return "H(" + n.a.String() + ")"
	case kSince:
		return "(" + n.a.String() + " S " + n.b.String() + ")"
	case kTriggered:
		return "(" + n.a.String() + " T " + n.b.String() + ")"
	default:
		panic("formula: unreachable node kind")
	}
}

func quantString(q []prop.Prop) string {
	s := "["
	for i, p := range q {
		if i > 0 {
			s += ","
		}
		s += p.String()
	}
	return s + "]"
}
