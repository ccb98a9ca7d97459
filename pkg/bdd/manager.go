// Package bdd implements a reduced, ordered binary decision diagram
// (ROBDD) engine: the decision-diagram oracle spec.md §1 treats as an
// external collaborator (CUDD, in the original). No maintained pure-Go
// BDD package exists anywhere in the retrieval pack or a well-known
// ecosystem equivalent to `gini` for SAT, so this package reimplements
// the oracle in-repo rather than importing or fabricating one — see
// DESIGN.md.
package bdd

import (
	"sync"

	"github.com/ravelin-labs/pltlsynth/pkg/prop"
)

// id is the manager-local identity of a node. 0 and 1 are the reserved
// terminal ids (false, true); every other id indexes into Manager.nodes.
type id uint64

const (
	falseID id = 0
	trueID  id = 1
)

// node is an internal decision node: branch on the variable at level,
// taking lo when that variable is false, hi when true. The terminals
// (falseID, trueID) are not stored as nodes; level() places them below
// every variable, at len(propAt).
type node struct {
	level int
	lo, hi id
}

// DD is an opaque, immutable handle to a diagram rooted at some node in a
// Manager — the BDD analogue of prop.Prop: two DDs compare equal (by id)
// iff they are semantically identical, because the manager is reduced
// and canonical (equal sub-diagrams are always shared).
type DD struct {
	id  id
	mgr *Manager
}

// ID exposes the manager-local identity, mainly for memoized traversals
// that need a map key (translate.go, the game solvers' fixpoint loops).
func (d DD) ID() uint64 { return uint64(d.id) }

func (d DD) String() string {
	if d.id == falseID {
		return "⊥"
	}
	if d.id == trueID {
		return "⊤"
	}
	return d.mgr.render(d.id)
}

// Manager owns one reduced decision-diagram universe: a unique table
// (structural hash-consing, the textbook ROBDD canonicity guarantee), an
// apply/ITE cache, and the variable-to-level assignment spec.md §4.5
// calls the "variable manager". Each solver (pkg/game/bdd) owns its own
// Manager — spec.md §5 forbids cross-solver sharing of oracle state.
type Manager struct {
	mu sync.Mutex

	nodes    []node               // nodes[id] for id >= 2; 0,1 are terminals
	unique   map[node]id          // structural hash-cons table
	iteCache map[iteKey]id        // memoized Ite(f,g,h) results

	levelOf map[int64]int // proposition id -> variable level (0 = topmost)
	propAt  []prop.Prop   // level -> proposition, inverse of levelOf
}

type iteKey struct{ f, g, h id }

// NewManager creates a Manager whose variable order is exactly order,
// topmost (level 0) first. Two Managers never share nodes; DD values
// from one are meaningless passed to another.
func NewManager(order []prop.Prop) *Manager {
	m := &Manager{
		unique:   make(map[node]id),
		iteCache: make(map[iteKey]id),
		levelOf:  make(map[int64]int, len(order)),
		propAt:   append([]prop.Prop(nil), order...),
	}
	for i, p := range order {
		m.levelOf[p.ID()] = i
	}
	return m
}

// False, True return the two terminal diagrams.
func (m *Manager) False() DD { return DD{id: falseID, mgr: m} }
func (m *Manager) True() DD  { return DD{id: trueID, mgr: m} }

// Var returns the diagram for a single proposition, branching on its
// assigned level. Panics if p was not part of the order NewManager was
// built with — the variable manager is fixed at construction time.
func (m *Manager) Var(p prop.Prop) DD {
	lvl, ok := m.levelOf[p.ID()]
	if !ok {
		panic("bdd: variable not registered with this manager's order")
	}
	return DD{id: m.mk(lvl, falseID, trueID), mgr: m}
}

// mk looks up (or creates) the canonical node for (level, lo, hi),
// applying the ROBDD reduction rule lo == hi immediately.
func (m *Manager) mk(level int, lo, hi id) id {
	if lo == hi {
		return lo
	}
	n := node{level: level, lo: lo, hi: hi}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.unique[n]; ok {
		return existing
	}
	newID := id(len(m.nodes) + 2)
	m.nodes = append(m.nodes, n)
	m.unique[n] = newID
	return newID
}

func (m *Manager) nodeAt(i id) node {
	return m.nodes[int(i)-2]
}

func (m *Manager) isTerminal(i id) bool { return i == falseID || i == trueID }

func (m *Manager) render(i id) string {
	if m.isTerminal(i) {
		return DD{id: i, mgr: m}.String()
	}
	n := m.nodeAt(i)
	p := m.propAt[n.level]
	return "ite(" + p.String() + "," + m.render(n.hi) + "," + m.render(n.lo) + ")"
}
