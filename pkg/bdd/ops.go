package bdd

import "github.com/ravelin-labs/pltlsynth/pkg/prop"

// Not, And, Or, Ite are the boolean connectives, each a thin wrapper
// around the canonical if-then-else operator.
func (m *Manager) Not(f DD) DD { return m.Ite(f, m.False(), m.True()) }

func (m *Manager) And(f, g DD) DD { return m.Ite(f, g, m.False()) }

func (m *Manager) Or(f, g DD) DD { return m.Ite(f, m.True(), g) }

// Ite computes if-then-else(f, g, h): the standard ROBDD apply algorithm,
// memoized per (f,g,h) triple, from which every other boolean operator is
// derived (spec.md §9's "oracle injection... eval, is_sat, is_valid" list
// maps onto this plus the helpers below).
func (m *Manager) Ite(f, g, h DD) DD {
	return DD{id: m.ite(f.id, g.id, h.id), mgr: m}
}

func (m *Manager) ite(f, g, h id) id {
	switch {
	case f == trueID:
		return g
	case f == falseID:
		return h
	case g == h:
		return g
	case g == trueID && h == falseID:
		return f
	}

	key := iteKey{f, g, h}
	m.mu.Lock()
	if cached, ok := m.iteCache[key]; ok {
		m.mu.Unlock()
		return cached
	}
	m.mu.Unlock()

	top := m.topLevel(f, g, h)
	fLo, fHi := m.cofactor(f, top)
	gLo, gHi := m.cofactor(g, top)
	hLo, hHi := m.cofactor(h, top)

	lo := m.ite(fLo, gLo, hLo)
	hi := m.ite(fHi, gHi, hHi)
	result := m.mk(top, lo, hi)

	m.mu.Lock()
	m.iteCache[key] = result
	m.mu.Unlock()
	return result
}

func (m *Manager) level(i id) int {
	if m.isTerminal(i) {
		return len(m.propAt) // sorts after every real variable
	}
	return m.nodeAt(i).level
}

func (m *Manager) topLevel(f, g, h id) int {
	top := m.level(f)
	if l := m.level(g); l < top {
		top = l
	}
	if l := m.level(h); l < top {
		top = l
	}
	return top
}

// cofactor returns (lo, hi) restricting i at level: if i doesn't branch
// on level, both cofactors are i itself.
func (m *Manager) cofactor(i id, level int) (id, id) {
	if m.isTerminal(i) || m.nodeAt(i).level != level {
		return i, i
	}
	n := m.nodeAt(i)
	return n.lo, n.hi
}

// Restrict substitutes a fixed boolean value for p throughout f.
func (m *Manager) Restrict(f DD, p prop.Prop, value bool) DD {
	lvl, ok := m.levelOf[p.ID()]
	if !ok {
		panic("bdd: Restrict on a variable outside this manager's order")
	}
	return DD{id: m.restrict(f.id, lvl, value), mgr: m}
}

func (m *Manager) restrict(f id, level int, value bool) id {
	if m.isTerminal(f) {
		return f
	}
	n := m.nodeAt(f)
	switch {
	case n.level == level:
		if value {
			return n.hi
		}
		return n.lo
	case n.level > level:
		// f doesn't depend on the variable at level on this branch.
		return f
	default:
		lo := m.restrict(n.lo, level, value)
		hi := m.restrict(n.hi, level, value)
		return m.mk(n.level, lo, hi)
	}
}

// ExistAbstract, ForallAbstract project vars out of f (spec.md §4.5's
// `QI`): ∃x.f = f[x:=0] ∨ f[x:=1]; ∀x.f = f[x:=0] ∧ f[x:=1], applied one
// variable at a time.
func (m *Manager) ExistAbstract(vars []prop.Prop, f DD) DD {
	return m.abstract(vars, f, true)
}

func (m *Manager) ForallAbstract(vars []prop.Prop, f DD) DD {
	return m.abstract(vars, f, false)
}

func (m *Manager) abstract(vars []prop.Prop, f DD, existential bool) DD {
	cur := f.id
	for _, p := range vars {
		lvl, ok := m.levelOf[p.ID()]
		if !ok {
			panic("bdd: abstraction variable outside this manager's order")
		}
		lo := m.restrict(cur, lvl, false)
		hi := m.restrict(cur, lvl, true)
		if existential {
			cur = m.ite(lo, trueID, hi) // lo ∨ hi
		} else {
			cur = m.ite(lo, hi, falseID) // lo ∧ hi
		}
	}
	return DD{id: cur, mgr: m}
}

// Compose substitutes, for every proposition p in sub, the diagram
// sub[p] wherever f branches on p — the "compose vector" of spec.md
// §4.5 (each state variable's transition diagram τᵢ substituted for the
// primed copy xᵢ', used to build Pre without an explicit primed
// existential).
func (m *Manager) Compose(f DD, sub map[prop.Prop]DD) DD {
	byLevel := make(map[int]id, len(sub))
	for p, d := range sub {
		lvl, ok := m.levelOf[p.ID()]
		if !ok {
			panic("bdd: Compose target variable outside this manager's order")
		}
		byLevel[lvl] = d.id
	}
	return DD{id: m.compose(f.id, byLevel), mgr: m}
}

func (m *Manager) compose(f id, sub map[int]id) id {
	if m.isTerminal(f) {
		return f
	}
	n := m.nodeAt(f)
	lo := m.compose(n.lo, sub)
	hi := m.compose(n.hi, sub)
	if repl, ok := sub[n.level]; ok {
		return m.ite(repl, hi, lo)
	}
	return m.mk(n.level, lo, hi)
}

// IsSat, IsValid, Equal, Value expose the tri-valued oracle surface
// spec.md §9 asks for ("eval, is_sat, is_valid... model").
func (m *Manager) IsSat(f DD) bool   { return f.id != falseID }
func (m *Manager) IsValid(f DD) bool { return f.id == trueID }

// Equal is reference equality in this canonical manager, which is exactly
// semantic equivalence (spec.md §4.5: "diagram equality is reference
// equality in a canonical manager").
func (m *Manager) Equal(f, g DD) bool { return f.id == g.id }

// Value reports the constant a diagram reduces to, if any.
func (m *Manager) Value(f DD) (value, ok bool) {
	switch f.id {
	case trueID:
		return true, true
	case falseID:
		return false, true
	default:
		return false, false
	}
}

// AnySat returns one satisfying assignment (a map from proposition id to
// the value taken on one path to ⊤; registered variables absent from the
// map are unconstrained on that path, so reading them as false still
// satisfies f), and false if f is unsatisfiable. Used by the win-test / model recovery
// steps of pkg/game/bdd.
func (m *Manager) AnySat(f DD) (map[int64]bool, bool) {
	if f.id == falseID {
		return nil, false
	}
	out := make(map[int64]bool)
	cur := f.id
	for !m.isTerminal(cur) {
		n := m.nodeAt(cur)
		p := m.propAt[n.level]
		if n.hi != falseID {
			out[p.ID()] = true
			cur = n.hi
		} else {
			out[p.ID()] = false
			cur = n.lo
		}
	}
	return out, true
}
