package prop

import (
	"sort"
	"sync"
)

// Prop is an opaque proposition handle. Two Props are equal (in the Go
// `==` sense) iff they were interned from equal Names by the same Context —
// callers never construct a Prop directly. The zero Prop is invalid and
// never returned by a Context.
type Prop struct {
	id  int64
	ctx *Context
}

// ID returns a process-local, Context-scoped integer identifying this
// proposition. Stable for the lifetime of the Context, otherwise
// meaningless (do not persist it, do not compare IDs across Contexts).
func (p Prop) ID() int64 { return p.id }

// Valid reports whether p was actually produced by a Context.
func (p Prop) Valid() bool { return p.ctx != nil }

// Name returns the Name this proposition was interned from.
func (p Prop) Name() Name {
	if p.ctx == nil {
		return Name{}
	}
	return p.ctx.nameOf(p)
}

// String renders the proposition's Name.
func (p Prop) String() string { return p.Name().String() }

// Context is the process-local (but never process-global — spec.md §9
// explicitly calls out avoiding a global alphabet) interning table for
// Props, plus the fresh-serial counter. A Context is safe for concurrent
// read-only use once names stop being interned (spec.md §5); interning
// itself is serialized by mu the same way the teacher's Var/Substitution
// guard their maps with a sync.RWMutex.
//
// byName is keyed by the Name's canonical String() rather than by the Name
// value: a wrapped Name holds a pointer to its inner Name, so two equal
// Names built by separate Primed/Stepped/Starred calls are not == in Go.
type Context struct {
	mu        sync.RWMutex
	byName    map[string]Prop
	byID      map[int64]Name
	nextID    int64
	nextFresh int64
}

// NewContext creates an empty interning table.
func NewContext() *Context {
	return &Context{
		byName: make(map[string]Prop),
		byID:   make(map[int64]Name),
	}
}

// Intern returns the Prop for n, creating and caching one if this is the
// first time n has been seen. Equal Names always produce the same handle
// (spec.md §3).
func (c *Context) Intern(n Name) Prop {
	key := n.String()
	c.mu.RLock()
	if p, ok := c.byName[key]; ok {
		c.mu.RUnlock()
		return p
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.byName[key]; ok {
		return p
	}
	id := c.nextID
	c.nextID++
	p := Prop{id: id, ctx: c}
	c.byName[key] = p
	c.byID[id] = n
	return p
}

// FreshProp mints a brand-new proposition tagged with a monotonically
// increasing serial (spec.md §4.2's `fresh` generator); two calls with the
// same base always yield distinct propositions because the serial is
// never reused.
func (c *Context) FreshProp(base string) Prop {
	c.mu.Lock()
	serial := c.nextFresh
	c.nextFresh++
	c.mu.Unlock()
	return c.Intern(Fresh(base, serial))
}

// Plain interns a plain proposition by string name. Convenience wrapper
// around Intern(Plain(s)).
func (c *Context) Plain(s string) Prop { return c.Intern(Plain(s)) }

// Primed, Stepped, Starred apply the tagging algebra (spec.md §4.2) and
// intern the result.
func (c *Context) Primed(p Prop) Prop          { return c.Intern(Primed(p.Name())) }
func (c *Context) Stepped(p Prop, k int) Prop  { return c.Intern(Stepped(p.Name(), k)) }
func (c *Context) Starred(p Prop) Prop         { return c.Intern(Starred(p.Name())) }
func (c *Context) Untag(p Prop) Prop           { return c.Intern(p.Name().Untag()) }

func (c *Context) nameOf(p Prop) Name {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.byID[p.id]
}

// SortedByName returns props sorted by their canonical textual key,
// freezing a deterministic iteration order across runs on the same input
// (spec.md §9 / §8 property 1).
func SortedByName(props []Prop) []Prop {
	out := make([]Prop, len(props))
	copy(out, props)
	sort.Slice(out, func(i, j int) bool {
		return namesLess(out[i].Name(), out[j].Name())
	})
	return out
}

// Set is a small ordered-insert set of Props keyed by ID, used throughout
// the encoder to collect vars/inputs/outputs without depending on Go map
// iteration order (spec.md §9's "nondeterministic iteration over hashed
// sets" pitfall).
type Set struct {
	order []Prop
	have  map[int64]bool
}

// NewSet creates an empty Set.
func NewSet() *Set { return &Set{have: make(map[int64]bool)} }

// Add inserts p if not already present; returns whether it was added.
func (s *Set) Add(p Prop) bool {
	if s.have[p.id] {
		return false
	}
	s.have[p.id] = true
	s.order = append(s.order, p)
	return true
}

// Contains reports whether p is in the set.
func (s *Set) Contains(p Prop) bool { return s.have[p.id] }

// Slice returns the elements in insertion order.
func (s *Set) Slice() []Prop {
	out := make([]Prop, len(s.order))
	copy(out, s.order)
	return out
}

// Sorted returns the elements sorted by canonical textual key.
func (s *Set) Sorted() []Prop { return SortedByName(s.order) }

// Len reports the number of elements.
func (s *Set) Len() int { return len(s.order) }
