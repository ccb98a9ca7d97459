package prop

import "testing"

func TestTaggingIdempotence(t *testing.T) {
	t.Run("untag primed", func(t *testing.T) {
		base := Plain("p")
		if got := Primed(base).Untag(); got != base {
			t.Errorf("Untag(Primed(p)) = %v, want %v", got, base)
		}
	})

	t.Run("untag stepped", func(t *testing.T) {
		base := Plain("p")
		if got := Stepped(base, 3).Untag(); got != base {
			t.Errorf("Untag(Stepped(p,3)) = %v, want %v", got, base)
		}
	})

	t.Run("untag starred", func(t *testing.T) {
		base := Plain("p")
		if got := Starred(base).Untag(); got != base {
			t.Errorf("Untag(Starred(p)) = %v, want %v", got, base)
		}
	})

	t.Run("base unwinds every layer", func(t *testing.T) {
		base := Plain("p")
		wrapped := Starred(Stepped(Primed(base), 2))
		if got := wrapped.Base(); got != base {
			t.Errorf("Base() = %v, want %v", got, base)
		}
	})
}

func TestSteppedAbsorption(t *testing.T) {
	base := Plain("p")

	t.Run("stepped of stepped sums plus one", func(t *testing.T) {
		got := Stepped(Stepped(base, 2), 3)
		want := Stepped(base, 2+3+1)
		if got != want {
			t.Errorf("Stepped(Stepped(p,2),3) = %v, want %v", got, want)
		}
	})

	t.Run("stepped of primed shifts by one", func(t *testing.T) {
		got := Stepped(Primed(base), 4)
		want := Stepped(base, 5)
		if got != want {
			t.Errorf("Stepped(Primed(p),4) = %v, want %v", got, want)
		}
	})
}

func TestContextInterning(t *testing.T) {
	ctx := NewContext()

	t.Run("equal names produce the same handle", func(t *testing.T) {
		a := ctx.Plain("x")
		b := ctx.Plain("x")
		if a.ID() != b.ID() {
			t.Errorf("two interns of the same name produced different ids: %d vs %d", a.ID(), b.ID())
		}
	})

	t.Run("distinct names produce distinct handles", func(t *testing.T) {
		a := ctx.Plain("x")
		b := ctx.Plain("y")
		if a.ID() == b.ID() {
			t.Error("distinct names produced the same id")
		}
	})

	t.Run("fresh is always distinct", func(t *testing.T) {
		a := ctx.FreshProp("g")
		b := ctx.FreshProp("g")
		if a.ID() == b.ID() {
			t.Error("FreshProp returned the same id twice")
		}
	})

	t.Run("tagging round-trips through the same context", func(t *testing.T) {
		x := ctx.Plain("x")
		px := ctx.Primed(x)
		if ctx.Untag(px).ID() != x.ID() {
			t.Error("Context.Untag(Context.Primed(x)) != x")
		}
	})
}

func TestSortedByNameDeterministic(t *testing.T) {
	ctx := NewContext()
	b := ctx.Plain("b")
	a := ctx.Plain("a")
	c := ctx.Plain("c")

	for i := 0; i < 10; i++ {
		got := SortedByName([]Prop{b, c, a})
		if got[0].ID() != a.ID() || got[1].ID() != b.ID() || got[2].ID() != c.ID() {
			t.Fatalf("SortedByName not stable/deterministic on iteration %d: %v", i, got)
		}
	}
}

func TestSet(t *testing.T) {
	ctx := NewContext()
	s := NewSet()
	x := ctx.Plain("x")
	y := ctx.Plain("y")

	if !s.Add(x) {
		t.Error("first Add(x) should report true")
	}
	if s.Add(x) {
		t.Error("second Add(x) should report false (duplicate)")
	}
	s.Add(y)

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.Contains(x) || !s.Contains(y) {
		t.Error("Contains should report true for inserted elements")
	}
}
