package formula

import (
	"testing"

	"github.com/ravelin-labs/pltlsynth/pkg/prop"
)

func TestNNFIdempotentAndWellFormed(t *testing.T) {
	ctx := prop.NewContext()
	a := AtomP(ctx.Plain("a"))
	b := AtomP(ctx.Plain("b"))

	cases := []struct {
		name string
		f    PForm
	}{
		{"implies", ImpliesP(a, b)},
		{"iff", IffP(a, b)},
		{"double negation", NotP(NotP(a))},
		{"not since", NotP(S(a, b))},
		{"not triggered", NotP(T(a, b))},
		{"not once", NotP(O(a))},
		{"not historically", NotP(H(a))},
		{"not yesterday", NotP(Y(a))},
		{"not weak yesterday", NotP(Z(a))},
		{"mixed", ImpliesP(NotP(O(a)), H(IffP(a, b)))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n1 := NNF(tc.f)
			if !InNNF(n1) {
				t.Fatalf("NNF(%s) = %s is not in NNF", tc.f, n1)
			}
			n2 := NNF(n1)
			if !n1.Equal(n2) {
				t.Errorf("NNF not idempotent: NNF(f) = %s, NNF(NNF(f)) = %s", n1, n2)
			}
		})
	}
}

func TestNNFDeMorganDuals(t *testing.T) {
	ctx := prop.NewContext()
	a := AtomP(ctx.Plain("a"))
	b := AtomP(ctx.Plain("b"))

	t.Run("not yesterday becomes weak yesterday of negation", func(t *testing.T) {
		got := NNF(NotP(Y(a)))
		want := Z(NotP(a))
		if !got.Equal(want) {
			t.Errorf("NNF(¬Y a) = %s, want %s", got, want)
		}
	})

	t.Run("not since becomes triggered of negations", func(t *testing.T) {
		got := NNF(NotP(S(a, b)))
		want := T(NotP(a), NotP(b))
		if !got.Equal(want) {
			t.Errorf("NNF(¬(a S b)) = %s, want %s", got, want)
		}
	})

	t.Run("not triggered becomes since of negations", func(t *testing.T) {
		got := NNF(NotP(T(a, b)))
		want := S(NotP(a), NotP(b))
		if !got.Equal(want) {
			t.Errorf("NNF(¬(a T b)) = %s, want %s", got, want)
		}
	})
}

func TestPropsCollection(t *testing.T) {
	ctx := prop.NewContext()
	a := ctx.Plain("a")
	b := ctx.Plain("b")
	f := AndP(AtomP(a), OrP(AtomP(b), AtomP(a)))

	props := f.Props()
	if len(props) != 2 {
		t.Fatalf("Props() returned %d propositions, want 2", len(props))
	}
}
