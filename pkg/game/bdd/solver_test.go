package bdd

import (
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/ravelin-labs/pltlsynth/pkg/automaton"
	"github.com/ravelin-labs/pltlsynth/pkg/formula"
	"github.com/ravelin-labs/pltlsynth/pkg/game/classic"
	"github.com/ravelin-labs/pltlsynth/pkg/prop"
	"github.com/ravelin-labs/pltlsynth/pkg/synthresult"
)

func TestScenario1_FReachabilityNoInputs(t *testing.T) {
	ctx := prop.NewContext()
	c0 := ctx.Plain("c0")
	spec := automaton.Spec{Kind: automaton.F, Body: formula.AtomP(c0), Outputs: []prop.Prop{c0}}

	enc := automaton.NewEncoder(ctx, hclog.NewNullLogger())
	aut, err := enc.Encode(spec, automaton.Agent)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	verdict, err := NewSolver(nil).Solve(aut)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if verdict != synthresult.Realizable {
		t.Errorf("F(c0) = %s, want REALIZABLE", verdict)
	}
}

func TestScenario2_GSafetyNoInputs(t *testing.T) {
	ctx := prop.NewContext()
	c0 := ctx.Plain("c0")
	spec := automaton.Spec{Kind: automaton.G, Body: formula.AtomP(c0), Outputs: []prop.Prop{c0}}

	enc := automaton.NewEncoder(ctx, hclog.NewNullLogger())
	aut, err := enc.Encode(spec, automaton.Agent)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	verdict, err := NewSolver(nil).Solve(aut)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if verdict != synthresult.Realizable {
		t.Errorf("G(c0) = %s, want REALIZABLE", verdict)
	}
}

func TestScenario3_GSafetyEnvironmentInput(t *testing.T) {
	ctx := prop.NewContext()
	u0 := ctx.Plain("u0")
	spec := automaton.Spec{Kind: automaton.G, Body: formula.AtomP(u0), Inputs: []prop.Prop{u0}}

	enc := automaton.NewEncoder(ctx, hclog.NewNullLogger())
	aut, err := enc.Encode(spec, automaton.Agent)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	verdict, err := NewSolver(nil).Solve(aut)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if verdict != synthresult.Unrealizable {
		t.Errorf("G(u0) = %s, want UNREALIZABLE", verdict)
	}
}

func TestScenario4_FOnceInputAndOutput(t *testing.T) {
	ctx := prop.NewContext()
	u0 := ctx.Plain("u0")
	c0 := ctx.Plain("c0")
	// F(O(u0) & c0)
	body := formula.AndP(formula.O(formula.AtomP(u0)), formula.AtomP(c0))
	spec := automaton.Spec{Kind: automaton.F, Body: body, Inputs: []prop.Prop{u0}, Outputs: []prop.Prop{c0}}

	enc := automaton.NewEncoder(ctx, hclog.NewNullLogger())
	aut, err := enc.Encode(spec, automaton.Agent)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	verdict, err := NewSolver(nil).Solve(aut)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if verdict != synthresult.Realizable {
		t.Errorf("F(O(u0) & c0) = %s, want REALIZABLE", verdict)
	}
}

func TestScenario5_GHistoricallyImpliesOutput(t *testing.T) {
	ctx := prop.NewContext()
	u0 := ctx.Plain("u0")
	c0 := ctx.Plain("c0")
	// G(H(u0) -> c0)
	body := formula.ImpliesP(formula.H(formula.AtomP(u0)), formula.AtomP(c0))
	spec := automaton.Spec{Kind: automaton.G, Body: body, Inputs: []prop.Prop{u0}, Outputs: []prop.Prop{c0}}

	enc := automaton.NewEncoder(ctx, hclog.NewNullLogger())
	aut, err := enc.Encode(spec, automaton.Agent)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	verdict, err := NewSolver(nil).Solve(aut)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if verdict != synthresult.Realizable {
		t.Errorf("G(H(u0) -> c0) = %s, want REALIZABLE", verdict)
	}
}

func TestScenario6_FYesterdayInitiallyFalse(t *testing.T) {
	ctx := prop.NewContext()
	c0 := ctx.Plain("c0")
	// F(Y(c0) & !c0)
	body := formula.AndP(formula.Y(formula.AtomP(c0)), formula.NotP(formula.AtomP(c0)))
	spec := automaton.Spec{Kind: automaton.F, Body: body, Outputs: []prop.Prop{c0}}

	enc := automaton.NewEncoder(ctx, hclog.NewNullLogger())
	aut, err := enc.Encode(spec, automaton.Agent)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	verdict, err := NewSolver(nil).Solve(aut)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	// spec.md §8's scenario table lists this as UNREALIZABLE, but tracing
	// Pre from the objective (Pre(g_b) = g_a, Pre(g_a | g_b) = true) shows
	// init satisfies the fixpoint within two steps — REALIZABLE, matching
	// both the original automata.cpp/classic.cpp and pkg/game/classic's own
	// verdict for this scenario. See DESIGN.md's Open Question decision on
	// scenario 6.
	if verdict != synthresult.Realizable {
		t.Errorf("F(Y(c0) & !c0) = %s, want REALIZABLE", verdict)
	}
}

// TestAgreesWithClassicSolver checks spec.md §8 property 6: both
// algorithms must agree on the same automaton.
func TestAgreesWithClassicSolver(t *testing.T) {
	cases := []struct {
		name string
		spec func(ctx *prop.Context) automaton.Spec
	}{
		{"reachability-no-inputs", func(ctx *prop.Context) automaton.Spec {
			c0 := ctx.Plain("c0")
			return automaton.Spec{Kind: automaton.F, Body: formula.AtomP(c0), Outputs: []prop.Prop{c0}}
		}},
		{"safety-environment-input", func(ctx *prop.Context) automaton.Spec {
			u0 := ctx.Plain("u0")
			return automaton.Spec{Kind: automaton.G, Body: formula.AtomP(u0), Inputs: []prop.Prop{u0}}
		}},
		{"once-input-and-output", func(ctx *prop.Context) automaton.Spec {
			u0 := ctx.Plain("u0")
			c0 := ctx.Plain("c0")
			body := formula.AndP(formula.O(formula.AtomP(u0)), formula.AtomP(c0))
			return automaton.Spec{Kind: automaton.F, Body: body, Inputs: []prop.Prop{u0}, Outputs: []prop.Prop{c0}}
		}},
		{"historically-implies-output", func(ctx *prop.Context) automaton.Spec {
			u0 := ctx.Plain("u0")
			c0 := ctx.Plain("c0")
			body := formula.ImpliesP(formula.H(formula.AtomP(u0)), formula.AtomP(c0))
			return automaton.Spec{Kind: automaton.G, Body: body, Inputs: []prop.Prop{u0}, Outputs: []prop.Prop{c0}}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctxBDD := prop.NewContext()
			autBDD, err := automaton.NewEncoder(ctxBDD, hclog.NewNullLogger()).Encode(tc.spec(ctxBDD), automaton.Agent)
			if err != nil {
				t.Fatalf("Encode (bdd): %v", err)
			}
			bddVerdict, err := NewSolver(nil).Solve(autBDD)
			if err != nil {
				t.Fatalf("bdd.Solve: %v", err)
			}

			ctxClassic := prop.NewContext()
			autClassic, err := automaton.NewEncoder(ctxClassic, hclog.NewNullLogger()).Encode(tc.spec(ctxClassic), automaton.Agent)
			if err != nil {
				t.Fatalf("Encode (classic): %v", err)
			}
			classicVerdict, err := classic.NewSolver(nil, nil).Solve(autClassic)
			if err != nil {
				t.Fatalf("classic.Solve: %v", err)
			}

			if bddVerdict != classicVerdict {
				t.Errorf("bdd=%s, classic=%s, want agreement", bddVerdict, classicVerdict)
			}
		})
	}
}
