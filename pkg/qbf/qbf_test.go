package qbf

import (
	"strings"
	"testing"

	"github.com/ravelin-labs/pltlsynth/pkg/formula"
	"github.com/ravelin-labs/pltlsynth/pkg/prop"
)

func TestRenameRecursesIntoQuantifiers(t *testing.T) {
	ctx := prop.NewContext()
	a := ctx.Plain("a")
	b := ctx.Plain("b")

	f := formula.Exists([]prop.Prop{a}, formula.AndQ(formula.AtomQ(a), formula.AtomQ(b)))
	renamed := Rename(f, ctx.Primed)

	if !renamed.IsExists() {
		t.Fatalf("expected an Exists node, got %s", renamed)
	}
	bound := renamed.Bound()
	if len(bound) != 1 || bound[0] != ctx.Primed(a) {
		t.Fatalf("bound variable was not renamed: %v", bound)
	}
}

func TestFlattenAlphaRenamesShadowedBinder(t *testing.T) {
	ctx := prop.NewContext()
	a := ctx.Plain("a")

	// Exists a. (Atom a /\ Forall a. Atom a) -- the inner "a" shadows the
	// outer one and must be renamed.
	inner := formula.Forall([]prop.Prop{a}, formula.AtomQ(a))
	outer := formula.Exists([]prop.Prop{a}, formula.AndQ(formula.AtomQ(a), inner))

	flat := Flatten(ctx, outer)
	if !flat.IsExists() {
		t.Fatalf("expected outer Exists, got %s", flat)
	}
	outerVar := flat.Bound()[0]
	body := flat.Body()
	if !body.IsAnd() {
		t.Fatalf("expected And body, got %s", body)
	}
	if body.Left().Atom() != outerVar {
		t.Fatalf("outer atom reference was renamed when it shouldn't have been")
	}
	innerForall := body.Right()
	if !innerForall.IsForall() {
		t.Fatalf("expected inner Forall, got %s", innerForall)
	}
	innerVar := innerForall.Bound()[0]
	if innerVar == outerVar {
		t.Fatalf("shadowed binder was not alpha-renamed: inner == outer == %v", innerVar)
	}
	if innerForall.Body().Atom() != innerVar {
		t.Fatalf("inner atom reference was not updated to the fresh binder")
	}
}

func TestPrenexPullsQuantifiersOutward(t *testing.T) {
	ctx := prop.NewContext()
	a := ctx.Plain("a")
	b := ctx.Plain("b")

	// (Exists a. Atom a) /\ Atom b
	f := formula.AndQ(formula.Exists([]prop.Prop{a}, formula.AtomQ(a)), formula.AtomQ(b))
	p := Prenex(Flatten(ctx, f))
	if !p.IsExists() {
		t.Fatalf("expected the quantifier pulled to the front, got %s", p)
	}
	if p.Body().IsExists() || p.Body().IsForall() {
		t.Fatalf("matrix still contains a quantifier: %s", p.Body())
	}
}

func TestPrenexNegationFlipsQuantifier(t *testing.T) {
	ctx := prop.NewContext()
	a := ctx.Plain("a")

	f := formula.NotQ(formula.Exists([]prop.Prop{a}, formula.AtomQ(a)))
	p := Prenex(Flatten(ctx, f))
	if !p.IsForall() {
		t.Fatalf("expected negation of Exists to become Forall, got %s", p)
	}
}

func TestPrenexImpliesFlipsAntecedentQuantifier(t *testing.T) {
	ctx := prop.NewContext()
	a := ctx.Plain("a")
	b := ctx.Plain("b")

	f := formula.ImpliesQ(formula.Exists([]prop.Prop{a}, formula.AtomQ(a)), formula.AtomQ(b))
	p := Prenex(Flatten(ctx, f))
	if !p.IsForall() {
		t.Fatalf("expected the antecedent's Exists to flip to Forall, got %s", p)
	}
}

func TestCNFAndQDIMACSRoundTrip(t *testing.T) {
	ctx := prop.NewContext()
	a := ctx.Plain("a")
	b := ctx.Plain("b")

	f := formula.Exists([]prop.Prop{a}, formula.Forall([]prop.Prop{b}, formula.OrQ(formula.AtomQ(a), formula.AtomQ(b))))
	cnf, err := ToCNF(f, true)
	if err != nil {
		t.Fatalf("ToCNF: %v", err)
	}
	text := Emit(cnf)
	if !strings.HasPrefix(text, "p cnf") {
		t.Fatalf("emitted text missing header: %q", text)
	}

	parsed, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.NumVars != cnf.NumVars {
		t.Errorf("NumVars mismatch: got %d want %d", parsed.NumVars, cnf.NumVars)
	}
	if len(parsed.Clauses) != len(cnf.Clauses) {
		t.Errorf("clause count mismatch: got %d want %d", len(parsed.Clauses), len(cnf.Clauses))
	}
	if len(parsed.Blocks) != len(cnf.Blocks) {
		t.Errorf("block count mismatch: got %d want %d", len(parsed.Blocks), len(cnf.Blocks))
	}

	// Property 7: every variable in a clause occurs in exactly one block.
	declared := map[int]int{}
	for _, blk := range parsed.Blocks {
		for _, v := range blk.Vars {
			declared[v]++
		}
	}
	for _, cl := range parsed.Clauses {
		for _, lit := range cl {
			v := lit
			if v < 0 {
				v = -v
			}
			if declared[v] != 1 {
				t.Errorf("variable %d occurs in %d blocks, want exactly 1", v, declared[v])
			}
		}
	}
}

func TestSATOracleBasic(t *testing.T) {
	ctx := prop.NewContext()
	a := ctx.Plain("a")

	sat := NewSATOracle()
	if got := sat.IsSat(formula.AtomB(a)); got != Sat {
		t.Errorf("IsSat(a) = %s, want Sat", got)
	}
	contradiction := formula.And(formula.AtomB(a), formula.Not(formula.AtomB(a)))
	if got := sat.IsSat(contradiction); got != Unsat {
		t.Errorf("IsSat(a & !a) = %s, want Unsat", got)
	}
}

func TestRecursiveSolverDecidesSmallQBF(t *testing.T) {
	ctx := prop.NewContext()
	a := ctx.Plain("a")

	solver := NewRecursiveSolver(nil)

	// Exists a. a  -- satisfiable
	exists := formula.Exists([]prop.Prop{a}, formula.AtomQ(a))
	if got := solver.Decide(exists); got != Sat {
		t.Errorf("Exists a. a = %s, want Sat", got)
	}

	// Forall a. a  -- false when a = false
	forall := formula.Forall([]prop.Prop{a}, formula.AtomQ(a))
	if got := solver.Decide(forall); got != Unsat {
		t.Errorf("Forall a. a = %s, want Unsat", got)
	}

	// Forall a. (a | !a) -- tautology
	taut := formula.Forall([]prop.Prop{a}, formula.OrQ(formula.AtomQ(a), formula.NotQ(formula.AtomQ(a))))
	if got := solver.Decide(taut); got != Sat {
		t.Errorf("Forall a. (a | !a) = %s, want Sat", got)
	}
}
