package parse

import (
	"testing"

	"github.com/ravelin-labs/pltlsynth/pkg/automaton"
	"github.com/ravelin-labs/pltlsynth/pkg/prop"
)

func TestTopLevelParsesReachabilityAndSafety(t *testing.T) {
	ctx := prop.NewContext()
	kind, body, err := TopLevel(ctx, "F(c0 & Y(u0))")
	if err != nil {
		t.Fatalf("TopLevel: %v", err)
	}
	if kind != automaton.F {
		t.Errorf("kind = %v, want F", kind)
	}
	if !body.IsAnd() {
		t.Errorf("body = %q, want an And node", body.String())
	}

	kind, _, err = TopLevel(ctx, "G(u0 -> c0)")
	if err != nil {
		t.Fatalf("TopLevel: %v", err)
	}
	if kind != automaton.G {
		t.Errorf("kind = %v, want G", kind)
	}
}

func TestTopLevelRejectsMissingWrapper(t *testing.T) {
	ctx := prop.NewContext()
	if _, _, err := TopLevel(ctx, "c0 & u0"); err == nil {
		t.Error("expected an error for a formula without F(...)/G(...)")
	}
}

func TestFormulaParsesAllOperators(t *testing.T) {
	ctx := prop.NewContext()
	cases := []string{
		"a & b", "a | b", "!a", "a -> b", "a <-> b",
		"a S b", "a T b", "Y(a)", "Z(a)", "O(a)", "H(a)",
		"H(u0) -> c0", "O(u0) & c0", "true", "false",
	}
	for _, src := range cases {
		if _, err := Formula(ctx, src); err != nil {
			t.Errorf("Formula(%q): %v", src, err)
		}
	}
}

func TestFormulaRejectsMalformedInput(t *testing.T) {
	ctx := prop.NewContext()
	cases := []string{"a &", "(a", "a $ b", "Y a"}
	for _, src := range cases {
		if _, err := Formula(ctx, src); err == nil {
			t.Errorf("Formula(%q): expected error, got none", src)
		}
	}
}

func TestBuildSpecPartitionsInputsAndOutputs(t *testing.T) {
	ctx := prop.NewContext()
	_, body, err := TopLevel(ctx, "F(O(u0) & c0)")
	if err != nil {
		t.Fatalf("TopLevel: %v", err)
	}
	spec := BuildSpec(ctx, automaton.F, body, []string{"u0"})
	if len(spec.Inputs) != 1 || spec.Inputs[0].String() != "u0" {
		t.Errorf("Inputs = %v, want [u0]", spec.Inputs)
	}
	if len(spec.Outputs) != 1 || spec.Outputs[0].String() != "c0" {
		t.Errorf("Outputs = %v, want [c0]", spec.Outputs)
	}
	if err := spec.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
