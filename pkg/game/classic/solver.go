// Package classic implements the QBF-fixpoint game solver of spec.md
// §4.4: alternating test/step queries against a QbfSolver oracle until a
// fixpoint (up to QBF-equivalence restricted to the automaton's state
// variables) is detected.
package classic

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/ravelin-labs/pltlsynth/pkg/automaton"
	"github.com/ravelin-labs/pltlsynth/pkg/formula"
	"github.com/ravelin-labs/pltlsynth/pkg/prop"
	"github.com/ravelin-labs/pltlsynth/pkg/qbf"
	"github.com/ravelin-labs/pltlsynth/pkg/synthresult"
)

// maxIterations bounds the Kleene iteration the same way the teacher's
// constraint-propagation loop bounds itself (pkg/minikanren/solver.go's
// "prevent infinite loops" cap): spec.md §4.4 guarantees termination
// within 2^|vars| steps, so this is a generous backstop against a bug in
// the test-formula equivalence check, not a normal exit path.
const maxIterations = 1 << 20

// Solver runs the classic fixpoint algorithm against a single QbfSolver
// oracle instance.
type Solver struct {
	oracle qbf.Solver
	log    hclog.Logger
}

func NewSolver(oracle qbf.Solver, log hclog.Logger) *Solver {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	if oracle == nil {
		oracle = qbf.NewRecursiveSolver(nil)
	}
	return &Solver{oracle: oracle, log: log.Named("classic")}
}

// Solve decides realizability of aut's objective (spec.md §4.4).
func (s *Solver) Solve(aut *automaton.Aut) (synthresult.Verdict, error) {
	if err := aut.Validate(); err != nil {
		return synthresult.Unknown, err
	}
	ctx := aut.Context()

	w := formula.Lift(aut.Objective)
	for k := 0; k < maxIterations; k++ {
		next := s.step(ctx, aut, w)

		valid, err := s.isValid(ctx, s.testFormula(aut, w, next))
		if err != nil {
			return synthresult.Unknown, err
		}
		if valid {
			return s.winTest(ctx, aut, w)
		}
		w = next
	}
	return synthresult.Unknown, fmt.Errorf("%w: classic solver did not converge within %d iterations", synthresult.ErrUnreachable, maxIterations)
}

// step computes W_{k+1} from W_k (spec.md §4.4):
//
//	step(W) = W ⊕ ∃outputs. ∀inputs. ∀primed(vars). (trans → W')
//
// where ⊕ is ∨ for reachability (F) and ∧ for safety (G), and W' is W
// with every proposition replaced by its primed twin. The automaton's own
// Trans relation is already stated over exactly
// {inputs, outputs, vars, primed(vars)}, so the new outer block always
// quantifies that same alphabet and no "stepped" indices are used; the
// renaming also primes the variables bound inside W by earlier iterations,
// so each nested copy of W sits one priming level deeper than the last.
// See DESIGN.md for why this is equivalent to the literal stepped-index
// reading.
func (s *Solver) step(ctx *prop.Context, aut *automaton.Aut, w formula.QForm) formula.QForm {
	wPrimed := qbf.Rename(w, ctx.Primed)
	body := formula.ImpliesQ(aut.Trans, wPrimed)
	body = formula.Forall(aut.PrimedVars(), body)
	body = formula.Forall(aut.Inputs, body)
	body = formula.Exists(aut.Outputs, body)

	if aut.Kind == automaton.F {
		return formula.OrQ(w, body)
	}
	return formula.AndQ(w, body)
}

// testFormula builds the validity query that detects fixpoint (spec.md
// §4.4): `∀vars. W_{k+1} → W_k` for reachability (has the least fixpoint
// stopped growing), `∀vars. W_k → W_{k+1}` for safety (has the greatest
// fixpoint stopped shrinking).
func (s *Solver) testFormula(aut *automaton.Aut, wk, wkNext formula.QForm) formula.QForm {
	var test formula.QForm
	if aut.Kind == automaton.F {
		test = formula.ImpliesQ(wkNext, wk)
	} else {
		test = formula.ImpliesQ(wk, wkNext)
	}
	return formula.Forall(aut.Vars, test)
}

// isValid checks validity of f by asking the oracle whether ¬f is
// unsatisfiable (spec.md §4.3: "equivalently, unsat of its negation").
func (s *Solver) isValid(ctx *prop.Context, f formula.QForm) (bool, error) {
	negated := formula.NotQ(f)
	switch s.decide(ctx, negated) {
	case qbf.Unsat:
		return true, nil
	case qbf.Sat:
		return false, nil
	default:
		return false, fmt.Errorf("%w: QBF oracle returned Unknown", synthresult.ErrOracleFailure)
	}
}

// winTest asks `∃vars. W_k ∧ init` once a fixpoint is detected: SAT means
// a winning strategy exists from some initial state (spec.md §4.4).
func (s *Solver) winTest(ctx *prop.Context, aut *automaton.Aut, w formula.QForm) (synthresult.Verdict, error) {
	query := formula.Exists(aut.Vars, formula.AndQ(w, formula.Lift(aut.Init)))
	switch s.decide(ctx, query) {
	case qbf.Sat:
		return synthresult.Realizable, nil
	case qbf.Unsat:
		return synthresult.Unrealizable, nil
	default:
		return synthresult.Unknown, fmt.Errorf("%w: win-test oracle call returned Unknown", synthresult.ErrOracleFailure)
	}
}

// decide hands f to the oracle after flattening and prenexing it. step
// builds W_{k+1} by nesting a fresh ∃outputs.∀inputs.∀primed(vars) block
// inside whatever quantifiers W_k already carried (via OrQ/AndQ/ImpliesQ),
// so both testFormula's and winTest's queries arrive here with quantifiers
// buried under boolean connectives rather than all pulled to the front.
// qbf.RecursiveSolver.Decide only peels a *leading* quantifier, so a
// flatten (alpha-rename away shadowing) + prenex (pull every quantifier to
// the front) pass is required before every oracle call, exactly as
// cmd/pltlsynth's clausify command already does for its own QBF query.
func (s *Solver) decide(ctx *prop.Context, f formula.QForm) qbf.Outcome {
	return s.oracle.Decide(qbf.Prenex(qbf.Flatten(ctx, f)))
}
