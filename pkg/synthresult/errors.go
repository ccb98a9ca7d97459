package synthresult

import "errors"

// The five error kinds of spec.md §7. Each is a sentinel wrapped with
// fmt.Errorf("...: %w", KindX) at the call site, matching the teacher's
// own wrapping style (pkg/minikanren/solver.go's
// fmt.Errorf("invalid model: %w", err)), so callers can errors.Is/As
// against the kind regardless of the message.
var (
	// ErrParse covers a malformed formula or an unsupported operator.
	// Policy: report to stderr, CLI exits 1.
	ErrParse = errors.New("parse error")

	// ErrSpecShape covers a formula that isn't F(·) or G(·), or whose body
	// isn't pLTL. Policy: report to stderr, CLI exits 1.
	ErrSpecShape = errors.New("spec shape error")

	// ErrOracleFailure covers an internal SAT/QBF/BDD oracle error.
	// Policy: the solver returns it (wrapped) together with
	// synthresult.Unknown, and the CLI logs the error and prints UNKNOWN
	// rather than exiting with a failure. Kept as a sentinel so callers can
	// tell an oracle failure apart from the other error kinds.
	ErrOracleFailure = errors.New("oracle failure")

	// ErrUnreachable covers a violated internal invariant (→/↔ surviving
	// NNF, SNF invoked on a non-NNF formula). Policy: this is a bug; fail
	// fast rather than attempting recovery.
	ErrUnreachable = errors.New("unreachable: internal invariant violated")

	// ErrCancelled covers an observed cancellation or timeout between
	// fixpoint iterations. Policy: surfaced as synthresult.Unknown, never
	// retried with a different strategy inside the same solve.
	ErrCancelled = errors.New("cancelled")
)
