// Package novel is the bounded-unraveling algorithm's placeholder
// (spec.md §6's `novel` CLI branch, §9: "structurally present but yields
// undef/false placeholder results in code; out of scope"). It is not a
// third decision procedure — it is kept as a stub so the CLI's three
// advertised algorithm names all resolve to a real [Solver], and so that
// choosing `novel` fails loud (an explicit Unknown with a logged reason)
// rather than the CLI rejecting the name outright.
package novel

import (
	"github.com/hashicorp/go-hclog"

	"github.com/ravelin-labs/pltlsynth/pkg/automaton"
	"github.com/ravelin-labs/pltlsynth/pkg/synthresult"
)

// Solver always reports Unknown. See spec.md §9 and DESIGN.md's Open
// Question decision 2 for why this isn't reverse-engineered into a real
// decision procedure: the source it's grounded on (a bounded-unraveling
// QBF encoding) returns placeholder results itself.
type Solver struct {
	log hclog.Logger
}

func NewSolver(log hclog.Logger) *Solver {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Solver{log: log.Named("novel")}
}

// Solve validates aut (so a malformed automaton still surfaces as an
// error rather than a silent Unknown) and otherwise always reports
// Unknown.
func (s *Solver) Solve(aut *automaton.Aut) (synthresult.Verdict, error) {
	if err := aut.Validate(); err != nil {
		return synthresult.Unknown, err
	}
	s.log.Info("novel algorithm is a bounded-unraveling placeholder in the source it's grounded on; reporting Unknown", "aut", aut.String())
	return synthresult.Unknown, nil
}
