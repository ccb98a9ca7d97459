// Package randgen implements the seeded pLTL formula generator behind
// spec.md §6's `random` CLI mode, supplementing
// original_source/src/random.cpp's random_spec: a game type (F/G) chosen
// by a coin flip, a symbol alphabet split into inputs (u0..u_{k-1}) and
// outputs (c0..c_{m-1}), and a formula of the requested size built over
// that alphabet.
package randgen

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Game is one generated benchmark instance: a top-level type, its body
// rendered in pkg/parse's own surface syntax (so the CLI's `random`
// output can be fed straight back into its `classic|novel|bdd` modes),
// and the declared input symbol names.
type Game struct {
	Kind   string // "F" or "G"
	Body   string
	Inputs []string
}

// String renders g exactly as spec.md §6 describes: `'<formula>' u0 u1 …`.
func (g Game) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "'%s(%s)'", g.Kind, g.Body)
	for _, u := range g.Inputs {
		b.WriteString(" ")
		b.WriteString(u)
	}
	return b.String()
}

// New builds n pseudo-random pLTL games over nsymbols propositions, each
// with formula size roughly `size`, all derived from a single seed (two
// generator calls with the same seed must be reproducible — spec.md §6
// gives `random` a seed argument precisely so benchmarks are
// replayable).
func New(n, nsymbols, size int, seed int64) []Game {
	r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9E3779B97F4A7C15))

	games := make([]Game, n)
	for i := range games {
		games[i] = one(r, nsymbols, size)
	}
	return games
}

// one mirrors original_source/src/random.cpp's random_spec: a bernoulli
// choice of game type, an input/output split of the symbol budget (at
// least one input, the rest outputs), and a formula generated over the
// resulting alphabet.
func one(r *rand.Rand, nsymbols, size int) Game {
	kind := "F"
	if r.IntN(2) == 1 {
		kind = "G"
	}

	if nsymbols < 2 {
		nsymbols = 2
	}
	ninputs := 1 + r.IntN(nsymbols-1) // uniform in [1, nsymbols-1]
	noutputs := nsymbols - ninputs

	inputs := make([]string, ninputs)
	for i := range inputs {
		inputs[i] = fmt.Sprintf("u%d", i)
	}
	outputs := make([]string, noutputs)
	for i := range outputs {
		outputs[i] = fmt.Sprintf("c%d", i)
	}

	symbols := append(append([]string(nil), inputs...), outputs...)
	body := genFormula(r, symbols, size)

	return Game{Kind: kind, Body: body, Inputs: inputs}
}

// genFormula builds a random well-formed pLTL formula string of roughly
// `size` nodes over symbols, using pkg/parse's own textual grammar
// (!, &, |, ->, <->, Y()/Z()/O()/H(), infix S/T) so the generated line
// round-trips through the CLI's own parser.
func genFormula(r *rand.Rand, symbols []string, size int) string {
	if size <= 1 || len(symbols) == 0 {
		return atom(r, symbols)
	}

	// Split the remaining size budget unevenly across an operator's
	// operands so trees come out with varied shape rather than perfectly
	// balanced.
	switch r.IntN(9) {
	case 0:
		return "!" + parenth(genFormula(r, symbols, size-1))
	case 1:
		return "Y(" + genFormula(r, symbols, size-1) + ")"
	case 2:
		return "Z(" + genFormula(r, symbols, size-1) + ")"
	case 3:
		return "O(" + genFormula(r, symbols, size-1) + ")"
	case 4:
		return "H(" + genFormula(r, symbols, size-1) + ")"
	case 5:
		l, rr := split(r, size-1)
		return parenth(genFormula(r, symbols, l)) + " & " + parenth(genFormula(r, symbols, rr))
	case 6:
		l, rr := split(r, size-1)
		return parenth(genFormula(r, symbols, l)) + " | " + parenth(genFormula(r, symbols, rr))
	case 7:
		l, rr := split(r, size-1)
		return parenth(genFormula(r, symbols, l)) + " S " + parenth(genFormula(r, symbols, rr))
	default:
		l, rr := split(r, size-1)
		return parenth(genFormula(r, symbols, l)) + " T " + parenth(genFormula(r, symbols, rr))
	}
}

func atom(r *rand.Rand, symbols []string) string {
	if len(symbols) == 0 {
		return "true"
	}
	return symbols[r.IntN(len(symbols))]
}

// split divides a size budget of n into two positive halves, at least 1
// each, favoring neither side.
func split(r *rand.Rand, n int) (int, int) {
	if n < 2 {
		return 1, 1
	}
	l := 1 + r.IntN(n-1)
	return l, n - l
}

func parenth(s string) string { return "(" + s + ")" }
