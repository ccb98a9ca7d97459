// Command pltlsynth is the CLI front end of spec.md §6: it parses an
// F(φ)/G(φ) pure-past specification, compiles it to a symbolic automaton,
// and decides realizability with one of two independent game solvers (or
// dumps the underlying QBF query as QDIMACS for an external solver).
//
// pltlsynth itself is one of the spec's named "external collaborators"
// (§1) — the parser, encoder, and solvers it wires together are the
// actual subject of this repository; this file is just dispatch.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
)

// version is reported by `pltlsynth -version`; there is no release
// process here so it stays a fixed literal rather than a build-time
// ldflag, unlike the teacher's own versioned releases.
const version = "0.1.0"

func newLogger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "pltlsynth",
		Level:  hclog.Warn,
		Output: os.Stderr,
	})
}

func main() {
	log := newLogger()

	c := cli.NewCLI("pltlsynth", version)
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"classic":  solveCommandFactory("classic", log),
		"bdd":      solveCommandFactory("bdd", log),
		"novel":    solveCommandFactory("novel", log),
		"random":   randomCommandFactory(log),
		"clausify": clausifyCommandFactory(log),
	}

	status, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(status)
}
