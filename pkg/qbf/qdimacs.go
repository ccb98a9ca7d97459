package qbf

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/ravelin-labs/pltlsynth/pkg/synthresult"
)

// Emit renders c as standard QDIMACS text (spec.md §6): one `p cnf N M`
// header, one line per quantifier block (`e`/`a` then the block's
// variables then a terminating 0), then one line per clause.
func Emit(c *CNF) string {
	var b strings.Builder
	fmt.Fprintf(&b, "p cnf %d %d\n", c.NumVars, len(c.Clauses))
	for _, blk := range c.Blocks {
		if blk.Kind == BlockExists {
			b.WriteString("e")
		} else {
			b.WriteString("a")
		}
		for _, v := range blk.Vars {
			fmt.Fprintf(&b, " %d", v)
		}
		b.WriteString(" 0\n")
	}
	for _, cl := range c.Clauses {
		for _, lit := range cl {
			fmt.Fprintf(&b, "%d ", lit)
		}
		b.WriteString("0\n")
	}
	return b.String()
}

// Parse reads QDIMACS text back into a CNF, the inverse of Emit, used by
// the round-trip self-check of spec.md §8 property 7.
func Parse(text string) (*CNF, error) {
	c := &CNF{}
	sc := bufio.NewScanner(strings.NewReader(text))
	seenHeader := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, fmt.Errorf("%w: malformed QDIMACS header %q", synthresult.ErrParse, line)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("%w: bad var count in header: %v", synthresult.ErrParse, err)
			}
			c.NumVars = n
			seenHeader = true
		case "e", "a":
			kind := BlockExists
			if fields[0] == "a" {
				kind = BlockForall
			}
			vars, err := parseTerminatedInts(fields[1:])
			if err != nil {
				return nil, err
			}
			c.Blocks = append(c.Blocks, Block{Kind: kind, Vars: vars})
		default:
			lits, err := parseTerminatedInts(fields)
			if err != nil {
				return nil, err
			}
			c.Clauses = append(c.Clauses, lits)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", synthresult.ErrParse, err)
	}
	if !seenHeader {
		return nil, fmt.Errorf("%w: QDIMACS text has no p-cnf header", synthresult.ErrParse)
	}
	return c, nil
}

// parseTerminatedInts parses a whitespace-separated list of ints ending
// in a literal 0, returning every int before the terminator.
func parseTerminatedInts(fields []string) ([]int, error) {
	if len(fields) == 0 || fields[len(fields)-1] != "0" {
		return nil, fmt.Errorf("%w: QDIMACS line not terminated by 0", synthresult.ErrParse)
	}
	out := make([]int, 0, len(fields)-1)
	for _, f := range fields[:len(fields)-1] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", synthresult.ErrParse, err)
		}
		out = append(out, n)
	}
	return out, nil
}
