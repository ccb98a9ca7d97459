// Package parse implements spec.md §6's formula grammar: the top-level
// F(ψ)/G(ψ) shape and pure-past LTL for ψ, read from a single
// command-line argument (`other_examples`/`original_source` ground the
// textual keywords — Y, Z, O, H for the unary past operators, S/T as
// infix since/triggered — in the BLACK-based original's own surface
// syntax, which this grammar mirrors rather than reinvents).
package parse

import (
	"fmt"

	"github.com/ravelin-labs/pltlsynth/pkg/automaton"
	"github.com/ravelin-labs/pltlsynth/pkg/formula"
	"github.com/ravelin-labs/pltlsynth/pkg/prop"
	"github.com/ravelin-labs/pltlsynth/pkg/synthresult"
)

// parser is a recursive-descent parser over a token stream, one
// precedence level per method, in the usual "climb the grammar"
// ordering: iff, implies, since/triggered, or, and, unary, atom.
type parser struct {
	ctx  *prop.Context
	toks []token
	pos  int
}

// Formula parses src as a bare pLTL formula (no F(·)/G(·) wrapper),
// interning every proposition it encounters into ctx.
func Formula(ctx *prop.Context, src string) (formula.PForm, error) {
	toks, err := lex(src)
	if err != nil {
		return formula.PForm{}, err
	}
	p := &parser{ctx: ctx, toks: toks}
	f, err := p.parseIff()
	if err != nil {
		return formula.PForm{}, err
	}
	if p.peek().kind != tokEOF {
		return formula.PForm{}, fmt.Errorf("%w: unexpected trailing input %q at position %d", synthresult.ErrParse, p.peek().text, p.peek().pos)
	}
	return f, nil
}

// TopLevel parses spec.md §6's top-level shape `F(ψ)` or `G(ψ)`,
// returning the game kind and the pure-past body.
func TopLevel(ctx *prop.Context, src string) (automaton.Kind, formula.PForm, error) {
	toks, err := lex(src)
	if err != nil {
		return 0, formula.PForm{}, err
	}
	p := &parser{ctx: ctx, toks: toks}

	var kind automaton.Kind
	tok := p.peek()
	if tok.kind != tokIdent || (tok.text != "F" && tok.text != "G") {
		return 0, formula.PForm{}, fmt.Errorf("%w: formula must start with F(...) or G(...), got %q", synthresult.ErrSpecShape, tok.text)
	}
	if tok.text == "F" {
		kind = automaton.F
	} else {
		kind = automaton.G
	}
	p.pos++

	if err := p.expect(tokLParen); err != nil {
		return 0, formula.PForm{}, err
	}
	body, err := p.parseIff()
	if err != nil {
		return 0, formula.PForm{}, err
	}
	if err := p.expect(tokRParen); err != nil {
		return 0, formula.PForm{}, err
	}
	if p.peek().kind != tokEOF {
		return 0, formula.PForm{}, fmt.Errorf("%w: unexpected trailing input %q at position %d", synthresult.ErrParse, p.peek().text, p.peek().pos)
	}
	return kind, body, nil
}

// BuildSpec assembles a [automaton.Spec] from a parsed body and the
// input propositions declared on the command line (spec.md §6:
// "propositions listed after the formula are declared inputs; the rest
// that appear in ψ are inferred as outputs").
func BuildSpec(ctx *prop.Context, kind automaton.Kind, body formula.PForm, declaredInputs []string) automaton.Spec {
	inputSet := prop.NewSet()
	inputs := make([]prop.Prop, 0, len(declaredInputs))
	for _, name := range declaredInputs {
		p := ctx.Plain(name)
		if inputSet.Add(p) {
			inputs = append(inputs, p)
		}
	}

	var outputs []prop.Prop
	outputSet := prop.NewSet()
	for _, p := range body.Props() {
		if inputSet.Contains(p) {
			continue
		}
		if outputSet.Add(p) {
			outputs = append(outputs, p)
		}
	}

	return automaton.Spec{Kind: kind, Body: body, Inputs: inputs, Outputs: outputs}
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) expect(k tokenKind) error {
	if p.peek().kind != k {
		return fmt.Errorf("%w: unexpected token %q at position %d", synthresult.ErrParse, p.peek().text, p.peek().pos)
	}
	p.pos++
	return nil
}

// parseIff : implies ('<->' implies)*
func (p *parser) parseIff() (formula.PForm, error) {
	left, err := p.parseImplies()
	if err != nil {
		return formula.PForm{}, err
	}
	for p.peek().kind == tokIff {
		p.pos++
		right, err := p.parseImplies()
		if err != nil {
			return formula.PForm{}, err
		}
		left = formula.IffP(left, right)
	}
	return left, nil
}

// parseImplies : since ('->' implies)?  -- right-associative
func (p *parser) parseImplies() (formula.PForm, error) {
	left, err := p.parseSince()
	if err != nil {
		return formula.PForm{}, err
	}
	if p.peek().kind == tokImplies {
		p.pos++
		right, err := p.parseImplies()
		if err != nil {
			return formula.PForm{}, err
		}
		return formula.ImpliesP(left, right), nil
	}
	return left, nil
}

// parseSince : or (('S'|'T') or)*  -- left-associative infix since/triggered
func (p *parser) parseSince() (formula.PForm, error) {
	left, err := p.parseOr()
	if err != nil {
		return formula.PForm{}, err
	}
	for p.peek().kind == tokSince || p.peek().kind == tokTriggered {
		op := p.peek().kind
		p.pos++
		right, err := p.parseOr()
		if err != nil {
			return formula.PForm{}, err
		}
		if op == tokSince {
			left = formula.S(left, right)
		} else {
			left = formula.T(left, right)
		}
	}
	return left, nil
}

// parseOr : and ('|' and)*
func (p *parser) parseOr() (formula.PForm, error) {
	left, err := p.parseAnd()
	if err != nil {
		return formula.PForm{}, err
	}
	for p.peek().kind == tokOr {
		p.pos++
		right, err := p.parseAnd()
		if err != nil {
			return formula.PForm{}, err
		}
		left = formula.OrP(left, right)
	}
	return left, nil
}

// parseAnd : unary ('&' unary)*
func (p *parser) parseAnd() (formula.PForm, error) {
	left, err := p.parseUnary()
	if err != nil {
		return formula.PForm{}, err
	}
	for p.peek().kind == tokAnd {
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return formula.PForm{}, err
		}
		left = formula.AndP(left, right)
	}
	return left, nil
}

// parseUnary handles negation and the four unary past operators, each
// written as a function call: Y(ψ), Z(ψ), O(ψ), H(ψ).
func (p *parser) parseUnary() (formula.PForm, error) {
	switch p.peek().kind {
	case tokNot:
		p.pos++
		f, err := p.parseUnary()
		if err != nil {
			return formula.PForm{}, err
		}
		return formula.NotP(f), nil
	case tokYesterday, tokWYesterday, tokOnce, tokHistorically:
		op := p.peek().kind
		p.pos++
		if err := p.expect(tokLParen); err != nil {
			return formula.PForm{}, err
		}
		arg, err := p.parseIff()
		if err != nil {
			return formula.PForm{}, err
		}
		if err := p.expect(tokRParen); err != nil {
			return formula.PForm{}, err
		}
		switch op {
		case tokYesterday:
			return formula.Y(arg), nil
		case tokWYesterday:
			return formula.Z(arg), nil
		case tokOnce:
			return formula.O(arg), nil
		default:
			return formula.H(arg), nil
		}
	default:
		return p.parseAtom()
	}
}

func (p *parser) parseAtom() (formula.PForm, error) {
	tok := p.peek()
	switch tok.kind {
	case tokLParen:
		p.pos++
		f, err := p.parseIff()
		if err != nil {
			return formula.PForm{}, err
		}
		if err := p.expect(tokRParen); err != nil {
			return formula.PForm{}, err
		}
		return f, nil
	case tokTrue:
		p.pos++
		return formula.TrueP(), nil
	case tokFalse:
		p.pos++
		return formula.FalseP(), nil
	case tokIdent:
		p.pos++
		return formula.AtomP(p.ctx.Plain(tok.text)), nil
	default:
		return formula.PForm{}, fmt.Errorf("%w: unexpected token %q at position %d", synthresult.ErrParse, tok.text, tok.pos)
	}
}
