package parse

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ravelin-labs/pltlsynth/pkg/synthresult"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokLParen
	tokRParen
	tokComma
	tokNot
	tokAnd
	tokOr
	tokImplies
	tokIff
	tokSince
	tokTriggered
	tokYesterday
	tokWYesterday
	tokOnce
	tokHistorically
	tokTrue
	tokFalse
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

var keywords = map[string]tokenKind{
	"S": tokSince,
	"T": tokTriggered,
	"Y": tokYesterday,
	"Z": tokWYesterday,
	"O": tokOnce,
	"H": tokHistorically,
}

// lexer turns a formula's source text into a token stream. It's a plain
// hand-rolled scanner, not a generated one — the grammar is small enough
// that a lexer/parser generator would be more machinery than the problem
// needs.
type lexer struct {
	src  string
	pos  int
	toks []token
}

func lex(src string) ([]token, error) {
	l := &lexer{src: src}
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		l.toks = append(l.toks, tok)
		if tok.kind == tokEOF {
			return l.toks, nil
		}
	}
}

func (l *lexer) next() (token, error) {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, pos: l.pos}, nil
	}

	start := l.pos
	c := rune(l.src[l.pos])

	switch {
	case c == '(':
		l.pos++
		return token{kind: tokLParen, text: "(", pos: start}, nil
	case c == ')':
		l.pos++
		return token{kind: tokRParen, text: ")", pos: start}, nil
	case c == ',':
		l.pos++
		return token{kind: tokComma, text: ",", pos: start}, nil
	case c == '!' || c == '~':
		l.pos++
		return token{kind: tokNot, text: string(c), pos: start}, nil
	case c == '&':
		l.pos++
		return token{kind: tokAnd, text: "&", pos: start}, nil
	case c == '|':
		l.pos++
		return token{kind: tokOr, text: "|", pos: start}, nil
	case c == '<' && strings.HasPrefix(l.src[l.pos:], "<->"):
		l.pos += 3
		return token{kind: tokIff, text: "<->", pos: start}, nil
	case c == '-' && strings.HasPrefix(l.src[l.pos:], "->"):
		l.pos += 2
		return token{kind: tokImplies, text: "->", pos: start}, nil
	case unicode.IsLetter(c) || c == '_':
		for l.pos < len(l.src) && (unicode.IsLetter(rune(l.src[l.pos])) || unicode.IsDigit(rune(l.src[l.pos])) || l.src[l.pos] == '_') {
			l.pos++
		}
		word := l.src[start:l.pos]
		if kind, ok := keywords[word]; ok {
			return token{kind: kind, text: word, pos: start}, nil
		}
		switch strings.ToLower(word) {
		case "true":
			return token{kind: tokTrue, text: word, pos: start}, nil
		case "false":
			return token{kind: tokFalse, text: word, pos: start}, nil
		}
		return token{kind: tokIdent, text: word, pos: start}, nil
	default:
		return token{}, fmt.Errorf("%w: unexpected character %q at position %d", synthresult.ErrParse, c, start)
	}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) && unicode.IsSpace(rune(l.src[l.pos])) {
		l.pos++
	}
}
