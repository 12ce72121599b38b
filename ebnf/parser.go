package ebnf

import (
	"fmt"

	"github.com/latticeparse/gram/grammar"
	"github.com/latticeparse/gram/text"
)

// Parse reads src as the EBNF-like grammar syntax from spec.md §6 and
// returns an assembled, named grammar.Grammar. Each rule becomes one Add
// call; a conflicting or malformed rule aborts with an error, matching
// the "missing rule / invalid construct" fatal-error tier rather than
// producing partial output.
func Parse(name, src string) (*grammar.Grammar, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	g := grammar.New(name)
	for p.cur.kind != tokEOF {
		ruleName, node, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		if err := g.Add(ruleName, node); err != nil {
			return nil, err
		}
	}
	return g, nil
}

type parser struct {
	lex *lexer
	cur token
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

func (p *parser) expect(k tokKind, what string) (token, error) {
	if p.cur.kind != k {
		return token{}, fmt.Errorf("ebnf: %s: expected %s", p.cur.pos, what)
	}
	t := p.cur
	if err := p.advance(); err != nil {
		return token{}, err
	}
	return t, nil
}

// parseRule parses `name = alt ;`.
func (p *parser) parseRule() (string, grammar.Node, error) {
	nameTok, err := p.expect(tokIdent, "a rule name")
	if err != nil {
		return "", nil, err
	}
	if _, err := p.expect(tokEquals, "'='"); err != nil {
		return "", nil, err
	}
	node, err := p.parseAlt()
	if err != nil {
		return "", nil, err
	}
	if _, err := p.expect(tokSemi, "';'"); err != nil {
		return "", nil, err
	}
	return nameTok.text, node, nil
}

// parseAlt parses pipe-separated seq groups, flattening into a single
// grammar.Alt unless there is exactly one alternative.
func (p *parser) parseAlt() (grammar.Node, error) {
	first, err := p.parseSeq()
	if err != nil {
		return nil, err
	}
	alts := []grammar.Node{first}
	for p.cur.kind == tokPipe {
		if err := p.advance(); err != nil {
			return nil, err
		}
		n, err := p.parseSeq()
		if err != nil {
			return nil, err
		}
		alts = append(alts, n)
	}
	if len(alts) == 1 {
		return alts[0], nil
	}
	return grammar.Alt(alts), nil
}

// parseSeq parses postfix terms separated by commas or by juxtaposition
// (the form Export writes a Seq in), flattening into a single grammar.Seq
// unless there is exactly one term.
func (p *parser) parseSeq() (grammar.Node, error) {
	first, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	seq := []grammar.Node{first}
loop:
	for {
		switch p.cur.kind {
		case tokComma:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case tokIdent, tokString, tokRegex, tokLParen, tokLBracket, tokLBrace:
		default:
			break loop
		}
		n, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		seq = append(seq, n)
	}
	if len(seq) == 1 {
		return seq[0], nil
	}
	return grammar.Seq(seq), nil
}

// parsePostfix parses a primary followed by an optional trailing
// '?' | '*' | '+' repetition suffix.
func (p *parser) parsePostfix() (grammar.Node, error) {
	n, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	switch p.cur.kind {
	case tokQuestion:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return grammar.Rep{Node: n, Min: 0, Max: 1}, nil
	case tokStar:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return grammar.Rep{Node: n, Min: 0, Max: grammar.Unbounded}, nil
	case tokPlus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return grammar.Rep{Node: n, Min: 1, Max: grammar.Unbounded}, nil
	default:
		return n, nil
	}
}

// parsePrimary parses an identifier, a literal/regex terminal, or a
// parenthesized/bracketed/braced group.
func (p *parser) parsePrimary() (grammar.Node, error) {
	switch p.cur.kind {
	case tokIdent:
		name := p.cur.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return grammar.NonTerm(name), nil

	case tokString:
		lit := p.cur.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return grammar.Term{T: text.Literal(lit)}, nil

	case tokRegex:
		pattern := p.cur.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		re, err := text.NewRegex(pattern)
		if err != nil {
			return nil, err
		}
		return grammar.Term{T: re}, nil

	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		n, err := p.parseAlt()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return n, nil

	case tokLBracket:
		if err := p.advance(); err != nil {
			return nil, err
		}
		n, err := p.parseAlt()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRBracket, "']'"); err != nil {
			return nil, err
		}
		return grammar.Rep{Node: n, Min: 0, Max: 1}, nil

	case tokLBrace:
		if err := p.advance(); err != nil {
			return nil, err
		}
		n, err := p.parseAlt()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRBrace, "'}'"); err != nil {
			return nil, err
		}
		return grammar.Rep{Node: n, Min: 0, Max: grammar.Unbounded}, nil

	default:
		return nil, fmt.Errorf("ebnf: %s: expected an identifier, literal, or group", p.cur.pos)
	}
}
