package lextok

import "github.com/latticeparse/gram/grammar"

// Kind matches a single token of the given kind. pos is a token index,
// not a byte offset; a successful match advances it by exactly one.
type Kind string

var _ grammar.Terminal = Kind("")

// Match implements grammar.Terminal. Source must be a []Token.
func (k Kind) Match(src grammar.Source, pos int) (int, bool) {
	toks, ok := src.([]Token)
	if !ok || pos < 0 || pos >= len(toks) {
		return 0, false
	}
	if toks[pos].Kind != string(k) {
		return 0, false
	}
	return pos + 1, true
}

func (k Kind) ToEBNF() string { return "<" + string(k) + ">" }

func (k Kind) String() string { return k.ToEBNF() }

// Lexeme matches a single token whose exact lexeme text equals the given
// string, regardless of kind.
type Lexeme string

var _ grammar.Terminal = Lexeme("")

// Match implements grammar.Terminal. Source must be a []Token.
func (l Lexeme) Match(src grammar.Source, pos int) (int, bool) {
	toks, ok := src.([]Token)
	if !ok || pos < 0 || pos >= len(toks) {
		return 0, false
	}
	if toks[pos].Lexeme != string(l) {
		return 0, false
	}
	return pos + 1, true
}

func (l Lexeme) ToEBNF() string { return `"` + string(l) + `"` }

func (l Lexeme) String() string { return l.ToEBNF() }
