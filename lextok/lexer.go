package lextok

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/latticeparse/gram"
)

// Token is one scanned unit: a kind label, the matched text, and its byte
// span in the original source (carried through for diagnostics even
// though the parser addresses tokens by index, not by byte offset).
type Token struct {
	Kind   string
	Lexeme string
	Span   gram.Span
}

// Rule is one lexer rule: Pattern is a lexmachine regex; tokens matching
// it are reported with Kind, unless Skip is set, in which case the match
// is discarded (for whitespace, comments, and the like).
type Rule struct {
	Kind    string
	Pattern string
	Skip    bool
}

// Lexer is a compiled DFA built from a list of Rules, modeled on the
// reference material's LMAdapter: rules are registered with the
// underlying lexmachine.Lexer and then compiled once, up front.
type Lexer struct {
	lx *lexmachine.Lexer
}

// NewLexer compiles rules into a DFA. Rules are tried in listed order on
// ties, matching lexmachine's own longest-match-then-first-rule
// semantics.
func NewLexer(rules []Rule) (*Lexer, error) {
	lx := lexmachine.NewLexer()
	for _, r := range rules {
		kind := r.Kind
		skip := r.Skip
		lx.Add([]byte(r.Pattern), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			if skip {
				return nil, nil
			}
			return s.Token(0, kind, m), nil
		})
	}
	if err := lx.Compile(); err != nil {
		return nil, fmt.Errorf("lextok: compiling DFA: %w", err)
	}
	return &Lexer{lx: lx}, nil
}

// Tokenize scans src end to end and returns every non-skipped Token, in
// order.
func (l *Lexer) Tokenize(src string) ([]Token, error) {
	scanner, err := l.lx.Scanner([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("lextok: %w", err)
	}
	var out []Token
	for {
		tok, err, eof := scanner.Next()
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				tracer().Errorf("lextok: unconsumed input: %v", ui)
				scanner.TC = ui.FailTC
				continue
			}
			return nil, fmt.Errorf("lextok: %w", err)
		}
		if eof {
			break
		}
		lt := tok.(*lexmachine.Token)
		kind, _ := lt.Value.(string)
		out = append(out, Token{
			Kind:   kind,
			Lexeme: string(lt.Lexeme),
			Span:   gram.Span{From: lt.TC, To: lt.TC + len(lt.Lexeme)},
		})
	}
	return out, nil
}
