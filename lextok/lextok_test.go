package lextok

import (
	"testing"

	"github.com/latticeparse/gram/grammar"
	"github.com/latticeparse/gram/parser"
)

func TestKindMatchesByTokenIndex(t *testing.T) {
	toks := []Token{
		{Kind: "NUM", Lexeme: "1"},
		{Kind: "PLUS", Lexeme: "+"},
		{Kind: "NUM", Lexeme: "2"},
	}
	end, ok := Kind("NUM").Match(toks, 0)
	if !ok || end != 1 {
		t.Errorf("Match(toks,0) = %d,%v, want 1,true", end, ok)
	}
	if _, ok := Kind("NUM").Match(toks, 1); ok {
		t.Errorf("token 1 is PLUS, should not match NUM")
	}
	if _, ok := Kind("NUM").Match(toks, 3); ok {
		t.Errorf("out-of-range index should not match")
	}
}

func TestLexemeMatchesExactText(t *testing.T) {
	toks := []Token{{Kind: "OP", Lexeme: "+"}}
	end, ok := Lexeme("+").Match(toks, 0)
	if !ok || end != 1 {
		t.Errorf("Match = %d,%v, want 1,true", end, ok)
	}
	if _, ok := Lexeme("-").Match(toks, 0); ok {
		t.Errorf("lexeme mismatch should not match")
	}
}

func TestTerminalsRejectNonTokenSlice(t *testing.T) {
	if _, ok := Kind("NUM").Match("not a token slice", 0); ok {
		t.Errorf("Kind should reject a non-[]Token Source")
	}
}

func TestLexerTokenizesAndDrivesParser(t *testing.T) {
	lx, err := NewLexer([]Rule{
		{Pattern: `( |\t)+`, Skip: true},
		{Kind: "NUM", Pattern: `[0-9]+`},
		{Kind: "PLUS", Pattern: `\+`},
	})
	if err != nil {
		t.Fatalf("NewLexer: %v", err)
	}
	toks, err := lx.Tokenize("12 + 34")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) != 3 {
		t.Fatalf("tokens = %+v, want 3", toks)
	}
	if toks[0].Kind != "NUM" || toks[1].Kind != "PLUS" || toks[2].Kind != "NUM" {
		t.Errorf("token kinds = %+v, want NUM PLUS NUM", toks)
	}

	g := grammar.New("sum")
	g.Add("sum", grammar.Seq{grammar.Term{T: Kind("NUM")}, grammar.Term{T: Kind("PLUS")}, grammar.Term{T: Kind("NUM")}})
	g.SetStart("sum")

	p, err := parser.ParseStart(g, toks)
	if err != nil {
		t.Fatalf("ParseStart: %v", err)
	}
	if p == nil {
		t.Fatal("expected a match")
	}
	if p.Token.Span.From != 0 || p.Token.Span.To != 3 {
		t.Errorf("span = %v, want 0..3 (token indices, not byte offsets)", p.Token.Span)
	}
}
