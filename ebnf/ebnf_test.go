package ebnf

import (
	"strings"
	"testing"

	"github.com/latticeparse/gram/parser"
)

func TestParseSimpleGrammar(t *testing.T) {
	src := `
digit = "0" | "1" | "2" ;
number = digit+ ;
`
	g, err := Parse("nums", src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Size() != 2 {
		t.Fatalf("Size = %d, want 2", g.Size())
	}
	g.SetStart("number")
	p, err := parser.ParseStart(g, "210")
	if err != nil {
		t.Fatalf("ParseStart: %v", err)
	}
	if p == nil || p.Token.Span.To != 3 {
		t.Errorf("parse result = %+v, want span ending at 3", p)
	}
}

func TestParseGroupsAndOptionalAndRegex(t *testing.T) {
	src := `
greeting = "hello" , [ "," ] , /[a-z]+/ ;
`
	g, err := Parse("greet", src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g.SetStart("greeting")
	p, err := parser.ParseStart(g, "helloworld")
	if err != nil {
		t.Fatalf("ParseStart: %v", err)
	}
	if p == nil || p.Token.Span.To != 10 {
		t.Errorf("parse result = %+v, want span ending at 10", p)
	}
}

func TestParseRejectsConflictingRule(t *testing.T) {
	src := `
a = "x" ;
a = "y" ;
`
	if _, err := Parse("bad", src); err == nil {
		t.Fatal("expected a conflict error")
	}
}

func TestParseRejectsMalformedSyntax(t *testing.T) {
	if _, err := Parse("bad", `a = ;`); err == nil {
		t.Fatal("expected a syntax error")
	}
}

func TestExportAlignsEquals(t *testing.T) {
	g, err := Parse("g", `digit = "0" ; number = digit+ ;`)
	if err != nil {
		t.Fatal(err)
	}
	out := Export(g)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2: %q", len(lines), out)
	}
	eq0 := strings.Index(lines[0], "=")
	eq1 := strings.Index(lines[1], "=")
	if eq0 != eq1 {
		t.Errorf("'=' columns differ: %d vs %d in %q", eq0, eq1, out)
	}
}

func TestRoundTripPreservesParseBehavior(t *testing.T) {
	src := `digit = "0" | "1" ; number = digit+ ;`
	g1, err := Parse("g1", src)
	if err != nil {
		t.Fatal(err)
	}
	g1.SetStart("number")
	before, err := parser.ParseStart(g1, "101")
	if err != nil {
		t.Fatal(err)
	}

	exported := Export(g1)
	g2, err := Parse("g2", exported)
	if err != nil {
		t.Fatalf("re-parsing exported grammar: %v\n%s", err, exported)
	}
	g2.SetStart("number")
	after, err := parser.ParseStart(g2, "101")
	if err != nil {
		t.Fatal(err)
	}

	if before.Token.Span != after.Token.Span {
		t.Errorf("round-trip changed parse span: %v vs %v", before.Token.Span, after.Token.Span)
	}
}
