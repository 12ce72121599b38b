package build

import (
	"testing"

	"github.com/latticeparse/gram/grammar"
	"github.com/latticeparse/gram/parser"
)

func TestBuilderAssemblesArithmeticGrammar(t *testing.T) {
	g, err := Grammar("arith").
		Rule("digit").Alt(Lit("0"), Lit("1"), Lit("2"), Lit("3"), Lit("4"), Lit("5"), Lit("6"), Lit("7"), Lit("8"), Lit("9")).
		Rule("number").Node(Plus(Ref("digit"))).
		Rule("factor").Alt(Seq(Lit("("), Ref("expression"), Lit(")")), Ref("number")).
		Rule("term").Seq(Ref("factor"), Star(Seq(Alt(Lit("*"), Lit("/")), Ref("factor")))).
		Rule("expression").Seq(Ref("term"), Star(Seq(Alt(Lit("+"), Lit("-")), Ref("term")))).
		StartRule("expression").
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.Size() != 5 {
		t.Errorf("Size = %d, want 5", g.Size())
	}

	p, err := parser.ParseStart(g, "(1+2)*33")
	if err != nil {
		t.Fatalf("ParseStart: %v", err)
	}
	if p == nil || p.Token.Span.To != 8 {
		t.Errorf("parse result = %+v, want span ending at 8", p)
	}
}

func TestBuilderReportsConflict(t *testing.T) {
	_, err := Grammar("g").
		Rule("a").Node(Lit("x")).
		Rule("a").Node(Lit("y")).
		Build()
	if err == nil {
		t.Fatal("expected a conflict error")
	}
}

func TestRxPanicsOnInvalidPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Rx to panic on an invalid pattern")
		}
	}()
	Rx("(")
}

func TestTagAndMetaWrapping(t *testing.T) {
	n := Tag("kw", Meta(map[string]string{"k": "v"}, Lit("if")))
	tagged, ok := n.(grammar.Tagged)
	if !ok {
		t.Fatalf("Tag should produce a grammar.Tagged, got %T", n)
	}
	if tagged.Tag != "kw" {
		t.Errorf("Tag = %q, want kw", tagged.Tag)
	}
	if _, ok := tagged.Node.(grammar.Meta); !ok {
		t.Errorf("Tagged.Node = %T, want grammar.Meta", tagged.Node)
	}
}
