package serial

import (
	"strings"
	"testing"

	"github.com/latticeparse/gram/build"
	"github.com/latticeparse/gram/grammar"
	"github.com/latticeparse/gram/parser"
)

func sampleGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	g, err := build.Grammar("sample").
		Rule("digit").Alt(build.Lit("0"), build.Lit("1")).
		Rule("number").Node(build.Tag("num", build.Plus(build.Ref("digit")))).
		StartRule("number").
		Build()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	g := sampleGrammar(t)
	data, err := Encode(g)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	g2, err := Decode("", data)
	if err != nil {
		t.Fatalf("Decode: %v\n%s", err, data)
	}
	if g2.Size() != g.Size() {
		t.Fatalf("Size = %d, want %d", g2.Size(), g.Size())
	}
	g2.SetStart("number")
	p, err := parser.ParseStart(g2, "0110")
	if err != nil {
		t.Fatalf("ParseStart: %v", err)
	}
	if p == nil || p.Token.Span.To != 4 {
		t.Errorf("parse result = %+v, want span ending at 4", p)
	}
	// The Tagged wrapper sits inside rule "number", so the tag is on the
	// rule token's only child, not on the rule token itself.
	if len(p.Token.Children) != 1 || !p.Token.Children[0].HasTag("num") {
		t.Errorf("decoded grammar lost the Tagged wrapper: %+v", p.Token)
	}
}

func TestEncodeOptSugarForRepZeroOne(t *testing.T) {
	g, err := build.Grammar("g").Rule("x").Node(build.Opt(build.Lit("a"))).Build()
	if err != nil {
		t.Fatal(err)
	}
	data, err := Encode(g)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "opt:") {
		t.Errorf("expected opt: sugar in output:\n%s", data)
	}
	if strings.Contains(string(data), "rep:") {
		t.Errorf("did not expect rep: for a 0..1 repetition:\n%s", data)
	}
}

func TestDecodeAcceptsRepEquivalentOfOpt(t *testing.T) {
	yml := `
name: g
rules:
  - name: x
    node:
      rep:
        node:
          term: a
        max: 1
`
	g, err := Decode("", []byte(yml))
	if err != nil {
		t.Fatal(err)
	}
	n, ok := g.Get("x")
	if !ok {
		t.Fatal("rule x missing")
	}
	rep, ok := n.(grammar.Rep)
	if !ok || rep.Min != 0 || rep.Max != 1 {
		t.Errorf("x = %+v, want Rep{Min:0,Max:1}", n)
	}
}

func TestDecodeRegexTerminal(t *testing.T) {
	yml := `
name: g
rules:
  - name: word
    node:
      term: /[a-z]+/
`
	g, err := Decode("", []byte(yml))
	if err != nil {
		t.Fatal(err)
	}
	n, _ := g.Get("word")
	term, ok := n.(grammar.Term)
	if !ok {
		t.Fatalf("word = %T, want grammar.Term", n)
	}
	if _, ok := term.T.(interface{ ToEBNF() string }); !ok {
		t.Fatalf("terminal does not implement ToEBNF")
	}
}

func TestDecodeRejectsAmbiguousNode(t *testing.T) {
	yml := `
name: g
rules:
  - name: bad
    node:
      term: a
      non_term: b
`
	if _, err := Decode("", []byte(yml)); err == nil {
		t.Fatal("expected an error for a node with two keys set")
	}
}
