package serial

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/latticeparse/gram/grammar"
	"github.com/latticeparse/gram/text"
)

// Decode unmarshals the YAML tagged-union form from spec.md §6 into a new
// Grammar. name overrides the grammar's Name if non-empty; otherwise the
// wire form's own name field is used.
func Decode(name string, data []byte) (*grammar.Grammar, error) {
	var w grammarWire
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("serial: %w", err)
	}
	if name == "" {
		name = w.Name
	}
	g := grammar.New(name)
	for _, r := range w.Rules {
		node, err := decodeNode(r.Node)
		if err != nil {
			return nil, fmt.Errorf("serial: rule %q: %w", r.Name, err)
		}
		if err := g.Add(r.Name, node); err != nil {
			return nil, err
		}
	}
	if w.Start != "" {
		g.SetStart(w.Start)
	}
	return g, nil
}

func decodeNode(w nodeWire) (grammar.Node, error) {
	set := 0
	for _, ok := range []bool{
		w.Seq != nil, w.Alt != nil, w.Rep != nil, w.Opt != nil,
		w.Term != nil, w.NonTerm != nil, w.Tagged != nil, w.Meta != nil,
	} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("serial: node must have exactly one of seq/alt/rep/opt/term/non_term/tagged/meta, found %d", set)
	}

	switch {
	case w.Seq != nil:
		children, err := decodeChildren(w.Seq)
		if err != nil {
			return nil, err
		}
		return grammar.Seq(children), nil

	case w.Alt != nil:
		children, err := decodeChildren(w.Alt)
		if err != nil {
			return nil, err
		}
		return grammar.Alt(children), nil

	case w.Rep != nil:
		inner, err := decodeNode(w.Rep.Node)
		if err != nil {
			return nil, err
		}
		max := grammar.Unbounded
		if w.Rep.Max != nil {
			max = *w.Rep.Max
		}
		return grammar.Rep{Node: inner, Min: w.Rep.Min, Max: max}, nil

	case w.Opt != nil:
		inner, err := decodeNode(*w.Opt)
		if err != nil {
			return nil, err
		}
		return grammar.Rep{Node: inner, Min: 0, Max: 1}, nil

	case w.Term != nil:
		return decodeTerminal(*w.Term)

	case w.NonTerm != nil:
		return grammar.NonTerm(*w.NonTerm), nil

	case w.Tagged != nil:
		inner, err := decodeNode(w.Tagged.Node)
		if err != nil {
			return nil, err
		}
		return grammar.Tagged{Node: inner, Tag: w.Tagged.Tag}, nil

	case w.Meta != nil:
		inner, err := decodeNode(w.Meta.Node)
		if err != nil {
			return nil, err
		}
		return grammar.Meta{Node: inner, KV: w.Meta.Meta}, nil
	}
	panic("unreachable")
}

func decodeChildren(ws []nodeWire) ([]grammar.Node, error) {
	out := make([]grammar.Node, len(ws))
	for i, w := range ws {
		n, err := decodeNode(w)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// decodeTerminal interprets a term's value as a slash-delimited regex
// when it is at least two characters long and both delimited by '/',
// otherwise as a literal string — the ambiguity spec.md §6 accepts for
// literals that happen to look slash-delimited.
func decodeTerminal(s string) (grammar.Node, error) {
	if len(s) >= 2 && strings.HasPrefix(s, "/") && strings.HasSuffix(s, "/") {
		re, err := text.NewRegex(s[1 : len(s)-1])
		if err != nil {
			return nil, err
		}
		return grammar.Term{T: re}, nil
	}
	return grammar.Term{T: text.Literal(s)}, nil
}
