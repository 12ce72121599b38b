package serial

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/latticeparse/gram/grammar"
	"github.com/latticeparse/gram/text"
)

// Encode marshals g into the YAML tagged-union form from spec.md §6.
func Encode(g *grammar.Grammar) ([]byte, error) {
	w := grammarWire{Name: g.Name, Start: g.Start()}
	var encErr error
	g.Each(func(name string, node grammar.Node) {
		if encErr != nil {
			return
		}
		nw, err := encodeNode(node)
		if err != nil {
			encErr = fmt.Errorf("serial: rule %q: %w", name, err)
			return
		}
		w.Rules = append(w.Rules, ruleWire{Name: name, Node: nw})
	})
	if encErr != nil {
		return nil, encErr
	}
	return yaml.Marshal(w)
}

func encodeNode(n grammar.Node) (nodeWire, error) {
	switch v := n.(type) {
	case grammar.Seq:
		children := make([]nodeWire, len(v))
		for i, c := range v {
			cw, err := encodeNode(c)
			if err != nil {
				return nodeWire{}, err
			}
			children[i] = cw
		}
		return nodeWire{Seq: children}, nil

	case grammar.Alt:
		children := make([]nodeWire, len(v))
		for i, c := range v {
			cw, err := encodeNode(c)
			if err != nil {
				return nodeWire{}, err
			}
			children[i] = cw
		}
		return nodeWire{Alt: children}, nil

	case grammar.Rep:
		inner, err := encodeNode(v.Node)
		if err != nil {
			return nodeWire{}, err
		}
		if v.Min == 0 && v.Max == 1 {
			return nodeWire{Opt: &inner}, nil
		}
		rw := &repWire{Node: inner, Min: v.Min}
		if v.Max != grammar.Unbounded {
			max := v.Max
			rw.Max = &max
		}
		return nodeWire{Rep: rw}, nil

	case grammar.Term:
		s, err := encodeTerminal(v.T)
		if err != nil {
			return nodeWire{}, err
		}
		return nodeWire{Term: &s}, nil

	case grammar.NonTerm:
		s := string(v)
		return nodeWire{NonTerm: &s}, nil

	case grammar.Tagged:
		inner, err := encodeNode(v.Node)
		if err != nil {
			return nodeWire{}, err
		}
		return nodeWire{Tagged: &taggedWire{Node: inner, Tag: v.Tag}}, nil

	case grammar.Meta:
		inner, err := encodeNode(v.Node)
		if err != nil {
			return nodeWire{}, err
		}
		return nodeWire{Meta: &metaWire{Node: inner, Meta: v.KV}}, nil

	default:
		return nodeWire{}, fmt.Errorf("serial: cannot encode node type %T", n)
	}
}

// encodeTerminal renders a text terminal as either its literal string or,
// for a regex, the pattern wrapped in slash delimiters, per spec.md §6.
func encodeTerminal(t grammar.Terminal) (string, error) {
	switch v := t.(type) {
	case text.Literal:
		return string(v), nil
	case *text.Regex:
		return v.ToEBNF(), nil // already "/pattern/"
	default:
		return "", fmt.Errorf("serial: unsupported terminal type %T", t)
	}
}
