package grammar

import (
	"fmt"
	"math"
	"strings"
)

// Unbounded is the value used for Rep.Max to denote an unbounded repetition.
const Unbounded = math.MaxInt

// Source is the input a Terminal matches against. Concrete Terminal
// implementations type-assert it to whatever concrete shape they expect
// (a string for text terminals, a []lextok.Token for token terminals).
// This indirection is what lets the same grammar algebra and the same
// parser trampoline drive unrelated kinds of input.
type Source interface{}

// Terminal is the contract a leaf matcher must satisfy. Match attempts to
// match at offset pos in src and, on success, returns the offset one past
// the end of the match. Implementations must be deterministic; a
// zero-width match (end == pos) is legal and is handled specially by Rep.
type Terminal interface {
	Match(src Source, pos int) (end int, ok bool)
}

// Node is a grammar production's right-hand side: a sum type with seven
// variants (Seq, Alt, Rep, Term, NonTerm, Tagged, Meta). The variants are
// closed — new behavior is added by extending the type switches in
// package parser and in ToEBNF, not by adding implementers elsewhere.
type Node interface {
	isNode()
	// ToEBNF renders the node using the textual grammar syntax from the
	// EBNF export rules. Reps outside {0,1},{0,∞},{1,∞} are not
	// representable and render as a bracketed error marker.
	ToEBNF() string
}

// Seq matches every child in order; the whole matches only if every child
// matches. Must be non-empty in a well-formed grammar.
type Seq []Node

func (Seq) isNode() {}

func (s Seq) ToEBNF() string {
	parts := make([]string, len(s))
	for i, n := range s {
		parts[i] = wrapIfCompound(n)
	}
	return strings.Join(parts, " ")
}

// Alt tries every child, starting at the same offset, and keeps the
// longest successful match (ties broken in favor of a complete match).
// Must be non-empty in a well-formed grammar.
type Alt []Node

func (Alt) isNode() {}

func (a Alt) ToEBNF() string {
	parts := make([]string, len(a))
	for i, n := range a {
		parts[i] = wrapIfCompound(n)
	}
	return strings.Join(parts, " | ")
}

// Rep matches Node between Min and Max times inclusive. Max may be
// Unbounded. Min must be <= Max.
type Rep struct {
	Node Node
	Min  int
	Max  int
}

func (Rep) isNode() {}

func (r Rep) ToEBNF() string {
	inner := wrapIfCompound(r.Node)
	switch {
	case r.Min == 0 && r.Max == 1:
		return "[" + inner + "]"
	case r.Min == 1 && r.Max == Unbounded:
		return inner + "+"
	case r.Min == 0 && r.Max == Unbounded:
		return inner + "*"
	default:
		return fmt.Sprintf("<unrepresentable repetition %d..%d of %s>", r.Min, r.Max, inner)
	}
}

// Term delegates to a Terminal matcher.
type Term struct {
	T Terminal
}

func (Term) isNode() {}

func (t Term) ToEBNF() string {
	if r, ok := t.T.(interface{ ToEBNF() string }); ok {
		return r.ToEBNF()
	}
	return fmt.Sprintf("%v", t.T)
}

// NonTerm references another rule by name. Resolution happens at parse
// time; an unresolved name is a fatal error, not a diagnostic.
type NonTerm string

func (NonTerm) isNode() {}

func (n NonTerm) ToEBNF() string { return string(n) }

// Tagged matches Node and, on success, appends Tag to the produced
// token's tag list.
type Tagged struct {
	Node Node
	Tag  string
}

func (Tagged) isNode() {}

func (t Tagged) ToEBNF() string { return t.Node.ToEBNF() }

// Meta matches Node and, on success, merges KV into the produced token's
// meta map.
type Meta struct {
	Node Node
	KV   map[string]string
}

func (Meta) isNode() {}

func (m Meta) ToEBNF() string { return m.Node.ToEBNF() }

// wrapIfCompound parenthesizes n's EBNF rendering when n is a Seq or Alt,
// so nesting them inside another Seq/Alt round-trips unambiguously.
func wrapIfCompound(n Node) string {
	switch n.(type) {
	case Seq, Alt:
		return "(" + n.ToEBNF() + ")"
	default:
		return n.ToEBNF()
	}
}

// Validate checks the structural invariants from the data model: Seq/Alt
// must be non-empty and Rep.Min must not exceed Rep.Max. It does not
// resolve NonTerm references — that happens at parse time, where an
// undefined rule is a fatal error (see package parser).
func Validate(n Node) error {
	switch v := n.(type) {
	case Seq:
		if len(v) == 0 {
			return fmt.Errorf("grammar: empty Seq is not well-formed")
		}
		for _, c := range v {
			if err := Validate(c); err != nil {
				return err
			}
		}
	case Alt:
		if len(v) == 0 {
			return fmt.Errorf("grammar: empty Alt is not well-formed")
		}
		for _, c := range v {
			if err := Validate(c); err != nil {
				return err
			}
		}
	case Rep:
		if v.Min > v.Max {
			return fmt.Errorf("grammar: Rep.Min (%d) exceeds Rep.Max (%d)", v.Min, v.Max)
		}
		return Validate(v.Node)
	case Tagged:
		return Validate(v.Node)
	case Meta:
		return Validate(v.Node)
	case Term, NonTerm:
		// leaves, nothing to check structurally
	default:
		return fmt.Errorf("grammar: unknown node type %T", n)
	}
	return nil
}

// RenameReference rewrites every NonTerm(old) found within n to
// NonTerm(new), returning a new tree (n itself is not mutated; slices and
// structs are shallow-copied as needed along the rewritten path).
func RenameReference(n Node, old, new string) Node {
	switch v := n.(type) {
	case Seq:
		out := make(Seq, len(v))
		for i, c := range v {
			out[i] = RenameReference(c, old, new)
		}
		return out
	case Alt:
		out := make(Alt, len(v))
		for i, c := range v {
			out[i] = RenameReference(c, old, new)
		}
		return out
	case Rep:
		v.Node = RenameReference(v.Node, old, new)
		return v
	case Tagged:
		v.Node = RenameReference(v.Node, old, new)
		return v
	case Meta:
		v.Node = RenameReference(v.Node, old, new)
		return v
	case NonTerm:
		if string(v) == old {
			return NonTerm(new)
		}
		return v
	default:
		return n
	}
}
