package token

import "github.com/latticeparse/gram"

// Token is one node of a parse tree: the span of input it covers, the
// rule name that produced it (if any — only NonTerm frames set this),
// the tags accumulated from enclosing Tagged wrappers, the meta key/value
// pairs accumulated from enclosing Meta wrappers, and its children in
// match order.
//
// Invariant: for a non-leaf token, Span.From equals the first child's
// Span.From and Span.To equals the last child's Span.To; a childless
// token's span is empty and positioned at the rule's entry offset.
type Token struct {
	Span     gram.Span
	Gram     string // rule name; "" if this token has no NonTerm label
	Tags     []string
	Meta     map[string]string
	Children []*Token
}

// HasGram reports whether this token carries a rule label.
func (t *Token) HasGram() bool {
	return t.Gram != ""
}

// HasTag reports whether label is among t's tags.
func (t *Token) HasTag(label string) bool {
	for _, tag := range t.Tags {
		if tag == label {
			return true
		}
	}
	return false
}

// Leaf creates a token for a terminal match: no gram, tags, meta, or
// children.
func Leaf(span gram.Span) *Token {
	return &Token{Span: span}
}

// WithTag returns a copy of t with tag appended to its tag list. Used by
// the parser's Tagged frame when integrating a child result; t itself is
// not mutated, matching the reference material's preference for
// non-destructive tree construction during parsing.
func (t *Token) WithTag(tag string) *Token {
	cp := *t
	cp.Tags = append(append([]string{}, t.Tags...), tag)
	return &cp
}

// WithMeta returns a copy of t with kv merged into its meta map, later
// writes winning on key collision (per spec.md's stated policy for
// overlapping Meta wrappers).
func (t *Token) WithMeta(kv map[string]string) *Token {
	cp := *t
	merged := make(map[string]string, len(t.Meta)+len(kv))
	for k, v := range t.Meta {
		merged[k] = v
	}
	for k, v := range kv {
		merged[k] = v
	}
	cp.Meta = merged
	return &cp
}

// Composite builds a token spanning its children's convex hull (first
// child's start to last child's end), with the given gram label (which
// may be empty). When children is empty, the token's span is the empty
// span [at, at), matching spec.md's rule that a childless token is
// positioned at its rule's entry offset.
func Composite(gramName string, children []*Token, at int) *Token {
	t := &Token{Gram: gramName, Children: children}
	if len(children) > 0 {
		t.Span = children[0].Span.Extend(children[len(children)-1].Span)
	} else {
		t.Span = gram.Span{From: at, To: at}
	}
	return t
}
