package token

import "github.com/latticeparse/gram"

// WalkGrams invokes f(name, span) for every token in the tree rooted at t
// whose Gram is non-empty, in pre-order. It recurses into every subtree
// regardless of whether the current node matched, since an inner rule may
// be labelled even when an outer one is not.
func WalkGrams(t *Token, f func(name string, span gram.Span)) {
	if t == nil {
		return
	}
	if t.HasGram() {
		f(t.Gram, t.Span)
	}
	for _, c := range t.Children {
		WalkGrams(c, f)
	}
}

// IterLabelled lazily walks the tree rooted at t in pre-order, invoking
// visit for every token (self first, then children) whose Tags contains
// label. The walk descends into both matching and non-matching subtrees,
// since a tag on an outer token says nothing about its descendants.
//
// visit returning false stops the walk early.
func IterLabelled(t *Token, label string, visit func(*Token) bool) {
	iterPred(t, func(n *Token) bool { return n.HasTag(label) }, visit)
}

// IterGrams is IterLabelled's analogue for rule names: it visits every
// token whose Gram equals name.
func IterGrams(t *Token, name string, visit func(*Token) bool) {
	iterPred(t, func(n *Token) bool { return n.Gram == name }, visit)
}

func iterPred(t *Token, pred func(*Token) bool, visit func(*Token) bool) bool {
	if t == nil {
		return true
	}
	if pred(t) {
		if !visit(t) {
			return false
		}
	}
	for _, c := range t.Children {
		if !iterPred(c, pred, visit) {
			return false
		}
	}
	return true
}

// IterAtPos returns the path from the root to the deepest descendant of t
// whose span contains pos, descending at each level into the first child
// whose span contains pos and stopping when no child does. The root is
// always the first element of the returned path if its span contains pos;
// an empty slice is returned if it does not.
func IterAtPos(t *Token, pos int) []*Token {
	var path []*Token
	cur := t
	for cur != nil && contains(cur.Span, pos) {
		path = append(path, cur)
		var next *Token
		for _, c := range cur.Children {
			if contains(c.Span, pos) {
				next = c
				break
			}
		}
		cur = next
	}
	return path
}

func contains(s gram.Span, pos int) bool {
	if s.Empty() {
		return pos == s.From
	}
	return pos >= s.From && pos < s.To
}
