package build

import (
	"github.com/latticeparse/gram/grammar"
	"github.com/latticeparse/gram/text"
)

// Seq builds a grammar.Seq from its arguments.
func Seq(nodes ...grammar.Node) grammar.Node { return grammar.Seq(nodes) }

// Alt builds a grammar.Alt from its arguments.
func Alt(nodes ...grammar.Node) grammar.Node { return grammar.Alt(nodes) }

// Rep builds a grammar.Rep matching node between min and max times
// inclusive.
func Rep(node grammar.Node, min, max int) grammar.Node {
	return grammar.Rep{Node: node, Min: min, Max: max}
}

// Opt is Rep(node, 0, 1) — the inner node matches zero or one times.
func Opt(node grammar.Node) grammar.Node { return Rep(node, 0, 1) }

// Star is Rep(node, 0, Unbounded) — zero or more.
func Star(node grammar.Node) grammar.Node { return Rep(node, 0, grammar.Unbounded) }

// Plus is Rep(node, 1, Unbounded) — one or more.
func Plus(node grammar.Node) grammar.Node { return Rep(node, 1, grammar.Unbounded) }

// Lit builds a Terminal matching the exact literal string s.
func Lit(s string) grammar.Node { return grammar.Term{T: text.Literal(s)} }

// Rx builds a Terminal matching regex pattern, anchored at the current
// offset. An invalid pattern panics, matching this package's
// panic-on-misuse convention for construction-time programmer errors
// (parse-time failures are returned as errors; malformed DSL calls are
// not).
func Rx(pattern string) grammar.Node {
	return grammar.Term{T: text.MustRegex(pattern)}
}

// Ref builds a NonTerm referencing name.
func Ref(name string) grammar.Node { return grammar.NonTerm(name) }

// Tag wraps node so that, on a successful match, tag is appended to the
// produced token's tag list.
func Tag(tag string, node grammar.Node) grammar.Node {
	return grammar.Tagged{Node: node, Tag: tag}
}

// Meta wraps node so that, on a successful match, kv is merged into the
// produced token's meta map.
func Meta(kv map[string]string, node grammar.Node) grammar.Node {
	return grammar.Meta{Node: node, KV: kv}
}
