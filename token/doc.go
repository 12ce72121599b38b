// Package token implements the parse tree produced by package parser: a
// labeled, hierarchical tree of spans with rule names, tags, meta key/value
// pairs, and children, plus pre-order traversal helpers for querying it by
// rule name, by tag, or by source position.
package token

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key "gram.token".
func tracer() tracing.Trace {
	return tracing.Select("gram.token")
}
