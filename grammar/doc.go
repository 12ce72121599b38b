// Package grammar implements the algebraic representation of context-free
// grammars used throughout gram: a sum-type tree of nodes (Seq, Alt, Rep,
// Term, NonTerm, Tagged, Meta) and a Grammar container mapping rule names
// to nodes.
//
// Nodes are read-only once built; a Grammar is safe to share across
// concurrent parses (see package parser), but must not be mutated while a
// parse is in flight.
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key "gram.grammar".
func tracer() tracing.Trace {
	return tracing.Select("gram.grammar")
}
