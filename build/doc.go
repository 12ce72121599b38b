// Package build is the programmatic grammar-construction adapter: a
// fluent Go DSL for assembling a grammar.Grammar one rule at a time, plus
// free functions for building grammar.Node literals directly. It is one
// of the three grammar-construction surfaces named in spec.md §6
// (alongside EBNF import and deserialization); it produces the same
// grammar.Node algebra those surfaces do.
package build

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key "gram.build".
func tracer() tracing.Trace {
	return tracing.Select("gram.build")
}
