// Package ebnf is the textual-grammar adapter named in spec.md §6: Parse
// reads the EBNF-like surface syntax (alternation, concatenation,
// grouping, optional/star/plus repetition, literal and regex terminals)
// into a grammar.Grammar, and Export renders a grammar.Grammar back to
// that syntax. The importer is a small hand-rolled lexer feeding a
// recursive-descent parser, modeled on the reference material's
// lexer/parser pairing rather than its Earley-chart implementation —
// the EBNF-of-EBNF grammar itself needs no backtracking or ambiguity
// handling.
package ebnf

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key "gram.ebnf".
func tracer() tracing.Trace {
	return tracing.Select("gram.ebnf")
}
