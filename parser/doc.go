// Package parser implements the iterative, explicit-stack trampoline that
// matches a grammar.Node against a grammar.Source starting at an offset,
// producing a token.Token tree plus diagnostics rather than overflowing the
// host stack on deep or wide grammars.
package parser

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key "gram.parser".
func tracer() tracing.Trace {
	return tracing.Select("gram.parser")
}
