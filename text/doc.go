// Package text provides grammar.Terminal implementations over string
// sources: literal strings and anchored regular expressions.
package text

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key "gram.text".
func tracer() tracing.Trace {
	return tracing.Select("gram.text")
}
