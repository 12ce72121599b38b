// Package diag defines the diagnostics the parser attaches to a parse
// result when part of the input could not be matched, without the parse
// as a whole being a fatal error.
package diag

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key "gram.diag".
func tracer() tracing.Trace {
	return tracing.Select("gram.diag")
}
