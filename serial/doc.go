// Package serial implements the YAML tagged-union grammar adapter from
// spec.md §6: each grammar.Node serializes as a YAML mapping with exactly
// one of the keys seq/alt/rep/opt/term/non_term/tagged/meta.
package serial

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key "gram.serial".
func tracer() tracing.Trace {
	return tracing.Select("gram.serial")
}
