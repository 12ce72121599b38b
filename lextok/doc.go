// Package lextok provides a token-stream grammar.Terminal family: a
// timtadh/lexmachine-backed DFA tokenizer produces a []Token slice, and
// Kind/Lexeme match against that slice by token index rather than by
// byte offset. It exists to exercise the core parser over a genuinely
// different Source shape than package text's strings, demonstrating that
// the parser trampoline is agnostic to what "position" and "match" mean,
// modeled on the reference material's LMAdapter wrapping of lexmachine.
package lextok

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key "gram.lextok".
func tracer() tracing.Trace {
	return tracing.Select("gram.lextok")
}
