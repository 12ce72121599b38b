package parser

import (
	"github.com/latticeparse/gram/diag"
	"github.com/latticeparse/gram/grammar"
	"github.com/latticeparse/gram/token"
)

// Parsed is the internal result of a successful (possibly partial) match:
// the token produced, the diagnostics accumulated beneath it, and an
// optional Incomplete marker identifying the inner node that failed to
// complete — not itself a diagnostic, but consulted by Alt's tie-break.
type Parsed struct {
	Token      *token.Token
	Diags      []diag.Diagnostic
	Incomplete grammar.Node // nil when the match is fully complete
}

// result is the trampoline's internal "none | some(Parsed)" value.
type result struct {
	ok     bool
	parsed *Parsed
}

func none() *result { return &result{ok: false} }

func some(p *Parsed) *result { return &result{ok: true, parsed: p} }
