package diag

import (
	"fmt"

	"github.com/latticeparse/gram"
)

// Diagnostic is a recoverable observation attached to a successful-but-
// imperfect parse. Incomplete is currently the only kind: it is emitted by
// sequence and repetition frames when they accept a partial match, per
// spec.md §4.3.1/4.3.3.
type Diagnostic struct {
	Span     gram.Span
	Expected string // EBNF rendering of the node that failed to match
}

// Incomplete constructs a Diagnostic reporting that expected (rendered as
// EBNF) failed to match at span.
func Incomplete(span gram.Span, expected string) Diagnostic {
	return Diagnostic{Span: span, Expected: expected}
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("incomplete at %s: expected %s", d.Span, d.Expected)
}
