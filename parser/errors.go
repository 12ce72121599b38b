package parser

import (
	"fmt"
	"strings"
)

// MissingRuleError is a fatal error: a NonTerm referenced a rule name the
// grammar does not define.
type MissingRuleError struct {
	Name string
}

func (e *MissingRuleError) Error() string {
	return fmt.Sprintf("parser: no rule named %q", e.Name)
}

// RecursionLimitError is a fatal error raised when the frame stack grows
// past maxDepth. Chain lists the active non-terminal names, outermost
// first, at the point the limit was hit.
type RecursionLimitError struct {
	Limit int
	Chain []string
}

func (e *RecursionLimitError) Error() string {
	return fmt.Sprintf("parser: recursion limit (%d) exceeded, active rules: %s",
		e.Limit, strings.Join(e.Chain, " -> "))
}
