package ebnf

import (
	"strings"

	"github.com/latticeparse/gram/grammar"
)

// Export renders g as `name = body;` per rule, in declaration order, with
// rule names right-padded so every '=' lines up in the same column — the
// pretty-printer half of spec.md §6's EBNF adapter.
func Export(g *grammar.Grammar) string {
	names := g.Names()
	width := 0
	for _, n := range names {
		if len(n) > width {
			width = len(n)
		}
	}
	var sb strings.Builder
	for _, name := range names {
		node, _ := g.Get(name)
		sb.WriteString(name)
		sb.WriteString(strings.Repeat(" ", width-len(name)))
		sb.WriteString(" = ")
		sb.WriteString(node.ToEBNF())
		sb.WriteString(" ;\n")
	}
	return sb.String()
}
