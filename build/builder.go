package build

import "github.com/latticeparse/gram/grammar"

// Builder accumulates rules into a grammar.Grammar, modeled on the
// reference grammar-builder's LHS(...).N(...).T(...).End() chaining —
// here each chain starts at Rule(name) and ends by naming the node shape
// (Seq/Alt/Rep/...), returning back to the Builder for the next rule.
type Builder struct {
	g   *grammar.Grammar
	err error
}

// Grammar starts a new Builder for a grammar named name.
func Grammar(name string) *Builder {
	return &Builder{g: grammar.New(name)}
}

// Rule opens a chain defining the rule named name. The chain must be
// closed by calling exactly one of RuleBuilder's terminal methods
// (Seq/Alt/Rep/Node) to actually add the rule.
func (b *Builder) Rule(name string) *RuleBuilder {
	return &RuleBuilder{b: b, name: name}
}

// StartRule designates name as the grammar's start rule.
func (b *Builder) StartRule(name string) *Builder {
	b.g.SetStart(name)
	return b
}

// Build returns the assembled grammar, or the first error encountered
// while adding a rule (e.g. a conflicting redefinition).
func (b *Builder) Build() (*grammar.Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.g, nil
}

// RuleBuilder is the in-progress right-hand side of one rule, opened by
// Builder.Rule.
type RuleBuilder struct {
	b    *Builder
	name string
}

// Seq closes the chain, defining the rule as a Seq of nodes.
func (r *RuleBuilder) Seq(nodes ...grammar.Node) *Builder { return r.define(Seq(nodes...)) }

// Alt closes the chain, defining the rule as an Alt of nodes.
func (r *RuleBuilder) Alt(nodes ...grammar.Node) *Builder { return r.define(Alt(nodes...)) }

// Rep closes the chain, defining the rule as node repeated min..max times.
func (r *RuleBuilder) Rep(node grammar.Node, min, max int) *Builder {
	return r.define(Rep(node, min, max))
}

// Node closes the chain with an arbitrary pre-built node, for cases the
// other chain forms don't cover directly (e.g. a bare NonTerm or a
// Tagged/Meta wrapper as the rule's whole body).
func (r *RuleBuilder) Node(n grammar.Node) *Builder { return r.define(n) }

func (r *RuleBuilder) define(n grammar.Node) *Builder {
	if err := r.b.g.Add(r.name, n); err != nil && r.b.err == nil {
		r.b.err = err
	}
	return r.b
}
