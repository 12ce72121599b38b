package grammar

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Grammar is a named collection of production rules: a mapping from rule
// name to Node, plus an optional designated start rule.
//
// Rules are stored in a linkedhashmap so that iteration order matches
// insertion order — this makes EBNF export and Dump deterministic without
// requiring callers to sort rule names themselves, the same property the
// reference material gets from treeset/arraylist-backed tables.
//
// A Grammar is read-only once parsing begins; building it up via Add/Merge
// concurrently with a parse is not supported (see package parser).
type Grammar struct {
	Name  string
	rules *linkedhashmap.Map // string -> Node
	start string
}

// New creates an empty, named grammar.
func New(name string) *Grammar {
	return &Grammar{
		Name:  name,
		rules: linkedhashmap.New(),
	}
}

// SetStart designates name as the start rule. It does not check that name
// is defined — that is deferred to parse time, matching the "missing
// rule is a fatal error" policy for NonTerm resolution in general.
func (g *Grammar) SetStart(name string) {
	g.start = name
}

// Start returns the designated start rule name, or "" if none was set.
func (g *Grammar) Start() string {
	return g.start
}

// Has reports whether name is defined.
func (g *Grammar) Has(name string) bool {
	_, ok := g.rules.Get(name)
	return ok
}

// Get returns the node for name, or nil and false if undefined.
func (g *Grammar) Get(name string) (Node, bool) {
	v, ok := g.rules.Get(name)
	if !ok {
		return nil, false
	}
	return v.(Node), true
}

// Add inserts name -> node. If name is already defined with a
// structurally equal node, Add is a no-op (a warning is traced, but this
// is not an error — grammars built from merged sources may legitimately
// redeclare identical rules). If name is already defined with a different
// node, Add fails with a conflict error.
func (g *Grammar) Add(name string, node Node) error {
	if err := Validate(node); err != nil {
		return fmt.Errorf("grammar: rule %q: %w", name, err)
	}
	if existing, ok := g.rules.Get(name); ok {
		if sameNode(existing.(Node), node) {
			tracer().Debugf("rule %q redefined identically, keeping existing", name)
			return nil
		}
		return fmt.Errorf("grammar: conflicting definitions for rule %q", name)
	}
	g.rules.Put(name, node)
	return nil
}

// Merge folds other's rules into g via Add, in other's iteration order.
// The first conflict aborts the merge and is returned; rules added before
// the conflict was found remain in g.
func (g *Grammar) Merge(other *Grammar) error {
	var err error
	other.rules.Each(func(key interface{}, value interface{}) {
		if err != nil {
			return
		}
		err = g.Add(key.(string), value.(Node))
	})
	if err != nil {
		return fmt.Errorf("grammar: merging %q into %q: %w", other.Name, g.Name, err)
	}
	return nil
}

// Rename moves the rule stored under old to new, updating every NonTerm
// reference to old in every rule's body (including old's own body, in
// case it is self-recursive) to refer to new instead. It also updates the
// start rule if old was the start. Fails if old is undefined or new is
// already defined.
func (g *Grammar) Rename(old, new string) error {
	node, ok := g.Get(old)
	if !ok {
		return fmt.Errorf("grammar: cannot rename %q: not defined", old)
	}
	if g.Has(new) {
		return fmt.Errorf("grammar: cannot rename %q to %q: %q already defined", old, new, new)
	}
	renamed := make(map[string]Node)
	g.rules.Each(func(key interface{}, value interface{}) {
		name := key.(string)
		if name == old {
			return
		}
		renamed[name] = RenameReference(value.(Node), old, new)
	})
	g.rules.Remove(old)
	for name, n := range renamed {
		g.rules.Put(name, n)
	}
	g.rules.Put(new, RenameReference(node, old, new))
	if g.start == old {
		g.start = new
	}
	return nil
}

// Each calls f for every rule, in declaration order.
func (g *Grammar) Each(f func(name string, node Node)) {
	g.rules.Each(func(key interface{}, value interface{}) {
		f(key.(string), value.(Node))
	})
}

// Names returns every rule name, in declaration order.
func (g *Grammar) Names() []string {
	keys := g.rules.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Size returns the number of defined rules.
func (g *Grammar) Size() int {
	return g.rules.Size()
}

// sameNode reports structural equality between two node trees, computed
// as a stable hash of their exported fields. This mirrors the reference
// material's technique of hashing a structural key to deduplicate
// equivalent grammar fragments (there it was done by hand for Earley item
// sets; here it is the same idea applied via a real hashing library).
func sameNode(a, b Node) bool {
	ha, erra := structhash.Hash(a, 1)
	hb, errb := structhash.Hash(b, 1)
	if erra != nil || errb != nil {
		return false
	}
	return ha == hb
}

// Dump writes a human-readable rendering of every rule to the tracer at
// Debug level, in declaration order. Only visible when the "gram.grammar"
// tracer is configured at Debug.
func (g *Grammar) Dump() {
	g.Each(func(name string, node Node) {
		tracer().Debugf("%s = %s ;", name, node.ToEBNF())
	})
}
