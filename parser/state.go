package parser

import "github.com/latticeparse/gram/grammar"

// maxDepth bounds the explicit frame stack; exceeding it is a fatal
// RecursionLimitError rather than a native stack overflow, per spec §4.3.
const maxDepth = 1000

// memoKey identifies a non-terminal's cached result within one parse.
type memoKey struct {
	name string
	pos  int
}

// frameNode is one link of the explicit frame stack: a frame plus a
// pointer to the frame beneath it. This is the parser trampoline's
// analogue of the reference material's DynamicMemoryFrame — a parent
// pointer per frame instead of a slice — repurposed from interpreter call
// frames to parser frames; pushing links a new node onto State.top,
// popping walks back to its parent.
type frameNode struct {
	f      frame
	parent *frameNode
}

// State is the per-parse context: a read-only reference to the grammar
// plus the memoization table keyed by (rule-name, offset). A State is
// owned by exactly one in-flight parse; concurrent parses need
// independent States, though the underlying Grammar may be shared since
// it is never mutated during parsing.
//
// The frame stack and the active-rule-name chain (used to report the
// chain of enclosing non-terminals when the recursion limit is hit) are
// per-parse as well, and are threaded through State for the lifetime of
// a single Parse call rather than being exposed to callers.
type State struct {
	Grammar *grammar.Grammar
	memo    map[memoKey]*result
	top     *frameNode
	depth   int
	active  []string
}

// NewState creates a fresh per-parse State over g.
func NewState(g *grammar.Grammar) *State {
	return &State{
		Grammar: g,
		memo:    make(map[memoKey]*result),
	}
}

func (st *State) memoGet(name string, pos int) (*result, bool) {
	r, ok := st.memo[memoKey{name, pos}]
	return r, ok
}

func (st *State) memoPut(name string, pos int, r *result) {
	st.memo[memoKey{name, pos}] = r
}

// push links f onto the top of the stack, growing the current-depth
// counter. It fails with a RecursionLimitError, including the current
// chain of active non-terminal names, once depth exceeds maxDepth.
func (st *State) push(f frame) error {
	st.top = &frameNode{f: f, parent: st.top}
	st.depth++
	if st.depth > maxDepth {
		chain := make([]string, len(st.active))
		copy(chain, st.active)
		return &RecursionLimitError{Limit: maxDepth, Chain: chain}
	}
	return nil
}

// pop unlinks and returns the top frame.
func (st *State) pop() frame {
	top := st.top
	st.top = top.parent
	st.depth--
	return top.f
}

func (st *State) empty() bool { return st.top == nil }

func (st *State) pushActive(name string) { st.active = append(st.active, name) }

func (st *State) popActive() { st.active = st.active[:len(st.active)-1] }
