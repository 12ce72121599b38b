package parser

import (
	"fmt"

	"github.com/latticeparse/gram"
	"github.com/latticeparse/gram/grammar"
	"github.com/latticeparse/gram/token"
)

// ParseStart is a convenience wrapper that parses src against g's
// designated start rule, from offset 0, with a fresh State. It is the Go
// realization of the "parse(start-name, source)" grammar-container
// operation from spec §4.2: Grammar itself stays free of any dependency
// on package parser, so the operation lives here instead, taking the
// grammar as a parameter.
func ParseStart(g *grammar.Grammar, src grammar.Source) (*Parsed, error) {
	start := g.Start()
	if start == "" {
		return nil, fmt.Errorf("parser: grammar %q has no start rule set", g.Name)
	}
	return Parse(src, grammar.NonTerm(start), 0, NewState(g))
}

// Parse matches node against src starting at pos, using st for
// memoization and grammar lookups. It returns (nil, nil) for a clean "no
// match at pos" (spec's `none`), (*Parsed, nil) for a successful — possibly
// partial — match, and (nil, err) for a fatal error (missing rule,
// recursion limit, or an empty Seq/Alt or unknown node type reached at
// runtime).
//
// The implementation alternates between two steps exactly as described in
// spec §4.3: "descend" (ParsingNode) computes a node's action — Push
// (enter a compound node, growing the explicit stack) or Pop (a leaf
// result, ready to poll) — and "poll" (Polling) hands a result to the
// frame on top of the stack. The stack is an explicit linked structure
// rather than a native call stack, so arbitrarily deep grammars cannot
// overflow Go's goroutine stack; the only bound is the explicit maxDepth
// check in State.push.
func Parse(src grammar.Source, node grammar.Node, pos int, st *State) (*Parsed, error) {
	curNode, curPos := node, pos
	var curResult *result
	descending := true

	for {
		if descending {
			r, err := enter(src, curNode, curPos, st)
			if err != nil {
				return nil, err
			}
			if r.immediate != nil {
				curResult = r.immediate
				descending = false
				continue
			}
			curNode, curPos = r.nextNode, r.nextPos
			continue
		}

		if st.empty() {
			if !curResult.ok {
				return nil, nil
			}
			return curResult.parsed, nil
		}
		top := st.pop()
		pr := top.poll(curResult, st)
		tracer().Debugf("poll: %T -> done=%v", top, pr.done)
		if pr.done {
			curResult = pr.res
			continue
		}
		if err := st.push(top); err != nil {
			return nil, err
		}
		curNode, curPos = pr.node, pr.pos
		descending = true
	}
}

// enterResult is the outcome of descending into a node: either an
// immediate leaf result (no frame pushed — a Pop action) or a request to
// continue descending into nextNode at nextPos after pushing a frame (a
// Push action).
type enterResult struct {
	immediate *result
	nextNode  grammar.Node
	nextPos   int
}

func enter(src grammar.Source, node grammar.Node, pos int, st *State) (enterResult, error) {
	switch n := node.(type) {
	case grammar.Seq:
		if len(n) == 0 {
			return enterResult{}, fmt.Errorf("parser: empty Seq reached at runtime")
		}
		if err := st.push(&seqFrame{startPos: pos, cur: n[0], remaining: n[1:]}); err != nil {
			return enterResult{}, err
		}
		return enterResult{nextNode: n[0], nextPos: pos}, nil

	case grammar.Alt:
		if len(n) == 0 {
			return enterResult{}, fmt.Errorf("parser: empty Alt reached at runtime")
		}
		if err := st.push(&altFrame{startPos: pos, alts: n}); err != nil {
			return enterResult{}, err
		}
		return enterResult{nextNode: n[0], nextPos: pos}, nil

	case grammar.Rep:
		if n.Max == 0 {
			tok := token.Composite("", nil, pos)
			return enterResult{immediate: some(&Parsed{Token: tok})}, nil
		}
		if err := st.push(&repFrame{startPos: pos, inner: n.Node, min: n.Min, max: n.Max}); err != nil {
			return enterResult{}, err
		}
		return enterResult{nextNode: n.Node, nextPos: pos}, nil

	case grammar.Tagged:
		if err := st.push(&taggedFrame{tag: n.Tag}); err != nil {
			return enterResult{}, err
		}
		return enterResult{nextNode: n.Node, nextPos: pos}, nil

	case grammar.Meta:
		if err := st.push(&metaFrame{kv: n.KV}); err != nil {
			return enterResult{}, err
		}
		return enterResult{nextNode: n.Node, nextPos: pos}, nil

	case grammar.NonTerm:
		name := string(n)
		if cached, ok := st.memoGet(name, pos); ok {
			tracer().Debugf("memo hit: %s @ %d", name, pos)
			return enterResult{immediate: cached}, nil
		}
		body, ok := st.Grammar.Get(name)
		if !ok {
			return enterResult{}, &MissingRuleError{Name: name}
		}
		tracer().Debugf("descend: %s @ %d", name, pos)
		st.pushActive(name)
		if err := st.push(&nonTermFrame{name: name, startPos: pos}); err != nil {
			return enterResult{}, err
		}
		return enterResult{nextNode: body, nextPos: pos}, nil

	case grammar.Term:
		end, ok := n.T.Match(src, pos)
		if !ok {
			return enterResult{immediate: none()}, nil
		}
		tok := token.Leaf(gram.Span{From: pos, To: end})
		return enterResult{immediate: some(&Parsed{Token: tok})}, nil

	default:
		return enterResult{}, fmt.Errorf("parser: unknown node type %T", node)
	}
}
