package parser

import (
	"github.com/latticeparse/gram"
	"github.com/latticeparse/gram/diag"
	"github.com/latticeparse/gram/grammar"
	"github.com/latticeparse/gram/token"
)

// frame is one element of the explicit parse stack: in-progress state for
// a compound grammar.Node, capable of integrating a child's result.
type frame interface {
	poll(child *result, st *State) pollResult
}

// pollResult is either Finished (the frame is done; pop it and hand its
// result to the frame below) or Feed (stay on the stack with updated
// state and descend into another node).
type pollResult struct {
	done bool
	res  *result

	node grammar.Node
	pos  int
}

func finished(r *result) pollResult { return pollResult{done: true, res: r} }

func feed(node grammar.Node, pos int) pollResult { return pollResult{done: false, node: node, pos: pos} }

// --- Seq -------------------------------------------------------------

type seqFrame struct {
	startPos   int
	cur        grammar.Node
	remaining  []grammar.Node
	children   []*token.Token
	diags      []diag.Diagnostic
	incomplete grammar.Node
}

func (f *seqFrame) poll(child *result, st *State) pollResult {
	if child.ok {
		f.children = append(f.children, child.parsed.Token)
		f.diags = append(f.diags, child.parsed.Diags...)
		f.incomplete = child.parsed.Incomplete
		if len(f.remaining) == 0 {
			tok := token.Composite("", f.children, f.startPos)
			return finished(some(&Parsed{Token: tok, Diags: f.diags, Incomplete: f.incomplete}))
		}
		f.cur, f.remaining = f.remaining[0], f.remaining[1:]
		return feed(f.cur, child.parsed.Token.Span.To)
	}
	if len(f.children) == 0 {
		return finished(none())
	}
	failPos := f.children[len(f.children)-1].Span.To
	d := diag.Incomplete(gram.Span{From: failPos, To: failPos}, f.cur.ToEBNF())
	tracer().Debugf("diagnostic: %s", d.Expected)
	f.diags = append(f.diags, d)
	tok := token.Composite("", f.children, f.startPos)
	return finished(some(&Parsed{Token: tok, Diags: f.diags, Incomplete: f.cur}))
}

// --- Alt -------------------------------------------------------------

type altFrame struct {
	startPos   int
	alts       []grammar.Node
	index      int
	candidates []*Parsed
}

func (f *altFrame) poll(child *result, st *State) pollResult {
	if child.ok {
		f.candidates = append(f.candidates, child.parsed)
	}
	f.index++
	if f.index < len(f.alts) {
		return feed(f.alts[f.index], f.startPos)
	}
	if len(f.candidates) == 0 {
		return finished(none())
	}
	best := f.candidates[0]
	for _, c := range f.candidates[1:] {
		if altBetter(c, best) {
			best = c
		}
	}
	return finished(some(best))
}

// altBetter reports whether c beats best under the longest-match,
// complete-beats-incomplete tie-break from spec §4.3.2.
func altBetter(c, best *Parsed) bool {
	ce, be := c.Token.Span.To, best.Token.Span.To
	if ce != be {
		return ce > be
	}
	return best.Incomplete != nil && c.Incomplete == nil
}

// --- Rep -------------------------------------------------------------

type repFrame struct {
	startPos int
	inner    grammar.Node
	min, max int
	children []*token.Token
	diags    []diag.Diagnostic
}

func (f *repFrame) poll(child *result, st *State) pollResult {
	zeroWidth := child.ok && child.parsed.Token.Span.Empty()
	if child.ok && !zeroWidth {
		f.children = append(f.children, child.parsed.Token)
		f.diags = append(f.diags, child.parsed.Diags...)
		if len(f.children) == f.max {
			tok := token.Composite("", f.children, f.startPos)
			return finished(some(&Parsed{Token: tok, Diags: f.diags, Incomplete: child.parsed.Incomplete}))
		}
		return feed(f.inner, child.parsed.Token.Span.To)
	}
	// none, or a zero-width match treated as none to guarantee termination.
	if len(f.children) < f.min {
		if len(f.children) == 0 {
			return finished(none())
		}
		curEnd := f.children[len(f.children)-1].Span.To
		d := diag.Incomplete(gram.Span{From: curEnd, To: curEnd}, f.inner.ToEBNF())
		tracer().Debugf("diagnostic: %s", d.Expected)
		f.diags = append(f.diags, d)
		tok := token.Composite("", f.children, f.startPos)
		return finished(some(&Parsed{Token: tok, Diags: f.diags, Incomplete: f.inner}))
	}
	tok := token.Composite("", f.children, f.startPos)
	return finished(some(&Parsed{Token: tok, Diags: f.diags}))
}

// --- NonTerm -----------------------------------------------------------

type nonTermFrame struct {
	name     string
	startPos int
}

func (f *nonTermFrame) poll(child *result, st *State) pollResult {
	st.popActive()
	var r *result
	if !child.ok {
		r = none()
	} else {
		tok := token.Composite(f.name, []*token.Token{child.parsed.Token}, f.startPos)
		r = some(&Parsed{Token: tok, Diags: child.parsed.Diags, Incomplete: child.parsed.Incomplete})
	}
	st.memoPut(f.name, f.startPos, r)
	return finished(r)
}

// --- Tagged ------------------------------------------------------------

type taggedFrame struct {
	tag string
}

func (f *taggedFrame) poll(child *result, st *State) pollResult {
	if !child.ok {
		return finished(child)
	}
	tok := child.parsed.Token.WithTag(f.tag)
	return finished(some(&Parsed{Token: tok, Diags: child.parsed.Diags, Incomplete: child.parsed.Incomplete}))
}

// --- Meta ----------------------------------------------------------------

type metaFrame struct {
	kv map[string]string
}

func (f *metaFrame) poll(child *result, st *State) pollResult {
	if !child.ok {
		return finished(child)
	}
	tok := child.parsed.Token.WithMeta(f.kv)
	return finished(some(&Parsed{Token: tok, Diags: child.parsed.Diags, Incomplete: child.parsed.Incomplete}))
}
