package text

import (
	"fmt"
	"regexp"

	"github.com/latticeparse/gram/grammar"
)

// Literal matches an exact substring at the current offset.
type Literal string

var _ grammar.Terminal = Literal("")

// Match implements grammar.Terminal. Source must be a string.
func (l Literal) Match(src grammar.Source, pos int) (int, bool) {
	s, ok := src.(string)
	if !ok {
		return 0, false
	}
	end := pos + len(l)
	if pos < 0 || end > len(s) {
		return 0, false
	}
	if s[pos:end] != string(l) {
		return 0, false
	}
	return end, true
}

// ToEBNF renders the literal in quoted form, per the EBNF export rules.
func (l Literal) ToEBNF() string {
	return fmt.Sprintf("%q", string(l))
}

func (l Literal) String() string { return l.ToEBNF() }

// Regex matches a compiled pattern anchored at the current offset: it
// succeeds only if the match begins exactly at pos. The end of the match
// is controlled entirely by the pattern (it is not anchored on the end
// side), matching spec.md §4.1.
type Regex struct {
	pattern string
	re      *regexp.Regexp
}

var _ grammar.Terminal = (*Regex)(nil)

// NewRegex compiles pattern. An invalid pattern is a fatal error, per
// spec.md §4.1 — it is returned here rather than deferred to parse time so
// that grammar construction fails fast.
func NewRegex(pattern string) (*Regex, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("text: invalid regex %q: %w", pattern, err)
	}
	return &Regex{pattern: pattern, re: re}, nil
}

// MustRegex is NewRegex, panicking on error; intended for grammar literals
// built at init time, mirroring the reference builder's panic-on-misuse
// convention for construction-time errors.
func MustRegex(pattern string) *Regex {
	r, err := NewRegex(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// Match implements grammar.Terminal. Source must be a string. Go's regexp
// package has no "match exactly here" anchor, so the match is found
// within src[pos:] and accepted only if it starts at index 0 of that
// slice (i.e. exactly at pos).
func (r *Regex) Match(src grammar.Source, pos int) (int, bool) {
	s, ok := src.(string)
	if !ok || pos < 0 || pos > len(s) {
		return 0, false
	}
	loc := r.re.FindStringIndex(s[pos:])
	if loc == nil || loc[0] != 0 {
		return 0, false
	}
	return pos + loc[1], true
}

func (r *Regex) ToEBNF() string {
	return "/" + r.pattern + "/"
}

func (r *Regex) String() string { return r.ToEBNF() }
