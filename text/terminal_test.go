package text

import "testing"

func TestLiteralMatch(t *testing.T) {
	l := Literal("foo")
	if end, ok := l.Match("foobar", 0); !ok || end != 3 {
		t.Errorf("Match(foobar,0) = %d,%v, want 3,true", end, ok)
	}
	if _, ok := l.Match("foobar", 1); ok {
		t.Errorf("Match(foobar,1) should fail")
	}
	if _, ok := l.Match("fo", 0); ok {
		t.Errorf("Match should fail when source is too short")
	}
	if _, ok := l.Match(42, 0); ok {
		t.Errorf("Match should fail for a non-string Source")
	}
}

func TestRegexMatchAnchoredAtStartOnly(t *testing.T) {
	r := MustRegex(`[a-z]+`)
	end, ok := r.Match("hello world", 0)
	if !ok || end != 5 {
		t.Errorf("Match(hello world,0) = %d,%v, want 5,true", end, ok)
	}
	if _, ok := r.Match("hello world", 1); !ok {
		t.Errorf("Match should succeed starting mid-word")
	}
	if _, ok := r.Match("123abc", 0); ok {
		t.Errorf("Match should fail when the pattern does not match at pos")
	}
}

func TestNewRegexRejectsInvalidPattern(t *testing.T) {
	if _, err := NewRegex("("); err == nil {
		t.Errorf("expected error for invalid pattern")
	}
}

func TestRegexZeroWidthMatch(t *testing.T) {
	r := MustRegex(`[0-9]*`)
	end, ok := r.Match("abc", 0)
	if !ok || end != 0 {
		t.Errorf("Match = %d,%v, want 0,true (zero-width match)", end, ok)
	}
}
