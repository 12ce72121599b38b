package grammar

import "testing"

func TestAddConflictAndIdempotence(t *testing.T) {
	g := New("G")
	if err := g.Add("digit", Term{T: fakeTerminal("0")}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	// redefining identically is fine
	if err := g.Add("digit", Term{T: fakeTerminal("0")}); err != nil {
		t.Errorf("idempotent Add should not fail: %v", err)
	}
	// redefining differently is a conflict
	if err := g.Add("digit", Term{T: fakeTerminal("1")}); err == nil {
		t.Errorf("expected conflict error")
	}
}

func TestMergeReportsConflict(t *testing.T) {
	a := New("A")
	_ = a.Add("x", NonTerm("y"))
	b := New("B")
	_ = b.Add("x", NonTerm("z"))
	if err := a.Merge(b); err == nil {
		t.Errorf("expected merge conflict")
	}
}

func TestRenameUpdatesReferencesAndStart(t *testing.T) {
	g := New("G")
	_ = g.Add("expr", Alt{NonTerm("term"), NonTerm("expr")})
	_ = g.Add("term", Term{T: fakeTerminal("t")})
	g.SetStart("expr")

	if err := g.Rename("expr", "expression"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if g.Has("expr") {
		t.Errorf("old name should no longer be defined")
	}
	if !g.Has("expression") {
		t.Errorf("new name should be defined")
	}
	if g.Start() != "expression" {
		t.Errorf("start rule should follow the rename, got %q", g.Start())
	}
	node, _ := g.Get("expression")
	if got := node.ToEBNF(); got != "term | expression" {
		t.Errorf("self-reference not updated: %q", got)
	}
}

func TestRenameFailsOnMissingOrExistingTarget(t *testing.T) {
	g := New("G")
	_ = g.Add("a", NonTerm("b"))
	_ = g.Add("b", Term{T: fakeTerminal("x")})
	if err := g.Rename("missing", "c"); err == nil {
		t.Errorf("expected error renaming undefined rule")
	}
	if err := g.Rename("a", "b"); err == nil {
		t.Errorf("expected error renaming onto an existing rule")
	}
}

func TestNamesPreservesDeclarationOrder(t *testing.T) {
	g := New("G")
	for _, n := range []string{"c", "a", "b"} {
		_ = g.Add(n, NonTerm("x"))
	}
	_ = g.Add("x", Term{T: fakeTerminal("x")})
	got := g.Names()
	want := []string{"c", "a", "b", "x"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
