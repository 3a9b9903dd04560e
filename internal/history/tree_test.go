package history

import "testing"

func TestInternReturnsSamePointer(t *testing.T) {
	a := Intern("Fetcher")
	b := Intern("Fetcher")
	if a != b {
		t.Error("equal names should intern to the same *Symbol")
	}
	if a.Name() != "Fetcher" {
		t.Errorf("Name() = %q, want %q", a.Name(), "Fetcher")
	}
}

func TestRootSymbolNeverInterned(t *testing.T) {
	if Intern("root") == RootSymbol() {
		t.Error("a real symbol named \"root\" must not collide with the synthetic root label")
	}
}

func TestNewRecord(t *testing.T) {
	rec := NewRecord()
	if rec.Root != rec.Current {
		t.Error("fresh record should have current at root")
	}
	if rec.Root.Sym != RootSymbol() {
		t.Error("root node should carry the reserved root label")
	}
	if n := rec.Root.Size(); n != 1 {
		t.Errorf("fresh tree has %d nodes, want 1", n)
	}
}

func TestForwardGrowsByOnePerNewSymbol(t *testing.T) {
	rec := NewRecord()
	for i, name := range []string{"parse", "lex", "token"} {
		rec.Forward(Intern(name))
		if got, want := rec.Root.Size(), i+2; got != want {
			t.Fatalf("after %d forwards tree has %d nodes, want %d", i+1, got, want)
		}
	}
	if rec.Current.Sym.Name() != "token" {
		t.Errorf("current = %q, want %q", rec.Current.Sym.Name(), "token")
	}
}

func TestForwardReusesExistingChild(t *testing.T) {
	rec := NewRecord()
	rec.Forward(Intern("handler"))
	rec.Backward() // back at root
	rec.Forward(Intern("handler"))

	if n := len(rec.Root.Children); n != 1 {
		t.Fatalf("root has %d children, want 1", n)
	}
	if rec.Current != rec.Root.Children[0] {
		t.Error("revisiting an existing child should move current there, not append")
	}
	if n := rec.Root.Size(); n != 2 {
		t.Errorf("tree has %d nodes, want 2", n)
	}
}

func TestBranchingScenario(t *testing.T) {
	// Forward(foo), Forward(bar), Backward, Forward(baz) from a fresh
	// record leaves foo and baz as root's children, bar under foo, and
	// current at baz.
	rec := NewRecord()
	rec.Forward(Intern("foo"))
	rec.Forward(Intern("bar"))
	rec.Backward()
	rec.Forward(Intern("baz"))

	if n := len(rec.Root.Children); n != 2 {
		t.Fatalf("root has %d children, want 2", n)
	}
	foo, baz := rec.Root.Children[0], rec.Root.Children[1]
	if foo.Sym.Name() != "foo" || baz.Sym.Name() != "baz" {
		t.Errorf("root children = %q, %q, want foo, baz", foo.Sym.Name(), baz.Sym.Name())
	}
	if n := len(foo.Children); n != 1 || foo.Children[0].Sym.Name() != "bar" {
		t.Errorf("foo should have the single child bar, got %d children", n)
	}
	if rec.Current != baz {
		t.Error("current should point at baz")
	}
}

func TestBackwardReachesAncestor(t *testing.T) {
	rec := NewRecord()
	rec.Forward(Intern("serve"))
	rec.Backward()
	if rec.Current != rec.Root {
		t.Error("backward from a root child should land on its parent, the root")
	}
}

func TestBackwardAtRootStays(t *testing.T) {
	rec := NewRecord()
	rec.Backward()
	if rec.Current != rec.Root {
		t.Error("backward with nowhere to go should stay at root")
	}
}

func TestFindChildReturnsFirstMatch(t *testing.T) {
	n := &Node{Sym: RootSymbol()}
	a := n.AddChild(Intern("alpha"))
	n.AddChild(Intern("beta"))

	if n.FindChild(Intern("alpha")) != a {
		t.Error("FindChild should return the matching child")
	}
	if n.FindChild(Intern("gamma")) != nil {
		t.Error("FindChild should return nil for an absent label")
	}
}

func TestAddChildKeepsInsertionOrder(t *testing.T) {
	n := &Node{Sym: RootSymbol()}
	names := []string{"one", "two", "three"}
	for _, name := range names {
		n.AddChild(Intern(name))
	}
	for i, name := range names {
		if got := n.Children[i].Sym.Name(); got != name {
			t.Errorf("child %d = %q, want %q", i, got, name)
		}
	}
}

func TestFindReturnsOutermostContainingNode(t *testing.T) {
	rec := NewRecord()
	rec.Forward(Intern("outer"))
	rec.Forward(Intern("inner"))

	// The hit for a nested label is the outermost node whose subtree
	// contains it, not the labeled node itself.
	if got := rec.Root.Find(Intern("inner")); got != rec.Root {
		t.Errorf("Find(inner) from root = %v, want the root", got)
	}
	outer := rec.Root.Children[0]
	if got := outer.Find(Intern("inner")); got != outer {
		t.Errorf("Find(inner) from outer = %v, want outer", got)
	}
	if rec.Root.Find(Intern("absent")) != nil {
		t.Error("Find should return nil for a label not in the tree")
	}
}

func TestRevBumpsOnEveryMutation(t *testing.T) {
	rec := NewRecord()
	if rec.Rev() != 0 {
		t.Fatalf("fresh record rev = %d, want 0", rec.Rev())
	}
	rec.Forward(Intern("a"))
	rec.Backward()
	if rec.Rev() != 2 {
		t.Errorf("rev = %d after two mutations, want 2", rec.Rev())
	}
}
