package history

import (
	"errors"
	"testing"
)

func TestRecorderForwardBackward(t *testing.T) {
	rec := NewRecorder(NewStore())

	for _, name := range []string{"Open", "Read"} {
		if err := rec.OnForward("/src/proj", name); err != nil {
			t.Fatalf("OnForward(%q): %v", name, err)
		}
	}
	if err := rec.OnBackward("/src/proj"); err != nil {
		t.Fatalf("OnBackward: %v", err)
	}

	r := rec.Store().Get("/src/proj")
	if r.Current != r.Root {
		t.Error("backward should have resurfaced the root-side ancestor")
	}
	if r.Root.Size() != 3 {
		t.Errorf("tree has %d nodes, want 3", r.Root.Size())
	}
}

func TestRecorderRejectsUnresolvedWorkspace(t *testing.T) {
	rec := NewRecorder(NewStore())

	if err := rec.OnForward("", "Open"); !errors.Is(err, ErrWorkspaceUnresolved) {
		t.Errorf("OnForward with empty workspace: err = %v, want ErrWorkspaceUnresolved", err)
	}
	if err := rec.OnBackward(""); !errors.Is(err, ErrWorkspaceUnresolved) {
		t.Errorf("OnBackward with empty workspace: err = %v, want ErrWorkspaceUnresolved", err)
	}
	if rec.Store().Len() != 0 {
		t.Error("an unresolved workspace must not fabricate a record")
	}
}

func TestRecorderKeepsWorkspacesApart(t *testing.T) {
	rec := NewRecorder(NewStore())
	rec.OnForward("/src/a", "Alpha")
	rec.OnForward("/src/b", "Beta")

	a := rec.Store().Get("/src/a")
	b := rec.Store().Get("/src/b")
	if a.Current.Sym.Name() != "Alpha" || b.Current.Sym.Name() != "Beta" {
		t.Error("recorder should route events by workspace id")
	}
}
