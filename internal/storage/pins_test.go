package storage

import "testing"

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPinAddAndList(t *testing.T) {
	ps := NewPinStore(openTestDB(t))

	if !ps.Add("/src/proj", "Fetcher") {
		t.Fatal("first Add should succeed")
	}
	if ps.Add("/src/proj", "Fetcher") {
		t.Error("duplicate Add should report false")
	}
	if !ps.Has("/src/proj", "Fetcher") {
		t.Error("Has should see the pin")
	}

	pins := ps.List("/src/proj")
	if len(pins) != 1 || pins[0].Symbol != "Fetcher" {
		t.Errorf("List = %v, want the single Fetcher pin", pins)
	}
}

func TestPinsAreScopedByWorkspace(t *testing.T) {
	ps := NewPinStore(openTestDB(t))
	ps.Add("/src/a", "Alpha")
	ps.Add("/src/b", "Beta")

	if got := ps.Symbols("/src/a"); len(got) != 1 || got[0] != "Alpha" {
		t.Errorf("Symbols(/src/a) = %v, want [Alpha]", got)
	}
	if ps.Has("/src/a", "Beta") {
		t.Error("a pin in one workspace must not leak into another")
	}
}

func TestPinRemove(t *testing.T) {
	ps := NewPinStore(openTestDB(t))
	ps.Add("/src/proj", "Handler")

	if !ps.Remove("/src/proj", "Handler") {
		t.Error("Remove should report true for an existing pin")
	}
	if ps.Remove("/src/proj", "Handler") {
		t.Error("Remove should report false when nothing was deleted")
	}
	if ps.Has("/src/proj", "Handler") {
		t.Error("removed pin should be gone")
	}
}
