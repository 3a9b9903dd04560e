package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func mkmarker(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveFindsEnclosingRoot(t *testing.T) {
	root := t.TempDir()
	mkmarker(t, root, "go.mod")

	file := filepath.Join(root, "internal", "pkg", "file.go")
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewResolver().Resolve(file)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != root {
		t.Errorf("Resolve = %q, want %q", got, root)
	}
}

func TestResolvePicksFirstCandidate(t *testing.T) {
	outer := t.TempDir()
	mkmarker(t, outer, "go.mod")
	inner := filepath.Join(outer, "vendorized")
	mkmarker(t, inner, "go.mod")

	got, err := NewResolver().Resolve(filepath.Join(inner, "file.go"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != inner {
		t.Errorf("Resolve = %q, want the innermost candidate %q", got, inner)
	}

	candidates, err := NewResolver().Candidates(filepath.Join(inner, "file.go"))
	if err != nil {
		t.Fatal(err)
	}
	if len(candidates) < 2 || candidates[0] != inner || candidates[1] != outer {
		t.Errorf("Candidates = %v, want innermost-first [%q %q ...]", candidates, inner, outer)
	}
}

func TestResolveGitMarker(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := NewResolver().Resolve(filepath.Join(root, "main.c"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != root {
		t.Errorf("Resolve = %q, want %q", got, root)
	}
}

func TestResolveNoWorkspace(t *testing.T) {
	bare := t.TempDir()
	_, err := NewResolver().Resolve(filepath.Join(bare, "file.go"))
	if !errors.Is(err, ErrNoWorkspace) {
		t.Errorf("err = %v, want ErrNoWorkspace", err)
	}
}
