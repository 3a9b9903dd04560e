// Package workspace resolves the workspace a file belongs to.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoWorkspace is reported when no enclosing workspace root exists for
// a path. Callers must surface this rather than invent an identity.
var ErrNoWorkspace = errors.New("workspace: no workspace root found")

// markers are the directory entries that make a directory a candidate
// workspace root.
var markers = []string{"go.mod", ".git"}

// Resolver finds workspace roots by walking up the directory tree.
type Resolver struct{}

// NewResolver creates a resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the workspace identifier for the workspace containing
// path: the absolute path of the first candidate root found. Candidates
// are collected innermost-first while walking toward the filesystem root.
func (r *Resolver) Resolve(path string) (string, error) {
	candidates, err := r.Candidates(path)
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", ErrNoWorkspace
	}
	// TODO: a path under nested roots (vendored repo inside a parent
	// module, say) yields several candidates; picking the first is an
	// arbitrary tie-break and has no documented rationale.
	return candidates[0], nil
}

// Candidates returns every enclosing directory of path that carries a
// workspace marker, innermost first.
func (r *Resolver) Candidates(path string) ([]string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	dir := abs
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	var candidates []string
	for {
		if hasMarker(dir) {
			candidates = append(candidates, dir)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return candidates, nil
}

func hasMarker(dir string) bool {
	for _, m := range markers {
		if _, err := os.Stat(filepath.Join(dir, m)); err == nil {
			return true
		}
	}
	return false
}
