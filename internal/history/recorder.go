package history

import "errors"

// ErrWorkspaceUnresolved is reported when a navigation event arrives
// without a workspace identity. The recorder never fabricates one.
var ErrWorkspaceUnresolved = errors.New("history: workspace unresolved")

// Recorder translates host navigation events into tree mutations through
// a Store. One recorder serves every workspace.
type Recorder struct {
	store *Store
}

// NewRecorder creates a recorder backed by store.
func NewRecorder(store *Store) *Recorder {
	return &Recorder{store: store}
}

// Store returns the backing store, for render-time lookups.
func (r *Recorder) Store() *Store {
	return r.store
}

// OnForward records a jump to symbolName in the given workspace.
func (r *Recorder) OnForward(workspaceID, symbolName string) error {
	if workspaceID == "" {
		return ErrWorkspaceUnresolved
	}
	sym := Intern(symbolName)
	r.store.Update(workspaceID, func(rec *Record) {
		rec.Forward(sym)
	})
	return nil
}

// OnBackward records a jump back in the given workspace. It carries no
// symbol; where "back" lands is inferred from the tree alone.
func (r *Recorder) OnBackward(workspaceID string) error {
	if workspaceID == "" {
		return ErrWorkspaceUnresolved
	}
	r.store.Update(workspaceID, func(rec *Record) {
		rec.Backward()
	})
	return nil
}
