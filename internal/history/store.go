package history

import "sync"

// Store maps workspace identifiers to their navigation records. Records
// are created lazily on first access and live for the process lifetime;
// nothing is ever evicted.
type Store struct {
	mu      sync.Mutex
	records map[string]*Record
	locks   map[string]*sync.Mutex
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		records: make(map[string]*Record),
		locks:   make(map[string]*sync.Mutex),
	}
}

// Get returns the record for workspaceID, creating and storing a fresh
// one (root = current = new root node) if absent. Repeated calls with no
// intervening Put return the same record.
func (s *Store) Get(workspaceID string) *Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[workspaceID]
	if !ok {
		rec = NewRecord()
		s.records[workspaceID] = rec
	}
	return rec
}

// Put overwrites the stored record for workspaceID.
func (s *Store) Put(workspaceID string, rec *Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[workspaceID] = rec
}

// Update runs fn over workspaceID's record as a read-modify-write
// critical section. Hosts with more than one window on a workspace go
// through here; workspaces never contend with each other.
func (s *Store) Update(workspaceID string, fn func(*Record)) {
	lock := s.lockFor(workspaceID)
	lock.Lock()
	defer lock.Unlock()

	rec := s.Get(workspaceID)
	fn(rec)
	s.Put(workspaceID, rec)
}

// Len returns the number of workspaces with a record.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func (s *Store) lockFor(workspaceID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[workspaceID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[workspaceID] = lock
	}
	return lock
}
