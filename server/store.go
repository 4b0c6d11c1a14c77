package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/stepwise/engine"
)

// Run is one stored engine invocation.
type Run struct {
	ID        uuid.UUID        `json:"id"`
	CreatedAt time.Time        `json:"createdAt"`
	Request   engine.Request   `json:"request"`
	Response  *engine.Response `json:"response"`
}

// Store keeps the most recent runs in memory. Beyond capacity the oldest
// run is evicted. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	capacity int
	runs     map[uuid.UUID]*Run
	order    []uuid.UUID // oldest first
}

// NewStore returns a Store holding at most capacity runs (minimum 1).
func NewStore(capacity int) *Store {
	if capacity < 1 {
		capacity = 1
	}

	return &Store{capacity: capacity, runs: make(map[uuid.UUID]*Run, capacity)}
}

// Put stores r under a fresh ID and returns the evicted ID, if any.
func (s *Store) Put(r *Run) (evicted uuid.UUID, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = uuid.New()
	if len(s.order) >= s.capacity {
		evicted, s.order = s.order[0], s.order[1:]
		delete(s.runs, evicted)
		ok = true
	}
	s.runs[r.ID] = r
	s.order = append(s.order, r.ID)

	return evicted, ok
}

// Get returns the run stored under id.
func (s *Store) Get(id uuid.UUID) (*Run, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.runs[id]

	return r, ok
}

// Delete removes id and reports whether it was present.
func (s *Store) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[id]; !ok {
		return false
	}
	delete(s.runs, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return true
}

// Len returns the number of stored runs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.runs)
}
