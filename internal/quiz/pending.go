// Package quiz generates questions, holds them server-side until the
// answer arrives, and grades submissions against the withheld key.
package quiz

import (
	"sync"

	"biomind/internal/gateway"
)

// Pending is a generated question awaiting its answer. The full payload
// stays server-side; clients only ever see the question text and options.
type Pending struct {
	Topic   string
	Type    string
	Payload *gateway.QuizPayload
}

// PendingStore issues monotonically increasing question ids and holds
// each pending question until it is consumed by exactly one submission.
type PendingStore struct {
	mu      sync.Mutex
	nextID  int64
	pending map[int64]Pending
}

// NewPendingStore creates an empty PendingStore.
func NewPendingStore() *PendingStore {
	return &PendingStore{pending: make(map[int64]Pending)}
}

// Issue stores a pending question and returns its id. Ids are unique
// for the lifetime of the process and never reused.
func (s *PendingStore) Issue(p Pending) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.pending[id] = p
	return id
}

// Consume removes and returns the pending question for id. The second
// return is false when the id is unknown or already consumed.
func (s *PendingStore) Consume(id int64) (Pending, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[id]
	if ok {
		delete(s.pending, id)
	}
	return p, ok
}

// Len returns the number of questions awaiting submission.
func (s *PendingStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
