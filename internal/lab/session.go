// Package lab runs multi-step virtual lab simulations. Live session
// state is held in memory keyed by session id; every step is mirrored
// to a persistent lab log so completed runs survive restarts.
package lab

import "sync"

// Decision is one recorded step of a session.
type Decision struct {
	Step   int
	Choice string
	Result string
	Error  *string
}

// Session is the live state of one running simulation.
type Session struct {
	LabType    string
	UserID     int
	Step       int
	Chain      []Decision
	ErrorCount int
}

// SessionStore holds live sessions behind a single mutex. Sessions are
// mutated only through Apply so state changes stay atomic.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Put registers a new session under id.
func (s *SessionStore) Put(id string, sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
}

// Apply runs fn against the session for id while holding the store
// lock, then returns a copy of the resulting state. Returns false when
// the session does not exist.
func (s *SessionStore) Apply(id string, fn func(*Session)) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	if fn != nil {
		fn(sess)
	}
	out := *sess
	out.Chain = append([]Decision(nil), sess.Chain...)
	return out, true
}

// Consume applies fn to the session for id and removes it, all in one
// critical section, then returns a copy of the final state. Returns
// false when the session does not exist, so concurrent callers racing
// toward a terminal step see exactly one winner.
func (s *SessionStore) Consume(id string, fn func(*Session)) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	if fn != nil {
		fn(sess)
	}
	delete(s.sessions, id)
	out := *sess
	out.Chain = append([]Decision(nil), sess.Chain...)
	return out, true
}

// Delete removes the session for id.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
