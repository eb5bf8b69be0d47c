package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KaramelBytes/costview-cli/internal/dataset"
)

// Session holds one user's view state: their country selection and an
// optional uploaded dataset that replaces the default source for the
// session's lifetime.
type Session struct {
	ID        string
	Countries []string
	Override  *dataset.Dataset
	CreatedAt time.Time
}

// SessionStore is an in-memory session registry keyed by uuid.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Create registers a new session and returns it.
func (s *SessionStore) Create() *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get looks up a session by id.
func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// View returns one consistent snapshot of the session's selection and
// override. Handlers read through View rather than Session fields so
// concurrent writes to the same session stay synchronized.
func (s *SessionStore) View(id string) (countries []string, override *dataset.Dataset, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, found := s.sessions[id]
	if !found {
		return nil, nil, false
	}
	return append([]string(nil), sess.Countries...), sess.Override, true
}

// SetCountries replaces the session's selection.
func (s *SessionStore) SetCountries(id string, countries []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	sess.Countries = append([]string(nil), countries...)
	return true
}

// SetOverride installs an uploaded dataset for the session.
func (s *SessionStore) SetOverride(id string, d *dataset.Dataset) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	sess.Override = d
	return true
}
