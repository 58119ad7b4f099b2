// internal/store/memory.go
//
// Session persistence for the HTTP service.
//
// Characteristics of the in-memory implementation:
//   - Stores *session.Session values keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Save and Get copy the session, so handlers never share a ledger.
//   - Entries expire after the configured TTL (0 disables expiry).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordlehelper/internal/session"
)

// ErrNotFound is returned by Get for unknown or expired sessions.
var ErrNotFound = errors.New("session not found")

// Store defines the persistence interface for helper sessions.
// Implementations may be backed by memory (this file) or Redis (redis.go).
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, s *session.Session) error

	// Get retrieves a session by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*session.Session, error)

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
}

type entry struct {
	sess    *session.Session
	expires time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex      // guards sessions
	sessions map[string]entry // keyed by Session.ID
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore(ttl time.Duration) Store {
	return &memory{sessions: make(map[string]entry), ttl: ttl, now: time.Now}
}

// Save adds or updates the session and prunes expired entries.
func (m *memory) Save(ctx context.Context, s *session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	e := entry{sess: s.Clone()}
	if m.ttl > 0 {
		e.expires = now.Add(m.ttl)
	}
	m.sessions[s.ID] = e
	for id, old := range m.sessions {
		if !old.expires.IsZero() && now.After(old.expires) {
			delete(m.sessions, id)
		}
	}
	return nil
}

// Get looks up a session by ID and returns a private copy.
func (m *memory) Get(ctx context.Context, id string) (*session.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.sessions[id]
	if !ok || (!e.expires.IsZero() && m.now().After(e.expires)) {
		return nil, ErrNotFound
	}
	return e.sess.Clone(), nil
}

// Delete removes the session if present.
func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
