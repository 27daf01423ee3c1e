// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Sessions live only as long as the process does; there is no durable backend.
//
// Characteristics:
//   - Stores game.Session values keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - UsedWords is copied on the way in and out, so callers never share
//     a backing array with stored state.
//   - Get/Delete of an unknown ID returns ErrNotFound.

package store

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/robalobadob/wordscramble/internal/game"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("store: session not found")

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, s game.Session) error

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (game.Session, error)

	// Delete removes a session by ID.
	Delete(ctx context.Context, id string) error

	// Len reports how many sessions are held.
	Len() int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex            // guards sessions map
	sessions map[string]game.Session // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]game.Session)}
}

// Save adds or updates the session in the map.
func (m *memory) Save(ctx context.Context, s game.Session) error {
	if s.ID == "" {
		return errors.New("store: session without id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = clone(s)
	return nil
}

// Get looks up a session by ID.
func (m *memory) Get(ctx context.Context, id string) (game.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return clone(s), nil
	}
	return game.Session{}, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func clone(s game.Session) game.Session {
	s.UsedWords = slices.Clone(s.UsedWords)
	if s.UsedWords == nil {
		s.UsedWords = []string{}
	}
	return s
}
