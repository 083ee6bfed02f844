// internal/store/memory.go
//
// In-memory implementation of the session Store interface, used by the
// play API to hold live game sessions. State is lost on restart, which
// is fine: a session has no value beyond the sitting it belongs to.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Errors are returned for missing game IDs on Get().

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/lexiconlab/wordle-cli/internal/game"
)

// ErrNotFound reports a lookup for a session that does not exist.
var ErrNotFound = errors.New("session not found")

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a session by game ID.
	Get(ctx context.Context, id string) (*game.Game, error)
}

// memory is a map-based Store implementation.
type memory struct {
	mu       sync.RWMutex // guards sessions map
	sessions map[string]*game.Game
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*game.Game)}
}

// Save adds or updates the session in the map.
func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[g.ID] = g
	return nil
}

// Get looks up a session by game ID.
func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.sessions[id]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}
