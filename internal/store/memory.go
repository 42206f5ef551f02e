// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// This is a lightweight persistence layer used for ephemeral game sessions,
// primarily in development/testing, or when durability is not required.
//
// Characteristics:
//   - Stores copies of *game.Game keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sort"
	"sync"

	"github.com/robalobadob/chess/internal/game"
)

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex          // guards games map
	games map[string]*game.Game // keyed by Game.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Game)}
}

// Save adds or updates the game in the map.
func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = copyGame(g)
	return nil
}

// Get looks up a game by ID.
func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return copyGame(g), nil
	}
	return nil, ErrNotFound
}

// ListByOwner scans the map; fine for the handful of games a dev server holds.
func (m *memory) ListByOwner(ctx context.Context, ownerID string, limit int) ([]*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*game.Game
	for _, g := range m.games {
		if ownerID != "" && g.OwnerID == ownerID {
			out = append(out, copyGame(g))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ClaimAnonymous reassigns anonymous games to an account.
func (m *memory) ClaimAnonymous(ctx context.Context, anonID, ownerID string) error {
	if anonID == "" || ownerID == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range m.games {
		if g.AnonID == anonID {
			g.OwnerID, g.AnonID = ownerID, ""
		}
	}
	return nil
}
