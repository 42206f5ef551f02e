// internal/store/store.go
//
// Persistence interface for game sessions.
// Implementations:
//   - memory.go: map + RWMutex, state lost on restart.
//   - sqlite.go: rows in the games table, state kept as JSON.
//
// Both return ErrNotFound for unknown IDs so callers can map it to 404.

package store

import (
	"context"
	"errors"

	"github.com/robalobadob/chess/internal/game"
)

// ErrNotFound is returned by Get for unknown game IDs.
var ErrNotFound = errors.New("game not found")

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save persists or updates a game.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a game by ID. The returned game is the caller's copy;
	// changes become visible to others only through Save.
	Get(ctx context.Context, id string) (*game.Game, error)

	// ListByOwner returns up to limit games created by ownerID, newest first.
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]*game.Game, error)

	// ClaimAnonymous moves games created under anonID to ownerID.
	ClaimAnonymous(ctx context.Context, anonID, ownerID string) error
}

// copyGame returns a deep copy of g so stored games are never aliased.
func copyGame(g *game.Game) *game.Game {
	c := *g
	c.State.Highlights = append(c.State.Highlights[:0:0], g.State.Highlights...)
	if g.State.Selected != nil {
		sq := *g.State.Selected
		c.State.Selected = &sq
	}
	if g.State.CheckedKing != nil {
		sq := *g.State.CheckedKing
		c.State.CheckedKing = &sq
	}
	return &c
}
