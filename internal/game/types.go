// internal/game/types.go
//
// Core type definitions for the chess game state machine.
// Defines:
//   - Status: terminal status of a game (ongoing/checkmate/stalemate).
//   - Notice: what a single click did (selected, moved, illegal move, ...).
//   - State: the explicit, owned value every transition consumes and returns.
//   - Game: a State plus identity and bookkeeping for storage.
//   - Snapshot: the read-only view handed to renderers.

package game

import (
	"errors"
	"time"

	"github.com/robalobadob/chess/internal/chess"
)

// Status is the terminal status of a game.
type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusCheckmate Status = "checkmate"
	StatusStalemate Status = "stalemate"
)

// Finished reports whether s is terminal.
func (s Status) Finished() bool { return s != StatusOngoing }

// Notice describes the outcome of one click.
type Notice string

const (
	NoticeIgnored     Notice = "ignored"      // click on an empty or enemy square with nothing selected
	NoticeSelected    Notice = "selected"     // own piece selected, destinations cached
	NoticeDeselected  Notice = "deselected"   // click outside the cached destinations
	NoticeIllegalMove Notice = "illegal_move" // move reverted, it left the mover's king in check
	NoticeMoved       Notice = "moved"
	NoticeCheck       Notice = "check"
	NoticeCheckmate   Notice = "checkmate"
	NoticeStalemate   Notice = "stalemate"
)

// Accepted reports whether the click that produced n changed the position.
func (n Notice) Accepted() bool {
	switch n {
	case NoticeMoved, NoticeCheck, NoticeCheckmate, NoticeStalemate:
		return true
	}
	return false
}

var (
	// ErrGameOver is returned for any input once the game is terminal.
	ErrGameOver = errors.New("game finished")
	// ErrOffBoard is returned for squares outside the 8x8 grid.
	ErrOffBoard = errors.New("square off board")
)

// State holds everything a transition reads or writes.
// Selected, CheckedKing and Highlights are replaced, never mutated in place,
// so copies of a State never observe each other's changes.
type State struct {
	Board         chess.Board
	CurrentPlayer chess.Color
	Selected      *chess.Square  // nil when idle
	Highlights    []chess.Square // pseudo-legal destinations of Selected
	CheckedKing   *chess.Square  // king put in check by the last accepted move
	Status        Status
	Winner        chess.Color // meaningful only when Status is StatusCheckmate
}

// Game holds a State together with identity and bookkeeping.
type Game struct {
	ID        string    // Unique game identifier (random hex string).
	Name      string    // Human readable name, e.g. "brave-otter".
	State     State     // Current position and selection.
	Plies     int       // Number of accepted moves.
	OwnerID   string    // Account that created the game, if any.
	AnonID    string    // Anonymous cookie that created the game, if any.
	CreatedAt time.Time // Creation time (UTC).
	UpdatedAt time.Time // Last accepted click (UTC).
}

// Snapshot is the read-only view a renderer consumes.
type Snapshot struct {
	GameID        string         `json:"gameId"`
	Name          string         `json:"name"`
	Board         [8][8]string   `json:"board"` // FEN letters, "" for empty
	Placement     string         `json:"placement"`
	CurrentPlayer string         `json:"currentPlayer"`
	Selected      *chess.Square  `json:"selected,omitempty"`
	Highlights    []chess.Square `json:"highlights"`
	CheckedKing   *chess.Square  `json:"checkedKing,omitempty"`
	Status        Status         `json:"status"`
	Winner        string         `json:"winner,omitempty"`
	Plies         int            `json:"plies"`
	LegalMoves    int            `json:"legalMoves"`
}
