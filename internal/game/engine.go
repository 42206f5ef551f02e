// internal/game/engine.go
//
// Core state machine for a single chess game.
// Responsibilities:
//   - Create new games in the standard starting position, White to move.
//   - Turn clicks into transitions: select a piece, deselect, or attempt a
//     move to one of the cached destinations.
//   - Revert a move that leaves the mover's own king in check.
//   - Track check, checkmate and stalemate, and alternate turns.
//
// Notes:
//   - Step is a pure function over State; Game.Click is the mutating wrapper
//     used by the store and the transports.
//   - The highlights cached on selection are pseudo-legal, not legality
//     filtered. An illegal choice is caught after it is applied and reverted.
//   - Nothing prevents a move from landing on the enemy king; only the
//     mover's own king is protected by the self-check rule.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"slices"
	"time"

	petname "github.com/dustinkirkland/golang-petname"

	"github.com/robalobadob/chess/internal/chess"
)

// NewState returns the starting position with White to move.
func NewState() State {
	return State{
		Board:         chess.InitialStandardSetup(),
		CurrentPlayer: chess.White,
		Status:        StatusOngoing,
	}
}

// New constructs a new game in the standard starting position.
func New() *Game {
	now := time.Now().UTC()
	return &Game{
		ID:        randomID(),
		Name:      petname.Generate(2, "-"),
		State:     NewState(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FromState wraps an existing state (e.g. a composed position) in a new Game.
func FromState(s State) *Game {
	g := New()
	g.State = s
	return g
}

// Click applies one square of input to the game.
// Returns the notice describing what happened, or ErrGameOver/ErrOffBoard.
func (g *Game) Click(sq chess.Square) (Notice, error) {
	next, notice, err := Step(g.State, sq)
	if err != nil {
		return notice, err
	}
	g.State = next
	if notice.Accepted() {
		g.Plies++
		g.UpdatedAt = time.Now().UTC()
	}
	return notice, nil
}

// Step is the transition function: it consumes a state and a clicked square
// and returns the next state.
//
// Idle:
//   - Own piece → Selected, destinations cached.
//   - Anything else → no-op.
//
// Selected:
//   - Square not among the cached destinations (including the origin itself)
//     → back to idle, board untouched.
//   - Cached destination → move applied. If the mover's king is now attacked
//     the board is restored and NoticeIllegalMove is returned. Otherwise the
//     opponent's check and mobility decide between continuing (turn flips),
//     checkmate and stalemate.
func Step(s State, sq chess.Square) (State, Notice, error) {
	if s.Status.Finished() {
		return s, "", ErrGameOver
	}
	if !sq.OnBoard() {
		return s, "", ErrOffBoard
	}

	if s.Selected == nil {
		return selectSquare(s, sq)
	}

	origin := *s.Selected
	next := s
	next.Selected, next.Highlights = nil, nil

	if !slices.Contains(s.Highlights, sq) {
		return next, NoticeDeselected, nil
	}

	before := s.Board
	next.Board.Apply(chess.Move{From: origin, To: sq})

	mover := s.CurrentPlayer
	if chess.IsInCheck(&next.Board, mover) {
		next.Board = before
		return next, NoticeIllegalMove, nil
	}

	opponent := mover.Opponent()
	inCheck := chess.IsInCheck(&next.Board, opponent)
	next.CheckedKing = nil
	if inCheck {
		if k, ok := chess.FindKing(&next.Board, opponent); ok {
			next.CheckedKing = &k
		}
	}

	if !chess.HasAnyLegalMove(&next.Board, opponent) {
		if inCheck {
			next.Status, next.Winner = StatusCheckmate, mover
			return next, NoticeCheckmate, nil
		}
		next.Status = StatusStalemate
		return next, NoticeStalemate, nil
	}

	next.CurrentPlayer = opponent
	if inCheck {
		return next, NoticeCheck, nil
	}
	return next, NoticeMoved, nil
}

// selectSquare handles a click while nothing is selected.
func selectSquare(s State, sq chess.Square) (State, Notice, error) {
	p := s.Board.Get(sq)
	if p.IsEmpty() || p.Color != s.CurrentPlayer {
		return s, NoticeIgnored, nil
	}
	origin := sq
	s.Selected = &origin
	s.Highlights = chess.PseudoLegalDestinations(&s.Board, sq)
	return s, NoticeSelected, nil
}

// Snapshot builds the renderer view of g.
func (g *Game) Snapshot() Snapshot {
	s := g.State
	snap := Snapshot{
		GameID:        g.ID,
		Name:          g.Name,
		Placement:     s.Board.Placement(),
		CurrentPlayer: s.CurrentPlayer.String(),
		Selected:      s.Selected,
		Highlights:    append([]chess.Square{}, s.Highlights...),
		CheckedKing:   s.CheckedKing,
		Status:        s.Status,
		Plies:         g.Plies,
	}
	for row := 0; row < chess.Size; row++ {
		for col := 0; col < chess.Size; col++ {
			snap.Board[row][col] = s.Board.Get(chess.Sq(row, col)).Symbol()
		}
	}
	if s.Status == StatusCheckmate {
		snap.Winner = s.Winner.String()
	}
	if !s.Status.Finished() {
		snap.LegalMoves = len(chess.LegalMoves(&s.Board, s.CurrentPlayer))
	}
	return snap
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
