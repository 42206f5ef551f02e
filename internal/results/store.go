// internal/results/store.go
//
// Finished-game results.
// One row per game that reached checkmate or stalemate, written once when
// the terminal move is accepted. Feeds the per-account counters and the
// /results/recent listing.

package results

import (
	"context"
	"database/sql"
)

// Result is a single finished game.
type Result struct {
	GameID     string `json:"gameId"`
	OwnerID    string `json:"ownerId,omitempty"`
	AnonID     string `json:"-"`
	Status     string `json:"status"`           // checkmate | stalemate
	Winner     string `json:"winner,omitempty"` // white | black, checkmate only
	Plies      int    `json:"plies"`
	FinishedAt string `json:"finishedAt"`
}

// Store reads and writes the results table.
type Store struct{ db *sql.DB }

// NewStore returns a Store over db. store.Migrate must have run.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Insert records r. A second insert for the same game is ignored.
// It reports whether a row was written.
func (s *Store) Insert(ctx context.Context, r Result) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO results(game_id, owner_id, anonymous_id, status, winner, plies)
         VALUES(?,?,?,?,?,?)`,
		r.GameID, nullIfEmpty(r.OwnerID), nullIfEmpty(r.AnonID), r.Status, nullIfEmpty(r.Winner), r.Plies,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Recent returns the latest results, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT game_id, COALESCE(owner_id,''), status, COALESCE(winner,''), plies, finished_at
         FROM results
         ORDER BY finished_at DESC, rowid DESC
         LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Result{}
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.GameID, &r.OwnerID, &r.Status, &r.Winner, &r.Plies, &r.FinishedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
