// internal/store/sqlite.go
//
// SQLite implementation of the Store interface.
// Each game is one row in the games table. The position and selection are
// kept as a JSON document (see record) so a restart resumes every game
// exactly where it stopped; status and plies are mirrored into columns for
// listing.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/robalobadob/chess/internal/chess"
	"github.com/robalobadob/chess/internal/game"
)

// record is the JSON shape of game.State in the state column.
type record struct {
	Placement     string         `json:"placement"`
	CurrentPlayer chess.Color    `json:"currentPlayer"`
	Selected      *chess.Square  `json:"selected,omitempty"`
	Highlights    []chess.Square `json:"highlights,omitempty"`
	CheckedKing   *chess.Square  `json:"checkedKing,omitempty"`
	Status        game.Status    `json:"status"`
	Winner        chess.Color    `json:"winner"`
}

func encodeState(s game.State) (string, error) {
	b, err := json.Marshal(record{
		Placement:     s.Board.Placement(),
		CurrentPlayer: s.CurrentPlayer,
		Selected:      s.Selected,
		Highlights:    s.Highlights,
		CheckedKing:   s.CheckedKing,
		Status:        s.Status,
		Winner:        s.Winner,
	})
	return string(b), err
}

func decodeState(text string) (game.State, error) {
	var r record
	if err := json.Unmarshal([]byte(text), &r); err != nil {
		return game.State{}, err
	}
	board, err := chess.ParsePlacement(r.Placement)
	if err != nil {
		return game.State{}, err
	}
	return game.State{
		Board:         board,
		CurrentPlayer: r.CurrentPlayer,
		Selected:      r.Selected,
		Highlights:    r.Highlights,
		CheckedKing:   r.CheckedKing,
		Status:        r.Status,
		Winner:        r.Winner,
	}, nil
}

// timeLayout is fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000Z07:00"

// sqliteStore keeps games in the games table.
type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore returns a Store backed by db. Migrate must have run.
func NewSQLiteStore(db *sql.DB) Store {
	return &sqliteStore{db: db}
}

// Save upserts the game row.
func (s *sqliteStore) Save(ctx context.Context, g *game.Game) error {
	state, err := encodeState(g.State)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
        INSERT INTO games (id, name, owner_id, anonymous_id, status, plies, state, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            owner_id=excluded.owner_id,
            anonymous_id=excluded.anonymous_id,
            status=excluded.status,
            plies=excluded.plies,
            state=excluded.state,
            updated_at=excluded.updated_at`,
		g.ID, g.Name, nullIfEmpty(g.OwnerID), nullIfEmpty(g.AnonID), string(g.State.Status), g.Plies, state,
		g.CreatedAt.UTC().Format(timeLayout), g.UpdatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("save game %s: %w", g.ID, err)
	}
	return nil
}

const gameColumns = `id, name, COALESCE(owner_id,''), COALESCE(anonymous_id,''), plies, state, created_at, updated_at`

// Get loads one game row.
func (s *sqliteStore) Get(ctx context.Context, id string) (*game.Game, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+gameColumns+` FROM games WHERE id=?`, id)
	g, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load game %s: %w", id, err)
	}
	return g, nil
}

// ListByOwner returns the owner's most recent games.
func (s *sqliteStore) ListByOwner(ctx context.Context, ownerID string, limit int) ([]*game.Game, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `SELECT `+gameColumns+` FROM games
        WHERE owner_id=? ORDER BY created_at DESC LIMIT ?`, ownerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*game.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// ClaimAnonymous transfers anonymous games to an account.
func (s *sqliteStore) ClaimAnonymous(ctx context.Context, anonID, ownerID string) error {
	if anonID == "" || ownerID == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE games SET owner_id=?, anonymous_id=NULL WHERE anonymous_id=?`, ownerID, anonID)
	return err
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanGame(row scanner) (*game.Game, error) {
	var (
		g                game.Game
		state            string
		created, updated string
	)
	if err := row.Scan(&g.ID, &g.Name, &g.OwnerID, &g.AnonID, &g.Plies, &state, &created, &updated); err != nil {
		return nil, err
	}
	st, err := decodeState(state)
	if err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	g.State = st
	g.CreatedAt, _ = time.Parse(timeLayout, created)
	g.UpdatedAt, _ = time.Parse(timeLayout, updated)
	return &g, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
