// internal/httpserver/routes_results.go
//
// Finished-game results.
//   - GET /results/recent?limit=N → latest checkmates and stalemates.
//
// recordResult runs once per game, when the click that ends it is accepted:
// it writes the results row and, for games owned by an account, bumps the
// account's counters in the same transaction.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/chess/internal/game"
	"github.com/robalobadob/chess/internal/results"
)

// mountResults registers the public results listing.
func (s *Server) mountResults(r chi.Router) {
	r.Get("/results/recent", s.handleRecentResults)
}

type recentRes struct {
	Results []results.Result `json:"results"`
}

// handleRecentResults returns up to limit (default 20, max 100) results.
func (s *Server) handleRecentResults(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "bad_limit")
			return
		}
		limit = min(n, 100)
	}
	rows, err := s.results.Recent(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("recent results")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	if rows == nil {
		rows = []results.Result{}
	}
	_ = json.NewEncoder(w).Encode(recentRes{Results: rows})
}

// recordResult persists the outcome of a finished game. Failures are
// logged; the click itself has already been saved.
func (s *Server) recordResult(ctx context.Context, g *game.Game) {
	res := results.Result{
		GameID:  g.ID,
		OwnerID: g.OwnerID,
		AnonID:  g.AnonID,
		Status:  string(g.State.Status),
		Plies:   g.Plies,
	}
	if g.State.Status == game.StatusCheckmate {
		res.Winner = g.State.Winner.String()
	}

	l := log.Info().Str("gameId", g.ID).Str("status", res.Status).Int("plies", g.Plies)
	if res.Winner != "" {
		l = l.Str("winner", res.Winner)
	}
	l.Msg("game finished")

	inserted, err := s.results.Insert(ctx, res)
	if err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("insert result")
		return
	}
	if !inserted || g.OwnerID == "" {
		return
	}
	if err := s.bumpStats(ctx, g.OwnerID, g.State.Status); err != nil {
		log.Warn().Err(err).Str("user", g.OwnerID).Msg("bump stats")
	}
}

// bumpStats increments games_played and the counter for status.
func (s *Server) bumpStats(ctx context.Context, userID string, status game.Status) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var gp, mates, stales int
	row := tx.QueryRowContext(ctx, `SELECT games_played, checkmates, stalemates FROM users WHERE id=?`, userID)
	if err := row.Scan(&gp, &mates, &stales); err != nil {
		return err
	}
	gp++
	switch status {
	case game.StatusCheckmate:
		mates++
	case game.StatusStalemate:
		stales++
	}
	if _, err := tx.ExecContext(ctx, `UPDATE users SET games_played=?, checkmates=?, stalemates=? WHERE id=?`,
		gp, mates, stales, userID); err != nil {
		return err
	}
	return tx.Commit()
}
