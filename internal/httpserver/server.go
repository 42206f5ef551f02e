// internal/httpserver/server.go
//
// HTTP server wiring for the chess backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/results/recent".
//   - Game endpoints (optional auth): POST /game/new, GET /game/{id}, POST /game/click.
//   - Auth + profile/stat endpoints: /auth/*, /stats/me, /games/mine (see auth.go).
//
// Notes:
//   - Clicks on one game are serialised by a per-game lock held across
//     load, click and save.
//   - Guests are tracked with an anonymous cookie; their games are claimed
//     by the account on signup or login.

package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/chess/internal/chess"
	"github.com/robalobadob/chess/internal/config"
	"github.com/robalobadob/chess/internal/game"
	"github.com/robalobadob/chess/internal/results"
	"github.com/robalobadob/chess/internal/store"
)

// Server bundles router, game store, DB handle and configuration.
type Server struct {
	r       *chi.Mux
	cfg     config.Config
	store   store.Store
	db      *sql.DB
	results *results.Store
	locks   *gameLocks
}

// New constructs a Server, installs middleware, and registers routes.
// db holds the users and results tables; st may or may not share it.
func New(cfg config.Config, st store.Store, db *sql.DB) *Server {
	s := &Server{
		r:       chi.NewRouter(),
		cfg:     cfg,
		store:   st,
		db:      db,
		results: results.NewStore(db),
		locks:   newGameLocks(),
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(corsFor(cfg.ClientOrigin))

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"chess-go","endpoints":["/health","POST /game/new","GET /game/{id}","POST /game/click","GET /results/recent","/auth/*","GET /stats/me","GET /games/mine"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Game endpoints, guests allowed.
	s.r.Group(func(r chi.Router) {
		r.Use(s.withOptionalAuth())
		r.Post("/game/new", s.handleNewGame)
		r.Get("/game/{id}", s.handleGetGame)
		r.Post("/game/click", s.handleClick)
	})

	s.mountResults(s.r)
	s.mountAuthRoutes()

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFor enables credentialed CORS for a single origin.
func corsFor(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// writeError sends {"error": code} with the given status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

// ------------------------------ locks --------------------------------------

// gameLocks hands out one mutex per game ID. An entry lives only while a
// request holds or waits for it, so ids that never resolve to a game leave
// nothing behind.
type gameLocks struct {
	mu sync.Mutex
	m  map[string]*gameLock
}

type gameLock struct {
	mu   sync.Mutex
	refs int // holders plus waiters, guarded by gameLocks.mu
}

func newGameLocks() *gameLocks { return &gameLocks{m: make(map[string]*gameLock)} }

// lock acquires the mutex for id and returns its release func.
func (l *gameLocks) lock(id string) func() {
	l.mu.Lock()
	e, ok := l.m[id]
	if !ok {
		e = &gameLock{}
		l.m[id] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.m, id)
		}
		l.mu.Unlock()
	}
}

// size returns the number of live entries.
func (l *gameLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.m)
}

// ------------------------------ GAME ---------------------------------------

type newGameRes struct {
	GameID   string        `json:"gameId"`
	Name     string        `json:"name"`
	Snapshot game.Snapshot `json:"snapshot"`
}

// handleNewGame creates a game in the standard position, owned by the
// caller's account or anonymous cookie.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	g := game.New()
	if me := userFrom(r); me != nil {
		g.OwnerID = me.ID
	} else {
		g.AnonID = s.ensureAnonID(w, r)
	}

	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Info().Str("gameId", g.ID).Str("name", g.Name).Bool("owned", g.OwnerID != "").Msg("game created")

	_ = json.NewEncoder(w).Encode(newGameRes{GameID: g.ID, Name: g.Name, Snapshot: g.Snapshot()})
}

// handleGetGame returns the read-only snapshot of a game.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("load game")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return
	}
	_ = json.NewEncoder(w).Encode(g.Snapshot())
}

type clickReq struct {
	GameID string `json:"gameId"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

type clickRes struct {
	Notice   game.Notice   `json:"notice"`
	Snapshot game.Snapshot `json:"snapshot"`
}

// handleClick feeds one clicked square to the game's state machine,
// persists the new state and records the result once the game ends.
func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	var req clickReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GameID == "" {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	unlock := s.locks.lock(req.GameID)
	defer unlock()

	g, err := s.store.Get(r.Context(), req.GameID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("gameId", req.GameID).Msg("load game")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return
	}

	notice, err := g.Click(chess.Sq(req.Row, req.Col))
	switch {
	case errors.Is(err, game.ErrGameOver):
		writeError(w, http.StatusConflict, "game_over")
		return
	case errors.Is(err, game.ErrOffBoard):
		writeError(w, http.StatusBadRequest, "off_board")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "click_failed")
		return
	}

	ev := log.Debug()
	if notice == game.NoticeIllegalMove {
		ev = log.Info()
	}
	ev.Str("gameId", g.ID).Int("row", req.Row).Int("col", req.Col).Str("notice", string(notice)).Msg("click")

	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	if g.State.Status.Finished() {
		s.recordResult(r.Context(), g)
	}

	_ = json.NewEncoder(w).Encode(clickRes{Notice: notice, Snapshot: g.Snapshot()})
}
