// internal/httpserver/server.go
//
// HTTP server wiring for the word scramble backend.
// Responsibilities:
//   - Router + middleware (access log, JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, GET /game/{id}, DELETE /game/{id},
//     POST /game/{id}/word, POST /game/{id}/restart.
//
// Notes:
//   - Sessions are held in a store.Store; nothing is written to disk.
//   - A rejected word is a normal game outcome and is answered with 200
//     and accepted=false; only malformed requests and unknown games are errors.
//   - Mutating handlers are serialized so get → submit → save never interleaves.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/store"
	"github.com/robalobadob/wordscramble/internal/words"
)

// maxWordBody caps a POST /game/{id}/word body; a candidate is a few bytes.
const maxWordBody = 1 << 10

// Options tunes the HTTP layer.
type Options struct {
	ClientOrigin   string        // CORS origin; defaults to http://localhost:5173
	RequestTimeout time.Duration // per-request bound; defaults to 10s
	Picker         game.Picker   // root word picker; defaults to game.DefaultPicker
	Logger         *zerolog.Logger
}

// Server bundles router, session store, word lists and validator.
type Server struct {
	r         *chi.Mux
	store     store.Store
	lists     *words.Lists
	validator *game.Validator
	pick      game.Picker

	mu sync.Mutex // serializes session mutations
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, lists *words.Lists, v *game.Validator, opts Options) *Server {
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	if opts.Picker == nil {
		opts.Picker = game.DefaultPicker
	}
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	s := &Server{r: chi.NewRouter(), store: st, lists: lists, validator: v, pick: opts.Picker}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                    // add X-Request-ID
	s.r.Use(chimw.RealIP)                       // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(logger))            // request-scoped logger
	s.r.Use(hlog.AccessHandler(accessLog))      // one log line per request
	s.r.Use(chimw.Recoverer)                    // recover from panics
	s.r.Use(chimw.Timeout(opts.RequestTimeout)) // bound handler time
	s.r.Use(jsonContentType)                    // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))            // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordscramble-go","endpoints":["/health","POST /game/new","GET /game/{id}","DELETE /game/{id}","POST /game/{id}/word","POST /game/{id}/restart"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		roots, dict := s.lists.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"roots": roots, "dictionary": dict, "sessions": s.store.Len()})
	})

	// --- game ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Route("/game/{id}", func(r chi.Router) {
		r.Get("/", s.handleGetGame)
		r.Delete("/", s.handleDeleteGame)
		r.Post("/word", s.handleSubmitWord)
		r.Post("/restart", s.handleRestart)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	return srv.ListenAndServe()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ GAME ---------------------------------------

// stateRes is the public view of a session.
type stateRes struct {
	GameID    string   `json:"gameId"`
	RootWord  string   `json:"rootWord"`
	UsedWords []string `json:"usedWords"`
	Score     int      `json:"score"`
}

func toState(g game.Session) stateRes {
	used := g.UsedWords
	if used == nil {
		used = []string{}
	}
	return stateRes{GameID: g.ID, RootWord: g.RootWord, UsedWords: used, Score: g.Score}
}

// wordReq/Res payloads for POST /game/{id}/word.
type wordReq struct {
	Word string `json:"word"`
}
type wordRes struct {
	Accepted bool        `json:"accepted"`
	Word     string      `json:"word"`
	Points   int         `json:"points"`
	Reason   game.Reason `json:"reason,omitempty"`
	Title    string      `json:"title,omitempty"`
	Message  string      `json:"message,omitempty"`
	State    stateRes    `json:"state"`
}

// handleNewGame starts a session with a random root word.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	g, err := game.NewSession(s.lists.Roots(), s.pick)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("new session")
		writeError(w, http.StatusInternalServerError, "no_root_words")
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	hlog.FromRequest(r).Info().Str("gameId", g.ID).Str("root", g.RootWord).Msg("game started")
	writeJSON(w, http.StatusCreated, toState(g))
}

// handleGetGame returns the current state of a session.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, ok := s.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toState(g))
}

// handleDeleteGame drops a session; later requests for it get 404.
func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := chi.URLParam(r, "id")
	err := s.store.Delete(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
		return
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Str("gameId", id).Msg("delete session")
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	hlog.FromRequest(r).Info().Str("gameId", id).Msg("game deleted")
	w.WriteHeader(http.StatusNoContent)
}

// handleSubmitWord validates a word against a session and stores the
// session if the word was accepted.
func (s *Server) handleSubmitWord(w http.ResponseWriter, r *http.Request) {
	var req wordReq
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxWordBody)).Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "too_large")
			return
		}
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.load(w, r)
	if !ok {
		return
	}
	g, res := s.validator.Submit(g, req.Word)
	if res.Accepted {
		if err := s.store.Save(r.Context(), g); err != nil {
			hlog.FromRequest(r).Error().Err(err).Str("gameId", g.ID).Msg("save session")
			writeError(w, http.StatusInternalServerError, "save_failed")
			return
		}
	}
	hlog.FromRequest(r).Debug().
		Str("gameId", g.ID).
		Str("word", res.Word).
		Bool("accepted", res.Accepted).
		Str("reason", string(res.Reason)).
		Int("points", res.Points).
		Msg("word submitted")

	writeJSON(w, http.StatusOK, wordRes{
		Accepted: res.Accepted,
		Word:     res.Word,
		Points:   res.Points,
		Reason:   res.Reason,
		Title:    res.Reason.Title(),
		Message:  res.Reason.Message(),
		State:    toState(g),
	})
}

// handleRestart replaces the session's round with a fresh one.
func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.load(w, r)
	if !ok {
		return
	}
	g, err := game.Restart(g, s.lists.Roots(), s.pick)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("restart session")
		writeError(w, http.StatusInternalServerError, "no_root_words")
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("gameId", g.ID).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	hlog.FromRequest(r).Info().Str("gameId", g.ID).Str("root", g.RootWord).Msg("game restarted")
	writeJSON(w, http.StatusOK, toState(g))
}

// load fetches the session named in the URL, writing the error response
// itself when it cannot.
func (s *Server) load(w http.ResponseWriter, r *http.Request) (game.Session, bool) {
	g, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
		return game.Session{}, false
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Msg("load session")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return game.Session{}, false
	}
	return g, true
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
