// internal/httpserver/server.go
//
// HTTP wiring for the play API.
// Responsibilities:
//   - Router + middleware (request IDs, panic recovery, timeouts, JSON).
//   - Public endpoints: "/", "/health", "/debug/words", "/scores".
//   - Game endpoints: POST /game/new, then POST /game/guess and
//     POST /game/resign authenticated by a per-session token.
//
// Notes:
//   - A session token is an HS256 JWT carrying the game ID. Whoever
//     holds the token owns that session; there are no user accounts.
//   - The lexicon is shared read-only across sessions; each session owns
//     only its Game state.
//   - Score history is optional: without it, wins simply are not recorded.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/lexiconlab/wordle-cli/internal/daily"
	"github.com/lexiconlab/wordle-cli/internal/game"
	"github.com/lexiconlab/wordle-cli/internal/history"
	"github.com/lexiconlab/wordle-cli/internal/lexicon"
	"github.com/lexiconlab/wordle-cli/internal/store"
)

// Server bundles router, word list, session store, and score history.
type Server struct {
	r      *chi.Mux
	lex    *lexicon.Store
	sess   store.Store
	hist   *history.Store // may be nil
	secret []byte
	salt   string // daily-mode salt
}

// New constructs a Server, installs middleware, and registers routes.
// lex must already be sorted. hist may be nil to disable score recording.
func New(lex *lexicon.Store, sess store.Store, hist *history.Store) *Server {
	s := &Server{
		r:      chi.NewRouter(),
		lex:    lex,
		sess:   sess,
		hist:   hist,
		secret: []byte(getEnv("SESSION_SECRET", "dev_secret_change_me")),
		salt:   getEnv("DAILY_SALT", "wordle-daily"),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-cli","endpoints":["/health","POST /game/new","POST /game/guess","POST /game/resign","/scores"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{
			"words":   s.lex.Len(),
			"wordLen": s.lex.WordLen(),
		})
	})

	// --- game endpoints ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.With(s.requireSession()).Post("/game/guess", s.handleGuess)
	s.r.With(s.requireSession()).Post("/game/resign", s.handleResign)

	// --- score history ---
	s.r.Get("/scores", s.handleScores)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
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

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Mode   string `json:"mode"`   // "" | "daily"
	Seed   *int64 `json:"seed"`   // optional deterministic seed
	Answer string `json:"answer"` // optional fixed answer (testing)
}
type newGameRes struct {
	GameID string `json:"gameId"`
	Token  string `json:"token"`
}

// handleNewGame creates a session and returns its ID plus the bearer
// token that authorizes guesses against it.
//
// Target selection, in precedence order:
//  1. req.Answer — pinned answer, must be a word from the list.
//  2. mode "daily" — today's deterministic seed (same for everyone).
//  3. req.Seed — caller-supplied seed for a reproducible game.
//  4. default — wall-clock seed.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	// An empty body is fine (all defaults); a broken one is not.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	var g *game.Game
	switch {
	case req.Answer != "":
		if !s.lex.ValidWord(req.Answer) || !s.lex.Contains(req.Answer) {
			http.Error(w, `{"error":"bad_answer"}`, http.StatusBadRequest)
			return
		}
		g = game.NewWithTarget(req.Answer)
	default:
		seed := time.Now().Unix()
		if req.Mode == "daily" {
			seed = daily.Seed(time.Now(), s.salt)
		} else if req.Seed != nil {
			seed = *req.Seed
		}
		var err error
		g, err = game.New(s.lex, seed)
		if err != nil {
			log.Error().Err(err).Msg("new game")
			http.Error(w, `{"error":"empty_word_list"}`, http.StatusInternalServerError)
			return
		}
	}

	if err := s.sess.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	token, err := s.signSession(g.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign session token")
		http.Error(w, `{"error":"token_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(newGameRes{GameID: g.ID, Token: token})
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	Guess string `json:"guess"`
}
type guessRes struct {
	Marks   []game.Mark `json:"marks"`
	State   string      `json:"state"` // "playing" | "won"
	Guesses int         `json:"guesses"`
}

// handleGuess applies a guess to the authenticated session.
// Invalid guesses are a 400 and do not count against the session.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	g := sessionGame(r)
	if g == nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	marks, err := g.ApplyGuess(s.lex, req.Guess)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, game.ErrFinished) {
			status = http.StatusConflict
		}
		http.Error(w, `{"error":"`+err.Error()+`"}`, status)
		return
	}
	if err := s.sess.Save(r.Context(), g); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	// Record the win (best effort, non-fatal if it fails).
	if g.Won && s.hist != nil {
		if err := s.hist.Record(r.Context(), g.Guesses); err != nil {
			log.Warn().Err(err).Str("gameId", g.ID).Msg("record score")
		}
	}

	_ = json.NewEncoder(w).Encode(guessRes{Marks: marks, State: g.State(), Guesses: g.Guesses})
}

// handleResign ends the authenticated session and reveals the target.
func (s *Server) handleResign(w http.ResponseWriter, r *http.Request) {
	g := sessionGame(r)
	if g == nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	if g.Finished {
		http.Error(w, `{"error":"game finished"}`, http.StatusConflict)
		return
	}
	target := g.Resign()
	if err := s.sess.Save(r.Context(), g); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"target": target, "state": g.State()})
}

// handleScores returns the solved-in-N-guesses histogram.
func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	if s.hist == nil {
		http.Error(w, `{"error":"scores_disabled"}`, http.StatusNotFound)
		return
	}
	counts, err := s.hist.Counts(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("read scores")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"buckets": counts})
}

// ------------------------------- small util --------------------------------

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
