// internal/httpserver/routes_sessions.go
//
// Helper sessions over HTTP:
//   - POST   /sessions               → new session, first suggestion, token
//   - GET    /sessions/{id}          → guesses, derived constraints, suggestion
//   - POST   /sessions/{id}/feedback → record feedback, next suggestion
//   - DELETE /sessions/{id}          → forget the session
//
// "No suggestion" is a normal outcome, reported as suggestion:null with a
// reason rather than an HTTP error.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordlehelper/internal/game"
	"github.com/robalobadob/wordlehelper/internal/ledger"
	"github.com/robalobadob/wordlehelper/internal/session"
	"github.com/robalobadob/wordlehelper/internal/solver"
	"github.com/robalobadob/wordlehelper/internal/store"
)

func (s *Server) mountSessions() {
	s.r.Post("/sessions", s.handleNewSession)
	s.r.Route("/sessions/{id}", func(r chi.Router) {
		r.Use(s.requireSession)
		r.Get("/", s.handleGetSession)
		r.Delete("/", s.handleDeleteSession)
		r.Post("/feedback", s.handleFeedback)
	})
}

// sessionID returns the id authorized by requireSession.
func sessionID(r *http.Request) string {
	id, _ := r.Context().Value(ctxSessionKey{}).(string)
	return id
}

type newSessionRes struct {
	SessionID  string  `json:"sessionId"`
	Token      string  `json:"token"`
	Suggestion *string `json:"suggestion"`
	Reason     string  `json:"reason,omitempty"`
}

type sessionView struct {
	SessionID  string             `json:"sessionId"`
	Guesses    *ledger.Ledger     `json:"guesses"`
	Omit       string             `json:"omit"`
	Include    *ledger.IncludeMap `json:"include"`
	Suggestion *string            `json:"suggestion"`
	Solved     bool               `json:"solved"`
	Candidates []string           `json:"candidates,omitempty"`
}

type feedbackReq struct {
	Guess    string `json:"guess"` // optional; defaults to the pending suggestion
	Feedback string `json:"feedback"`
}

type feedbackRes struct {
	Marks      []game.Mark `json:"marks"`
	Feedback   string      `json:"feedback"`
	Solved     bool        `json:"solved"`
	Suggestion *string     `json:"suggestion"`
	Reason     string      `json:"reason,omitempty"`
}

// suggest advances sess and maps the two "no word" outcomes to a reason.
// Only unexpected errors are returned.
func (s *Server) suggest(ctx context.Context, sess *session.Session) (*string, string, error) {
	w, err := sess.Next(ctx, s.eng)
	switch {
	case err == nil:
		return &w, "", nil
	case errors.Is(err, solver.ErrNoCandidate):
		return nil, session.ReasonNoCandidate, nil
	case errors.Is(err, solver.ErrBudgetExceeded):
		log.Warn().Str("sessionId", sess.ID).Msg("suggestion budget exceeded")
		return nil, session.ReasonBudgetExceeded, nil
	default:
		return nil, "", err
	}
}

func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	sess := session.New()
	sug, reason, err := s.suggest(r.Context(), sess)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "suggest_failed", err)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}
	tok, exp, err := s.signToken(sess.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "token_failed", nil)
		return
	}
	s.setTokenCookie(w, tok, exp)
	writeJSON(w, http.StatusCreated, newSessionRes{SessionID: sess.ID, Token: tok, Suggestion: sug, Reason: reason})
}

func (s *Server) load(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := s.store.Get(r.Context(), sessionID(r))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", nil)
		return nil, false
	}
	if err != nil {
		log.Error().Err(err).Msg("load session")
		writeError(w, http.StatusInternalServerError, "load_failed", nil)
		return nil, false
	}
	return sess, true
}

// handleGetSession returns the session view. ?candidates=N adds up to N
// acceptable words in search order.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.load(w, r)
	if !ok {
		return
	}
	c := ledger.Derive(sess.Ledger)
	view := sessionView{
		SessionID: sess.ID,
		Guesses:   sess.Ledger,
		Omit:      string(c.Omit.Letters()),
		Include:   c.Include,
		Solved:    sess.Done(),
	}
	if sess.Suggestion != "" {
		view.Suggestion = &sess.Suggestion
	}
	if v := r.URL.Query().Get("candidates"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "bad_candidates", err)
			return
		}
		cands, err := s.eng.Candidates(r.Context(), sess.Ledger, n)
		if err != nil && !errors.Is(err, solver.ErrBudgetExceeded) {
			writeError(w, http.StatusInternalServerError, "search_failed", err)
			return
		}
		view.Candidates = cands
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	defer s.locks.Lock(sessionID(r))()
	if err := s.store.Delete(r.Context(), sessionID(r)); err != nil {
		writeError(w, http.StatusInternalServerError, "delete_failed", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}
	// Concurrent feedback for one session must not read the same ledger.
	defer s.locks.Lock(sessionID(r))()
	sess, ok := s.load(w, r)
	if !ok {
		return
	}
	if sess.Done() {
		writeError(w, http.StatusConflict, "already_solved", nil)
		return
	}
	err := sess.Record(req.Guess, req.Feedback)
	switch {
	case errors.Is(err, game.ErrMalformedFeedback):
		writeError(w, http.StatusBadRequest, "malformed_feedback", err)
		return
	case errors.Is(err, ledger.ErrInvalidGuess):
		writeError(w, http.StatusBadRequest, "invalid_guess", err)
		return
	case errors.Is(err, session.ErrNoGuess):
		writeError(w, http.StatusBadRequest, "no_guess", err)
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "record_failed", err)
		return
	}

	last, _ := sess.Ledger.Last()
	res := feedbackRes{Marks: last.Marks, Feedback: last.Feedback(), Solved: sess.Done()}
	if !res.Solved {
		if res.Suggestion, res.Reason, err = s.suggest(r.Context(), sess); err != nil {
			writeError(w, http.StatusInternalServerError, "suggest_failed", err)
			return
		}
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
