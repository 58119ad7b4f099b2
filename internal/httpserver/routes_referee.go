// internal/httpserver/routes_referee.go
//
// Referee endpoints that need no session:
//   - POST /score    → feedback for a guess against a known answer
//   - POST /simulate → let the helper play an answer (given directly or by date)

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/robalobadob/wordlehelper/internal/daily"
	"github.com/robalobadob/wordlehelper/internal/game"
	"github.com/robalobadob/wordlehelper/internal/session"
	"github.com/robalobadob/wordlehelper/internal/words"
)

func (s *Server) mountReferee() {
	s.r.Post("/score", s.handleScore)
	s.r.Post("/simulate", s.handleSimulate)
}

type scoreReq struct {
	Answer string `json:"answer"`
	Guess  string `json:"guess"`
}

type scoreRes struct {
	Marks    []game.Mark `json:"marks"`
	Feedback string      `json:"feedback"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}
	answer, guess := words.Normalize(req.Answer), words.Normalize(req.Guess)
	if !words.Valid(answer) || !words.Valid(guess) {
		writeError(w, http.StatusBadRequest, "invalid_word", nil)
		return
	}
	marks := game.Score(answer, guess)
	writeJSON(w, http.StatusOK, scoreRes{Marks: marks, Feedback: game.FormatFeedback(marks)})
}

type simulateReq struct {
	Answer string `json:"answer"`
	Date   string `json:"date"` // YYYY-MM-DD; used when answer is empty
}

type simulateRes struct {
	Date string `json:"date,omitempty"`
	Day  *int   `json:"day,omitempty"`
	session.Outcome
}

var errNoAnswers = errors.New("no answer list configured")

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}
	var res simulateRes
	answer := req.Answer
	if answer == "" {
		if len(s.opts.Answers) == 0 {
			writeError(w, http.StatusBadRequest, "no_answers", errNoAnswers)
			return
		}
		date := time.Now().UTC()
		if req.Date != "" {
			d, err := daily.ParseDate(req.Date)
			if err != nil {
				writeError(w, http.StatusBadRequest, "bad_date", err)
				return
			}
			date = d
		}
		day := daily.Index(date, s.opts.DailySalt, len(s.opts.Answers))
		answer = s.opts.Answers[day]
		res.Date, res.Day = daily.DateKey(date), &day
	}
	out, err := session.Simulate(r.Context(), s.eng, answer, s.opts.MaxGuesses)
	if errors.Is(err, game.ErrInvalidAnswer) {
		writeError(w, http.StatusBadRequest, "invalid_answer", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "simulate_failed", err)
		return
	}
	res.Outcome = out
	writeJSON(w, http.StatusOK, res)
}
