// internal/session/session.go
//
// Session state for one puzzle.
// A Session owns its ledger exclusively; the engine only ever reads it
// through ledger.Derive, so no other state is shared between turns.
//
// Flow per turn:
//   1. Next asks the engine for a suggestion and remembers it.
//   2. Record stores the player's feedback for that suggestion (or for a
//      word the player typed instead).
//   3. Done reports whether the latest feedback was all hits.

package session

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/robalobadob/wordlehelper/internal/game"
	"github.com/robalobadob/wordlehelper/internal/ledger"
	"github.com/robalobadob/wordlehelper/internal/solver"
)

// ErrNoGuess is returned by Record when there is neither an explicit guess
// nor a pending suggestion to attach feedback to.
var ErrNoGuess = errors.New("no guess to record feedback for")

// Session holds the ledger and the last suggestion offered.
type Session struct {
	ID         string         `json:"id"`
	CreatedAt  time.Time      `json:"createdAt"`
	Ledger     *ledger.Ledger `json:"guesses"`
	Suggestion string         `json:"suggestion,omitempty"`
}

// New starts an empty session with a fresh ULID.
func New() *Session {
	return &Session{
		ID:        ulid.Make().String(),
		CreatedAt: time.Now().UTC(),
		Ledger:    ledger.New(),
	}
}

// Next computes the next suggestion. On error the pending suggestion is cleared.
func (s *Session) Next(ctx context.Context, eng *solver.Engine) (string, error) {
	sug, err := eng.Suggest(ctx, s.Ledger)
	if err != nil {
		s.Suggestion = ""
		return "", err
	}
	s.Suggestion = sug.Word
	return sug.Word, nil
}

// Record appends feedback for guess, or for the pending suggestion when
// guess is empty. Malformed input leaves the session untouched.
func (s *Session) Record(guess, feedback string) error {
	if guess == "" {
		guess = s.Suggestion
	}
	if guess == "" {
		return ErrNoGuess
	}
	if err := s.Ledger.Append(guess, feedback); err != nil {
		return err
	}
	s.Suggestion = ""
	return nil
}

// RecordMarks is Record for feedback that is already decoded.
func (s *Session) RecordMarks(guess string, marks []game.Mark) error {
	if guess == "" {
		guess = s.Suggestion
	}
	if guess == "" {
		return ErrNoGuess
	}
	if err := s.Ledger.AppendMarks(guess, marks); err != nil {
		return err
	}
	s.Suggestion = ""
	return nil
}

// Done reports whether the most recent feedback was all hits.
func (s *Session) Done() bool { return s.Ledger.Solved() }

// Clone returns a deep copy safe to mutate independently.
func (s *Session) Clone() *Session {
	cp := *s
	cp.Ledger = s.Ledger.Clone()
	return &cp
}
