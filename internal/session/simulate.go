// internal/session/simulate.go
//
// Automated play: the helper plays against a referee that knows the answer.
// Each suggestion is scored with game.Score and fed back into the session,
// exactly as a player would type it, until the answer is hit, no
// candidate remains, or the guess limit is reached.

package session

import (
	"context"
	"errors"

	"github.com/robalobadob/wordlehelper/internal/game"
	"github.com/robalobadob/wordlehelper/internal/solver"
)

// Reasons an automated game ended without a win.
const (
	ReasonNoCandidate    = "no_candidate"
	ReasonBudgetExceeded = "budget_exceeded"
	ReasonMaxGuesses     = "max_guesses"
)

// Outcome summarizes one automated game.
type Outcome struct {
	Answer  string   `json:"answer"`
	Guesses []string `json:"guesses"`
	Solved  bool     `json:"solved"`
	Reason  string   `json:"reason,omitempty"`
}

// Simulate plays answer to completion. maxGuesses <= 0 means unlimited.
// A game that ends without a win is an Outcome, not an error; errors are
// reserved for invalid input and cancellation.
func Simulate(ctx context.Context, eng *solver.Engine, answer string, maxGuesses int) (Outcome, error) {
	g, err := game.New(answer, maxGuesses)
	if err != nil {
		return Outcome{Answer: answer}, err
	}
	out := Outcome{Answer: g.Answer}
	s := New()
	for {
		word, err := s.Next(ctx, eng)
		switch {
		case errors.Is(err, solver.ErrNoCandidate):
			out.Reason = ReasonNoCandidate
			return out, nil
		case errors.Is(err, solver.ErrBudgetExceeded):
			out.Reason = ReasonBudgetExceeded
			return out, nil
		case err != nil:
			return out, err
		}

		marks, state, err := g.ApplyGuess(word)
		if err != nil {
			return out, err
		}
		out.Guesses = append(out.Guesses, word)
		if err := s.RecordMarks(word, marks); err != nil {
			return out, err
		}
		switch state {
		case game.StateWon:
			out.Solved = true
			return out, nil
		case game.StateLost:
			out.Reason = ReasonMaxGuesses
			return out, nil
		}
	}
}
