// internal/game/engine.go
//
// Referee for automated play.
// Responsibilities:
//   - Create refereed games for a known answer.
//   - Validate and apply guesses (length, alphabetic).
//   - Score guesses using the classic two-pass Wordle algorithm.
//   - Track state transitions: playing → won/lost.
//
// The suggestion engine never sees the answer; the referee only turns
// each suggested guess into the feedback a human player would type.
package game

import (
	"errors"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/robalobadob/wordlehelper/internal/words"
)

var (
	ErrGameFinished  = errors.New("game finished")
	ErrInvalidGuess  = errors.New("invalid guess")
	ErrInvalidAnswer = errors.New("invalid answer")
)

// New constructs a refereed game. maxGuesses <= 0 means unlimited.
func New(answer string, maxGuesses int) (*Game, error) {
	ans := words.Normalize(answer)
	if !words.Valid(ans) {
		return nil, ErrInvalidAnswer
	}
	if maxGuesses < 0 {
		maxGuesses = 0
	}
	return &Game{
		ID:         ulid.Make().String(),
		Answer:     ans,
		MaxGuesses: maxGuesses,
		Guesses:    []string{},
	}, nil
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the per-letter marks, the new state, or an error.
//
// State transitions:
//   - If all tiles are Hit → Finished = true, Won = true.
//   - Else if the number of guesses reaches MaxGuesses → Finished = true (loss).
func (g *Game) ApplyGuess(guess string) ([]Mark, State, error) {
	if g.Finished {
		return nil, g.State(), ErrGameFinished
	}
	guess = words.Normalize(guess)
	if !words.Valid(guess) {
		return nil, g.State(), ErrInvalidGuess
	}

	marks := Score(g.Answer, guess)
	g.Guesses = append(g.Guesses, guess)

	if AllHit(marks) {
		g.Finished, g.Won = true, true
	} else if g.MaxGuesses > 0 && len(g.Guesses) >= g.MaxGuesses {
		g.Finished = true
	}
	return marks, g.State(), nil
}

// State reports the current game state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Score implements the standard Wordle two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non-hit) answer letters by letter index.
//
// Pass 2:
//   - For each non-hit guess letter: if there is remaining count for that letter,
//     mark Present and decrement the count; otherwise mark Miss.
//
// Inputs are expected to be validated lowercase words of equal length;
// on a length mismatch every position is a Miss.
func Score(answer, guess string) []Mark {
	answer, guess = strings.ToLower(answer), strings.ToLower(guess)
	n := len(guess)
	res := make([]Mark, n)
	if len(answer) != n {
		for i := range res {
			res[i] = MarkMiss
		}
		return res
	}

	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = MarkHit
		} else if j := idx(answer[i]); j >= 0 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkHit {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkMiss
		}
	}
	return res
}

// idx maps a lowercase ASCII letter to 0..25, or -1.
func idx(b byte) int {
	if b < 'a' || b > 'z' {
		return -1
	}
	return int(b - 'a')
}
