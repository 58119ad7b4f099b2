// internal/game/types.go
//
// Core type definitions shared by the engine, the ledger and the transports.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss) and its digit code.
//   - State: coarse state of a refereed game.
//   - Game: state for a single refereed game (automated play).

package game

import (
	"errors"
	"fmt"
	"strings"
)

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position (code '2').
//   - "present": letter exists in the answer but in a different position (code '1').
//   - "miss":    letter does not exist in the answer at all (code '0').
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// ErrMalformedFeedback is returned for feedback codes outside {'0','1','2'}
// or of the wrong length ("invalid hot encoding").
var ErrMalformedFeedback = errors.New("malformed feedback")

// Code returns the digit used on the wire for m.
func (m Mark) Code() byte {
	switch m {
	case MarkHit:
		return '2'
	case MarkPresent:
		return '1'
	default:
		return '0'
	}
}

// MarkFromCode maps a digit code to its Mark.
func MarkFromCode(c byte) (Mark, error) {
	switch c {
	case '0':
		return MarkMiss, nil
	case '1':
		return MarkPresent, nil
	case '2':
		return MarkHit, nil
	}
	return "", fmt.Errorf("%w: invalid hot encoding %q", ErrMalformedFeedback, c)
}

// ParseFeedback converts a code string like "02110" into marks.
// The string must be exactly length characters long.
func ParseFeedback(code string, length int) ([]Mark, error) {
	code = strings.TrimSpace(code)
	if len(code) != length {
		return nil, fmt.Errorf("%w: got %d codes, want %d", ErrMalformedFeedback, len(code), length)
	}
	out := make([]Mark, len(code))
	for i := 0; i < len(code); i++ {
		m, err := MarkFromCode(code[i])
		if err != nil {
			return nil, err
		}
		out[i] = m
	}
	return out, nil
}

// FormatFeedback is the inverse of ParseFeedback.
func FormatFeedback(marks []Mark) string {
	b := make([]byte, len(marks))
	for i, m := range marks {
		b[i] = m.Code()
	}
	return string(b)
}

// AllHit returns true if marks is non-empty and every mark is MarkHit.
func AllHit(marks []Mark) bool {
	if len(marks) == 0 {
		return false
	}
	for _, x := range marks {
		if x != MarkHit {
			return false
		}
	}
	return true
}

// State is the coarse state of a refereed game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Game holds the state of a single refereed game.
type Game struct {
	ID         string   // Unique game identifier (ULID).
	Answer     string   // The solution word (always lowercase).
	MaxGuesses int      // Guess limit; 0 means unlimited.
	Guesses    []string // Guesses made so far (lowercased).
	Finished   bool     // True once the game is over (won or lost).
	Won        bool     // True if the game was finished with a win.
}
