// internal/ledger/ledger.go
//
// Feedback ledger for a single helper session.
// Responsibilities:
//   - Record each guess with its per-letter feedback, in play order.
//   - Reject malformed guesses or feedback before anything is appended.
//   - Report whether the latest feedback solved the puzzle.
//
// Constraint sets (omit/include) are derived views, see derive.go.

package ledger

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/robalobadob/wordlehelper/internal/game"
	"github.com/robalobadob/wordlehelper/internal/words"
)

// ErrInvalidGuess is returned when a guess is not a five-letter a–z word.
var ErrInvalidGuess = errors.New("invalid guess")

// Record is one guess and the feedback it received.
type Record struct {
	Guess string      `json:"guess"`
	Marks []game.Mark `json:"marks"`
}

// Feedback returns the digit form of the record's marks, e.g. "02110".
func (r Record) Feedback() string { return game.FormatFeedback(r.Marks) }

// Ledger is an append-only list of records owned by one session.
// It is not safe for concurrent use.
type Ledger struct {
	records []Record
}

// New returns an empty ledger.
func New() *Ledger { return &Ledger{} }

// Append parses a digit feedback string for guess and records it.
// Nothing is recorded if either value is malformed.
func (l *Ledger) Append(guess, feedback string) error {
	g := words.Normalize(guess)
	if !words.Valid(g) {
		return fmt.Errorf("%w: %q", ErrInvalidGuess, guess)
	}
	marks, err := game.ParseFeedback(feedback, len(g))
	if err != nil {
		return err
	}
	return l.AppendMarks(g, marks)
}

// AppendMarks records already-decoded marks for guess.
func (l *Ledger) AppendMarks(guess string, marks []game.Mark) error {
	g := words.Normalize(guess)
	if !words.Valid(g) {
		return fmt.Errorf("%w: %q", ErrInvalidGuess, guess)
	}
	if len(marks) != len(g) {
		return fmt.Errorf("%w: got %d marks, want %d", game.ErrMalformedFeedback, len(marks), len(g))
	}
	for _, m := range marks {
		switch m {
		case game.MarkHit, game.MarkPresent, game.MarkMiss:
		default:
			return fmt.Errorf("%w: unknown mark %q", game.ErrMalformedFeedback, m)
		}
	}
	l.records = append(l.records, Record{Guess: g, Marks: append([]game.Mark(nil), marks...)})
	return nil
}

// Records returns a copy of the recorded guesses in play order.
func (l *Ledger) Records() []Record {
	return append([]Record(nil), l.records...)
}

// Len returns the number of recorded guesses.
func (l *Ledger) Len() int { return len(l.records) }

// Last returns the most recent record.
func (l *Ledger) Last() (Record, bool) {
	if len(l.records) == 0 {
		return Record{}, false
	}
	return l.records[len(l.records)-1], true
}

// Solved reports whether the most recent feedback is all hits.
func (l *Ledger) Solved() bool {
	r, ok := l.Last()
	return ok && game.AllHit(r.Marks)
}

// Clone returns an independent copy of l.
func (l *Ledger) Clone() *Ledger {
	if l == nil {
		return New()
	}
	out := &Ledger{records: make([]Record, len(l.records))}
	for i, r := range l.records {
		out.records[i] = Record{Guess: r.Guess, Marks: append([]game.Mark(nil), r.Marks...)}
	}
	return out
}

// Reset clears the ledger for a new session.
func (l *Ledger) Reset() { l.records = nil }

// MarshalJSON encodes the ledger as its list of records.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	if l.records == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.records)
}

// UnmarshalJSON decodes a list of records, validating each one.
func (l *Ledger) UnmarshalJSON(b []byte) error {
	var recs []Record
	if err := json.Unmarshal(b, &recs); err != nil {
		return err
	}
	fresh := New()
	for _, r := range recs {
		if err := fresh.AppendMarks(r.Guess, r.Marks); err != nil {
			return err
		}
	}
	l.records = fresh.records
	return nil
}
