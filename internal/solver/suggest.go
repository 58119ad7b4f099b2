// internal/solver/suggest.go
//
// Top-level suggestion search.
// For each letter set from the generator, filter the lexicon down to words
// holding all those letters and return the first one the selector accepts.
// The search stops at the first accepted word.
//
// Budgets:
//   - MaxSets caps how many letter sets are tried.
//   - Timeout caps wall-clock time for one search.
// Either one running out is reported as ErrBudgetExceeded.

package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordlehelper/internal/ledger"
	"github.com/robalobadob/wordlehelper/internal/words"
)

// ErrNoCandidate means no lexicon word satisfies the current constraints.
var ErrNoCandidate = errors.New("no suggestion available")

const (
	DefaultMaxSets = 50000
	DefaultTimeout = 5 * time.Second
)

// Engine runs suggestion searches over a shared, read-only lexicon.
type Engine struct {
	Lexicon *words.Lexicon
	MaxSets int           // <= 0 means unlimited
	Timeout time.Duration // <= 0 means no deadline
}

// NewEngine returns an engine with the default budgets.
func NewEngine(lex *words.Lexicon) *Engine {
	return &Engine{Lexicon: lex, MaxSets: DefaultMaxSets, Timeout: DefaultTimeout}
}

// Suggestion is the outcome of one search.
type Suggestion struct {
	Word    string        `json:"word"`
	Sets    int           `json:"sets"`
	Elapsed time.Duration `json:"elapsedNs"`
}

// Suggest derives constraints from l and returns the first acceptable word.
// It returns ErrNoCandidate when the generator is exhausted and
// ErrBudgetExceeded when a budget stops the search first.
func (e *Engine) Suggest(ctx context.Context, l *ledger.Ledger) (Suggestion, error) {
	start := time.Now()
	var s Suggestion
	sets, err := e.search(ctx, l, func(set string, include *ledger.IncludeMap) bool {
		w, ok := Select(FilterByLetters(e.Lexicon, set), include)
		if ok {
			s.Word = w
		}
		return !ok
	})
	s.Sets, s.Elapsed = sets, time.Since(start)
	if err != nil {
		return s, err
	}
	if s.Word == "" {
		return s, ErrNoCandidate
	}
	log.Debug().Str("word", s.Word).Int("sets", s.Sets).Dur("elapsed", s.Elapsed).Msg("suggestion")
	return s, nil
}

// Candidates lists every word the selector accepts, in search order,
// stopping after limit words (limit <= 0 means no limit). On a budget
// error the words found so far are returned with the error.
func (e *Engine) Candidates(ctx context.Context, l *ledger.Ledger, limit int) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})
	_, err := e.search(ctx, l, func(set string, include *ledger.IncludeMap) bool {
		for _, w := range FilterByLetters(e.Lexicon, set) {
			if _, dup := seen[w]; dup || !Accepts(w, include) {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
			if limit > 0 && len(out) >= limit {
				return false
			}
		}
		return true
	})
	return out, err
}

// search walks letter sets best-first, calling visit for each until visit
// returns false or the sets run out. It returns the number of sets visited.
func (e *Engine) search(ctx context.Context, l *ledger.Ledger, visit func(set string, include *ledger.IncludeMap) bool) (int, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}
	c := ledger.Derive(l)
	gen := NewGenerator(e.Lexicon, c.Omit, c.Include, e.MaxSets)
	for {
		set, ok := gen.Next()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return gen.Count(), fmt.Errorf("%w: %w", ErrBudgetExceeded, err)
			}
			return gen.Count(), err
		}
		if !visit(set, c.Include) {
			return gen.Count(), nil
		}
	}
	return gen.Count(), gen.Err()
}

// SuggestWord runs a search with default budgets.
func SuggestWord(lex *words.Lexicon, l *ledger.Ledger) (string, error) {
	s, err := NewEngine(lex).Suggest(context.Background(), l)
	return s.Word, err
}
