// internal/session/play.go
//
// Interactive session loop.
// Each turn prints a suggestion and reads one line of feedback:
//   - "02110"             feedback for the suggested word
//   - "w <word> 02110"    feedback for a different word the player typed
//   - "q"                 quit
// Malformed lines are reported and the same suggestion stays pending.
// The loop ends on all-hit feedback, when no candidate remains, or on EOF.

package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordlehelper/internal/game"
	"github.com/robalobadob/wordlehelper/internal/ledger"
	"github.com/robalobadob/wordlehelper/internal/solver"
)

const prompt = "What is the board state? Type it like '00120' (q to quit): "

// Play runs an interactive session until it finishes. It returns the
// session so callers can inspect the ledger afterwards.
func Play(ctx context.Context, eng *solver.Engine, in io.Reader, out io.Writer) (*Session, error) {
	s := New()
	t := newTiles(out)
	sc := bufio.NewScanner(in)

	for {
		if err := ctx.Err(); err != nil {
			return s, err
		}
		word, err := s.Next(ctx, eng)
		switch {
		case errors.Is(err, solver.ErrNoCandidate):
			fmt.Fprintln(out, "No more words left to guess. The answer word is not in the list.")
			return s, nil
		case errors.Is(err, solver.ErrBudgetExceeded):
			log.Warn().Err(err).Int("guesses", s.Ledger.Len()).Msg("search budget exceeded")
			fmt.Fprintln(out, "No suggestion available: search budget exceeded.")
			return s, nil
		case err != nil:
			return s, err
		}
		fmt.Fprintf(out, "play '%s'\n", word)

		for {
			fmt.Fprint(out, prompt)
			if !sc.Scan() {
				fmt.Fprintln(out)
				return s, sc.Err()
			}
			line := strings.TrimSpace(sc.Text())
			if line == "q" || line == "quit" {
				return s, nil
			}
			guess, code := "", line
			if f := strings.Fields(line); len(f) == 3 && f[0] == "w" {
				guess, code = f[1], f[2]
			}
			if err := s.Record(guess, code); err != nil {
				if errors.Is(err, game.ErrMalformedFeedback) || errors.Is(err, ledger.ErrInvalidGuess) {
					fmt.Fprintf(out, "invalid input: %v\n", err)
					continue
				}
				return s, err
			}
			break
		}

		last, _ := s.Ledger.Last()
		fmt.Fprintln(out, t.render(last.Guess, last.Marks))
		if s.Done() {
			fmt.Fprintf(out, "Congratulations. Solved in %d guesses.\n", s.Ledger.Len())
			return s, nil
		}
	}
}
