// internal/words/answers.go
//
// Answer history for automated play.
// The history is an ordered list where index N is the answer of day N.
// Unlike a Lexicon it keeps duplicates and order exactly as read, since
// the position of each entry is meaningful. Blank and # lines are not entries.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/robalobadob/wordlehelper/assets"
)

// ErrBadAnswer is returned when an answer history entry is not a
// five-letter word. Entries are never skipped, since that would shift the
// day of every later answer.
var ErrBadAnswer = errors.New("words: invalid answer")

// LoadAnswers reads an answer history file, one word per line.
// An empty path selects the embedded history.
func LoadAnswers(path string) ([]string, error) {
	if path == "" {
		list, err := assets.AnswersList()
		if err != nil {
			return nil, fmt.Errorf("words: embedded answers: %w", err)
		}
		out := make([]string, 0, len(list))
		for day, raw := range list {
			w := Normalize(raw)
			if !Valid(w) {
				return nil, fmt.Errorf("%w: embedded answers day %d: %q", ErrBadAnswer, day, raw)
			}
			out = append(out, w)
		}
		return out, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	var list []string
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w := Normalize(line)
		if !Valid(w) {
			return nil, fmt.Errorf("%w: %s:%d: %q", ErrBadAnswer, path, n, line)
		}
		list = append(list, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return list, nil
}
