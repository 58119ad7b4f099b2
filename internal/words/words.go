// internal/words/words.go
//
// Lexicon management for the suggestion engine.
//
// Responsibilities:
//   - Load a word list from a file, any reader, or the embedded default.
//   - Normalize entries (trim, lowercase) and keep only 5-letter a–z words.
//   - Drop duplicates, keeping the first occurrence so lexicon order is stable.
//   - Precompute a letter mask per word for fast "contains all letters" tests.
//   - Report the positionless letter frequency table.
//
// A Lexicon is immutable once built and safe to share across goroutines.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wordlehelper/assets"
)

// Length is the number of letters in every lexicon word.
const Length = 5

// ErrEmptyLexicon is returned when no valid word survives loading.
var ErrEmptyLexicon = errors.New("words: lexicon is empty")

// Lexicon is an ordered, duplicate-free list of five-letter words.
type Lexicon struct {
	words []string
	masks []Mask
	index map[string]int
}

// Frequency is one row of the letter frequency table.
type Frequency struct {
	Letter byte
	Count  int
}

// New builds a Lexicon from raw entries. Invalid entries are skipped.
func New(list []string) (*Lexicon, error) {
	lex := &Lexicon{index: make(map[string]int, len(list))}
	for _, raw := range list {
		w := Normalize(raw)
		if !Valid(w) {
			continue
		}
		if _, dup := lex.index[w]; dup {
			continue
		}
		lex.index[w] = len(lex.words)
		lex.words = append(lex.words, w)
		lex.masks = append(lex.masks, MaskOf(w))
	}
	if len(lex.words) == 0 {
		return nil, ErrEmptyLexicon
	}
	return lex, nil
}

// Parse reads one word per line from r.
// Blank lines and lines starting with '#' are ignored.
func Parse(r io.Reader) (*Lexicon, error) {
	var list []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read: %w", err)
	}
	return New(list)
}

// Load reads a lexicon file. An empty path selects the embedded default.
func Load(path string) (*Lexicon, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Default returns the embedded lexicon.
func Default() (*Lexicon, error) {
	list, err := assets.WordList()
	if err != nil {
		return nil, fmt.Errorf("words: embedded list: %w", err)
	}
	return New(list)
}

// Normalize trims and lowercases a raw entry.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Valid reports whether w is exactly Length lowercase ASCII letters.
func Valid(w string) bool {
	return len(w) == Length && isAlpha(w)
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Len returns the number of words.
func (l *Lexicon) Len() int { return len(l.words) }

// Words returns the words in lexicon order. Callers must not modify the slice.
func (l *Lexicon) Words() []string { return l.words }

// Word returns the i-th word.
func (l *Lexicon) Word(i int) string { return l.words[i] }

// Mask returns the letter mask of the i-th word.
func (l *Lexicon) Mask(i int) Mask { return l.masks[i] }

// Contains reports whether w (after normalization) is in the lexicon.
func (l *Lexicon) Contains(w string) bool {
	_, ok := l.index[Normalize(w)]
	return ok
}

// Frequencies counts every letter occurrence across the whole lexicon.
// Rows are returned in order of each letter's first appearance, which is
// the tie-break order callers rely on when sorting by count.
func (l *Lexicon) Frequencies() []Frequency {
	var counts [26]int
	var order []byte
	for _, w := range l.words {
		for i := 0; i < len(w); i++ {
			c := w[i] - 'a'
			if counts[c] == 0 {
				order = append(order, w[i])
			}
			counts[c]++
		}
	}
	out := make([]Frequency, 0, len(order))
	for _, b := range order {
		out = append(out, Frequency{Letter: b, Count: counts[b-'a']})
	}
	return out
}

// Without returns a new Lexicon with the given words removed.
// It returns ErrEmptyLexicon when nothing is left.
func (l *Lexicon) Without(drop []string) (*Lexicon, error) {
	skip := make(map[string]struct{}, len(drop))
	for _, w := range drop {
		skip[Normalize(w)] = struct{}{}
	}
	keep := make([]string, 0, len(l.words))
	for _, w := range l.words {
		if _, ok := skip[w]; !ok {
			keep = append(keep, w)
		}
	}
	return New(keep)
}
