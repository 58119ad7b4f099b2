// internal/solver/generator.go
//
// Letter-set generator.
// Produces five-distinct-letter sets to try, best-first:
//   1. Count letter frequency over the whole lexicon.
//   2. Drop included letters (always placed first) and omitted letters.
//   3. Sort the rest by count, descending; ties keep first-appearance order.
//   4. Enumerate k-letter picks (k = 5 - included) in ordered Cartesian
//      power order, keeping only the first arrangement of each distinct set.
//
// Step 4 is the lexicographic order of index combinations: the first time a
// set shows up in the Cartesian power is its sorted arrangement, so walking
// combinations directly yields the same sets in the same order without
// visiting the k!-1 permutations that would be discarded.

package solver

import (
	"errors"
	"sort"

	"github.com/robalobadob/wordlehelper/internal/ledger"
	"github.com/robalobadob/wordlehelper/internal/words"
)

// ErrBudgetExceeded is reported when enumeration stops on a set or time budget.
var ErrBudgetExceeded = errors.New("search budget exceeded")

// Generator lazily yields letter sets. It is finite, never yields the same
// set twice and can only be restarted from the beginning.
type Generator struct {
	prefix  []byte // included letters, first-confirmed order
	letters []byte // candidate letters, best first
	k       int
	idx     []int
	started bool
	done    bool
	sets    int
	maxSets int
	err     error
}

// NewGenerator prepares a generator over lex for the given constraints.
// maxSets <= 0 disables the set budget.
func NewGenerator(lex *words.Lexicon, omit words.Mask, include *ledger.IncludeMap, maxSets int) *Generator {
	g := &Generator{
		prefix:  include.Keys(),
		maxSets: maxSets,
	}
	g.k = words.Length - len(g.prefix)
	g.letters = rankLetters(lex, omit|include.Mask())
	g.idx = make([]int, max(g.k, 0))
	return g
}

// rankLetters returns lexicon letters not in skip, most frequent first.
func rankLetters(lex *words.Lexicon, skip words.Mask) []byte {
	freq := lex.Frequencies()
	rows := make([]words.Frequency, 0, len(freq))
	for _, f := range freq {
		if !skip.Has(f.Letter) {
			rows = append(rows, f)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
	out := make([]byte, len(rows))
	for i, f := range rows {
		out[i] = f.Letter
	}
	return out
}

// Letters returns the ranked candidate letters the generator draws from.
func (g *Generator) Letters() []byte { return append([]byte(nil), g.letters...) }

// Next returns the next letter set, or false once the sequence is exhausted
// or the budget is hit. Check Err to tell the two apart.
func (g *Generator) Next() (string, bool) {
	if g.done {
		return "", false
	}
	if !g.advance() {
		g.done = true
		return "", false
	}
	if g.maxSets > 0 && g.sets >= g.maxSets {
		g.done = true
		g.err = ErrBudgetExceeded
		return "", false
	}
	g.sets++
	set := make([]byte, 0, words.Length)
	set = append(set, g.prefix...)
	for _, i := range g.idx {
		set = append(set, g.letters[i])
	}
	return string(set), true
}

// advance moves idx to the next combination.
func (g *Generator) advance() bool {
	n := len(g.letters)
	if g.k < 0 || g.k > n {
		return false
	}
	if !g.started {
		g.started = true
		for i := range g.idx {
			g.idx[i] = i
		}
		return true
	}
	// k == 0 has exactly one (empty) combination, already produced.
	for i := g.k - 1; i >= 0; i-- {
		if g.idx[i] < n-g.k+i {
			g.idx[i]++
			for j := i + 1; j < g.k; j++ {
				g.idx[j] = g.idx[j-1] + 1
			}
			return true
		}
	}
	return false
}

// Reset restarts the sequence from the first set.
func (g *Generator) Reset() {
	g.started, g.done = false, false
	g.sets = 0
	g.err = nil
}

// Count returns how many sets have been yielded since the last reset.
func (g *Generator) Count() int { return g.sets }

// Err returns ErrBudgetExceeded if enumeration stopped early.
func (g *Generator) Err() error { return g.err }
