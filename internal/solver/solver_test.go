package solver

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/robalobadob/wordlehelper/internal/ledger"
	"github.com/robalobadob/wordlehelper/internal/words"
)

func mustLexicon(t *testing.T, list ...string) *words.Lexicon {
	t.Helper()
	lex, err := words.New(list)
	if err != nil {
		t.Fatalf("lexicon: %v", err)
	}
	return lex
}

func mustLedger(t *testing.T, pairs ...string) *ledger.Ledger {
	t.Helper()
	l := ledger.New()
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := l.Append(pairs[i], pairs[i+1]); err != nil {
			t.Fatalf("append %s=%s: %v", pairs[i], pairs[i+1], err)
		}
	}
	return l
}

func TestGeneratorRanking(t *testing.T) {
	lex := mustLexicon(t, "abcde", "fghij", "aabcc")
	g := NewGenerator(lex, 0, nil, 0)
	if got := string(g.Letters()); got != "acbdefghij" {
		t.Fatalf("letters = %q, want acbdefghij", got)
	}
	var got []string
	for i := 0; i < 3; i++ {
		set, ok := g.Next()
		if !ok {
			t.Fatalf("sequence ended after %d sets", i)
		}
		got = append(got, set)
	}
	if strings.Join(got, ",") != "acbde,acbdf,acbdg" {
		t.Fatalf("first sets = %v", got)
	}
}

func TestGeneratorUniqueDistinctSets(t *testing.T) {
	lex, err := words.Default()
	if err != nil {
		t.Fatal(err)
	}
	g := NewGenerator(lex, words.MaskOf("xyz"), nil, 0)
	seen := make(map[words.Mask]string)
	n := 0
	for {
		set, ok := g.Next()
		if !ok {
			break
		}
		n++
		m := words.MaskOf(set)
		if m.Count() != 5 || len(set) != 5 {
			t.Fatalf("set %q does not have 5 distinct letters", set)
		}
		if prev, dup := seen[m]; dup {
			t.Fatalf("set %q repeats %q", set, prev)
		}
		if m.Has('x') || m.Has('y') || m.Has('z') {
			t.Fatalf("set %q contains an omitted letter", set)
		}
		seen[m] = set
	}
	if g.Err() != nil {
		t.Fatalf("Err = %v", g.Err())
	}
	if n != len(seen) || n == 0 {
		t.Fatalf("yielded %d sets, %d unique", n, len(seen))
	}
}

func TestGeneratorPrefixesIncludedLetters(t *testing.T) {
	lex := mustLexicon(t, "abcde", "fghij", "aabcc")
	c := ledger.Derive(mustLedger(t, "abcde", "02220"))
	g := NewGenerator(lex, c.Omit, c.Include, 0)
	if got := string(g.Letters()); got != "fghij" {
		t.Fatalf("letters = %q, want fghij", got)
	}
	n := 0
	for {
		set, ok := g.Next()
		if !ok {
			break
		}
		if !strings.HasPrefix(set, "bcd") {
			t.Fatalf("set %q missing included prefix", set)
		}
		n++
	}
	// C(5,2)
	if n != 10 {
		t.Fatalf("yielded %d sets, want 10", n)
	}
}

func TestGeneratorFullyForced(t *testing.T) {
	lex := mustLexicon(t, "crane", "slate")
	c := ledger.Derive(mustLedger(t, "crane", "21111"))
	g := NewGenerator(lex, c.Omit, c.Include, 0)
	set, ok := g.Next()
	if !ok || set != "crane" {
		t.Fatalf("Next = %q %v, want crane true", set, ok)
	}
	if _, ok := g.Next(); ok {
		t.Fatalf("second set yielded for k=0")
	}
	g.Reset()
	if set, ok := g.Next(); !ok || set != "crane" {
		t.Fatalf("after Reset Next = %q %v", set, ok)
	}
}

func TestGeneratorTooManyIncludedLetters(t *testing.T) {
	lex := mustLexicon(t, "crane", "slate")
	c := ledger.Derive(mustLedger(t, "crane", "11111", "sloth", "10000"))
	g := NewGenerator(lex, c.Omit, c.Include, 0)
	if _, ok := g.Next(); ok {
		t.Fatalf("generator yielded with 6 forced letters")
	}
	if g.Err() != nil {
		t.Fatalf("Err = %v, want nil", g.Err())
	}
}

func TestGeneratorBudget(t *testing.T) {
	lex, _ := words.Default()
	g := NewGenerator(lex, 0, nil, 3)
	first, _ := g.Next()
	for i := 1; i < 3; i++ {
		if _, ok := g.Next(); !ok {
			t.Fatalf("ended early at %d", i)
		}
	}
	if _, ok := g.Next(); ok {
		t.Fatalf("budget not enforced")
	}
	if !errors.Is(g.Err(), ErrBudgetExceeded) {
		t.Fatalf("Err = %v, want ErrBudgetExceeded", g.Err())
	}
	g.Reset()
	if again, _ := g.Next(); again != first || g.Err() != nil {
		t.Fatalf("Reset did not restart: %q vs %q (%v)", again, first, g.Err())
	}
}

func TestFilterByLetters(t *testing.T) {
	lex := mustLexicon(t, "stare", "crane", "tears", "slate")
	all := FilterByLetters(lex, "")
	if strings.Join(all, ",") != "stare,crane,tears,slate" {
		t.Fatalf("empty set = %v, want full lexicon", all)
	}
	got := FilterByLetters(lex, "aert")
	if strings.Join(got, ",") != "stare,tears" {
		t.Fatalf("filter aert = %v", got)
	}
	if got := FilterByLetters(lex, "z"); len(got) != 0 {
		t.Fatalf("filter z = %v, want none", got)
	}
}

func TestSelect(t *testing.T) {
	inc := ledger.DeriveInclude(mustLedger(t, "abcde", "01200"))
	if _, ok := Select(nil, nil); ok {
		t.Fatalf("Select(nil, nil) found a word")
	}
	if _, ok := Select(nil, inc); ok {
		t.Fatalf("Select(nil, inc) found a word")
	}
	if w, ok := Select([]string{"xyzzy", "bacon"}, nil); !ok || w != "xyzzy" {
		t.Fatalf("no-include Select = %q %v", w, ok)
	}
	// b present but not at 2, c hit at 3
	w, ok := Select([]string{"abcde", "obcxy", "xbcyz", "bxcyz", "bacon"}, inc)
	if !ok || w != "bxcyz" {
		t.Fatalf("Select = %q %v, want bxcyz", w, ok)
	}
}

func TestSelectUsesFirstOccurrence(t *testing.T) {
	// 'e' confirmed at position 5; "eerie" has it first at position 1
	inc := ledger.DeriveInclude(mustLedger(t, "crane", "00002"))
	if Accepts("eerie", inc) {
		t.Fatalf("eerie accepted despite first 'e' at position 1")
	}
	if !Accepts("slate", inc) {
		t.Fatalf("slate rejected")
	}
}

func TestSuggestExample(t *testing.T) {
	lex := mustLexicon(t, "abcde", "fghij", "aabcc")
	w, err := SuggestWord(lex, ledger.New())
	if err != nil || w != "abcde" {
		t.Fatalf("first suggestion = %q %v, want abcde", w, err)
	}
	l := mustLedger(t, "abcde", "02220")
	if _, err := SuggestWord(lex, l); !errors.Is(err, ErrNoCandidate) {
		t.Fatalf("err = %v, want ErrNoCandidate", err)
	}

	lex = mustLexicon(t, "abcde", "fghij", "aabcc", "xbcdy", "abcdx")
	w, err = SuggestWord(lex, l)
	if err != nil || w != "xbcdy" {
		t.Fatalf("second suggestion = %q %v, want xbcdy", w, err)
	}
}

func TestSuggestAllHitIsIdempotent(t *testing.T) {
	lex, _ := words.Default()
	for _, answer := range []string{"crane", "slate", "pride", "focal"} {
		w, err := SuggestWord(lex, mustLedger(t, answer, "22222"))
		if err != nil || w != answer {
			t.Errorf("after %s=22222 suggestion = %q %v", answer, w, err)
		}
	}
}

func TestSuggestRepeatedLetterPrecedence(t *testing.T) {
	lex := mustLexicon(t, "abbey", "tubes", "ebony", "rubes", "cubit", "obits")
	l := mustLedger(t, "abbey", "02000")
	// one 'b' is a hit at 2 and the other a miss; the hit must win
	w, err := SuggestWord(lex, l)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if w != "obits" {
		t.Fatalf("suggestion = %q, want obits", w)
	}
	inc := ledger.Derive(l).Include
	if Accepts("cubit", inc) {
		t.Fatalf("cubit accepted with 'b' at position 3")
	}
	if !Accepts("obits", inc) {
		t.Fatalf("obits rejected")
	}
}

func TestSuggestDeterministic(t *testing.T) {
	lex, _ := words.Default()
	small, err := words.New(lex.Words()[:50])
	if err != nil {
		t.Fatal(err)
	}
	a, errA := SuggestWord(small, ledger.New())
	b, errB := SuggestWord(small, ledger.New())
	if errA != nil || errB != nil {
		t.Fatalf("errors: %v %v", errA, errB)
	}
	if a != b || !small.Contains(a) {
		t.Fatalf("suggestions differ or not in lexicon: %q %q", a, b)
	}

	// the opening word has the highest letter-frequency score among
	// words with five distinct letters
	var freq [26]int
	for _, f := range small.Frequencies() {
		freq[f.Letter-'a'] = f.Count
	}
	score := func(w string) int {
		n := 0
		for i := 0; i < len(w); i++ {
			n += freq[w[i]-'a']
		}
		return n
	}
	best, bestWord := 0, ""
	for _, w := range small.Words() {
		if words.MaskOf(w).Count() == words.Length && score(w) > best {
			best, bestWord = score(w), w
		}
	}
	if score(a) != best {
		t.Fatalf("opening word %q scores %d, want %d (%s)", a, score(a), best, bestWord)
	}
}

func TestSuggestBudgets(t *testing.T) {
	lex := mustLexicon(t, "abcde", "fghij", "klmno", "pqrst", "uvwxy")
	l := mustLedger(t, "zzzzz", "00000")
	eng := &Engine{Lexicon: lex, MaxSets: 2}
	// the very first set already matches
	if s, err := eng.Suggest(context.Background(), l); err != nil || s.Word != "abcde" || s.Sets != 1 {
		t.Fatalf("Suggest = %+v %v", s, err)
	}

	l = mustLedger(t, "zbcde", "02000")
	if _, err := eng.Suggest(context.Background(), l); !errors.Is(err, ErrBudgetExceeded) {
		t.Fatalf("err = %v, want ErrBudgetExceeded", err)
	}

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	eng = NewEngine(lex)
	if _, err := eng.Suggest(ctx, l); !errors.Is(err, ErrBudgetExceeded) {
		t.Fatalf("expired deadline err = %v, want ErrBudgetExceeded", err)
	}

	ctx, cancel = context.WithCancel(context.Background())
	cancel()
	if _, err := eng.Suggest(ctx, l); !errors.Is(err, context.Canceled) {
		t.Fatalf("canceled err = %v, want context.Canceled", err)
	}
}

func TestCandidates(t *testing.T) {
	lex := mustLexicon(t, "abcde", "bacde", "edcba", "fghij")
	eng := NewEngine(lex)
	got, err := eng.Candidates(context.Background(), ledger.New(), 0)
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	if strings.Join(got, ",") != "abcde,bacde,edcba,fghij" {
		t.Fatalf("candidates = %v", got)
	}
	got, _ = eng.Candidates(context.Background(), ledger.New(), 2)
	if strings.Join(got, ",") != "abcde,bacde" {
		t.Fatalf("limited candidates = %v", got)
	}
	got, _ = eng.Candidates(context.Background(), mustLedger(t, "abcde", "12222"), 0)
	if strings.Join(got, ",") != "" {
		t.Fatalf("constrained candidates = %v", got)
	}
}
