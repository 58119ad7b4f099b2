package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/robalobadob/wordlehelper/internal/game"
	"github.com/robalobadob/wordlehelper/internal/solver"
	"github.com/robalobadob/wordlehelper/internal/words"
)

func testEngine(t *testing.T, list ...string) *solver.Engine {
	t.Helper()
	var (
		lex *words.Lexicon
		err error
	)
	if len(list) == 0 {
		lex, err = words.Default()
	} else {
		lex, err = words.New(list)
	}
	if err != nil {
		t.Fatalf("lexicon: %v", err)
	}
	return solver.NewEngine(lex)
}

func TestRecordRequiresGuess(t *testing.T) {
	s := New()
	if err := s.Record("", "00000"); !errors.Is(err, ErrNoGuess) {
		t.Fatalf("err = %v, want ErrNoGuess", err)
	}
}

func TestRecordKeepsSuggestionOnMalformed(t *testing.T) {
	eng := testEngine(t, "abcde", "fghij")
	s := New()
	w, err := s.Next(context.Background(), eng)
	if err != nil || w != "abcde" {
		t.Fatalf("Next = %q %v", w, err)
	}
	if err := s.Record("", "03200"); !errors.Is(err, game.ErrMalformedFeedback) {
		t.Fatalf("err = %v, want ErrMalformedFeedback", err)
	}
	if s.Ledger.Len() != 0 || s.Suggestion != "abcde" {
		t.Fatalf("session changed: len=%d suggestion=%q", s.Ledger.Len(), s.Suggestion)
	}
	if err := s.Record("", "00000"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if s.Suggestion != "" || s.Ledger.Len() != 1 {
		t.Fatalf("after Record: len=%d suggestion=%q", s.Ledger.Len(), s.Suggestion)
	}
}

func TestSessionJSONAndClone(t *testing.T) {
	s := New()
	_ = s.Record("crane", "01020")
	s.Suggestion = "slate"
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	var back Session
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.ID != s.ID || back.Suggestion != "slate" || back.Ledger.Len() != 1 {
		t.Fatalf("round trip = %+v", back)
	}
	c := s.Clone()
	_ = c.Record("", "00000")
	if s.Ledger.Len() != 1 || s.Suggestion != "slate" {
		t.Fatalf("clone shares state with original")
	}
}

func TestPlaySolves(t *testing.T) {
	eng := testEngine(t, "abcde", "fghij", "aabcc", "xbcdy")
	in := strings.NewReader("03200\n02220\n22222\n")
	var out bytes.Buffer
	s, err := Play(context.Background(), eng, in, &out)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	text := out.String()
	for _, want := range []string{"play 'abcde'", "invalid input", "play 'xbcdy'", "Congratulations. Solved in 2 guesses."} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if !s.Done() || s.Ledger.Len() != 2 {
		t.Fatalf("done=%v len=%d", s.Done(), s.Ledger.Len())
	}
}

func TestPlayOverrideGuess(t *testing.T) {
	eng := testEngine(t, "abcde", "fghij", "klmno")
	in := strings.NewReader("w fghij 00000\nq\n")
	var out bytes.Buffer
	s, err := Play(context.Background(), eng, in, &out)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	recs := s.Ledger.Records()
	if len(recs) != 1 || recs[0].Guess != "fghij" {
		t.Fatalf("records = %+v", recs)
	}
}

func TestPlayNoCandidate(t *testing.T) {
	eng := testEngine(t, "abcde", "fghij", "aabcc")
	var out bytes.Buffer
	if _, err := Play(context.Background(), eng, strings.NewReader("02220\n"), &out); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !strings.Contains(out.String(), "No more words left to guess") {
		t.Fatalf("output:\n%s", out.String())
	}
}

func TestPlayEOF(t *testing.T) {
	eng := testEngine(t, "abcde")
	s, err := Play(context.Background(), eng, strings.NewReader(""), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if s.Ledger.Len() != 0 {
		t.Fatalf("len = %d, want 0", s.Ledger.Len())
	}
}

func TestSimulateSolves(t *testing.T) {
	eng := testEngine(t)
	for _, answer := range []string{"crane", "focal", "pride", "whelp"} {
		out, err := Simulate(context.Background(), eng, answer, 0)
		if err != nil {
			t.Fatalf("Simulate(%s): %v", answer, err)
		}
		if !out.Solved || out.Guesses[len(out.Guesses)-1] != answer {
			t.Errorf("Simulate(%s) = %+v", answer, out)
		}
	}
}

func TestSimulateRepeatedLetterAnswerIsUnreachable(t *testing.T) {
	out, err := Simulate(context.Background(), testEngine(t), "sissy", 0)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if out.Solved || out.Reason != ReasonNoCandidate {
		t.Fatalf("outcome = %+v, want unsolved no_candidate", out)
	}
}

func TestSimulateMaxGuesses(t *testing.T) {
	eng := testEngine(t, "abcde", "xbcdy")
	out, err := Simulate(context.Background(), eng, "xbcdy", 1)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if out.Solved || out.Reason != ReasonMaxGuesses || len(out.Guesses) != 1 || out.Guesses[0] != "abcde" {
		t.Fatalf("outcome = %+v", out)
	}
	if _, err := Simulate(context.Background(), eng, "bad", 0); !errors.Is(err, game.ErrInvalidAnswer) {
		t.Fatalf("invalid answer accepted")
	}
}
