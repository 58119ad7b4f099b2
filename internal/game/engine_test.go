package game

import (
	"errors"
	"testing"
)

func TestParseFeedback(t *testing.T) {
	marks, err := ParseFeedback("02110", 5)
	if err != nil {
		t.Fatalf("ParseFeedback: %v", err)
	}
	want := []Mark{MarkMiss, MarkHit, MarkPresent, MarkPresent, MarkMiss}
	for i := range want {
		if marks[i] != want[i] {
			t.Fatalf("marks[%d] = %q, want %q", i, marks[i], want[i])
		}
	}
	if got := FormatFeedback(marks); got != "02110" {
		t.Fatalf("FormatFeedback = %q, want 02110", got)
	}
}

func TestParseFeedbackRejects(t *testing.T) {
	for _, code := range []string{"03200", "0220", "022000", "0a200", ""} {
		if _, err := ParseFeedback(code, 5); !errors.Is(err, ErrMalformedFeedback) {
			t.Errorf("ParseFeedback(%q) err = %v, want ErrMalformedFeedback", code, err)
		}
	}
}

func TestScore(t *testing.T) {
	cases := []struct {
		answer, guess, want string
	}{
		{"crane", "crane", "22222"},
		{"crane", "slate", "00202"},
		{"abbey", "babes", "11220"},
		{"cigar", "eerie", "00110"},
		{"speed", "erase", "10011"},
		// the answer's only 'e' is already a hit
		{"stale", "geese", "00012"},
		{"crust", "trust", "02222"},
	}
	for _, tc := range cases {
		if got := FormatFeedback(Score(tc.answer, tc.guess)); got != tc.want {
			t.Errorf("Score(%q, %q) = %s, want %s", tc.answer, tc.guess, got, tc.want)
		}
	}
}

func TestApplyGuessTransitions(t *testing.T) {
	g, err := New("Crane", 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.Answer != "crane" || g.ID == "" {
		t.Fatalf("unexpected game %+v", g)
	}
	if _, _, err := g.ApplyGuess("xx"); !errors.Is(err, ErrInvalidGuess) {
		t.Fatalf("err = %v, want ErrInvalidGuess", err)
	}
	if _, st, _ := g.ApplyGuess("slate"); st != StatePlaying {
		t.Fatalf("state = %s, want playing", st)
	}
	if _, st, _ := g.ApplyGuess("trace"); st != StateLost {
		t.Fatalf("state = %s, want lost", st)
	}
	if _, _, err := g.ApplyGuess("crane"); !errors.Is(err, ErrGameFinished) {
		t.Fatalf("err = %v, want ErrGameFinished", err)
	}
}

func TestApplyGuessWinUnlimited(t *testing.T) {
	g, _ := New("crane", 0)
	for i := 0; i < 10; i++ {
		if _, st, _ := g.ApplyGuess("slate"); st != StatePlaying {
			t.Fatalf("state = %s after %d guesses, want playing", st, i+1)
		}
	}
	marks, st, err := g.ApplyGuess("CRANE")
	if err != nil || st != StateWon || !AllHit(marks) {
		t.Fatalf("got %v %s %v, want all hit won", marks, st, err)
	}
}
