package cli

import (
	"github.com/robalobadob/wordlehelper/internal/words"
)

func loadAnswers() ([]string, error) {
	return words.LoadAnswers(cfg.Answers)
}

// withoutPast drops the answers of days before day from lex, since a past
// answer is never used again.
func withoutPast(lex *words.Lexicon, answers []string, day int) (*words.Lexicon, error) {
	if day <= 0 {
		return lex, nil
	}
	if day > len(answers) {
		day = len(answers)
	}
	return lex.Without(answers[:day])
}
