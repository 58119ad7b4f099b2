package solver

import "github.com/robalobadob/wordlehelper/internal/words"

// FilterByLetters returns, in lexicon order, every word containing all the
// given letters somewhere. Positions and repeat counts are ignored, so an
// empty letter set returns the whole lexicon.
func FilterByLetters(lex *words.Lexicon, letters string) []string {
	want := words.MaskOf(letters)
	var out []string
	for i := 0; i < lex.Len(); i++ {
		if lex.Mask(i).Covers(want) {
			out = append(out, lex.Word(i))
		}
	}
	return out
}
