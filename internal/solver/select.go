package solver

import (
	"strings"

	"github.com/robalobadob/wordlehelper/internal/ledger"
)

// Select returns the first candidate that satisfies every include marker.
// With no include constraints the first candidate wins.
func Select(candidates []string, include *ledger.IncludeMap) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	if include.Len() == 0 {
		return candidates[0], true
	}
	keys := include.Keys()
	for _, w := range candidates {
		if accepts(w, keys, include) {
			return w, true
		}
	}
	return "", false
}

// Accepts reports whether word satisfies every include marker.
func Accepts(word string, include *ledger.IncludeMap) bool {
	return accepts(word, include.Keys(), include)
}

// accepts checks markers against the first occurrence of each letter only.
// A repeated letter in word is therefore validated at its first position;
// this mirrors how feedback has always been interpreted and is kept as is.
func accepts(word string, keys []byte, include *ledger.IncludeMap) bool {
	for _, k := range keys {
		pos := strings.IndexByte(word, k)
		if pos < 0 {
			return false
		}
		for _, m := range include.Markers(k) {
			if m > 0 && pos != m-1 {
				return false
			}
			if m < 0 && pos == -m-1 {
				return false
			}
		}
	}
	return true
}
