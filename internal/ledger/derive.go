package ledger

import (
	"github.com/robalobadob/wordlehelper/internal/game"
	"github.com/robalobadob/wordlehelper/internal/words"
)

// DeriveOmit returns every letter that received a MISS in any record.
// Letters that were also confirmed elsewhere are left in; Derive applies
// the precedence rule.
func DeriveOmit(l *Ledger) words.Mask {
	var omit words.Mask
	if l == nil {
		return omit
	}
	for _, r := range l.records {
		for i, m := range r.Marks {
			if m == game.MarkMiss {
				omit = omit.Add(r.Guess[i])
			}
		}
	}
	return omit
}

// DeriveInclude accumulates a signed marker for every PRESENT (negative) or
// HIT (positive) position across all records.
func DeriveInclude(l *Ledger) *IncludeMap {
	inc := newIncludeMap()
	if l == nil {
		return inc
	}
	for _, r := range l.records {
		for i, m := range r.Marks {
			switch m {
			case game.MarkPresent:
				inc.add(r.Guess[i], -(i + 1))
			case game.MarkHit:
				inc.add(r.Guess[i], i+1)
			}
		}
	}
	return inc
}

// Constraints is the reconciled view the engine searches with.
type Constraints struct {
	Omit    words.Mask
	Include *IncludeMap
}

// Derive computes both constraint sets. A letter that is both missed and
// confirmed (a repeated letter in a guess) stays included and is dropped
// from Omit.
func Derive(l *Ledger) Constraints {
	inc := DeriveInclude(l)
	return Constraints{
		Omit:    DeriveOmit(l) &^ inc.Mask(),
		Include: inc,
	}
}
