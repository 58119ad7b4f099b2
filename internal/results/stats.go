package results

// MaxWinningGuesses is the most guesses a game may take and still count as won.
const MaxWinningGuesses = 6

// Summary aggregates a set of games.
type Summary struct {
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	Failed  int     `json:"failed"`
	Average float64 `json:"average"` // mean guesses over wins only
}

// Won reports whether r counts as a win: solved within MaxWinningGuesses.
func (r Result) Won() bool {
	return r.Solved && r.Guesses <= MaxWinningGuesses
}

// LogCount is the guess count written to a game log. Unsolved games are
// written as at least MaxWinningGuesses+1 so readers see them as failures.
func (r Result) LogCount() int {
	if !r.Solved && r.Guesses <= MaxWinningGuesses {
		return MaxWinningGuesses + 1
	}
	return r.Guesses
}

// Summarize averages guesses over won games and counts the rest as failed.
func Summarize(rs []Result) Summary {
	var s Summary
	acc := 0
	for _, r := range rs {
		s.Games++
		if r.Won() {
			s.Wins++
			acc += r.Guesses
		} else {
			s.Failed++
		}
	}
	if s.Wins > 0 {
		s.Average = float64(acc) / float64(s.Wins)
	}
	return s
}
