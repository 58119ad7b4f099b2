package results

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteLog writes one "identifier,guessCount" line per result.
func WriteLog(w io.Writer, rs []Result) error {
	cw := csv.NewWriter(w)
	for _, r := range rs {
		if err := cw.Write([]string{r.ID, strconv.Itoa(r.LogCount())}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadLog parses a game log. A count above MaxWinningGuesses marks a
// failed game.
func ReadLog(r io.Reader) ([]Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var out []Result
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil || n < 0 {
			line, _ := cr.FieldPos(1)
			return nil, fmt.Errorf("read log: line %d: bad guess count %q", line, rec[1])
		}
		out = append(out, Result{
			ID:      strings.TrimSpace(rec[0]),
			Guesses: n,
			Solved:  n <= MaxWinningGuesses,
		})
	}
}
