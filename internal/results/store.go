package results

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// ErrNoRuns is returned by LatestRun on an empty database.
var ErrNoRuns = errors.New("no recorded runs")

// Run is one recorded benchmark over a list of answers.
type Run struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	LexiconSize int       `json:"lexiconSize"`
	Note        string    `json:"note,omitempty"`
}

// Result is the outcome of one simulated game. ID is the log identifier,
// usually the day number of the answer.
type Result struct {
	ID      string `json:"id"`
	Answer  string `json:"answer,omitempty"`
	Guesses int    `json:"guesses"`
	Solved  bool   `json:"solved"`
	Reason  string `json:"reason,omitempty"`
}

// CreateRun inserts a new run and returns it.
func (d *DB) CreateRun(ctx context.Context, lexiconSize int, note string) (Run, error) {
	r := Run{ID: ulid.Make().String(), CreatedAt: time.Now().UTC(), LexiconSize: lexiconSize, Note: note}
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO runs(id, created_at, lexicon_size, note) VALUES (?, ?, ?, ?)`,
		r.ID, r.CreatedAt, r.LexiconSize, r.Note,
	)
	if err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}
	return r, nil
}

// AddResult appends a game result to a run, keeping insertion order.
func (d *DB) AddResult(ctx context.Context, runID string, r Result) error {
	_, err := d.db.ExecContext(ctx, `
        INSERT INTO results (run_id, seq, ident, answer, guesses, solved, reason)
        VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM results WHERE run_id = ?), ?, ?, ?, ?, ?)`,
		runID, runID, r.ID, r.Answer, r.Guesses, r.Solved, r.Reason,
	)
	if err != nil {
		return fmt.Errorf("insert result %s: %w", r.ID, err)
	}
	return nil
}

// Results lists a run's games in the order they were added.
func (d *DB) Results(ctx context.Context, runID string) ([]Result, error) {
	rows, err := d.db.QueryContext(ctx, `
        SELECT ident, answer, guesses, solved, reason
        FROM results
        WHERE run_id = ?
        ORDER BY seq ASC`, runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.ID, &r.Answer, &r.Guesses, &r.Solved, &r.Reason); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// LatestRun returns the most recently created run.
func (d *DB) LatestRun(ctx context.Context) (Run, error) {
	var r Run
	err := d.db.QueryRowContext(ctx, `
        SELECT id, created_at, lexicon_size, note
        FROM runs
        ORDER BY created_at DESC, id DESC
        LIMIT 1`,
	).Scan(&r.ID, &r.CreatedAt, &r.LexiconSize, &r.Note)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNoRuns
	}
	return r, err
}

// Summary computes the statistics for one run.
func (d *DB) Summary(ctx context.Context, runID string) (Summary, error) {
	rs, err := d.Results(ctx, runID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(rs), nil
}
