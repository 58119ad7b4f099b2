package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlehelper/internal/daily"
	"github.com/robalobadob/wordlehelper/internal/results"
	"github.com/robalobadob/wordlehelper/internal/session"
	"github.com/robalobadob/wordlehelper/internal/words"
)

func init() {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Let the helper play past answers and print day,guesses lines",
		Long: "Plays the answer of one day (--day or --date, default today) or of every\n" +
			"day (--all) and prints one 'day,guesses' line per game. Unsolved games are\n" +
			"printed with a count above 6 so 'stats --log' treats them as failures.",
		Args: cobra.NoArgs,
		Run:  runSimulate,
	}
	cmd.Flags().Int("day", -1, "Answer index to play")
	cmd.Flags().String("date", "", "Play the answer of this date (YYYY-MM-DD)")
	cmd.Flags().Bool("all", false, "Play every answer in the history")
	cmd.Flags().Bool("exclude-past", false, "Remove earlier answers from the word list before each game")
	cmd.Flags().Bool("record", false, "Store the run in the results database")
	cmd.Flags().String("note", "", "Note stored with a recorded run")
	cmd.Flags().Int("max-guesses", -1, "Give up after this many guesses (default from config, 0 = unlimited)")
	cmd.MarkFlagsMutuallyExclusive("day", "date", "all")
	RootCmd.AddCommand(cmd)
}

// simulation plays a list of days against one lexicon.
type simulation struct {
	lex         *words.Lexicon
	answers     []string
	excludePast bool
	maxGuesses  int
}

func runSimulate(cmd *cobra.Command, args []string) {
	day, _ := cmd.Flags().GetInt("day")
	date, _ := cmd.Flags().GetString("date")
	all, _ := cmd.Flags().GetBool("all")
	excludePast, _ := cmd.Flags().GetBool("exclude-past")
	record, _ := cmd.Flags().GetBool("record")
	note, _ := cmd.Flags().GetString("note")
	maxGuesses, _ := cmd.Flags().GetInt("max-guesses")
	if maxGuesses < 0 {
		maxGuesses = cfg.Simulate.MaxGuesses
	}

	lex, err := loadLexicon()
	if err != nil {
		exitErr("load lexicon", err)
	}
	answers, err := loadAnswers()
	if err != nil {
		exitErr("load answers", err)
	}
	if len(answers) == 0 {
		exitErr("load answers", fmt.Errorf("answer history is empty"))
	}

	days, err := selectDays(answers, day, date, all, time.Now())
	if err != nil {
		exitErr("select days", err)
	}

	var db *results.DB
	var run results.Run
	if record {
		if db, err = results.Open(cfg.DB); err != nil {
			exitErr("open results db", err)
		}
		defer db.Close()
		if run, err = db.CreateRun(cmd.Context(), lex.Len(), note); err != nil {
			exitErr("create run", err)
		}
		log.Info().Str("run", run.ID).Str("db", cfg.DB).Msg("recording run")
	}

	sim := simulation{lex: lex, answers: answers, excludePast: excludePast, maxGuesses: maxGuesses}
	var rs []results.Result
	err = sim.play(cmd.Context(), days, cmd.OutOrStdout(), func(r results.Result) error {
		rs = append(rs, r)
		if db == nil {
			return nil
		}
		return db.AddResult(cmd.Context(), run.ID, r)
	})
	if err != nil {
		exitErr("simulate", err)
	}
	sum := results.Summarize(rs)
	log.Info().Int("games", sum.Games).Int("failed", sum.Failed).Float64("average", sum.Average).Msg("simulation finished")
}

// selectDays resolves the day flags to answer indexes.
func selectDays(answers []string, day int, date string, all bool, now time.Time) ([]int, error) {
	n := len(answers)
	switch {
	case all:
		days := make([]int, n)
		for i := range days {
			days[i] = i
		}
		return days, nil
	case day >= 0:
		if day >= n {
			return nil, fmt.Errorf("day %d out of range (history has %d answers)", day, n)
		}
		return []int{day}, nil
	case date != "":
		d, err := daily.ParseDate(date)
		if err != nil {
			return nil, err
		}
		return []int{daily.Index(d, cfg.Daily.Salt, n)}, nil
	default:
		return []int{daily.Index(now, cfg.Daily.Salt, n)}, nil
	}
}

// play simulates each day in order, writes its log line to w and hands
// the result to sink.
func (s simulation) play(ctx context.Context, days []int, w io.Writer, sink func(results.Result) error) error {
	for _, day := range days {
		lex := s.lex
		if s.excludePast {
			var err error
			if lex, err = withoutPast(s.lex, s.answers, day); err != nil {
				return err
			}
		}
		out, err := session.Simulate(ctx, newEngine(lex), s.answers[day], s.maxGuesses)
		if err != nil {
			return fmt.Errorf("day %d: %w", day, err)
		}
		r := results.Result{
			ID:      strconv.Itoa(day),
			Answer:  out.Answer,
			Guesses: len(out.Guesses),
			Solved:  out.Solved,
			Reason:  out.Reason,
		}
		if !out.Solved {
			log.Debug().Int("day", day).Str("answer", out.Answer).Strs("guesses", out.Guesses).Str("reason", out.Reason).Msg("failed to guess word")
		}
		if err := results.WriteLog(w, []results.Result{r}); err != nil {
			return err
		}
		if err := sink(r); err != nil {
			return err
		}
	}
	return nil
}
