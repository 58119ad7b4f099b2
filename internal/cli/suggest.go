package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlehelper/internal/ledger"
	"github.com/robalobadob/wordlehelper/internal/solver"
)

func init() {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest one word for the guesses so far",
		Long:  "Each --guess is word=feedback, e.g. --guess crane=01020. Without guesses the opening word is suggested.",
		Example: "  wordlehelper suggest --guess crane=01020 --guess tails=10100\n" +
			"  wordlehelper suggest --guess crane=01020 --all --limit 20",
		Args: cobra.NoArgs,
		Run:  runSuggest,
	}
	cmd.Flags().StringArrayP("guess", "g", nil, "Guess and its feedback as word=digits (repeatable, in play order)")
	cmd.Flags().Bool("all", false, "List every acceptable word in search order")
	cmd.Flags().Int("limit", 0, "With --all, stop after this many words (0 = no limit)")
	RootCmd.AddCommand(cmd)
}

type suggestOutput struct {
	Suggestion *string            `json:"suggestion"`
	Reason     string             `json:"reason,omitempty"`
	Sets       int                `json:"sets"`
	Omit       string             `json:"omit"`
	Include    *ledger.IncludeMap `json:"include"`
	Candidates []string           `json:"candidates,omitempty"`
	Partial    bool               `json:"partial,omitempty"` // candidate search hit the set budget
}

func runSuggest(cmd *cobra.Command, args []string) {
	guesses, _ := cmd.Flags().GetStringArray("guess")
	all, _ := cmd.Flags().GetBool("all")
	limit, _ := cmd.Flags().GetInt("limit")

	l, err := parseGuesses(guesses)
	if err != nil {
		exitErr("parse guesses", err)
	}
	lex, err := loadLexicon()
	if err != nil {
		exitErr("load lexicon", err)
	}
	for _, r := range l.Records() {
		if !lex.Contains(r.Guess) {
			log.Warn().Str("guess", r.Guess).Msg("guess is not in the word list")
		}
	}
	out, err := suggest(cmd.Context(), newEngine(lex), l, all, limit)
	if err != nil {
		exitErr("suggest", err)
	}
	writeSuggest(cmd.OutOrStdout(), out, all)
}

// parseGuesses builds a ledger from word=feedback pairs.
func parseGuesses(pairs []string) (*ledger.Ledger, error) {
	l := ledger.New()
	for _, p := range pairs {
		word, code, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("%q: want word=feedback", p)
		}
		if err := l.Append(strings.TrimSpace(word), strings.TrimSpace(code)); err != nil {
			return nil, fmt.Errorf("%q: %w", p, err)
		}
	}
	return l, nil
}

func suggest(ctx context.Context, eng *solver.Engine, l *ledger.Ledger, all bool, limit int) (suggestOutput, error) {
	c := ledger.Derive(l)
	out := suggestOutput{Omit: string(c.Omit.Letters()), Include: c.Include}

	s, err := eng.Suggest(ctx, l)
	out.Sets = s.Sets
	switch {
	case err == nil:
		out.Suggestion = &s.Word
	case errors.Is(err, solver.ErrNoCandidate):
		out.Reason = "no_candidate"
	case errors.Is(err, solver.ErrBudgetExceeded):
		out.Reason = "budget_exceeded"
	default:
		return out, err
	}
	if all {
		cands, err := eng.Candidates(ctx, l, limit)
		switch {
		case errors.Is(err, solver.ErrBudgetExceeded):
			out.Partial = true
			log.Warn().Int("sets", eng.MaxSets).Int("candidates", len(cands)).Msg("candidate list truncated: search budget exceeded")
		case err != nil:
			return out, err
		}
		out.Candidates = cands
	}
	return out, nil
}

func writeSuggest(w io.Writer, out suggestOutput, all bool) {
	if jsonOutput() {
		b, _ := json.MarshalIndent(out, "", "  ")
		fmt.Fprintln(w, string(b))
		return
	}
	switch {
	case all:
		for _, c := range out.Candidates {
			fmt.Fprintln(w, c)
		}
		if out.Partial {
			fmt.Fprintln(w, "(list truncated: search budget exceeded)")
		}
	case out.Suggestion != nil:
		fmt.Fprintln(w, *out.Suggestion)
	case out.Reason == "budget_exceeded":
		fmt.Fprintln(w, "no suggestion available (search budget exceeded)")
	default:
		fmt.Fprintln(w, "no suggestion available")
	}
}
