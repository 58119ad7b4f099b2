package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlehelper/internal/daily"
	"github.com/robalobadob/wordlehelper/internal/session"
)

func init() {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive session",
		Long: "Suggests a word, then reads the board state you saw as five digits:\n" +
			"0 miss, 1 present elsewhere, 2 hit. Type 'w <word> <digits>' if you played\n" +
			"a different word, or 'q' to quit.",
		Args: cobra.NoArgs,
		Run:  runPlay,
	}
	cmd.Flags().Bool("exclude-past", false, "Never suggest answers from days before today")
	RootCmd.AddCommand(cmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	excludePast, _ := cmd.Flags().GetBool("exclude-past")

	lex, err := loadLexicon()
	if err != nil {
		exitErr("load lexicon", err)
	}
	if excludePast {
		answers, err := loadAnswers()
		if err != nil {
			exitErr("load answers", err)
		}
		if lex, err = withoutPast(lex, answers, daily.DayNumber(time.Now())); err != nil {
			exitErr("exclude past answers", err)
		}
	}
	if _, err := session.Play(cmd.Context(), newEngine(lex), cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		exitErr("play", err)
	}
}
