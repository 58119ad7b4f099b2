// Package cli implements the wordlehelper commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlehelper/internal/config"
	"github.com/robalobadob/wordlehelper/internal/solver"
	"github.com/robalobadob/wordlehelper/internal/words"
)

var (
	configPath string
	logJSON    bool
	formatFlag string

	cfg = config.Default()
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "wordlehelper",
	Short: "Suggests the next Wordle guess from the feedback so far",
	Long: "A Wordle helper. It ranks letters by how often they appear in the word list,\n" +
		"tries the most frequent five-letter sets first and suggests a word that fits\n" +
		"every hit, present and miss reported so far.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (default: $"+config.EnvFile+")")
	RootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write logs as JSON instead of console text")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text or json")
}

// Execute runs the command tree.
func Execute() error { return RootCmd.Execute() }

func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = c
	configureLogging(cmd.ErrOrStderr(), cfg.LogLevel, logJSON)
	return nil
}

// configureLogging points the global logger at w. Terminals get the
// console writer unless JSON was asked for.
func configureLogging(w io.Writer, level string, jsonOut bool) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if f, ok := w.(*os.File); ok && !jsonOut && isatty.IsTerminal(f.Fd()) {
		w = zerolog.ConsoleWriter{Out: f, TimeFormat: "15:04:05"}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

func loadLexicon() (*words.Lexicon, error) {
	lex, err := words.Load(cfg.Lexicon)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("words", lex.Len()).Str("path", cfg.Lexicon).Msg("lexicon loaded")
	return lex, nil
}

func newEngine(lex *words.Lexicon) *solver.Engine {
	return &solver.Engine{Lexicon: lex, MaxSets: cfg.Engine.MaxSets, Timeout: cfg.Engine.Timeout}
}

func jsonOutput() bool { return formatFlag == "json" }

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
