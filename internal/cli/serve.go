package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlehelper/internal/httpserver"
	"github.com/robalobadob/wordlehelper/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the helper over HTTP",
		Args:  cobra.NoArgs,
		Run:   runServe,
	}
	cmd.Flags().StringP("port", "p", "", "Listen port (default from config, 5175)")
	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) {
	port, _ := cmd.Flags().GetString("port")
	if port == "" {
		port = cfg.Server.Port
	}

	lex, err := loadLexicon()
	if err != nil {
		exitErr("load lexicon", err)
	}
	answers, err := loadAnswers()
	if err != nil {
		exitErr("load answers", err)
	}

	var st store.Store
	switch cfg.Store.Backend {
	case "redis":
		rs, err := store.NewRedisStore(cmd.Context(), cfg.Store.RedisAddr, cfg.Server.SessionTTL)
		if err != nil {
			exitErr("connect redis", err)
		}
		defer rs.Close()
		st = rs
	default:
		st = store.NewMemoryStore(cfg.Server.SessionTTL)
	}

	srv := httpserver.New(st, newEngine(lex), httpserver.Options{
		JWTSecret:    cfg.Server.JWTSecret,
		SessionTTL:   cfg.Server.SessionTTL,
		CORSOrigin:   cfg.Server.CORSOrigin,
		SecureCookie: cfg.Server.SecureCookie,
		Answers:      answers,
		DailySalt:    cfg.Daily.Salt,
		MaxGuesses:   cfg.Simulate.MaxGuesses,
	})
	log.Info().Str("port", port).Str("store", cfg.Store.Backend).Int("words", lex.Len()).Msg("starting wordlehelper server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
