// serve.go
//
// HTTP mode: serve the play API instead of a terminal session.
// Sessions live in memory; the word list and score history are shared.

package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lexiconlab/wordle-cli/internal/history"
	"github.com/lexiconlab/wordle-cli/internal/httpserver"
	"github.com/lexiconlab/wordle-cli/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve [word-list-file]",
	Short: "Serve the play API over HTTP",
	Args:  cobra.MaximumNArgs(1),
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	lex, err := loadLexicon(args)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	if err := lex.Sort(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	hist, err := history.Open(getEnv("SCORES_DB", "data/scores.db"))
	if err != nil {
		// Wins just won't be recorded.
		log.Warn().Err(err).Msg("score history disabled")
	} else {
		defer hist.Close()
	}

	srv := httpserver.New(lex, store.NewMemoryStore(), hist)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Int("words", lex.Len()).Msg("starting play API")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
