// play.go
//
// Interactive terminal game loop.
// Flow: load word list (file argument or embedded default) → sort it →
// choose the target from the seed → read guesses line by line until the
// player solves it or gives up. Word-list problems are fatal here at the
// boundary; invalid guesses just cost the player a retry.

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lexiconlab/wordle-cli/assets"
	"github.com/lexiconlab/wordle-cli/internal/daily"
	"github.com/lexiconlab/wordle-cli/internal/game"
	"github.com/lexiconlab/wordle-cli/internal/history"
	"github.com/lexiconlab/wordle-cli/internal/lexicon"
	"github.com/lexiconlab/wordle-cli/internal/render"
)

// quitWord aborts the session and reveals the target.
const quitWord = "quit"

var (
	playSeed   int64
	playDaily  bool
	scoresPath string
)

var playCmd = &cobra.Command{
	Use:   "play [word-list-file]",
	Short: "Play a game in the terminal",
	Args:  cobra.MaximumNArgs(1),
	Run:   runPlay,
}

func init() {
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "target selection seed (default: current time)")
	playCmd.Flags().BoolVar(&playDaily, "daily", false, "play today's word (same for everyone with the same DAILY_SALT)")
	playCmd.Flags().StringVar(&scoresPath, "scores", "", "score history database (default: $SCORES_DB or data/scores.db)")
}

func runPlay(cmd *cobra.Command, args []string) {
	lex, err := loadLexicon(args)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	if err := lex.Sort(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	seed := playSeed
	switch {
	case playDaily:
		seed = daily.Seed(time.Now(), getEnv("DAILY_SALT", "wordle-daily"))
	case !cmd.Flags().Changed("seed"):
		seed = time.Now().Unix()
	}

	g, err := game.New(lex, seed)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}

	printer := render.New()
	sc := bufio.NewScanner(os.Stdin)
	for {
		if !sc.Scan() {
			// EOF counts as giving up.
			fmt.Printf("The word was %q\n", g.Resign())
			return
		}
		guess := strings.TrimRight(sc.Text(), "\r")
		if guess == quitWord {
			fmt.Printf("The word was %q\n", g.Resign())
			return
		}

		marks, err := g.ApplyGuess(lex, guess)
		if err != nil {
			fmt.Println("Invalid guess")
			continue
		}
		if g.Won {
			if g.Guesses == 1 {
				fmt.Printf("Solved in %d guess\n", g.Guesses)
			} else {
				fmt.Printf("Solved in %d guesses\n", g.Guesses)
			}
			recordScore(g.Guesses)
			return
		}
		fmt.Println(printer.Row(guess, marks))
	}
}

// loadLexicon reads the word list named on the command line, or the
// embedded default list when none is given.
func loadLexicon(args []string) (*lexicon.Store, error) {
	if len(args) == 1 {
		return lexicon.Load(args[0])
	}
	lex := lexicon.New()
	if err := lex.Ingest(assets.Words()); err != nil {
		return nil, err
	}
	return lex, nil
}

// recordScore bumps the score history and prints the updated table.
// History problems are logged, never fatal: the game is already won.
func recordScore(guesses int) {
	dsn := scoresPath
	if dsn == "" {
		dsn = getEnv("SCORES_DB", "data/scores.db")
	}
	hs, err := history.Open(dsn)
	if err != nil {
		log.Warn().Err(err).Str("db", dsn).Msg("open score history")
		return
	}
	defer hs.Close()

	ctx := context.Background()
	if err := hs.Record(ctx, guesses); err != nil {
		log.Warn().Err(err).Msg("record score")
		return
	}
	counts, err := hs.Counts(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("read scores")
		return
	}
	fmt.Print(history.Render(counts))
}
