// main.go
//
// CLI entry point for the wordle terminal game.
// Subcommands:
//   play  — interactive game in the terminal (the default experience).
//   serve — expose the same engine as a small HTTP play API.
//
// Configuration comes from the environment (optionally a .env file):
//   LOG_LEVEL  zerolog level, default "info"
//   SCORES_DB  score history SQLite path, default "data/scores.db"
//   PORT       serve listen port, default "5175"

package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Terminal word-guessing game",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
			zerolog.SetGlobalLevel(lvl)
		}
	},
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(playCmd, serveCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
