// spellsnake is a terminal snake game that teaches spelling: steer the
// snake to collect the letters of a target word in order.
//
// Usage:
//
//	spellsnake play            - Play (interactive word picker)
//	spellsnake words           - Show the built-in word lists
//	spellsnake scores          - Show the session high scores
//	spellsnake stats           - Show lifetime player statistics
//	spellsnake serve           - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Custom game config YAML
//	--seed <value>   - RNG seed for reproducible gameplay
//	--db <path>      - Session database path (default: ~/.spellsnake/sessions.db)
//	--stats <path>   - Statistics file path (default: ~/.spellsnake/stats.json)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Bravine-Kulei/snake-game-learner/internal/config"
)

var (
	// Global flags
	flagConfig    string
	flagSeed      int64
	flagFPS       int
	flagDBPath    string
	flagStatsPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spellsnake",
	Short: "Spelling Snake - spell words by steering a snake",
	Long: `Spelling Snake is a terminal game for practicing spelling.
A letter appears on the board; eat it and the next letter of your word
appears somewhere else. Spell the whole word without hitting a wall or
your own tail.

Available commands:
  play     - Start a game
  words    - Show the built-in word lists
  scores   - View session high scores
  stats    - View lifetime statistics
  serve    - Start SSH server for remote play

Examples:
  spellsnake play
  spellsnake play --difficulty hard --random
  spellsnake play --word rocket
  spellsnake scores --difficulty easy
  spellsnake serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in steps per second (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to session database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagStatsPath, "stats", "", "Path to statistics file (default from config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadGameConfig loads the YAML config honoring the --config flag.
func loadGameConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	return cfg
}

// dbPath resolves the session database path from the flag or config.
func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Paths.Database
}

// statsPath resolves the statistics file path from the flag or config.
func statsPath(cfg config.Config) string {
	if flagStatsPath != "" {
		return flagStatsPath
	}
	return cfg.Paths.Stats
}
