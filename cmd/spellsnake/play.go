package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Bravine-Kulei/snake-game-learner/internal/core"
	"github.com/Bravine-Kulei/snake-game-learner/internal/game"
	"github.com/Bravine-Kulei/snake-game-learner/internal/platform/tui"
	"github.com/Bravine-Kulei/snake-game-learner/internal/stats"
	"github.com/Bravine-Kulei/snake-game-learner/internal/storage"
	"github.com/Bravine-Kulei/snake-game-learner/internal/words"
)

var (
	flagDifficulty string
	flagWord       string
	flagRandom     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a spelling snake session.

With no flags an interactive picker asks for difficulty and word.
--word or --random skip the picker and start immediately.

Controls:
  Arrows/WASD - Steer the snake
  H           - Toggle the next-letter hint
  P/Esc       - Pause
  R           - Restart (after the game ends)
  Q/Ctrl+C    - Quit

Examples:
  spellsnake play
  spellsnake play --difficulty hard --random
  spellsnake play --word rocket --difficulty medium
  spellsnake play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, medium or hard")
	playCmd.Flags().StringVar(&flagWord, "word", "", "Word to spell (skips the picker)")
	playCmd.Flags().BoolVar(&flagRandom, "random", false, "Pick a random word for the difficulty (skips the picker)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadGameConfig()

	// Get terminal size early so menus and board fit
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.TickRate,
		Seed:     flagSeed,
	}

	word, difficulty, err := resolveWordFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open session history
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		store = nil // Continue without history - game still works
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "spellsnake"})

	// Open lifetime statistics
	statsStore, err := stats.NewFileStore(statsPath(cfg), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open stats file: %v\n", err)
		statsStore = nil
	}

	runErr := tui.Run(tui.Options{
		Game:       cfg,
		Runtime:    runtime,
		Store:      store,
		Stats:      statsStore,
		Logger:     logger,
		Word:       word,
		Difficulty: difficulty,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveWordFlags turns --word/--random/--difficulty into a concrete
// selection, or empty values when the interactive picker should run.
func resolveWordFlags() (string, game.Difficulty, error) {
	if flagWord == "" && !flagRandom {
		if flagDifficulty != "" {
			// Difficulty alone still goes through the word picker
			if _, err := game.ParseDifficulty(flagDifficulty); err != nil {
				return "", "", err
			}
		}
		return "", "", nil
	}

	diffName := flagDifficulty
	if diffName == "" {
		diffName = string(game.DifficultyEasy)
	}
	difficulty, err := game.ParseDifficulty(diffName)
	if err != nil {
		return "", "", err
	}

	if flagWord != "" {
		word := words.Normalize(flagWord)
		if err := words.Validate(word); err != nil {
			return "", "", err
		}
		return word, difficulty, nil
	}

	// --random
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	word, err := words.Random(rand.New(rand.NewSource(seed)), difficulty)
	if err != nil {
		return "", "", err
	}
	return word, difficulty, nil
}
