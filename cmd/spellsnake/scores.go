package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Bravine-Kulei/snake-game-learner/internal/game"
	"github.com/Bravine-Kulei/snake-game-learner/internal/platform/tui"
	"github.com/Bravine-Kulei/snake-game-learner/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresLimit      int
	flagScoresRecent     bool
	flagScoresTUI        bool
	flagScoresClear      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show session high scores",
	Long: `Display the best recorded sessions, best score first.

Examples:
  spellsnake scores
  spellsnake scores --difficulty easy
  spellsnake scores --recent
  spellsnake scores --interactive
  spellsnake scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show one difficulty: easy, medium or hard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "How many sessions to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent sessions instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "interactive", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded sessions")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg := loadGameConfig()

	var difficulty game.Difficulty
	if flagScoresDifficulty != "" {
		d, err := game.ParseDifficulty(flagScoresDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty = d
	}

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearSessions(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing sessions: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All recorded sessions deleted.")
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var sessions []storage.SessionEntry
	if flagScoresRecent {
		sessions, err = store.RecentSessions(flagScoresLimit)
	} else {
		sessions, err = store.TopScores(difficulty, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	if flagScoresRecent {
		fmt.Println("Recent Sessions")
	} else {
		fmt.Println("High Scores")
	}
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'spellsnake play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-14s  %-10s  %-8s  %-8s  %-10s  %s\n",
		"Rank", "Word", "Difficulty", "Score", "Letters", "Outcome", "Date")
	fmt.Printf("  %-4s  %-14s  %-10s  %-8s  %-8s  %-10s  %s\n",
		"----", "----", "----------", "-----", "-------", "-------", "----")

	for i, e := range sessions {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-14s  %-10s  %-8d  %-8d  %-10s  %s\n",
			i+1, e.Word, e.Difficulty, e.Score, e.Letters, e.Outcome, dateStr)
	}

	fmt.Println()
	if high, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}
