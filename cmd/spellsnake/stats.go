package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Bravine-Kulei/snake-game-learner/internal/game"
	"github.com/Bravine-Kulei/snake-game-learner/internal/stats"
	"github.com/Bravine-Kulei/snake-game-learner/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime player statistics",
	Long: `Display the lifetime statistics: words completed, total score,
completions per difficulty and every word spelled so far, plus
per-difficulty session aggregates from the history database.

Examples:
  spellsnake stats
  spellsnake stats --stats ./my-stats.json`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	cfg := loadGameConfig()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "spellsnake"})
	statsStore, err := stats.NewFileStore(statsPath(cfg), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening stats file: %v\n", err)
		os.Exit(1)
	}
	rec := statsStore.Load()

	fmt.Println("Player Statistics")
	fmt.Println()
	fmt.Printf("  Words completed: %d\n", rec.WordsCompleted)
	fmt.Printf("  Total score:     %d\n", rec.TotalScore)
	fmt.Println()
	fmt.Println("  Completions by difficulty:")
	for _, d := range game.Difficulties() {
		fmt.Printf("    %-8s %d\n", string(d)+":", rec.WordsByDifficulty[string(d)])
	}

	if len(rec.CompletedWords) > 0 {
		fmt.Println()
		fmt.Println("  Words you have spelled:")
		fmt.Printf("    %s\n", strings.Join(rec.CompletedWords, ", "))
	}

	// Session aggregates are best-effort: stats still print without them
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		return
	}
	defer store.Close()

	agg, err := store.StatsByDifficulty()
	if err != nil || len(agg) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Session History")
	fmt.Println()
	fmt.Printf("  %-10s  %-8s  %-9s  %-9s  %-8s  %s\n",
		"Difficulty", "Played", "Completed", "High", "Average", "Last Played")
	for _, d := range game.Difficulties() {
		ds, ok := agg[string(d)]
		if !ok {
			continue
		}
		fmt.Printf("  %-10s  %-8d  %-9d  %-9d  %-8.0f  %s\n",
			ds.Difficulty, ds.Sessions, ds.Completed, ds.HighScore, ds.AvgScore,
			ds.LastPlayed.Format("2006-01-02 15:04"))
	}
}
