package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Bravine-Kulei/snake-game-learner/internal/game"
	"github.com/Bravine-Kulei/snake-game-learner/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words [difficulty]",
	Short: "Show the built-in word lists",
	Long: `Display the built-in words for each difficulty, or for a single
difficulty when one is given.

Examples:
  spellsnake words
  spellsnake words hard`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWords,
}

func runWords(cmd *cobra.Command, args []string) {
	diffs := game.Difficulties()
	if len(args) == 1 {
		d, err := game.ParseDifficulty(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		diffs = []game.Difficulty{d}
	}

	for i, d := range diffs {
		if i > 0 {
			fmt.Println()
		}
		list := words.ForDifficulty(d)
		fmt.Printf("%s words (x%d time bonus):\n", strings.ToUpper(string(d)[:1])+string(d)[1:], d.Multiplier())
		fmt.Printf("  %s\n", strings.Join(list, ", "))
	}

	fmt.Println()
	fmt.Println("Play any of them with 'spellsnake play --word <word>',")
	fmt.Println("or your own word - any word made of letters works.")
}
