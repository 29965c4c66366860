// Package words holds the built-in word lists and the validation rules
// for custom target words.
package words

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"github.com/Bravine-Kulei/snake-game-learner/internal/game"
)

// lists maps each difficulty to its built-in words. Easy words are short,
// hard words are long; length drives both the snake's final size and the
// per-letter completion bonus.
var lists = map[game.Difficulty][]string{
	game.DifficultyEasy: {
		"cat", "dog", "hat", "pen", "sun", "box", "run", "jump", "fish", "book",
		"tree", "ball", "tent", "frog", "ship", "cup", "coin", "car", "star", "moon",
	},
	game.DifficultyMedium: {
		"apple", "river", "house", "light", "snake", "bread", "chair", "pencil", "horse", "flower",
		"window", "school", "friend", "garden", "orange", "yellow", "planet", "puzzle", "rabbit", "rocket",
	},
	game.DifficultyHard: {
		"elephant", "dinosaur", "triangle", "computer", "butterfly", "mountain", "language", "umbrella", "vegetable", "beautiful",
		"chocolate", "adventure", "playground", "rectangle", "discovery", "education", "dictionary", "telephone", "wonderful", "happiness",
	},
}

// ForDifficulty returns a copy of the built-in list for the given
// difficulty. The copy keeps callers from mutating the shared lists.
func ForDifficulty(d game.Difficulty) []string {
	src := lists[d]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Random picks a word from the difficulty's list using the supplied
// source, so menu flows stay reproducible under a fixed seed.
func Random(rng *rand.Rand, d game.Difficulty) (string, error) {
	src, ok := lists[d]
	if !ok || len(src) == 0 {
		return "", fmt.Errorf("words: no list for difficulty %q", d)
	}
	return src[rng.Intn(len(src))], nil
}

// Normalize lowercases and trims a candidate word the way the session
// stores it.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Validate checks a normalized custom word: non-empty and letters only.
func Validate(word string) error {
	if word == "" {
		return fmt.Errorf("words: word must not be empty")
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("words: %q contains non-letter character %q", word, r)
		}
	}
	return nil
}
