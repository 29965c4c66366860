package config

import (
	_ "embed"
)

//go:embed defaults/spellsnake.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used as the last
// fallback when even the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  20,
			Height: 10,
		},
		Timing: TimingConfig{
			TickRate:     5,
			MessageTicks: 10,
		},
		Scoring: ScoringConfig{
			LetterPoints:        10,
			LetterTimeLimit:     20,
			CompletionTimeLimit: 100,
			CompletionPerLetter: 20,
		},
		Paths: PathsConfig{
			Stats:    "~/.spellsnake/stats.json",
			Database: "~/.spellsnake/sessions.db",
		},
	}
}
