package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.spellsnake/config.yaml ->
// ./configs/spellsnake.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		applyFallbacks(&cfg)
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				applyFallbacks(&cfg)
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/spellsnake.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			applyFallbacks(&cfg)
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	applyFallbacks(&cfg)
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if
// home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spellsnake", filename)
}

// applyFallbacks fills zero values with defaults, so a partial config
// file only has to state what it changes.
func applyFallbacks(cfg *Config) {
	def := Default()
	if cfg.Grid.Width == 0 {
		cfg.Grid.Width = def.Grid.Width
	}
	if cfg.Grid.Height == 0 {
		cfg.Grid.Height = def.Grid.Height
	}
	if cfg.Timing.TickRate == 0 {
		cfg.Timing.TickRate = def.Timing.TickRate
	}
	if cfg.Timing.MessageTicks == 0 {
		cfg.Timing.MessageTicks = def.Timing.MessageTicks
	}
	if cfg.Scoring.LetterPoints == 0 {
		cfg.Scoring.LetterPoints = def.Scoring.LetterPoints
	}
	if cfg.Scoring.LetterTimeLimit == 0 {
		cfg.Scoring.LetterTimeLimit = def.Scoring.LetterTimeLimit
	}
	if cfg.Scoring.CompletionTimeLimit == 0 {
		cfg.Scoring.CompletionTimeLimit = def.Scoring.CompletionTimeLimit
	}
	if cfg.Scoring.CompletionPerLetter == 0 {
		cfg.Scoring.CompletionPerLetter = def.Scoring.CompletionPerLetter
	}
	if cfg.Paths.Stats == "" {
		cfg.Paths.Stats = def.Paths.Stats
	}
	if cfg.Paths.Database == "" {
		cfg.Paths.Database = def.Paths.Database
	}
}
