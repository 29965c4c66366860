// Package config provides YAML-based configuration loading for the
// spelling snake game.
package config

// Config contains all tunable parameters for a play session.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Paths   PathsConfig   `yaml:"paths"`
}

// GridConfig defines the playfield dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the simulation pace.
type TimingConfig struct {
	TickRate     int `yaml:"tick_rate"`     // Simulation steps per second
	MessageTicks int `yaml:"message_ticks"` // Ticks an encouragement stays on screen
}

// ScoringConfig defines the point values for pickups and completion.
type ScoringConfig struct {
	LetterPoints        int `yaml:"letter_points"`
	LetterTimeLimit     int `yaml:"letter_time_limit"`     // Seconds
	CompletionTimeLimit int `yaml:"completion_time_limit"` // Seconds
	CompletionPerLetter int `yaml:"completion_per_letter"`
}

// PathsConfig defines where persistent state lives. "~/" is expanded by
// the consumers.
type PathsConfig struct {
	Stats    string `yaml:"stats"`
	Database string `yaml:"database"`
}
