// Package config provides YAML-based configuration loading and difficulty
// presets for the tiles puzzle.
package config

import "time"

// TilesConfig contains all configuration for the tiles puzzle.
type TilesConfig struct {
	Difficulties DifficultiesConfig `yaml:"difficulties"`
	Timing       TimingConfig       `yaml:"timing"`
	Tracking     TrackingConfig     `yaml:"tracking"`
	Shuffle      ShuffleConfig      `yaml:"shuffle"`
}

// DifficultiesConfig maps each preset to a board size.
type DifficultiesConfig struct {
	Easy   GridSize `yaml:"easy"`
	Medium GridSize `yaml:"medium"`
	Hard   GridSize `yaml:"hard"`
}

// GridSize is a board shape in rows and columns.
type GridSize struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// Valid reports whether the shape holds at least two cells.
func (g GridSize) Valid() bool {
	return g.Rows >= 1 && g.Columns >= 1 && g.Rows*g.Columns >= 2
}

// TimingConfig defines animation and random jump timing.
type TimingConfig struct {
	Slide           time.Duration `yaml:"slide"`            // One full tile slide
	Surprise        time.Duration `yaml:"surprise"`         // Thrown swap / random jump
	Pop             time.Duration `yaml:"pop"`              // Pick-up and put-down
	Warnings        int           `yaml:"warnings"`         // Warnings before a random jump
	WarningInterval time.Duration `yaml:"warning_interval"` // Gap between warnings
}

// TrackingConfig defines drag thresholds.
type TrackingConfig struct {
	TapThreshold    float64 `yaml:"tap_threshold"`    // Pointer units still counted as a tap
	CommitThreshold float64 `yaml:"commit_threshold"` // Travel fraction that commits (0..1)
	TileLength      float64 `yaml:"tile_length"`      // Pointer units per tile
}

// ShuffleConfig bounds random sampling.
type ShuffleConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}
