package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tiles.yaml
var defaultTilesYAML []byte

// DefaultTilesConfig returns the default tiles configuration.
func DefaultTilesConfig() TilesConfig {
	return TilesConfig{
		Difficulties: DifficultiesConfig{
			Easy:   GridSize{Rows: 5, Columns: 3},
			Medium: GridSize{Rows: 7, Columns: 4},
			Hard:   GridSize{Rows: 8, Columns: 5},
		},
		Timing: TimingConfig{
			Slide:           100 * time.Millisecond,
			Surprise:        200 * time.Millisecond,
			Pop:             100 * time.Millisecond,
			Warnings:        3,
			WarningInterval: time.Second,
		},
		Tracking: TrackingConfig{
			TapThreshold:    10,
			CommitThreshold: 0.5,
			TileLength:      60,
		},
		Shuffle: ShuffleConfig{
			MaxAttempts: 10000,
		},
	}
}
