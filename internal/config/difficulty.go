package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named board size.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulty presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficultyPreset converts a name to a preset. "normal" is accepted
// as an alias for medium.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium", "normal":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, medium or hard)", s)
	}
}

// Title returns a display name for the preset.
func (p DifficultyPreset) Title() string {
	switch p {
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Easy"
	}
}

// Grid returns the board size configured for a preset.
// Unknown presets and invalid sizes fall back to the built-in defaults.
func (c TilesConfig) Grid(p DifficultyPreset) GridSize {
	defaults := DefaultTilesConfig().Difficulties

	var size, fallback GridSize
	switch p {
	case DifficultyMedium:
		size, fallback = c.Difficulties.Medium, defaults.Medium
	case DifficultyHard:
		size, fallback = c.Difficulties.Hard, defaults.Hard
	default:
		size, fallback = c.Difficulties.Easy, defaults.Easy
	}
	if !size.Valid() {
		return fallback
	}
	return size
}
