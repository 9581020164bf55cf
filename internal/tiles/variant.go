package tiles

import (
	"fmt"
	"strings"
	"time"
)

// Variant is a game type: a board mode plus whether random jumps are on.
type Variant string

const (
	VariantClassic   Variant = "classic"
	VariantNightmare Variant = "nightmare" // classic with random jumps
	VariantSwap      Variant = "swap"
	VariantSurprise  Variant = "surprise" // swap with random jumps
)

// Variants lists every game type in menu order.
func Variants() []Variant {
	return []Variant{VariantClassic, VariantNightmare, VariantSwap, VariantSurprise}
}

// ParseVariant converts a name to a Variant.
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case VariantClassic, VariantNightmare, VariantSwap, VariantSurprise:
		return v, nil
	default:
		return "", fmt.Errorf("tiles: unknown variant %q", s)
	}
}

// Mode returns the board mode of the variant.
func (v Variant) Mode() Mode {
	if v == VariantSwap || v == VariantSurprise {
		return ModeSwap
	}
	return ModeClassic
}

// RandomJumps reports whether the variant moves tiles on a timer.
func (v Variant) RandomJumps() bool {
	return v == VariantNightmare || v == VariantSurprise
}

// Title returns a display name.
func (v Variant) Title() string {
	switch v {
	case VariantNightmare:
		return "Nightmare"
	case VariantSwap:
		return "Swap"
	case VariantSurprise:
		return "Surprise"
	default:
		return "Classic"
	}
}

// JumpPeriod returns the pause between random jump cycles for a board.
// Swap boards jump sooner since every tile is live.
func JumpPeriod(mode Mode, rows, columns int) time.Duration {
	tiles := rows * columns
	seconds := tiles * 2
	if mode == ModeSwap {
		seconds = tiles - min(rows, columns)
	}
	return time.Duration(max(1, seconds)) * time.Second
}
