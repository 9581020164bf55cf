package tiles

import (
	"fmt"

	"github.com/samber/lo"
)

// DefaultMaxAttempts bounds rejection sampling for a single random move.
// Legal candidates are dense on any board, so hitting the bound means the
// exclusions leave nothing to pick.
const DefaultMaxAttempts = 10_000

// Commit applies a movement group to the board and counts one move.
//
// In classic mode the target must be the open tile: the run rotates one
// slot toward the hole. In swap mode the touched tile and the target tile
// exchange places. A group that no longer matches the board is rejected
// with ErrStaleGroup and the board is not modified.
func Commit(b *Board, g MovementGroup, targetID int) error {
	if g.Empty() {
		return ErrEmptyGroup
	}

	target, ok := b.PositionOf(targetID)
	if !ok {
		return fmt.Errorf("%w: tile %d not on board", ErrInvalidTarget, targetID)
	}

	switch g.Direction {
	case DirDrag:
		if len(g.IDs) != 1 {
			return fmt.Errorf("%w: drag group of %d tiles", ErrStaleGroup, len(g.IDs))
		}
		if g.Contains(targetID) {
			return fmt.Errorf("%w: tile %d cannot swap with itself", ErrInvalidTarget, targetID)
		}
		if targetID == b.openID {
			return fmt.Errorf("%w: cannot swap with the open tile", ErrInvalidTarget)
		}
	default:
		if b.openID == 0 || targetID != b.openID {
			return fmt.Errorf("%w: slide target must be the open tile", ErrInvalidTarget)
		}
		if err := checkFresh(b, g); err != nil {
			return err
		}
	}

	positions, err := g.Positions(b)
	if err != nil {
		return err
	}
	b.applyRotation(positions, target)
	b.moves++
	return nil
}

// checkFresh re-resolves a slide from the touched tile's current position
// and compares it with the group being committed.
func checkFresh(b *Board, g MovementGroup) error {
	touchedID, _ := g.Touched()
	pos, ok := b.PositionOf(touchedID)
	if !ok {
		return fmt.Errorf("%w: tile %d not on board", ErrStaleGroup, touchedID)
	}
	current, err := Resolve(b, pos)
	if err != nil {
		return err
	}
	if !current.Equal(g) {
		return fmt.Errorf("%w: expected %s %v, board gives %s %v",
			ErrStaleGroup, g.Direction, g.IDs, current.Direction, current.IDs)
	}
	return nil
}

// Rollback abandons a movement group. The board is never modified; only
// presentation state owned by the caller needs resetting.
func Rollback(_ *Board, _ MovementGroup) {}

// RandomLegalMove performs one random move and returns the positions whose
// tiles changed. Positions listed in excluding are never picked.
//
// Classic mode swaps the open tile with a random tile at odd Manhattan
// distance. Swap mode picks min(rows, columns) distinct positions (at least
// two) and swaps each newly picked position with the previous one, rotating
// the chain by one slot.
//
// Candidates are drawn by rejection sampling, bounded by maxAttempts draws
// per pick; ErrNoCandidate is returned if the bound is hit, with the board
// unchanged.
func RandomLegalMove(b *Board, rng Rand, excluding []int, maxAttempts int) ([]int, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	if b.mode == ModeSwap {
		return randomSwapChain(b, rng, excluding, maxAttempts)
	}

	open, ok := b.OpenPosition()
	if !ok {
		return nil, fmt.Errorf("%w: open tile %d missing", ErrCorruptBoard, b.openID)
	}

	for range maxAttempts {
		candidate := rng.Intn(b.Size())
		if candidate == open || lo.Contains(excluding, candidate) {
			continue
		}
		if !ManhattanParity(candidate, open, b.columns) {
			continue
		}
		b.swap(open, candidate)
		return []int{open, candidate}, nil
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrNoCandidate, maxAttempts)
}

func randomSwapChain(b *Board, rng Rand, excluding []int, maxAttempts int) ([]int, error) {
	length := max(2, min(b.rows, b.columns))

	picked := make([]int, 0, length)
	for len(picked) < length {
		found := false
		for range maxAttempts {
			candidate := rng.Intn(b.Size())
			if lo.Contains(excluding, candidate) || lo.Contains(picked, candidate) {
				continue
			}
			picked = append(picked, candidate)
			found = true
			break
		}
		if !found {
			return nil, fmt.Errorf("%w after %d attempts", ErrNoCandidate, maxAttempts)
		}
	}

	// All picks are made before touching the board so a failed pick leaves
	// it unchanged.
	for i := 1; i < len(picked); i++ {
		b.swap(picked[i-1], picked[i])
	}
	return picked, nil
}

// ShuffleToStart resets the board to the solved arrangement and applies
// random moves until no tile sits at its own position, then clears the
// counters. maxRounds bounds the number of random moves.
func ShuffleToStart(b *Board, rng Rand, maxRounds int) error {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxAttempts
	}

	b.reset()
	for range maxRounds {
		if _, err := RandomLegalMove(b, rng, nil, 0); err != nil {
			return err
		}
		if b.MatchedCount() == 0 {
			b.moves = 0
			b.elapsed = 0
			return nil
		}
	}
	return fmt.Errorf("%w: board still has matched tiles after %d rounds", ErrNoCandidate, maxRounds)
}
