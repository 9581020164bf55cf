package tiles

import "errors"

var (
	// ErrInvalidSize is returned when a board would have fewer than two cells.
	ErrInvalidSize = errors.New("tiles: board must have at least two cells")

	// ErrCorruptBoard means the tile ids are no longer a permutation of 1..N.
	ErrCorruptBoard = errors.New("tiles: board ids are not a permutation")

	// ErrStaleGroup is returned when a movement group no longer matches the
	// board it is committed to. The board is left untouched.
	ErrStaleGroup = errors.New("tiles: movement group is stale")

	// ErrEmptyGroup is returned when committing or tracking a group that
	// moves nothing.
	ErrEmptyGroup = errors.New("tiles: movement group is empty")

	// ErrInvalidTarget is returned for a swap target that cannot take part
	// in the move.
	ErrInvalidTarget = errors.New("tiles: invalid swap target")

	// ErrInteractionActive is returned when an interaction is already being
	// tracked.
	ErrInteractionActive = errors.New("tiles: interaction already in progress")

	// ErrNoCandidate is returned when random sampling gives up without
	// finding a legal move.
	ErrNoCandidate = errors.New("tiles: no legal random move found")

	// ErrNotPlaying is returned for automatic moves while the game is paused
	// or finished.
	ErrNotPlaying = errors.New("tiles: game is not in play")
)
