package tiles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

const testTile = 60.0

func startTracker(t *testing.T, g MovementGroup, landscape bool) *Tracker {
	t.Helper()
	tr := NewTracker(DefaultTrackerConfig())
	require.NoError(t, tr.Start(g, testTile, landscape))
	require.Equal(t, StateTracking, tr.State())
	return tr
}

func TestTrackerStartGuards(t *testing.T) {
	tr := NewTracker(DefaultTrackerConfig())
	assert.ErrorIs(t, tr.Start(MovementGroup{Direction: DirNone}, testTile, false), ErrEmptyGroup)

	g := MovementGroup{Direction: DirDown, IDs: []int{6}}
	require.NoError(t, tr.Start(g, testTile, false))
	assert.ErrorIs(t, tr.Start(g, testTile, false), ErrInteractionActive)
}

func TestTrackerBoundsAndCrossings(t *testing.T) {
	tr := startTracker(t, MovementGroup{Direction: DirDown, IDs: []int{6}}, false)

	s := tr.Move(core.Vector{DY: 15})
	assert.InDelta(t, 0.25, s.Percent, 1e-9)
	assert.Equal(t, core.Vector{DY: 15}, s.Offset)
	assert.False(t, s.CrossedMidpoint)
	assert.False(t, s.WillCommit, "past the tap threshold and below the midpoint")

	s = tr.Move(core.Vector{DY: 35})
	assert.InDelta(t, 35.0/60, s.Percent, 1e-9)
	assert.True(t, s.CrossedMidpoint)
	assert.True(t, s.WillCommit)

	s = tr.Move(core.Vector{DY: 100})
	assert.InDelta(t, 1.0, s.Percent, 1e-9)
	assert.Equal(t, core.Vector{DY: testTile}, s.Offset)

	// Back past the start: offset is bounded at zero.
	s = tr.Move(core.Vector{DY: 20})
	assert.InDelta(t, 0, s.Percent, 1e-9)
	assert.True(t, s.CrossedMidpoint)
	assert.False(t, s.WillCommit)

	d := tr.End(9, 0)
	assert.Equal(t, OutcomeRollback, d.Outcome)
	assert.Equal(t, 2, d.Crossings)
	assert.Zero(t, d.Duration)
	assert.Equal(t, StateRollingBack, tr.State())

	tr.Settle()
	assert.Equal(t, StateIdle, tr.State())
}

func TestTrackerCommitPastMidpoint(t *testing.T) {
	tr := startTracker(t, MovementGroup{Direction: DirDown, IDs: []int{6}}, false)

	tr.Move(core.Vector{DY: 40})
	d := tr.End(9, 0)

	assert.Equal(t, OutcomeCommit, d.Outcome)
	assert.Equal(t, 9, d.TargetID)
	assert.Equal(t, 1, d.Crossings)
	assert.False(t, d.Cue, "an odd crossing already played the cue")
	assert.InDelta(t, float64(100*time.Millisecond)/3, float64(d.Duration), float64(time.Microsecond))
	assert.Equal(t, StateCommitting, tr.State())
}

func TestTrackerTapCommits(t *testing.T) {
	tr := startTracker(t, MovementGroup{Direction: DirLeft, IDs: []int{2, 3}}, false)

	tr.Move(core.Vector{DX: -4})
	d := tr.End(1, 3)

	assert.Equal(t, OutcomeCommit, d.Outcome)
	assert.Equal(t, 1, d.TargetID)
	assert.True(t, d.Cue)
	assert.InDelta(t, float64(100*time.Millisecond)*(1-4.0/60), float64(d.Duration), float64(time.Microsecond))
}

func TestTrackerNegativeAxis(t *testing.T) {
	tr := startTracker(t, MovementGroup{Direction: DirUp, IDs: []int{4}}, false)

	s := tr.Move(core.Vector{DY: 30})
	assert.InDelta(t, 0, s.Percent, 1e-9, "moving away from the hole is bounded at zero")

	s = tr.Move(core.Vector{DY: -45})
	assert.InDelta(t, 1, s.Percent, 1e-9)
	assert.Equal(t, core.Vector{DY: -testTile}, s.Offset)
}

func TestTrackerIncreasingPercentWillCommit(t *testing.T) {
	tr := startTracker(t, MovementGroup{Direction: DirRight, IDs: []int{8}}, false)

	s := tr.Move(core.Vector{DX: 20})
	assert.False(t, s.WillCommit)

	s = tr.Move(core.Vector{DX: 25})
	assert.True(t, s.WillCommit, "still moving toward the hole")

	s = tr.Move(core.Vector{DX: 24})
	assert.False(t, s.WillCommit, "reversing below the midpoint")
}

func TestTrackerLandscapeProjection(t *testing.T) {
	// A logical up move is a leftward swipe on a rotated board.
	tr := startTracker(t, MovementGroup{Direction: DirUp, IDs: []int{4}}, true)

	s := tr.Move(core.Vector{DX: -30})
	assert.InDelta(t, 0.5, s.Percent, 1e-9)

	s = tr.Move(core.Vector{DX: -30, DY: -50})
	assert.InDelta(t, 0.5, s.Percent, 1e-9, "cross-axis motion is ignored")
}

func TestTrackerDragThrow(t *testing.T) {
	tr := startTracker(t, MovementGroup{Direction: DirDrag, IDs: []int{5}}, false)

	s := tr.Move(core.Vector{DX: 30, DY: 40})
	assert.InDelta(t, 50.0/60, s.Percent, 1e-9)
	assert.True(t, s.WillCommit)
	assert.False(t, s.CrossedMidpoint, "drag moves do not report crossings")

	d := tr.End(0, 7)
	assert.Equal(t, OutcomeCommit, d.Outcome)
	assert.Equal(t, 7, d.TargetID)
	assert.Equal(t, 200*time.Millisecond, d.Duration)
}

func TestTrackerDragDroppedOnItself(t *testing.T) {
	tr := startTracker(t, MovementGroup{Direction: DirDrag, IDs: []int{5}}, false)

	tr.Move(core.Vector{DX: 30, DY: 40})
	d := tr.End(0, 5)
	assert.Equal(t, OutcomeRollback, d.Outcome)
	assert.InDelta(t, float64(100*time.Millisecond)*50/60, float64(d.Duration), float64(time.Microsecond))
}

func TestTrackerDragOffBoard(t *testing.T) {
	tr := startTracker(t, MovementGroup{Direction: DirDrag, IDs: []int{5}}, false)

	tr.Move(core.Vector{DX: 300})
	d := tr.End(0, 0)
	assert.Equal(t, OutcomeRollback, d.Outcome)
}

func TestTrackerTapHoldAndRelease(t *testing.T) {
	tr := startTracker(t, MovementGroup{Direction: DirDrag, IDs: []int{5}}, false)

	d := tr.End(0, 5)
	assert.Equal(t, OutcomeHold, d.Outcome)
	assert.Equal(t, StateHeld, tr.State())

	d, err := tr.Press(5)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNone, d.Outcome)
	assert.Equal(t, StateTracking, tr.State())

	d = tr.End(0, 5)
	assert.Equal(t, OutcomeRelease, d.Outcome)
	assert.True(t, d.Pop)
	assert.Equal(t, StateIdle, tr.State())
}

func TestTrackerHeldRestartDraggedBack(t *testing.T) {
	tr := startTracker(t, MovementGroup{Direction: DirDrag, IDs: []int{5}}, false)
	tr.End(0, 5)

	_, err := tr.Press(5)
	require.NoError(t, err)
	tr.Move(core.Vector{DX: 40})

	d := tr.End(0, 5)
	assert.Equal(t, OutcomeRelease, d.Outcome)
	assert.False(t, d.Pop)
}

func TestTrackerHeldPressOtherTileSwaps(t *testing.T) {
	tr := startTracker(t, MovementGroup{Direction: DirDrag, IDs: []int{5}}, false)
	tr.End(0, 5)

	d, err := tr.Press(2)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCommit, d.Outcome)
	assert.Equal(t, 2, d.TargetID)
	assert.Equal(t, StateCommitting, tr.State())
}

func TestTrackerIdleCalls(t *testing.T) {
	tr := NewTracker(DefaultTrackerConfig())

	assert.Equal(t, Sample{}, tr.Move(core.Vector{DX: 10}))
	assert.Equal(t, OutcomeNone, tr.End(9, 0).Outcome)
	assert.Equal(t, OutcomeNone, tr.Cancel().Outcome)

	_, err := tr.Press(3)
	assert.ErrorIs(t, err, ErrInteractionActive)
}

func TestTrackerCancel(t *testing.T) {
	tr := startTracker(t, MovementGroup{Direction: DirDrag, IDs: []int{5}}, false)
	tr.End(0, 5)
	require.Equal(t, StateHeld, tr.State())

	d := tr.Cancel()
	assert.Equal(t, OutcomeRollback, d.Outcome)
	assert.Equal(t, StateIdle, tr.State())
	assert.False(t, tr.Active())
}
