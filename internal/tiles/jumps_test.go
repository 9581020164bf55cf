package tiles

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJumpScheduleTimeline(t *testing.T) {
	s := NewJumpSchedule(10*time.Second, 3, time.Second, 0)
	assert.Equal(t, 10*time.Second, s.Start)

	got := s.Between(0, 30*time.Second)
	expected := []JumpSignal{
		{At: 10 * time.Second, Kind: SignalWarning, Remaining: 3},
		{At: 11 * time.Second, Kind: SignalWarning, Remaining: 2},
		{At: 12 * time.Second, Kind: SignalWarning, Remaining: 1},
		{At: 13 * time.Second, Kind: SignalJump},
		{At: 23 * time.Second, Kind: SignalWarning, Remaining: 3},
		{At: 24 * time.Second, Kind: SignalWarning, Remaining: 2},
		{At: 25 * time.Second, Kind: SignalWarning, Remaining: 1},
		{At: 26 * time.Second, Kind: SignalJump},
	}
	assert.Equal(t, expected, got)
}

func TestJumpScheduleAnchor(t *testing.T) {
	tests := []struct {
		elapsed  time.Duration
		expected time.Duration
	}{
		{0, 10 * time.Second},
		{25 * time.Second, 30 * time.Second},
		{20 * time.Second, 30 * time.Second}, // aligned: wait a full period
		{1500 * time.Millisecond, 10 * time.Second},
	}

	for _, tc := range tests {
		s := NewJumpSchedule(10*time.Second, 3, time.Second, tc.elapsed)
		assert.Equal(t, tc.expected, s.Start, "elapsed %v", tc.elapsed)
	}
}

func TestJumpScheduleNext(t *testing.T) {
	s := NewJumpSchedule(10*time.Second, 3, time.Second, 0)

	next := s.Next(13 * time.Second)
	assert.Equal(t, JumpSignal{At: 23 * time.Second, Kind: SignalWarning, Remaining: 3}, next)

	next = s.Next(11500 * time.Millisecond)
	assert.Equal(t, 12*time.Second, next.At)

	assert.Empty(t, s.Between(10*time.Second, 10*time.Second))
}

func TestJumpScheduleWithoutWarnings(t *testing.T) {
	s := NewJumpSchedule(10*time.Second, 3, 0, 0)
	assert.Zero(t, s.Warnings)

	got := s.Between(0, 25*time.Second)
	require.Len(t, got, 2)
	assert.Equal(t, JumpSignal{At: 10 * time.Second, Kind: SignalJump}, got[0])
	assert.Equal(t, JumpSignal{At: 20 * time.Second, Kind: SignalJump}, got[1])
}

func TestJumpPeriod(t *testing.T) {
	assert.Equal(t, 30*time.Second, JumpPeriod(ModeClassic, 5, 3))
	assert.Equal(t, 12*time.Second, JumpPeriod(ModeSwap, 5, 3))
	assert.Equal(t, 80*time.Second, JumpPeriod(ModeClassic, 8, 5))
	assert.Equal(t, time.Second, JumpPeriod(ModeSwap, 1, 2))
}

func TestRunJumpsEmitsSignals(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewJumpSchedule(20*time.Millisecond, 1, 5*time.Millisecond, 0)
	out := make(chan JumpSignal)
	done := make(chan error, 1)
	go func() { done <- RunJumps(ctx, s, 0, out) }()

	var got []JumpSignal
	for len(got) < 3 {
		select {
		case sig := <-out:
			got = append(got, sig)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out after %d signals", len(got))
		}
	}
	assert.Equal(t, SignalWarning, got[0].Kind)
	assert.Equal(t, 20*time.Millisecond, got[0].At)
	assert.Equal(t, SignalJump, got[1].Kind)
	assert.Equal(t, 25*time.Millisecond, got[1].At)
	assert.Equal(t, 45*time.Millisecond, got[2].At)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("RunJumps did not stop after cancel")
	}
}

func TestRunJumpsStopsBeforeFirstSignal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := NewJumpSchedule(time.Hour, 3, time.Second, 0)
	out := make(chan JumpSignal)
	done := make(chan error, 1)
	go func() { done <- RunJumps(ctx, s, 0, out) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("RunJumps did not stop after cancel")
	}
	assert.Empty(t, out)
}
