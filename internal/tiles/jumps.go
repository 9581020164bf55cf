package tiles

import (
	"context"
	"time"
)

// SignalKind distinguishes a jump warning from the jump itself.
type SignalKind int

const (
	SignalWarning SignalKind = iota
	SignalJump
)

// JumpSignal is one point on the random jump timeline, in game time.
type JumpSignal struct {
	At        time.Duration
	Kind      SignalKind
	Remaining int // warnings left including this one; 0 for the jump
}

// JumpSchedule is the timeline of random jumps.
//
// The first cycle starts at the next multiple of Period after the anchor
// time. Each cycle gives Warnings warnings Interval apart, then the jump,
// then waits Period before the next cycle.
type JumpSchedule struct {
	Period   time.Duration
	Warnings int
	Interval time.Duration
	Start    time.Duration
}

// NewJumpSchedule anchors a schedule at the given game time.
func NewJumpSchedule(period time.Duration, warnings int, interval time.Duration, elapsed time.Duration) JumpSchedule {
	if period <= 0 {
		period = time.Second
	}
	if interval <= 0 || warnings < 0 {
		warnings = 0
	}
	return JumpSchedule{
		Period:   period,
		Warnings: warnings,
		Interval: interval,
		Start:    elapsed + period - elapsed%period,
	}
}

// cycle returns the length of one warning-and-jump cycle.
func (s JumpSchedule) cycle() time.Duration {
	return s.Period + time.Duration(s.Warnings)*s.Interval
}

// signal returns signal i of cycle n; i == Warnings is the jump.
func (s JumpSchedule) signal(n int64, i int) JumpSignal {
	at := s.Start + time.Duration(n)*s.cycle() + time.Duration(i)*s.Interval
	if i >= s.Warnings {
		return JumpSignal{At: at, Kind: SignalJump}
	}
	return JumpSignal{At: at, Kind: SignalWarning, Remaining: s.Warnings - i}
}

// Next returns the first signal strictly after the given game time.
func (s JumpSchedule) Next(after time.Duration) JumpSignal {
	if after < s.Start {
		return s.signal(0, 0)
	}
	c := s.cycle()
	n := int64((after - s.Start) / c)
	for i := 0; i <= s.Warnings; i++ {
		if sig := s.signal(n, i); sig.At > after {
			return sig
		}
	}
	return s.signal(n+1, 0)
}

// Between returns the signals in the half-open game time range (from, to].
func (s JumpSchedule) Between(from, to time.Duration) []JumpSignal {
	var out []JumpSignal
	for sig := s.Next(from); sig.At <= to; sig = s.Next(sig.At) {
		out = append(out, sig)
	}
	return out
}

// RunJumps emits schedule signals on out in real time, treating elapsed as
// the current game time. It returns when ctx is cancelled.
func RunJumps(ctx context.Context, s JumpSchedule, elapsed time.Duration, out chan<- JumpSignal) error {
	began := time.Now()
	cursor := elapsed
	for {
		next := s.Next(cursor)
		timer := time.NewTimer(max(0, next.At-elapsed-time.Since(began)))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		select {
		case out <- next:
		case <-ctx.Done():
			return ctx.Err()
		}
		cursor = next.At
	}
}
