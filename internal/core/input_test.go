package core

import (
	"testing"
	"time"
)

func TestInputFrameActions(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionConfirm) {
		t.Error("empty frame should not have Confirm")
	}

	f.Set(ActionConfirm)
	f.Set(ActionLeft)
	if !f.Has(ActionConfirm) || !f.Has(ActionLeft) {
		t.Error("frame should report actions that were set")
	}

	f.AddPointer(PointerEvent{Kind: PointerPress, X: 3, Y: 4})
	clone := f.Clone()

	f.Clear()
	if f.Has(ActionConfirm) || len(f.Pointer) != 0 {
		t.Error("Clear should drop actions and pointer samples")
	}
	if !clone.Has(ActionConfirm) || len(clone.Pointer) != 1 {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionConfirm, "Confirm"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

func TestTickDuration(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.TickDuration(); got != time.Second/60 {
		t.Errorf("TickDuration() = %v, expected %v", got, time.Second/60)
	}

	cfg.TickRate = 0
	if got := cfg.TickDuration(); got != time.Second/60 {
		t.Errorf("TickDuration() with zero rate = %v, expected fallback %v", got, time.Second/60)
	}

	cfg.TickRate = 10
	if got := cfg.TickDuration(); got != 100*time.Millisecond {
		t.Errorf("TickDuration() = %v, expected 100ms", got)
	}
}
