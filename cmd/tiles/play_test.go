package main

import "testing"

func TestVariantID(t *testing.T) {
	tests := []struct {
		args     []string
		expected string
		wantErr  bool
	}{
		{nil, "tiles", false},
		{[]string{"classic"}, "tiles", false},
		{[]string{"nightmare"}, "tiles_nightmare", false},
		{[]string{"Swap"}, "tiles_swap", false},
		{[]string{"tiles_surprise"}, "tiles_surprise", false},
		{[]string{"tiles"}, "tiles", false},
		{[]string{"pong"}, "", true},
	}

	for _, tt := range tests {
		got, err := variantID(tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("variantID(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			continue
		}
		if got != tt.expected {
			t.Errorf("variantID(%v) = %q, expected %q", tt.args, got, tt.expected)
		}
	}
}

func TestClock(t *testing.T) {
	if got := clock(125_000_000_000); got != "2:05" {
		t.Errorf("clock(125s) = %q, expected 2:05", got)
	}
}
