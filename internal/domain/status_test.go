package domain

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{StatusScheduled, StatusActive, true},
		{StatusActive, StatusCompleted, true},
		{StatusScheduled, StatusCompleted, false},
		{StatusActive, StatusScheduled, false},
		{StatusCompleted, StatusActive, false},
		{StatusCompleted, StatusScheduled, false},
		{StatusScheduled, StatusScheduled, false},
		{"unknown", StatusActive, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
