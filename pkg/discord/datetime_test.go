package discord

import (
	"testing"
	"time"
)

func TestParseContestTime(t *testing.T) {
	got, err := ParseContestTime("2026-09-01 18:30")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2026, 9, 1, 18, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseContestTimeTrimsInput(t *testing.T) {
	got, err := ParseContestTime("  2026-09-01 18:30  ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Hour() != 18 || got.Minute() != 30 {
		t.Fatalf("unexpected time: %v", got)
	}
}

func TestParseContestTimeAllowsPast(t *testing.T) {
	if _, err := ParseContestTime("2020-01-01 00:00"); err != nil {
		t.Fatalf("past timestamps must parse: %v", err)
	}
}

func TestParseContestTimeRejectsBadInput(t *testing.T) {
	for _, input := range []string{"", "   ", "01/09/2026 18:30", "2026-09-01", "18:30", "tomorrow"} {
		if _, err := ParseContestTime(input); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}

func TestFormatContestTime(t *testing.T) {
	ts := time.Date(2026, 9, 1, 18, 30, 0, 0, time.Local)
	if got := FormatContestTime(ts); got != "2026-09-01 18:30" {
		t.Fatalf("expected formatted timestamp, got %q", got)
	}
	if got := FormatContestTime(time.Time{}); got != "" {
		t.Fatalf("expected empty string for zero time, got %q", got)
	}
}
