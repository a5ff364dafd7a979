package discord

import (
	"fmt"
	"strings"
	"time"
)

const contestTimeLayout = "2006-01-02 15:04"

// ParseContestTime parses a "YYYY-MM-DD HH:MM" timestamp in the local
// timezone. Timestamps are parsed once here at the boundary; everything
// past this point works with time.Time. Past times are allowed: the
// scheduler activates an overdue contest on its next pass.
func ParseContestTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("date and time required (YYYY-MM-DD HH:MM)")
	}
	t, err := time.ParseInLocation(contestTimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date (expected YYYY-MM-DD HH:MM, e.g. 2026-09-01 18:00)")
	}
	return t, nil
}

// FormatContestTime renders a timestamp the way ParseContestTime reads it.
func FormatContestTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(contestTimeLayout)
}
