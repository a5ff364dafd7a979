package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// timestamptzToTime returns t.Time when Valid, else zero time.
func timestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// timeToTimestamptz maps zero time to SQL NULL.
func timeToTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}
