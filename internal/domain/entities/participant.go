package entities

import "time"

// Participant represents a user's membership and score within one contest.
type Participant struct {
	ID        uint
	ContestID uint
	UserID    string
	Points    int
	JoinedAt  time.Time
}

// Standing is one leaderboard row.
type Standing struct {
	UserID string
	Points int
}
