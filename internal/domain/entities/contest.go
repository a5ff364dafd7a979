package entities

import "time"

// Contest is a scheduled trivia contest tied to one channel.
type Contest struct {
	ID              uint
	Name            string
	Description     string
	ChannelID       string
	GuildID         string
	CreatorID       string
	StartTime       time.Time
	EndTime         time.Time // zero = open-ended, never auto-completes
	Status          string
	QuestionPool    string
	MaxParticipants int // 0 = unlimited
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasEnd reports whether the contest has a scheduled end time.
func (c *Contest) HasEnd() bool {
	return !c.EndTime.IsZero()
}

// DueToStart reports whether the contest's start time has been reached.
func (c *Contest) DueToStart(now time.Time) bool {
	return !c.StartTime.After(now)
}

// DueToEnd reports whether the contest has an end time that has been reached.
func (c *Contest) DueToEnd(now time.Time) bool {
	return c.HasEnd() && !c.EndTime.After(now)
}
