package domain

// Contest statuses. A contest only ever moves forward:
// scheduled → active → completed.
const (
	StatusScheduled = "scheduled"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// DefaultQuestionPoints is awarded when a question is added without an
// explicit point value.
const DefaultQuestionPoints = 10

// CanTransition reports whether a contest may move from one status to
// another. A contest never skips active and never goes backward.
func CanTransition(from, to string) bool {
	switch from {
	case StatusScheduled:
		return to == StatusActive
	case StatusActive:
		return to == StatusCompleted
	}
	return false
}
