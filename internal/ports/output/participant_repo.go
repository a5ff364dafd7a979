package output

import (
	"context"

	"contestbot/internal/domain/entities"
)

type ParticipantRepository interface {
	// Create inserts a participant row. It returns domain.ErrAlreadyJoined
	// when the (user, contest) pair already exists, and domain.ErrContestFull
	// when the contest has a participant cap and the cap is reached. Both
	// checks happen inside the store, so concurrent joins cannot exceed the
	// cap or produce a second row.
	Create(ctx context.Context, participant *entities.Participant) error
	FindByContestIDAndUserID(ctx context.Context, contestID uint, userID string) (*entities.Participant, error)
	FindByContestID(ctx context.Context, contestID uint) ([]entities.Participant, error)
	// AddPoints atomically increments a participant's score. A missing
	// participant row is a no-op, not an error.
	AddPoints(ctx context.Context, contestID uint, userID string, delta int) error
}
