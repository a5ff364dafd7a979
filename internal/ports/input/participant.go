package input

import (
	"context"

	"contestbot/internal/domain/entities"
)

type ParticipantUseCase interface {
	// Join registers a user for a contest. It reports false when the user
	// was already registered; a repeated join is never an error.
	Join(ctx context.Context, contestID uint, userID string) (bool, error)
	Leaderboard(ctx context.Context, contestID uint, limit int) ([]entities.Standing, error)
	AddPoints(ctx context.Context, contestID uint, userID string, delta int) error
}
