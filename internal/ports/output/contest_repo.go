package output

import (
	"context"
	"time"

	"contestbot/internal/domain/entities"
)

type ContestRepository interface {
	Create(ctx context.Context, contest *entities.Contest) error
	FindByID(ctx context.Context, id uint) (*entities.Contest, error)
	FindByCreatorID(ctx context.Context, creatorID string) ([]entities.Contest, error)
	// ListActiveOrDue returns contests that are active, or scheduled with a
	// start time at or before now. This is the scan driving the scheduler.
	ListActiveOrDue(ctx context.Context, now time.Time) ([]entities.Contest, error)
	// TransitionStatus atomically moves a contest from one status to another.
	// It reports false when the contest is no longer in the expected status,
	// which means another pass already applied the transition.
	TransitionStatus(ctx context.Context, id uint, from, to string) (bool, error)
}
