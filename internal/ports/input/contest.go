package input

import (
	"context"

	"contestbot/internal/domain/entities"
)

type ContestUseCase interface {
	CreateContest(ctx context.Context, contest *entities.Contest) error
	GetContestByID(ctx context.Context, id uint) (*entities.Contest, error)
	AddQuestion(ctx context.Context, contestID uint, callerID, prompt, answer string, points int) (uint, error)
	GetContestsByCreatorID(ctx context.Context, creatorID string) ([]entities.Contest, error)
}
