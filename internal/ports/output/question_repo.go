package output

import (
	"context"

	"contestbot/internal/domain/entities"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *entities.Question) error
	FindByIDAndContestID(ctx context.Context, id, contestID uint) (*entities.Question, error)
	// FindRandomByContestID picks one question uniformly at random from the
	// contest's pool. It returns domain.ErrNoQuestions when the pool is empty.
	FindRandomByContestID(ctx context.Context, contestID uint) (*entities.Question, error)
}
