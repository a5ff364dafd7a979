package input

import (
	"context"

	"contestbot/internal/domain/entities"
)

type QuizUseCase interface {
	// PickQuestion draws a random question for a registered participant of
	// an active contest.
	PickQuestion(ctx context.Context, contestID uint, userID string) (*entities.Question, error)
	// Grade compares a submitted answer to the question's canonical answer,
	// case-insensitively, and reports the points at stake and whether the
	// answer was correct. Grading never mutates scores.
	Grade(ctx context.Context, contestID, questionID uint, submitted string) (int, bool, error)
}
