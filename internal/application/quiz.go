package application

import (
	"context"
	"errors"
	"strings"

	"contestbot/internal/domain"
	"contestbot/internal/domain/entities"
	"contestbot/internal/ports/output"
)

// QuizService is the scoring engine: random question selection and
// answer grading. Grading is side-effect-free; the caller applies the
// point award exactly once per correct grade.
type QuizService struct {
	contestRepo     output.ContestRepository
	participantRepo output.ParticipantRepository
	questionRepo    output.QuestionRepository
}

func NewQuizService(
	contestRepo output.ContestRepository,
	participantRepo output.ParticipantRepository,
	questionRepo output.QuestionRepository,
) *QuizService {
	return &QuizService{
		contestRepo:     contestRepo,
		participantRepo: participantRepo,
		questionRepo:    questionRepo,
	}
}

// PickQuestion draws a uniformly random question from the contest pool.
// The caller must be registered and the contest must be active.
func (s *QuizService) PickQuestion(ctx context.Context, contestID uint, userID string) (*entities.Question, error) {
	contest, err := s.contestRepo.FindByID(ctx, contestID)
	if err != nil {
		return nil, err
	}
	if _, err := s.participantRepo.FindByContestIDAndUserID(ctx, contestID, userID); err != nil {
		if errors.Is(err, domain.ErrParticipantNotFound) {
			return nil, domain.ErrNotJoined
		}
		return nil, err
	}
	if contest.Status != domain.StatusActive {
		return nil, domain.ErrContestNotActive
	}
	return s.questionRepo.FindRandomByContestID(ctx, contestID)
}

// Grade compares the submitted text against the stored answer:
// case-insensitive, exact match on trimmed text. It returns the question's
// point value and whether the answer was correct. Submissions outside the
// active window are rejected, so a completed contest's final standings
// never move again.
func (s *QuizService) Grade(ctx context.Context, contestID, questionID uint, submitted string) (int, bool, error) {
	contest, err := s.contestRepo.FindByID(ctx, contestID)
	if err != nil {
		return 0, false, err
	}
	if contest.Status != domain.StatusActive {
		return 0, false, domain.ErrContestNotActive
	}
	question, err := s.questionRepo.FindByIDAndContestID(ctx, questionID, contestID)
	if err != nil {
		return 0, false, err
	}
	if strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(question.Answer)) {
		return question.Points, true, nil
	}
	return 0, false, nil
}
