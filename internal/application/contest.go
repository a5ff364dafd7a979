package application

import (
	"context"
	"fmt"
	"strings"

	"contestbot/internal/domain"
	"contestbot/internal/domain/entities"
	"contestbot/internal/ports/output"
)

// ContestService is the contest directory: creation, lookup and
// question-pool management, with creator-only mutation rules.
type ContestService struct {
	contestRepo  output.ContestRepository
	questionRepo output.QuestionRepository
}

func NewContestService(
	contestRepo output.ContestRepository,
	questionRepo output.QuestionRepository,
) *ContestService {
	return &ContestService{
		contestRepo:  contestRepo,
		questionRepo: questionRepo,
	}
}

// CreateContest validates and persists a new contest with status scheduled.
func (s *ContestService) CreateContest(ctx context.Context, contest *entities.Contest) error {
	contest.Name = strings.TrimSpace(contest.Name)
	if contest.Name == "" {
		return domain.ErrNameRequired
	}
	if contest.StartTime.IsZero() {
		return domain.ErrStartTimeRequired
	}
	if contest.HasEnd() && !contest.EndTime.After(contest.StartTime) {
		return domain.ErrEndBeforeStart
	}
	contest.Status = domain.StatusScheduled
	if err := s.contestRepo.Create(ctx, contest); err != nil {
		return fmt.Errorf("create contest: %w", err)
	}
	return nil
}

func (s *ContestService) GetContestByID(ctx context.Context, id uint) (*entities.Contest, error) {
	return s.contestRepo.FindByID(ctx, id)
}

func (s *ContestService) GetContestsByCreatorID(ctx context.Context, creatorID string) ([]entities.Contest, error) {
	return s.contestRepo.FindByCreatorID(ctx, creatorID)
}

// AddQuestion attaches a question to a contest. Only the contest creator
// may add questions; non-positive point values fall back to the default.
func (s *ContestService) AddQuestion(ctx context.Context, contestID uint, callerID, prompt, answer string, points int) (uint, error) {
	contest, err := s.contestRepo.FindByID(ctx, contestID)
	if err != nil {
		return 0, err
	}
	if contest.CreatorID != callerID {
		return 0, domain.ErrNotCreator
	}
	prompt = strings.TrimSpace(prompt)
	answer = strings.TrimSpace(answer)
	if prompt == "" || answer == "" {
		return 0, domain.ErrQuestionTextRequired
	}
	if points <= 0 {
		points = domain.DefaultQuestionPoints
	}
	question := &entities.Question{
		ContestID: contestID,
		Prompt:    prompt,
		Answer:    answer,
		Points:    points,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return 0, fmt.Errorf("create question: %w", err)
	}
	return question.ID, nil
}
