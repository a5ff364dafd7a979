package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"contestbot/internal/domain"
	"contestbot/internal/domain/entities"
	"contestbot/internal/ports/output"
)

var _ output.QuestionRepository = (*QuestionRepository)(nil)

// QuestionRepository implements output.QuestionRepository on pgx.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

func (r *QuestionRepository) Create(ctx context.Context, question *entities.Question) error {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO questions (contest_id, question, answer, points)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		int64(question.ContestID), question.Prompt, question.Answer, int32(question.Points),
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("create question: %w", err)
	}
	question.ID = uint(id)
	return nil
}

func (r *QuestionRepository) FindByIDAndContestID(ctx context.Context, id, contestID uint) (*entities.Question, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, contest_id, question, answer, points
		FROM questions WHERE id = $1 AND contest_id = $2`,
		int64(id), int64(contestID))
	question, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("get question: %w", err)
	}
	return question, nil
}

func (r *QuestionRepository) FindRandomByContestID(ctx context.Context, contestID uint) (*entities.Question, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, contest_id, question, answer, points
		FROM questions WHERE contest_id = $1
		ORDER BY RANDOM() LIMIT 1`,
		int64(contestID))
	question, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoQuestions
		}
		return nil, fmt.Errorf("get random question: %w", err)
	}
	return question, nil
}

func scanQuestion(row pgx.Row) (*entities.Question, error) {
	var (
		id, contestID int64
		points        int32
		question      entities.Question
	)
	if err := row.Scan(&id, &contestID, &question.Prompt, &question.Answer, &points); err != nil {
		return nil, err
	}
	question.ID = uint(id)
	question.ContestID = uint(contestID)
	question.Points = int(points)
	return &question, nil
}
