package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"contestbot/internal/domain"
	"contestbot/internal/domain/entities"
	"contestbot/internal/ports/output"
)

var _ output.ContestRepository = (*ContestRepository)(nil)

const contestColumns = `id, name, description, channel_id, guild_id, creator_id,
	start_time, end_time, status, question_pool, max_participants, created_at, updated_at`

// ContestRepository implements output.ContestRepository on pgx.
type ContestRepository struct {
	pool *pgxpool.Pool
}

// NewContestRepository creates a ContestRepository.
func NewContestRepository(pool *pgxpool.Pool) *ContestRepository {
	return &ContestRepository{pool: pool}
}

func (r *ContestRepository) Create(ctx context.Context, contest *entities.Contest) error {
	var (
		id                   int64
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, `
		INSERT INTO contests (name, description, channel_id, guild_id, creator_id,
			start_time, end_time, status, question_pool, max_participants)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`,
		contest.Name, contest.Description, contest.ChannelID, contest.GuildID,
		contest.CreatorID, contest.StartTime, timeToTimestamptz(contest.EndTime),
		contest.Status, contest.QuestionPool, contest.MaxParticipants,
	).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		return fmt.Errorf("create contest: %w", err)
	}
	contest.ID = uint(id)
	contest.CreatedAt = timestamptzToTime(createdAt)
	contest.UpdatedAt = timestamptzToTime(updatedAt)
	return nil
}

func (r *ContestRepository) FindByID(ctx context.Context, id uint) (*entities.Contest, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+contestColumns+` FROM contests WHERE id = $1`, int64(id))
	contest, err := scanContest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContestNotFound
		}
		return nil, fmt.Errorf("get contest by id: %w", err)
	}
	return contest, nil
}

func (r *ContestRepository) FindByCreatorID(ctx context.Context, creatorID string) ([]entities.Contest, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contestColumns+` FROM contests WHERE creator_id = $1 ORDER BY id`, creatorID)
	if err != nil {
		return nil, fmt.Errorf("get contests by creator id: %w", err)
	}
	return collectContests(rows)
}

func (r *ContestRepository) ListActiveOrDue(ctx context.Context, now time.Time) ([]entities.Contest, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contestColumns+` FROM contests
		 WHERE status = $1 OR (status = $2 AND start_time <= $3)
		 ORDER BY id`,
		domain.StatusActive, domain.StatusScheduled, now)
	if err != nil {
		return nil, fmt.Errorf("list active or due contests: %w", err)
	}
	return collectContests(rows)
}

// TransitionStatus is a guarded update: the write only lands when the
// contest is still in the expected status, so concurrent passes can never
// double-apply a transition.
func (r *ContestRepository) TransitionStatus(ctx context.Context, id uint, from, to string) (bool, error) {
	if !domain.CanTransition(from, to) {
		return false, domain.ErrInvalidTransition
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE contests SET status = $1, updated_at = now() WHERE id = $2 AND status = $3`,
		to, int64(id), from)
	if err != nil {
		return false, fmt.Errorf("transition contest status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func collectContests(rows pgx.Rows) ([]entities.Contest, error) {
	defer rows.Close()
	var out []entities.Contest
	for rows.Next() {
		contest, err := scanContest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contest: %w", err)
		}
		out = append(out, *contest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contests: %w", err)
	}
	return out, nil
}

func scanContest(row pgx.Row) (*entities.Contest, error) {
	var (
		id                            int64
		maxParticipants               int32
		endTime, createdAt, updatedAt pgtype.Timestamptz
		description, questionPool     pgtype.Text
		contest                       entities.Contest
	)
	err := row.Scan(&id, &contest.Name, &description, &contest.ChannelID,
		&contest.GuildID, &contest.CreatorID, &contest.StartTime, &endTime,
		&contest.Status, &questionPool, &maxParticipants, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	contest.ID = uint(id)
	contest.Description = description.String
	contest.QuestionPool = questionPool.String
	contest.MaxParticipants = int(maxParticipants)
	contest.EndTime = timestamptzToTime(endTime)
	contest.CreatedAt = timestamptzToTime(createdAt)
	contest.UpdatedAt = timestamptzToTime(updatedAt)
	return &contest, nil
}
