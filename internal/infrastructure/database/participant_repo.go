package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"contestbot/internal/domain"
	"contestbot/internal/domain/entities"
	"contestbot/internal/ports/output"
)

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

// Postgres unique_violation.
const uniqueViolationCode = "23505"

// ParticipantRepository implements output.ParticipantRepository on pgx.
type ParticipantRepository struct {
	pool *pgxpool.Pool
}

// NewParticipantRepository creates a ParticipantRepository.
func NewParticipantRepository(pool *pgxpool.Pool) *ParticipantRepository {
	return &ParticipantRepository{pool: pool}
}

// Create inserts the participant row. The insert is guarded by the
// contest's max_participants inside a single statement, so the cap check
// and the insert see the same state; a full contest yields
// domain.ErrContestFull. The UNIQUE(user_id, contest_id) constraint turns
// a duplicate join race into domain.ErrAlreadyJoined rather than a second
// row. The contest row is locked for the statement so concurrent joins
// serialize on the cap.
func (r *ParticipantRepository) Create(ctx context.Context, participant *entities.Participant) error {
	var (
		id       int64
		points   int32
		joinedAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, `
		INSERT INTO participants (user_id, contest_id, join_time)
		SELECT $1, c.id, $3
		FROM (SELECT id, max_participants FROM contests WHERE id = $2 FOR UPDATE) c
		WHERE c.max_participants = 0
		   OR (SELECT COUNT(*) FROM participants p WHERE p.contest_id = c.id) < c.max_participants
		RETURNING id, points, join_time`,
		participant.UserID, int64(participant.ContestID), participant.JoinedAt,
	).Scan(&id, &points, &joinedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.ErrAlreadyJoined
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrContestFull
		}
		return fmt.Errorf("create participant: %w", err)
	}
	participant.ID = uint(id)
	participant.Points = int(points)
	participant.JoinedAt = timestamptzToTime(joinedAt)
	return nil
}

func (r *ParticipantRepository) FindByContestIDAndUserID(ctx context.Context, contestID uint, userID string) (*entities.Participant, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, contest_id, points, join_time
		FROM participants WHERE contest_id = $1 AND user_id = $2`,
		int64(contestID), userID)
	participant, err := scanParticipant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("get participant: %w", err)
	}
	return participant, nil
}

func (r *ParticipantRepository) FindByContestID(ctx context.Context, contestID uint) ([]entities.Participant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, contest_id, points, join_time
		FROM participants WHERE contest_id = $1
		ORDER BY join_time, id`,
		int64(contestID))
	if err != nil {
		return nil, fmt.Errorf("get participants by contest id: %w", err)
	}
	defer rows.Close()
	var out []entities.Participant
	for rows.Next() {
		participant, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		out = append(out, *participant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate participants: %w", err)
	}
	return out, nil
}

// AddPoints is an increment-in-place update; concurrent awards never lose
// points. A missing participant row affects zero rows and is not an error.
func (r *ParticipantRepository) AddPoints(ctx context.Context, contestID uint, userID string, delta int) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE participants SET points = points + $1
		WHERE contest_id = $2 AND user_id = $3`,
		int32(delta), int64(contestID), userID)
	if err != nil {
		return fmt.Errorf("add points: %w", err)
	}
	return nil
}

func scanParticipant(row pgx.Row) (*entities.Participant, error) {
	var (
		id, contestID int64
		points        int32
		joinedAt      pgtype.Timestamptz
		participant   entities.Participant
	)
	if err := row.Scan(&id, &participant.UserID, &contestID, &points, &joinedAt); err != nil {
		return nil, err
	}
	participant.ID = uint(id)
	participant.ContestID = uint(contestID)
	participant.Points = int(points)
	participant.JoinedAt = timestamptzToTime(joinedAt)
	return &participant, nil
}
