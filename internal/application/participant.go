package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"contestbot/internal/domain"
	"contestbot/internal/domain/entities"
	"contestbot/internal/ports/output"
)

// DefaultLeaderboardSize bounds leaderboard replies and final results.
const DefaultLeaderboardSize = 10

// ParticipantService is the participation ledger: join bookkeeping,
// point accounting and leaderboard aggregation.
type ParticipantService struct {
	participantRepo output.ParticipantRepository
	contestRepo     output.ContestRepository
}

func NewParticipantService(
	participantRepo output.ParticipantRepository,
	contestRepo output.ContestRepository,
) *ParticipantService {
	return &ParticipantService{
		participantRepo: participantRepo,
		contestRepo:     contestRepo,
	}
}

// Join registers a user for a contest. A repeated join reports false with
// a nil error, even when the contest is full: membership is checked before
// the participant cap, so an existing member never sees a cap error. The
// unique (user, contest) constraint guarantees a single row even under
// concurrent joins.
func (s *ParticipantService) Join(ctx context.Context, contestID uint, userID string) (bool, error) {
	if _, err := s.contestRepo.FindByID(ctx, contestID); err != nil {
		return false, err
	}
	_, err := s.participantRepo.FindByContestIDAndUserID(ctx, contestID, userID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrParticipantNotFound) {
		return false, fmt.Errorf("check membership: %w", err)
	}
	participant := &entities.Participant{
		ContestID: contestID,
		UserID:    userID,
		JoinedAt:  time.Now(),
	}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyJoined):
			return false, nil
		case errors.Is(err, domain.ErrContestFull):
			return false, err
		}
		return false, fmt.Errorf("create participant: %w", err)
	}
	return true, nil
}

// Leaderboard returns up to limit standings ordered by points descending.
// Ties break on join time, then participant id, so the order is stable.
func (s *ParticipantService) Leaderboard(ctx context.Context, contestID uint, limit int) ([]entities.Standing, error) {
	participants, err := s.participantRepo.FindByContestID(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("find participants: %w", err)
	}
	return rankStandings(participants, limit), nil
}

// AddPoints applies a point delta to a participant's score. Points only
// ever increase; a non-positive delta or a missing row is a no-op.
func (s *ParticipantService) AddPoints(ctx context.Context, contestID uint, userID string, delta int) error {
	if delta <= 0 {
		return nil
	}
	if err := s.participantRepo.AddPoints(ctx, contestID, userID, delta); err != nil {
		return fmt.Errorf("add points: %w", err)
	}
	return nil
}

// rankStandings orders participants into leaderboard rows: points
// descending, ties by join time then id. Shared with the scheduler's
// final-results announcement.
func rankStandings(participants []entities.Participant, limit int) []entities.Standing {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	ranked := make([]entities.Participant, len(participants))
	copy(ranked, participants)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		if !ranked[i].JoinedAt.Equal(ranked[j].JoinedAt) {
			return ranked[i].JoinedAt.Before(ranked[j].JoinedAt)
		}
		return ranked[i].ID < ranked[j].ID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	standings := make([]entities.Standing, len(ranked))
	for i := range ranked {
		standings[i] = entities.Standing{UserID: ranked[i].UserID, Points: ranked[i].Points}
	}
	return standings
}
