package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"contestbot/internal/domain"
	"contestbot/internal/domain/entities"
)

func seedContest(t *testing.T, repo *fakeContestRepo, contest entities.Contest) uint {
	t.Helper()
	if contest.Name == "" {
		contest.Name = "Trivia"
	}
	if contest.StartTime.IsZero() {
		contest.StartTime = time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	}
	if contest.Status == "" {
		contest.Status = domain.StatusScheduled
	}
	if err := repo.Create(context.Background(), &contest); err != nil {
		t.Fatalf("seed contest: %v", err)
	}
	return contest.ID
}

func TestJoinIsIdempotent(t *testing.T) {
	contestRepo := newFakeContestRepo()
	participantRepo := &fakeParticipantRepo{}
	service := NewParticipantService(participantRepo, contestRepo)
	contestID := seedContest(t, contestRepo, entities.Contest{})

	joined, err := service.Join(context.Background(), contestID, "u1")
	if err != nil {
		t.Fatalf("first join: %v", err)
	}
	if !joined {
		t.Fatal("expected first join to report joined")
	}

	joined, err = service.Join(context.Background(), contestID, "u1")
	if err != nil {
		t.Fatalf("second join: %v", err)
	}
	if joined {
		t.Fatal("expected repeated join to report already joined")
	}

	if len(participantRepo.rows) != 1 {
		t.Fatalf("expected exactly one participant row, got %d", len(participantRepo.rows))
	}
}

func TestJoinUnknownContest(t *testing.T) {
	service := NewParticipantService(&fakeParticipantRepo{}, newFakeContestRepo())
	_, err := service.Join(context.Background(), 42, "u1")
	if !errors.Is(err, domain.ErrContestNotFound) {
		t.Fatalf("expected ErrContestNotFound, got %v", err)
	}
}

func TestJoinFullContest(t *testing.T) {
	contestRepo := newFakeContestRepo()
	participantRepo := &fakeParticipantRepo{}
	service := NewParticipantService(participantRepo, contestRepo)
	contestID := seedContest(t, contestRepo, entities.Contest{MaxParticipants: 1})
	participantRepo.caps = map[uint]int{contestID: 1}

	if _, err := service.Join(context.Background(), contestID, "u1"); err != nil {
		t.Fatalf("first join: %v", err)
	}
	_, err := service.Join(context.Background(), contestID, "u2")
	if !errors.Is(err, domain.ErrContestFull) {
		t.Fatalf("expected ErrContestFull, got %v", err)
	}
}

func TestRejoinFullContestReportsAlreadyJoined(t *testing.T) {
	contestRepo := newFakeContestRepo()
	participantRepo := &fakeParticipantRepo{}
	service := NewParticipantService(participantRepo, contestRepo)
	contestID := seedContest(t, contestRepo, entities.Contest{MaxParticipants: 1})
	participantRepo.caps = map[uint]int{contestID: 1}

	joined, err := service.Join(context.Background(), contestID, "u1")
	if err != nil {
		t.Fatalf("first join: %v", err)
	}
	if !joined {
		t.Fatal("expected first join to report joined")
	}

	// The member filled the contest; their own repeat must still be the
	// quiet already-joined outcome, never a cap error.
	joined, err = service.Join(context.Background(), contestID, "u1")
	if err != nil {
		t.Fatalf("repeated join on full contest: %v", err)
	}
	if joined {
		t.Fatal("expected repeated join to report already joined")
	}
	if len(participantRepo.rows) != 1 {
		t.Fatalf("expected exactly one participant row, got %d", len(participantRepo.rows))
	}
}

func TestLeaderboardOrdering(t *testing.T) {
	contestRepo := newFakeContestRepo()
	participantRepo := &fakeParticipantRepo{}
	service := NewParticipantService(participantRepo, contestRepo)
	contestID := seedContest(t, contestRepo, entities.Contest{})

	base := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	seed := []struct {
		userID string
		points int
		joined time.Time
	}{
		{"u1", 5, base},
		{"u2", 20, base.Add(1 * time.Minute)},
		{"u3", 20, base.Add(2 * time.Minute)},
		{"u4", 0, base.Add(3 * time.Minute)},
	}
	for _, p := range seed {
		err := participantRepo.Create(context.Background(), &entities.Participant{
			ContestID: contestID,
			UserID:    p.userID,
			Points:    p.points,
			JoinedAt:  p.joined,
		})
		if err != nil {
			t.Fatalf("seed participant %s: %v", p.userID, err)
		}
	}

	standings, err := service.Leaderboard(context.Background(), contestID, 10)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	want := []entities.Standing{
		{UserID: "u2", Points: 20},
		{UserID: "u3", Points: 20},
		{UserID: "u1", Points: 5},
		{UserID: "u4", Points: 0},
	}
	if len(standings) != len(want) {
		t.Fatalf("expected %d standings, got %d", len(want), len(standings))
	}
	for i := range want {
		if standings[i] != want[i] {
			t.Fatalf("standing %d: expected %+v, got %+v", i, want[i], standings[i])
		}
	}

	limited, err := service.Leaderboard(context.Background(), contestID, 2)
	if err != nil {
		t.Fatalf("limited leaderboard: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 standings, got %d", len(limited))
	}
	if limited[0].UserID != "u2" || limited[1].UserID != "u3" {
		t.Fatalf("expected the tied 20s first, got %+v", limited)
	}
}

func TestLeaderboardEmptyContest(t *testing.T) {
	contestRepo := newFakeContestRepo()
	service := NewParticipantService(&fakeParticipantRepo{}, contestRepo)
	contestID := seedContest(t, contestRepo, entities.Contest{})

	standings, err := service.Leaderboard(context.Background(), contestID, 10)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(standings) != 0 {
		t.Fatalf("expected empty leaderboard, got %d rows", len(standings))
	}
}

func TestAddPointsAccumulates(t *testing.T) {
	contestRepo := newFakeContestRepo()
	participantRepo := &fakeParticipantRepo{}
	service := NewParticipantService(participantRepo, contestRepo)
	contestID := seedContest(t, contestRepo, entities.Contest{})

	if _, err := service.Join(context.Background(), contestID, "u1"); err != nil {
		t.Fatalf("join: %v", err)
	}
	for range 2 {
		if err := service.AddPoints(context.Background(), contestID, "u1", 10); err != nil {
			t.Fatalf("add points: %v", err)
		}
	}
	participant, err := participantRepo.FindByContestIDAndUserID(context.Background(), contestID, "u1")
	if err != nil {
		t.Fatalf("find participant: %v", err)
	}
	if participant.Points != 20 {
		t.Fatalf("expected 20 points, got %d", participant.Points)
	}
}

func TestAddPointsMissingParticipantIsNoOp(t *testing.T) {
	contestRepo := newFakeContestRepo()
	service := NewParticipantService(&fakeParticipantRepo{}, contestRepo)
	contestID := seedContest(t, contestRepo, entities.Contest{})

	if err := service.AddPoints(context.Background(), contestID, "ghost", 10); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
}

func TestAddPointsNeverDecreases(t *testing.T) {
	contestRepo := newFakeContestRepo()
	participantRepo := &fakeParticipantRepo{}
	service := NewParticipantService(participantRepo, contestRepo)
	contestID := seedContest(t, contestRepo, entities.Contest{})

	if _, err := service.Join(context.Background(), contestID, "u1"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := service.AddPoints(context.Background(), contestID, "u1", 15); err != nil {
		t.Fatalf("add points: %v", err)
	}
	if err := service.AddPoints(context.Background(), contestID, "u1", -5); err != nil {
		t.Fatalf("negative delta: %v", err)
	}
	if err := service.AddPoints(context.Background(), contestID, "u1", 0); err != nil {
		t.Fatalf("zero delta: %v", err)
	}
	participant, err := participantRepo.FindByContestIDAndUserID(context.Background(), contestID, "u1")
	if err != nil {
		t.Fatalf("find participant: %v", err)
	}
	if participant.Points != 15 {
		t.Fatalf("expected points unchanged at 15, got %d", participant.Points)
	}
}
