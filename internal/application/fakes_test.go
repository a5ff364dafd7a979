package application

import (
	"context"
	"sort"
	"time"

	"contestbot/internal/domain"
	"contestbot/internal/domain/entities"
)

type fakeContestRepo struct {
	nextID   uint
	contests map[uint]*entities.Contest
	listFunc func(ctx context.Context, now time.Time) ([]entities.Contest, error)
}

func newFakeContestRepo() *fakeContestRepo {
	return &fakeContestRepo{contests: make(map[uint]*entities.Contest)}
}

func (r *fakeContestRepo) Create(ctx context.Context, contest *entities.Contest) error {
	r.nextID++
	contest.ID = r.nextID
	stored := *contest
	r.contests[contest.ID] = &stored
	return nil
}

func (r *fakeContestRepo) FindByID(ctx context.Context, id uint) (*entities.Contest, error) {
	contest, ok := r.contests[id]
	if !ok {
		return nil, domain.ErrContestNotFound
	}
	found := *contest
	return &found, nil
}

func (r *fakeContestRepo) FindByCreatorID(ctx context.Context, creatorID string) ([]entities.Contest, error) {
	var out []entities.Contest
	for _, contest := range r.contests {
		if contest.CreatorID == creatorID {
			out = append(out, *contest)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeContestRepo) ListActiveOrDue(ctx context.Context, now time.Time) ([]entities.Contest, error) {
	if r.listFunc != nil {
		return r.listFunc(ctx, now)
	}
	var out []entities.Contest
	for _, contest := range r.contests {
		if contest.Status == domain.StatusActive ||
			(contest.Status == domain.StatusScheduled && contest.DueToStart(now)) {
			out = append(out, *contest)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeContestRepo) TransitionStatus(ctx context.Context, id uint, from, to string) (bool, error) {
	if !domain.CanTransition(from, to) {
		return false, domain.ErrInvalidTransition
	}
	contest, ok := r.contests[id]
	if !ok || contest.Status != from {
		return false, nil
	}
	contest.Status = to
	return true, nil
}

type fakeParticipantRepo struct {
	nextID uint
	rows   []*entities.Participant
	// caps mirrors the store-side join guard: contest id → max participants.
	caps map[uint]int
}

func (r *fakeParticipantRepo) Create(ctx context.Context, participant *entities.Participant) error {
	for _, row := range r.rows {
		if row.ContestID == participant.ContestID && row.UserID == participant.UserID {
			return domain.ErrAlreadyJoined
		}
	}
	if max, ok := r.caps[participant.ContestID]; ok && max > 0 {
		count := 0
		for _, row := range r.rows {
			if row.ContestID == participant.ContestID {
				count++
			}
		}
		if count >= max {
			return domain.ErrContestFull
		}
	}
	r.nextID++
	participant.ID = r.nextID
	stored := *participant
	r.rows = append(r.rows, &stored)
	return nil
}

func (r *fakeParticipantRepo) FindByContestIDAndUserID(ctx context.Context, contestID uint, userID string) (*entities.Participant, error) {
	for _, row := range r.rows {
		if row.ContestID == contestID && row.UserID == userID {
			found := *row
			return &found, nil
		}
	}
	return nil, domain.ErrParticipantNotFound
}

func (r *fakeParticipantRepo) FindByContestID(ctx context.Context, contestID uint) ([]entities.Participant, error) {
	var out []entities.Participant
	for _, row := range r.rows {
		if row.ContestID == contestID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (r *fakeParticipantRepo) AddPoints(ctx context.Context, contestID uint, userID string, delta int) error {
	for _, row := range r.rows {
		if row.ContestID == contestID && row.UserID == userID {
			row.Points += delta
		}
	}
	return nil
}

type fakeQuestionRepo struct {
	nextID    uint
	questions []*entities.Question
}

func (r *fakeQuestionRepo) Create(ctx context.Context, question *entities.Question) error {
	r.nextID++
	question.ID = r.nextID
	stored := *question
	r.questions = append(r.questions, &stored)
	return nil
}

func (r *fakeQuestionRepo) FindByIDAndContestID(ctx context.Context, id, contestID uint) (*entities.Question, error) {
	for _, question := range r.questions {
		if question.ID == id && question.ContestID == contestID {
			found := *question
			return &found, nil
		}
	}
	return nil, domain.ErrQuestionNotFound
}

func (r *fakeQuestionRepo) FindRandomByContestID(ctx context.Context, contestID uint) (*entities.Question, error) {
	for _, question := range r.questions {
		if question.ContestID == contestID {
			found := *question
			return &found, nil
		}
	}
	return nil, domain.ErrNoQuestions
}

type fakeAnnouncer struct {
	err      error
	messages []announcement
}

type announcement struct {
	channelID string
	message   string
}

func (a *fakeAnnouncer) Announce(channelID, message string) error {
	if a.err != nil {
		return a.err
	}
	a.messages = append(a.messages, announcement{channelID: channelID, message: message})
	return nil
}

// fakeTranslator renders messages as their catalog key so tests assert on
// stable identifiers instead of copy.
type fakeTranslator struct{}

func (fakeTranslator) T(locale, key string, data map[string]any) string {
	return key
}
