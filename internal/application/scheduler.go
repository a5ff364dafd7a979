package application

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"contestbot/internal/domain"
	"contestbot/internal/domain/entities"
	"contestbot/internal/ports/output"
)

// SchedulerService advances contest lifecycles: it periodically sweeps
// contests whose start or end time has been reached and moves them
// scheduled → active → completed, announcing each transition to the
// contest's origin channel.
type SchedulerService struct {
	contestRepo     output.ContestRepository
	participantRepo output.ParticipantRepository
	announcer       output.Announcer
	translator      output.T
	locale          string
}

func NewSchedulerService(
	contestRepo output.ContestRepository,
	participantRepo output.ParticipantRepository,
	announcer output.Announcer,
	translator output.T,
	locale string,
) *SchedulerService {
	return &SchedulerService{
		contestRepo:     contestRepo,
		participantRepo: participantRepo,
		announcer:       announcer,
		translator:      translator,
		locale:          locale,
	}
}

// Reconcile runs one reconciliation pass against the given wall-clock
// time. Each contest advances at most one step per pass. The status write
// is a compare-and-set on the status read at listing time, so a contest
// that transitioned since the listing query is left alone and never
// re-announced. Announcement failures are logged and swallowed; the
// committed status change stands.
func (s *SchedulerService) Reconcile(ctx context.Context, now time.Time) error {
	contests, err := s.contestRepo.ListActiveOrDue(ctx, now)
	if err != nil {
		return fmt.Errorf("list active or due contests: %w", err)
	}
	for i := range contests {
		if err := ctx.Err(); err != nil {
			return err
		}
		contest := &contests[i]
		switch {
		case contest.Status == domain.StatusScheduled && contest.DueToStart(now):
			s.startContest(ctx, contest)
		case contest.Status == domain.StatusActive && contest.DueToEnd(now):
			s.completeContest(ctx, contest)
		}
	}
	return nil
}

func (s *SchedulerService) startContest(ctx context.Context, contest *entities.Contest) {
	applied, err := s.contestRepo.TransitionStatus(ctx, contest.ID, domain.StatusScheduled, domain.StatusActive)
	if err != nil {
		log.Printf("⚠️ Contest %d start transition failed: %v", contest.ID, err)
		return
	}
	if !applied {
		return
	}
	s.announce(contest.ChannelID, s.translator.T(s.locale, "announce.started", map[string]any{
		"Name": contest.Name,
		"ID":   contest.ID,
	}))
}

func (s *SchedulerService) completeContest(ctx context.Context, contest *entities.Contest) {
	applied, err := s.contestRepo.TransitionStatus(ctx, contest.ID, domain.StatusActive, domain.StatusCompleted)
	if err != nil {
		log.Printf("⚠️ Contest %d end transition failed: %v", contest.ID, err)
		return
	}
	if !applied {
		return
	}
	s.announce(contest.ChannelID, s.finalResults(ctx, contest))
}

// finalResults renders the end-of-contest announcement with the frozen
// leaderboard. A leaderboard read failure degrades to the headline alone;
// the transition is already committed at this point.
func (s *SchedulerService) finalResults(ctx context.Context, contest *entities.Contest) string {
	var b strings.Builder
	b.WriteString(s.translator.T(s.locale, "announce.ended", map[string]any{"Name": contest.Name}))
	participants, err := s.participantRepo.FindByContestID(ctx, contest.ID)
	if err != nil {
		log.Printf("⚠️ Contest %d final leaderboard: %v", contest.ID, err)
		return b.String()
	}
	standings := rankStandings(participants, DefaultLeaderboardSize)
	if len(standings) == 0 {
		b.WriteString("\n")
		b.WriteString(s.translator.T(s.locale, "announce.no_participants", nil))
		return b.String()
	}
	for rank, standing := range standings {
		b.WriteString("\n")
		b.WriteString(s.translator.T(s.locale, "announce.standing", map[string]any{
			"Rank":   rank + 1,
			"UserID": standing.UserID,
			"Points": standing.Points,
		}))
	}
	return b.String()
}

func (s *SchedulerService) announce(channelID, message string) {
	if err := s.announcer.Announce(channelID, message); err != nil {
		log.Printf("❌ Announcement to channel %s failed: %v", channelID, err)
	}
}
