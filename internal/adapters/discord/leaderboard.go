package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"contestbot/internal/application"
)

func (h *Handler) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	opts := subOptions(sub)
	contestID := uint(opts["contest"].IntValue())

	ctx := context.Background()
	contest, err := h.contestUseCase.GetContestByID(ctx, contestID)
	if err != nil {
		h.respondDomainError(s, i, err)
		return
	}
	standings, err := h.participantUseCase.Leaderboard(ctx, contestID, application.DefaultLeaderboardSize)
	if err != nil {
		h.respondDomainError(s, i, err)
		return
	}
	if len(standings) == 0 {
		respondEphemeral(s, i.Interaction, h.translate("reply.leaderboard_empty", nil))
		return
	}

	var b strings.Builder
	b.WriteString(h.translate("reply.leaderboard_header", map[string]any{"Name": contest.Name}))
	for rank, standing := range standings {
		b.WriteString("\n")
		b.WriteString(h.translate("announce.standing", map[string]any{
			"Rank":   rank + 1,
			"UserID": standing.UserID,
			"Points": standing.Points,
		}))
	}
	respondPublic(s, i.Interaction, b.String())
}

func (h *Handler) handleMine(s *discordgo.Session, i *discordgo.InteractionCreate) {
	contests, err := h.contestUseCase.GetContestsByCreatorID(context.Background(), interactionUserID(i))
	if err != nil {
		h.respondDomainError(s, i, err)
		return
	}
	if len(contests) == 0 {
		respondEphemeral(s, i.Interaction, h.translate("reply.mine_empty", nil))
		return
	}

	var b strings.Builder
	b.WriteString(h.translate("reply.mine_header", nil))
	for idx := range contests {
		b.WriteString("\n")
		b.WriteString(h.translate("reply.mine_entry", map[string]any{
			"ID":     contests[idx].ID,
			"Name":   contests[idx].Name,
			"Status": contests[idx].Status,
		}))
	}
	respondEphemeral(s, i.Interaction, b.String())
}
