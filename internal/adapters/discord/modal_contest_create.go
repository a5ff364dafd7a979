package discord

import (
	"context"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"

	"contestbot/internal/domain/entities"
	pkgdiscord "contestbot/pkg/discord"
)

// extractCreateModalData pulls the five text inputs out of the creation
// modal in declaration order.
func extractCreateModalData(data discordgo.ModalSubmitInteractionData) (name, desc, startStr, endStr, maxStr string) {
	fields := []*string{&name, &desc, &startStr, &endStr, &maxStr}
	for idx, field := range fields {
		if idx >= len(data.Components) {
			break
		}
		if row, ok := data.Components[idx].(*discordgo.ActionsRow); ok && len(row.Components) > 0 {
			if input, ok := row.Components[0].(*discordgo.TextInput); ok {
				*field = input.Value
			}
		}
	}
	return
}

// parseMaxParticipants converts the "Max participants" field to an integer
// (0 or empty = unlimited).
func parseMaxParticipants(maxStr string) (int, error) {
	if maxStr == "" || maxStr == "0" {
		return 0, nil
	}
	n, err := strconv.Atoi(maxStr)
	if err != nil || n < 0 {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}

// HandleCreateModalSubmit handles the contest creation modal submission.
func (h *Handler) HandleCreateModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name, desc, startStr, endStr, maxStr := extractCreateModalData(i.ModalSubmitData())

	startTime, err := pkgdiscord.ParseContestTime(startStr)
	if err != nil {
		respondEphemeral(s, i.Interaction, h.translate("errors.invalid_datetime", nil))
		return
	}
	var endTime time.Time
	if endStr != "" {
		endTime, err = pkgdiscord.ParseContestTime(endStr)
		if err != nil {
			respondEphemeral(s, i.Interaction, h.translate("errors.invalid_datetime", nil))
			return
		}
	}
	maxParticipants, err := parseMaxParticipants(maxStr)
	if err != nil {
		respondEphemeral(s, i.Interaction, h.translate("errors.invalid_max_participants", nil))
		return
	}

	contest := &entities.Contest{
		Name:            name,
		Description:     desc,
		ChannelID:       i.ChannelID,
		GuildID:         i.GuildID,
		CreatorID:       interactionUserID(i),
		StartTime:       startTime,
		EndTime:         endTime,
		MaxParticipants: maxParticipants,
	}
	if err := h.contestUseCase.CreateContest(context.Background(), contest); err != nil {
		h.respondDomainError(s, i, err)
		return
	}

	respondPublic(s, i.Interaction, h.translate("reply.contest_created", map[string]any{
		"Name":  contest.Name,
		"ID":    contest.ID,
		"Start": pkgdiscord.FormatContestTime(contest.StartTime),
	}))
}
