package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

func (h *Handler) handleJoin(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	opts := subOptions(sub)
	contestID := uint(opts["contest"].IntValue())

	joined, err := h.participantUseCase.Join(context.Background(), contestID, interactionUserID(i))
	if err != nil {
		h.respondDomainError(s, i, err)
		return
	}
	if !joined {
		respondEphemeral(s, i.Interaction, h.translate("reply.already_joined", nil))
		return
	}
	respondPublic(s, i.Interaction, h.translate("reply.joined", nil))
}
