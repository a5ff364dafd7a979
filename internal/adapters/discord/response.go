package discord

import (
	"errors"
	"log"

	"github.com/bwmarrin/discordgo"

	"contestbot/internal/domain"
)

func respondEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string) {
	_ = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func respondPublic(s *discordgo.Session, i *discordgo.Interaction, content string) {
	_ = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
}

// interactionUserID resolves the caller's user ID for guild and DM
// interactions alike.
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// domainErrorKey maps a domain error to its message catalog key.
func domainErrorKey(err error) string {
	switch {
	case errors.Is(err, domain.ErrContestNotFound):
		return "errors.contest_not_found"
	case errors.Is(err, domain.ErrQuestionNotFound):
		return "errors.question_not_found"
	case errors.Is(err, domain.ErrNotCreator):
		return "errors.not_creator"
	case errors.Is(err, domain.ErrNotJoined):
		return "errors.not_joined"
	case errors.Is(err, domain.ErrContestNotActive):
		return "errors.contest_not_active"
	case errors.Is(err, domain.ErrNoQuestions):
		return "errors.no_questions"
	case errors.Is(err, domain.ErrContestFull):
		return "errors.contest_full"
	case errors.Is(err, domain.ErrNameRequired):
		return "errors.name_required"
	case errors.Is(err, domain.ErrEndBeforeStart):
		return "errors.end_before_start"
	case errors.Is(err, domain.ErrQuestionTextRequired):
		return "errors.question_text_required"
	}
	return ""
}

// respondDomainError answers with the user-facing message for a domain
// error; anything else is logged and reported as a generic failure.
func (h *Handler) respondDomainError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	key := domainErrorKey(err)
	if key == "" {
		log.Printf("❌ Command failed: %v", err)
		key = "errors.generic"
	}
	respondEphemeral(s, i.Interaction, h.translate(key, nil))
}
