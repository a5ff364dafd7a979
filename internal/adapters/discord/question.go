package discord

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"
)

// handleAddQuestion adds a question to a contest the caller created. The
// reply is ephemeral so the answer never appears in the channel.
func (h *Handler) handleAddQuestion(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	opts := subOptions(sub)
	contestID := uint(opts["contest"].IntValue())
	points := int(opts["points"].IntValue())
	prompt := opts["question"].StringValue()
	answer := opts["answer"].StringValue()

	_, err := h.contestUseCase.AddQuestion(context.Background(), contestID, interactionUserID(i), prompt, answer, points)
	if err != nil {
		h.respondDomainError(s, i, err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translate("reply.question_added", map[string]any{"ID": contestID}))
}

// handleQuestion draws a random question for a registered participant.
func (h *Handler) handleQuestion(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	opts := subOptions(sub)
	contestID := uint(opts["contest"].IntValue())

	question, err := h.quizUseCase.PickQuestion(context.Background(), contestID, interactionUserID(i))
	if err != nil {
		h.respondDomainError(s, i, err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translate("reply.question", map[string]any{
		"Points":     question.Points,
		"Prompt":     question.Prompt,
		"QuestionID": question.ID,
	}))
}

// handleAnswer grades a submitted answer. Grading itself is
// side-effect-free; the point award is applied here, once, on a correct
// grade.
func (h *Handler) handleAnswer(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	opts := subOptions(sub)
	contestID := uint(opts["contest"].IntValue())
	questionID := uint(opts["question_id"].IntValue())
	submitted := opts["text"].StringValue()

	ctx := context.Background()
	points, correct, err := h.quizUseCase.Grade(ctx, contestID, questionID, submitted)
	if err != nil {
		h.respondDomainError(s, i, err)
		return
	}
	if !correct {
		respondEphemeral(s, i.Interaction, h.translate("reply.incorrect", nil))
		return
	}
	if err := h.participantUseCase.AddPoints(ctx, contestID, interactionUserID(i), points); err != nil {
		log.Printf("❌ Awarding %d points failed (contest=%d): %v", points, contestID, err)
		respondEphemeral(s, i.Interaction, h.translate("errors.generic", nil))
		return
	}
	respondPublic(s, i.Interaction, h.translate("reply.correct", map[string]any{"Points": points}))
}
