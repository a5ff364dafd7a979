package discord

import (
	"contestbot/internal/ports/input"
	"contestbot/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	contestUseCase     input.ContestUseCase
	participantUseCase input.ParticipantUseCase
	quizUseCase        input.QuizUseCase
	translator         output.T
	locale             string
}

// NewHandler creates a Handler.
func NewHandler(
	contestUseCase input.ContestUseCase,
	participantUseCase input.ParticipantUseCase,
	quizUseCase input.QuizUseCase,
	translator output.T,
	locale string,
) *Handler {
	return &Handler{
		contestUseCase:     contestUseCase,
		participantUseCase: participantUseCase,
		quizUseCase:        quizUseCase,
		translator:         translator,
		locale:             locale,
	}
}

func (h *Handler) translate(key string, data map[string]any) string {
	return h.translator.T(h.locale, key, data)
}
