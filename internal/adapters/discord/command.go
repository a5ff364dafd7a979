package discord

import (
	"github.com/bwmarrin/discordgo"
)

const createContestModalID = "create_contest_modal"

const (
	placeholderName  = "Ex: Friday Night Trivia"
	placeholderDesc  = "Theme, rules, prizes..."
	placeholderStart = "Ex: 2026-09-01 18:00"
	placeholderEnd   = "Ex: 2026-09-01 20:00 (empty = open-ended)"
	placeholderMax   = "Ex: 20 (empty or 0 = unlimited)"
)

// contestCommand is the /contest application command definition.
func contestCommand() *discordgo.ApplicationCommand {
	contestOption := func(desc string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "contest",
			Description: desc,
			Required:    true,
		}
	}
	return &discordgo.ApplicationCommand{
		Name:        "contest",
		Description: "Trivia contests",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "create",
				Description: "Create a new contest",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "join",
				Description: "Join a contest",
				Options: []*discordgo.ApplicationCommandOption{
					contestOption("Contest ID"),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "addq",
				Description: "Add a question to your contest",
				Options: []*discordgo.ApplicationCommandOption{
					contestOption("Contest ID"),
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "points",
						Description: "Points awarded for a correct answer",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "question",
						Description: "Question text",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "answer",
						Description: "Answer text",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "question",
				Description: "Get a random question from the contest",
				Options: []*discordgo.ApplicationCommandOption{
					contestOption("Contest ID"),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "answer",
				Description: "Submit an answer to a question",
				Options: []*discordgo.ApplicationCommandOption{
					contestOption("Contest ID"),
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "question_id",
						Description: "Question ID",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "text",
						Description: "Your answer",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "leaderboard",
				Description: "Show the contest leaderboard",
				Options: []*discordgo.ApplicationCommandOption{
					contestOption("Contest ID"),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "mine",
				Description: "List the contests you created",
			},
		},
	}
}

// HandleCommand dispatches /contest subcommands.
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return
	}
	sub := data.Options[0]
	switch sub.Name {
	case "create":
		h.handleCreate(s, i)
	case "join":
		h.handleJoin(s, i, sub)
	case "addq":
		h.handleAddQuestion(s, i, sub)
	case "question":
		h.handleQuestion(s, i, sub)
	case "answer":
		h.handleAnswer(s, i, sub)
	case "leaderboard":
		h.handleLeaderboard(s, i, sub)
	case "mine":
		h.handleMine(s, i)
	}
}

// handleCreate opens the contest creation modal.
func (h *Handler) handleCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: createContestModalID,
			Title:    "Create a contest",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{CustomID: "name", Label: "Name", Style: discordgo.TextInputShort, Required: true, Placeholder: placeholderName},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{CustomID: "desc", Label: "Description", Style: discordgo.TextInputParagraph, Required: false, Placeholder: placeholderDesc},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{CustomID: "start", Label: "Start (YYYY-MM-DD HH:MM)", Style: discordgo.TextInputShort, Required: true, Placeholder: placeholderStart},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{CustomID: "end", Label: "End (YYYY-MM-DD HH:MM)", Style: discordgo.TextInputShort, Required: false, Placeholder: placeholderEnd},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{CustomID: "max", Label: "Max participants", Style: discordgo.TextInputShort, Required: false, Placeholder: placeholderMax},
				}},
			},
		},
	})
}

// subOptions indexes a subcommand's options by name.
func subOptions(sub *discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	out := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, opt := range sub.Options {
		out[opt.Name] = opt
	}
	return out
}
