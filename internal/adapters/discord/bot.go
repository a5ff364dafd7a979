package discord

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"contestbot/internal/application"
	"contestbot/internal/config"
	"contestbot/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session   *discordgo.Session
	config    *config.Config
	handler   *Handler
	scheduler *application.SchedulerService
}

// NewBot creates a Bot and wires ports: output adapters -> application
// (use cases) -> handler.
func NewBot(
	cfg *config.Config,
	contestRepo output.ContestRepository,
	participantRepo output.ParticipantRepository,
	questionRepo output.QuestionRepository,
	translator output.T,
) (*Bot, error) {
	contestUC := application.NewContestService(contestRepo, questionRepo)
	participantUC := application.NewParticipantService(participantRepo, contestRepo)
	quizUC := application.NewQuizService(contestRepo, participantRepo, questionRepo)

	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	bot := &Bot{
		session:   s,
		config:    cfg,
		handler:   NewHandler(contestUC, participantUC, quizUC, translator, cfg.Locale),
		scheduler: application.NewSchedulerService(contestRepo, participantRepo, NewAnnouncer(s), translator, cfg.Locale),
	}
	bot.session.AddHandler(bot.handleInteraction)
	return bot, nil
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if i.ApplicationCommandData().Name == "contest" {
			b.handler.HandleCommand(s, i)
		}
	case discordgo.InteractionModalSubmit:
		if i.ModalSubmitData().CustomID == createContestModalID {
			b.handler.HandleCreateModalSubmit(s, i)
		}
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer b.session.Close()

	if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, contestCommand()); err != nil {
		log.Printf("⚠️ Failed to register the /contest command: %v", err)
	}

	sched, err := StartScheduler(b.scheduler, b.config.CheckInterval)
	if err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	defer func() {
		if err := sched.Shutdown(); err != nil {
			log.Printf("⚠️ Scheduler shutdown: %v", err)
		}
	}()

	fmt.Println("🤖 Bot online! Press CTRL+C to quit.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
