package main

import (
	"context"
	"log"
	"os"

	"contestbot/internal/adapters/discord"
	"contestbot/internal/config"
	"contestbot/internal/infrastructure/database"
	"contestbot/internal/infrastructure/i18n"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Database initialization error: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Migration error: %v", err)
	}

	contestRepo := database.NewContestRepository(pool)
	participantRepo := database.NewParticipantRepository(pool)
	questionRepo := database.NewQuestionRepository(pool)
	translator := i18n.NewTranslator(cfg.Locale)

	bot, err := discord.NewBot(cfg, contestRepo, participantRepo, questionRepo, translator)
	if err != nil {
		log.Fatalf("❌ Bot creation error: %v", err)
	}
	if err := bot.Start(); err != nil {
		log.Printf("❌ Bot startup error: %v", err)
		os.Exit(1)
	}
}
