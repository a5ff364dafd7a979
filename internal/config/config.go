package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Token          string
	DatabaseURL    string
	GuildID        string
	MigrationsPath string
	Locale         string
	CheckInterval  time.Duration
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (Docker, CI, etc.).
	}

	cfg := &Config{
		Token:          os.Getenv("TOKEN"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		GuildID:        os.Getenv("GUILD_ID"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		Locale:         os.Getenv("LOCALE"),
	}

	interval := os.Getenv("CHECK_INTERVAL")
	if interval == "" {
		cfg.CheckInterval = time.Minute
	} else {
		d, err := time.ParseDuration(interval)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("config: CHECK_INTERVAL must be a positive duration (e.g. 1m), got %q", interval)
		}
		cfg.CheckInterval = d
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies all the rules on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required and cannot be empty")
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Useful local default when DATABASE_URL is not provided.
		c.DatabaseURL = "postgres://localhost:5432/contestbot?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = "internal/infrastructure/database/migrations"
	}

	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = "en"
	}

	return nil
}
