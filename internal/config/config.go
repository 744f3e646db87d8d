package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is read once at startup and treated as read-only afterwards.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN"`
	BotPrefix    string `env:"BOT_PREFIX" envDefault:"&"`
	StoragePath  string `env:"STORAGE_PATH" envDefault:"datastore.json"`

	// Role IDs for the demo moderation commands; empty leaves them ungated.
	ModRoleID       string `env:"MOD_ROLE_ID"`
	BlacklistRoleID string `env:"BLACKLIST_ROLE_ID"`
}

// New loads .env if present and parses the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
