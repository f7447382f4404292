// /internal/config/config.go
package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is populated from the environment, optionally seeded from a .env file.
type Config struct {
	DiscordToken  string   `env:"DISCORD_TOKEN,required,notEmpty"`
	StoragePath   string   `env:"STORAGE_PATH" envDefault:"datastore.json"`
	CommandPrefix string   `env:"COMMAND_PREFIX" envDefault:"!"`
	OwnerIDs      []string `env:"OWNER_IDS" envSeparator:","`
	Locale        string   `env:"LOCALE" envDefault:"en"`
}

// New loads the configuration. A missing .env file is not an error; the
// process environment is always consulted.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

// Local is the subset of configuration for tools that never open a gateway
// session, so no Discord token is required.
type Local struct {
	StoragePath string `env:"STORAGE_PATH" envDefault:"datastore.json"`
	Locale      string `env:"LOCALE" envDefault:"en"`
}

// NewLocal loads the reduced configuration.
func NewLocal() (*Local, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Local]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}
