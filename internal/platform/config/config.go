package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the service configuration read from the environment.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	MapProviderHost string `env:"MAP_PROVIDER_HOST" envDefault:"maps.google.com"`
	MapZoom         int    `env:"MAP_ZOOM"          envDefault:"15"`

	SessionCookie        string        `env:"SESSION_COOKIE"         envDefault:"registry_session"`
	SessionTTL           time.Duration `env:"SESSION_TTL"            envDefault:"30m"`
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`

	AuthProjectIDs   []string `env:"AUTH_PROJECT_IDS" envSeparator:","`
	AuthAPIKey       string   `env:"AUTH_API_KEY"`
	RecaptchaSiteKey string   `env:"RECAPTCHA_SITE_KEY"`
	// JSON file of key id -> PEM public key used to verify ID tokens.
	AuthKeysFile     string   `env:"AUTH_KEYS_FILE"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: parse env: %w", err)
	}
	if cfg.SessionCookie == "" {
		return Config{}, fmt.Errorf("load config: SESSION_COOKIE must not be empty")
	}
	return cfg, nil
}
