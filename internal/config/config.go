package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment    string `env:"ENV" envDefault:"development"`
	Port           string `env:"API_PORT" envDefault:"8080"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`

	// Logging Configuration
	LogFile       string `env:"LOG_FILE"`
	LogMaxSize    int    `env:"LOG_MAX_SIZE_MB" envDefault:"100"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAge     int    `env:"LOG_MAX_AGE_DAYS" envDefault:"7"`

	// Mail Configuration (Resend)
	ResendAPIKey string `env:"RESEND_API_KEY"`
	ContactTo    string `env:"CONTACT_TO_EMAIL"`
	ContactFrom  string `env:"CONTACT_FROM_EMAIL"`

	// Rate Limiting Configuration
	RateRPS   int `env:"RATE_RPS" envDefault:"5"`
	RateBurst int `env:"RATE_BURST" envDefault:"10"`

	// Receipt Retry Configuration
	ReceiptPreSendDelayMS int `env:"RECEIPT_PRESEND_DELAY_MS" envDefault:"700"`
	ReceiptRetryDelayMS   int `env:"RECEIPT_RETRY_DELAY_MS" envDefault:"1000"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Load .env file if it exists. godotenv never overwrites variables
	// already present in the environment.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	return cfg, nil
}

// MailConfigured reports whether all three mail secrets are present.
// A request handled with an incomplete mail config fails with a server
// configuration error, never a validation error.
func (c *Config) MailConfigured() bool {
	return c.ResendAPIKey != "" && c.ContactTo != "" && c.ContactFrom != ""
}

// ReceiptPreSendDelay returns the delay applied before the first receipt attempt
func (c *Config) ReceiptPreSendDelay() time.Duration {
	return time.Duration(c.ReceiptPreSendDelayMS) * time.Millisecond
}

// ReceiptRetryDelay returns the delay applied before the single rate-limit retry
func (c *Config) ReceiptRetryDelay() time.Duration {
	return time.Duration(c.ReceiptRetryDelayMS) * time.Millisecond
}
