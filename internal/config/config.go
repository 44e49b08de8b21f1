package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config represents runtime configuration for the service. Values come from
// the environment (optionally seeded from a .env file) on top of the defaults
// below.
type Config struct {
	ServerAddress string `env:"SAATHI_SERVER_ADDRESS"`

	// Generation provider: gemini, openai or claude.
	Provider string `env:"SAATHI_PROVIDER"`
	Model    string `env:"SAATHI_MODEL"`
	BaseURL  string `env:"SAATHI_BASE_URL"`

	GeminiAPIKey    string `env:"GEMINI_API_KEY"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`

	// Conversation memory sizing.
	HistoryCap    int `env:"SAATHI_HISTORY_CAP"`
	ContextWindow int `env:"SAATHI_CONTEXT_WINDOW"`

	SessionIdleTTL time.Duration `env:"SAATHI_SESSION_IDLE_TTL"`
	SweepInterval  time.Duration `env:"SAATHI_SWEEP_INTERVAL"`

	GenerateTimeout time.Duration `env:"SAATHI_GENERATE_TIMEOUT"`
}

func defaults() *Config {
	return &Config{
		ServerAddress:   ":5001",
		Provider:        "gemini",
		Model:           "gemini-1.5-flash",
		HistoryCap:      20,
		ContextWindow:   5,
		SessionIdleTTL:  30 * time.Minute,
		SweepInterval:   5 * time.Minute,
		GenerateTimeout: 30 * time.Second,
	}
}

// Load builds the configuration from the environment. A missing API key for
// the selected provider is a startup error: the service must not come up
// without a credential for its generation backend.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.HistoryCap <= 0 {
		return nil, fmt.Errorf("history cap must be positive, got %d", cfg.HistoryCap)
	}
	if cfg.ContextWindow <= 0 {
		return nil, fmt.Errorf("context window must be positive, got %d", cfg.ContextWindow)
	}
	if _, err := cfg.APIKey(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// APIKey returns the credential for the configured provider.
func (c *Config) APIKey() (string, error) {
	switch c.Provider {
	case "gemini":
		if c.GeminiAPIKey == "" {
			return "", fmt.Errorf("GEMINI_API_KEY not found in environment variables")
		}
		return c.GeminiAPIKey, nil
	case "openai":
		if c.OpenAIAPIKey == "" {
			return "", fmt.Errorf("OPENAI_API_KEY not found in environment variables")
		}
		return c.OpenAIAPIKey, nil
	case "claude":
		if c.AnthropicAPIKey == "" {
			return "", fmt.Errorf("ANTHROPIC_API_KEY not found in environment variables")
		}
		return c.AnthropicAPIKey, nil
	default:
		return "", fmt.Errorf("invalid provider: %s", c.Provider)
	}
}
