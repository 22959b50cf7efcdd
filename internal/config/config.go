package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the reporter needs for one run. It is built once
// at startup and handed to each component explicitly.
type Config struct {
	GitHubUser        string
	GitHubToken       string
	GeminiAPIKey      string
	GeminiModel       string
	DiscordWebhookURL string
	LookbackHours     int
	Language          string
}

const (
	defaultLang          = "en"
	defaultGeminiModel   = "gemini-2.5-flash"
	defaultLookbackHours = 24
)

// DefaultLanguage is the locale used before the configuration is loaded,
// e.g. for CLI usage text.
func DefaultLanguage() string {
	return defaultLang
}

// Load reads the configuration from the process environment. A .env file in
// the working directory is applied first when present; it never overrides
// variables already set.
func Load() (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env file is optional

	cfg := &Config{
		GitHubUser:        os.Getenv("GH_USER"),
		GitHubToken:       os.Getenv("GH_TOKEN"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       defaultGeminiModel,
		DiscordWebhookURL: os.Getenv("DISCORD_WEBHOOK_URL"),
		LookbackHours:     defaultLookbackHours,
		Language:          defaultLang,
	}

	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		cfg.GeminiModel = model
	}
	if lang := os.Getenv("LANGUAGE"); lang != "" {
		cfg.Language = lang
	}
	if raw := os.Getenv("LOOKBACK_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			return nil, fmt.Errorf("LOOKBACK_HOURS must be a positive integer, got %q", raw)
		}
		cfg.LookbackHours = hours
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Lookback is the trailing window used to decide which events are recent
// enough to report.
func (c *Config) Lookback() time.Duration {
	return time.Duration(c.LookbackHours) * time.Hour
}

func validateConfig(cfg *Config) error {
	if cfg.GitHubUser == "" {
		return errors.New("GH_USER environment variable is required")
	}
	if cfg.GitHubToken == "" {
		return errors.New("GH_TOKEN environment variable is required")
	}
	if cfg.GeminiAPIKey == "" {
		return errors.New("GEMINI_API_KEY environment variable is required")
	}
	if cfg.DiscordWebhookURL == "" {
		return errors.New("DISCORD_WEBHOOK_URL environment variable is required")
	}
	return nil
}
