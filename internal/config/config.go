// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DataDir  string // Base directory for the journal database (always absolute)
	Port     int
	LogLevel string
	DevMode  bool

	// Generative-text API (Gemini-compatible endpoint)
	GeminiAPIURL string
	GeminiAPIKey string

	// News feed
	RSSToJSONURL    string // rss-to-json bridge endpoint
	NewsFeedURL     string // upstream RSS feed passed to the bridge
	NewsRefreshSpec string // cron spec for the background refresh job
}

// Load reads configuration from environment variables.
// A .env file in the working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dataDir := getEnv("JOURNAL_DATA_DIR", "")
	if dataDir == "" {
		dataDir = "./data"
	}

	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}

	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:         absDataDir,
		Port:            getEnvAsInt("PORT", 8080),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DevMode:         getEnvAsBool("DEV_MODE", false),
		GeminiAPIURL:    getEnv("GEMINI_API_URL", ""),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		RSSToJSONURL:    getEnv("RSS2JSON_API_URL", "https://api.rss2json.com/v1/api.json"),
		NewsFeedURL:     getEnv("NEWS_FEED_URL", "https://www.investing.com/rss/news_285.rss"),
		NewsRefreshSpec: getEnv("NEWS_REFRESH_SCHEDULE", "@every 15m"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks configuration for invalid values
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}

	if c.RSSToJSONURL == "" {
		return fmt.Errorf("rss-to-json API URL must not be empty")
	}
	if c.NewsFeedURL == "" {
		return fmt.Errorf("news feed URL must not be empty")
	}

	// The Gemini key is optional: insight endpoints report the missing
	// configuration at call time rather than preventing startup.
	return nil
}

// DatabasePath returns the path of the journal database file
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "journal.db")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
