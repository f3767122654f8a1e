package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// envFiles are loaded in order; variables already set are never overridden,
// so the real environment wins over .env.local which wins over .env
var envFiles = []string{".env.local", ".env"}

// Config holds all application configuration
type Config struct {
	HTTPAddr           string
	BotToken           string
	BotPassword        string
	Database           DatabaseConfig
	Translator         TranslatorConfig
	CORSOrigins        []string
	CacheRetentionDays int
}

// DatabaseConfig holds the remote database credentials
type DatabaseConfig struct {
	URL       string `yaml:"url" env:"DATABASE_URL"`
	AuthToken string `yaml:"authToken" env:"DATABASE_AUTH_TOKEN"`
}

// TranslatorConfig holds translation provider settings
type TranslatorConfig struct {
	URL   string
	Token string
}

// LoadEnvFiles loads .env.local and .env when present
func LoadEnvFiles() {
	for _, f := range envFiles {
		// Missing files are fine, the environment may be set directly
		_ = godotenv.Load(f)
	}
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	LoadEnvFiles()

	retention, err := strconv.Atoi(getEnv("CACHE_RETENTION_DAYS", "60"))
	if err != nil || retention < 1 {
		return nil, fmt.Errorf("CACHE_RETENTION_DAYS must be a positive integer")
	}

	cfg := &Config{
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		BotToken:    os.Getenv("BOT_TOKEN"),
		BotPassword: os.Getenv("BOT_PASSWORD"),
		Database: DatabaseConfig{
			URL:       os.Getenv("DATABASE_URL"),
			AuthToken: os.Getenv("DATABASE_AUTH_TOKEN"),
		},
		Translator: TranslatorConfig{
			URL:   getEnv("TRANSLATOR_URL", "https://api-inference.huggingface.co/models"),
			Token: os.Getenv("HF_API_TOKEN"),
		},
		CORSOrigins:        splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		CacheRetentionDays: retention,
	}

	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}
	// The bot is optional but never runs without a password
	if cfg.BotToken != "" && cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required when BOT_TOKEN is set")
	}

	return cfg, nil
}

// BotEnabled reports whether the Telegram bot should run
func (c *Config) BotEnabled() bool {
	return c.BotToken != ""
}

// Validate checks that both credentials are present
func (d DatabaseConfig) Validate() error {
	if d.URL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if d.AuthToken == "" {
		return errors.New("DATABASE_AUTH_TOKEN is required")
	}
	return nil
}

// DSN returns the PostgreSQL connection URL with the auth token as password
func (d DatabaseConfig) DSN() (string, error) {
	u, err := url.Parse(d.URL)
	if err != nil {
		return "", fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("DATABASE_URL must use the postgres scheme, got %q", u.Scheme)
	}
	if d.AuthToken != "" {
		if u.User == nil || u.User.Username() == "" {
			return "", errors.New("DATABASE_URL must name a user to authenticate with DATABASE_AUTH_TOKEN")
		}
		u.User = url.UserPassword(u.User.Username(), d.AuthToken)
	}
	return u.String(), nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitList splits a comma separated value, dropping blanks
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
