package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	TransportConsole = "console"
	TransportDiscord = "discord"

	JournalFile  = "file"
	JournalRedis = "redis"
	JournalNone  = "none"
)

type Config struct {
	Environment string     `validate:"required"`
	LogLevel    slog.Level `validate:"-"`
	LogPath     string     // Log file used while the console UI owns the terminal
	Language    string     `validate:"required"`

	Transport        string `validate:"oneof=console discord"`
	DiscordToken     string `validate:"required_if=Transport discord"`
	DiscordChannelID string `validate:"required_if=Transport discord"`

	Journal     string `validate:"oneof=file redis none"`
	JournalPath string `validate:"required_if=Journal file"`
	RedisURL    string `validate:"required_if=Journal redis"`

	MaxDepth     int           `validate:"gte=0,lte=10"` // Nested text games allowed inside one session
	FetchTimeout time.Duration `validate:"gt=0"`
	MetricsAddr  string        // Empty disables the /metrics listener
	Skip         bool          // Start sessions with instant output
}

// Load reads the environment (and a .env file, if present) and validates the result.
func Load() (*Config, error) {
	// A missing .env file is fine, the environment may already be set.
	_ = godotenv.Load()

	cfg := &Config{
		Environment:      getEnv("ENVIRONMENT", "development"),
		LogLevel:         parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LogPath:          getEnv("ZARYA_LOG_PATH", "zarya.log"),
		Language:         getEnv("ZARYA_LANG", "en"),
		Transport:        strings.ToLower(getEnv("ZARYA_TRANSPORT", TransportConsole)),
		DiscordToken:     os.Getenv("DISCORD_TOKEN"),
		DiscordChannelID: os.Getenv("DISCORD_CHANNEL_ID"),
		Journal:          strings.ToLower(getEnv("ZARYA_JOURNAL", JournalFile)),
		JournalPath:      getEnv("ZARYA_JOURNAL_PATH", "log.txt"),
		RedisURL:         os.Getenv("REDIS_URL"),
		MetricsAddr:      os.Getenv("METRICS_ADDR"),
	}

	var err error
	if cfg.MaxDepth, err = strconv.Atoi(getEnv("ZARYA_MAX_DEPTH", "3")); err != nil {
		return nil, fmt.Errorf("invalid ZARYA_MAX_DEPTH: %w", err)
	}
	if cfg.FetchTimeout, err = time.ParseDuration(getEnv("ZARYA_FETCH_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("invalid ZARYA_FETCH_TIMEOUT: %w", err)
	}
	if cfg.Skip, err = strconv.ParseBool(getEnv("ZARYA_SKIP", "false")); err != nil {
		return nil, fmt.Errorf("invalid ZARYA_SKIP: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
