package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const DriverMemory = "memory"

type Config struct {
	// Application
	AppEnv   string
	Port     string
	LogLevel string

	// Database: sqlite (default), pgx, postgres or memory
	DBDriver     string
	DBConnection string

	// Redis is optional; an empty host disables caching and rate limiting.
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	RateLimit       int
	RateLimitWindow time.Duration

	// Observability (optional)
	SentryDSN string

	// SeedFile points to a YAML fixture loaded at startup.
	SeedFile string

	StreakQueueSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load reads the configuration from the environment, after loading .env
// when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := &Config{
		AppEnv:   envString("APP_ENV", "development"),
		Port:     envString("PORT", "8080"),
		LogLevel: envString("LOG_LEVEL", "info"),

		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/tracker.db"),

		RedisHost:     envString("REDIS_HOST", ""),
		RedisPort:     envString("REDIS_PORT", "6379"),
		RedisPassword: envString("REDIS_PASSWORD", ""),
		RedisDB:       envInt("REDIS_DB", 0),

		RateLimit:       envInt("RATE_LIMIT", 100),
		RateLimitWindow: envDuration("RATE_LIMIT_WINDOW", time.Minute),

		SentryDSN: envString("SENTRY_DSN", ""),
		SeedFile:  envString("SEED_FILE", ""),

		StreakQueueSize: envInt("STREAK_QUEUE_SIZE", 100),

		ReadTimeout:     envDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    envDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:     envDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "sqlite", "pgx", "postgres", DriverMemory:
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DBDriver != DriverMemory && c.DBConnection == "" {
		return fmt.Errorf("config: DB_CONNECTION is required for driver %q", c.DBDriver)
	}
	if c.StreakQueueSize <= 0 {
		return fmt.Errorf("config: STREAK_QUEUE_SIZE must be positive")
	}
	return nil
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// RedisEnabled reports whether a Redis host was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}
