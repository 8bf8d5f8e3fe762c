package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Env      string `env:"ENV" envDefault:"local" validate:"required,oneof=local staging production"`
	Port     string `env:"PORT" envDefault:"8080" validate:"required"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	DatabaseURL string `env:"DATABASE_URL,required" validate:"required"`
	RedisURL    string `env:"REDIS_URL"`

	MetricsPort string `env:"METRICS_PORT" envDefault:"9090"`

	JWTSecret     string        `env:"JWT_SECRET,required" validate:"required,min=32"`
	JWTTTL        time.Duration `env:"JWT_TTL" envDefault:"24h" validate:"min=1m"`
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL" envDefault:"30m" validate:"min=1m"`
	BcryptCost    int           `env:"BCRYPT_COST" envDefault:"12" validate:"min=4,max=31"`

	ResendAPIKey string `env:"RESEND_API_KEY" validate:"required_if=Env production,required_if=Env staging"`
	ResendFrom   string `env:"RESEND_FROM"    validate:"required_if=Env production,required_if=Env staging"`
	AppBaseURL   string `env:"APP_BASE_URL"   envDefault:"http://localhost:5173" validate:"url"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	LoginMaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS" envDefault:"5" validate:"min=1,max=100"`
	LoginWindow      time.Duration `env:"LOGIN_WINDOW" envDefault:"15m" validate:"min=1s"`

	KafkaBrokers       []string `env:"KAFKA_BROKERS" envSeparator:","`
	WorkoutEventsTopic string   `env:"WORKOUT_EVENTS_TOPIC" envDefault:"workout_events"`

	ReminderIntervalSec int `env:"REMINDER_INTERVAL_SEC" envDefault:"60" validate:"min=1,max=3600"`
	ReminderBatchSize   int `env:"REMINDER_BATCH_SIZE" envDefault:"100" validate:"min=1,max=1000"`
	ReminderConcurrency int `env:"REMINDER_CONCURRENCY" envDefault:"4" validate:"min=1,max=64"`
}

// Load reads .env.local and .env when present, then parses and validates
// the process environment. Values already set in the environment win.
func Load() (*Config, error) {
	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
	}

	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// IsLocal reports whether the process runs on a developer machine.
func (c *Config) IsLocal() bool { return c.Env == "local" }

func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
