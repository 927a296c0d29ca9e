package config

import (
	"errors"
	"os"
	"time"

	"github.com/tunecraft/auth-service/internal/infrastructure"
)

// Config gathers everything the service reads from the environment in one
// place; nothing else in the codebase touches os.Getenv.
type Config struct {
	Port       string
	PostgreSQL string
	RedisURL   string

	JWTSecret       string
	SessionTokenTTL time.Duration
	ResetTokenTTL   time.Duration

	AppBaseURL   string
	MailProvider string
	MailAPIKey   string
	MailSender   string

	// ResetRequestLimit / ResetRequestWindow throttle reset emails per address.
	ResetRequestLimit  int
	ResetRequestWindow time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:       infrastructure.GetEnvAsString("PORT", "8081"),
		PostgreSQL: os.Getenv("PostgreSQL"),
		RedisURL:   os.Getenv("REDIS_URL"),

		JWTSecret:       os.Getenv("JWT_SECRET"),
		SessionTokenTTL: infrastructure.GetEnvAsDuration("SESSION_TOKEN_TTL", 3*time.Hour),
		ResetTokenTTL:   infrastructure.GetEnvAsDuration("RESET_TOKEN_TTL", time.Hour),

		AppBaseURL:   infrastructure.GetEnvAsString("APP_BASE_URL", "http://localhost:8081"),
		MailProvider: infrastructure.GetEnvAsString("MAIL_PROVIDER", "resend"),
		MailAPIKey:   os.Getenv("EMAIL_API_KEY"),
		MailSender:   os.Getenv("EMAIL_SENDER"),

		ResetRequestLimit:  infrastructure.GetEnvAsInt("RESET_REQUEST_LIMIT", 3),
		ResetRequestWindow: infrastructure.GetEnvAsDuration("RESET_REQUEST_WINDOW", 15*time.Minute),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}
	if cfg.PostgreSQL == "" {
		return nil, errors.New("PostgreSQL connection string must be set")
	}

	return cfg, nil
}
