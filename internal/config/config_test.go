package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PostgreSQL", "host=localhost user=test dbname=test")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, 3*time.Hour, cfg.SessionTokenTTL)
	assert.Equal(t, time.Hour, cfg.ResetTokenTTL)
	assert.Equal(t, "resend", cfg.MailProvider)
	assert.Equal(t, 3, cfg.ResetRequestLimit)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9000")
	t.Setenv("SESSION_TOKEN_TTL", "1h30m")
	t.Setenv("RESET_TOKEN_TTL", "20m")
	t.Setenv("MAIL_PROVIDER", "sendgrid")
	t.Setenv("RESET_REQUEST_LIMIT", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 90*time.Minute, cfg.SessionTokenTTL)
	assert.Equal(t, 20*time.Minute, cfg.ResetTokenTTL)
	assert.Equal(t, "sendgrid", cfg.MailProvider)
	assert.Equal(t, 10, cfg.ResetRequestLimit)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("PostgreSQL", "host=localhost")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MissingDatabase(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PostgreSQL", "")

	_, err := Load()
	assert.Error(t, err)
}
