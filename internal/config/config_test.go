package config_test

import (
	"testing"

	"github.com/hireloop/hireloop/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults to the sendgrid provider", func(t *testing.T) {
		cfg := config.Load()

		assert.Equal(t, "sendgrid", cfg.EmailProvider)
	})

	t.Run("reads the SMTP relay from the environment", func(t *testing.T) {
		t.Setenv("EMAIL_PROVIDER", "smtp")
		t.Setenv("SMTP_HOST", "mail.example.com")
		t.Setenv("SMTP_PORT", "2525")
		t.Setenv("SMTP_USERNAME", "relay")
		t.Setenv("SMTP_PASSWORD", "secret")
		t.Setenv("SMTP_FROM", "no-reply@example.com")

		cfg := config.Load()

		assert.Equal(t, "smtp", cfg.EmailProvider)
		relay := cfg.SMTP["smtp"]
		assert.Equal(t, "mail.example.com", relay.Host)
		assert.Equal(t, 2525, relay.Port)
		assert.Equal(t, "relay", relay.Username)
		assert.Equal(t, "secret", relay.Password)
		assert.Equal(t, "no-reply@example.com", relay.From)
	})

	t.Run("falls back to the default SMTP port on garbage", func(t *testing.T) {
		t.Setenv("SMTP_HOST", "mail.example.com")
		t.Setenv("SMTP_PORT", "not-a-number")

		cfg := config.Load()

		assert.Equal(t, 587, cfg.SMTP["smtp"].Port)
	})
}
