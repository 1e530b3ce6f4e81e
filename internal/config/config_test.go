package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults keep mail credentials out of source", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		t.Setenv("MAIL_USERNAME", "")
		t.Setenv("MAIL_PASSWORD", "")
		t.Setenv("MAIL_FROM", "")
		t.Setenv("MAIL_TO", "")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "smtp.gmail.com", cfg.Mail.Host)
		assert.Equal(t, 587, cfg.Mail.Port)
		assert.Empty(t, cfg.Mail.Username)
		assert.Empty(t, cfg.Mail.Password)
		assert.Equal(t, "600", cfg.Report.FrameWidth)
		assert.Equal(t, "373.5", cfg.Report.FrameHeight)
		assert.Equal(t, 500, cfg.Report.ContainerHeight)
		assert.Equal(t, 2*time.Second, cfg.Notice.DisplayDuration())
		assert.False(t, cfg.Session.ClearUsernameOnLogout)
		assert.NotEmpty(t, cfg.Session.Secret)
	})

	t.Run("missing secret in development is random per load", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		t.Setenv("SESSION_SECRET", "")

		first, err := Load()
		require.NoError(t, err)
		second, err := Load()
		require.NoError(t, err)

		assert.True(t, first.Session.SecretGenerated)
		assert.NotEqual(t, "dev-session-secret", first.Session.Secret)
		assert.NotEqual(t, first.Session.Secret, second.Session.Secret)
	})

	t.Run("configured secret is used verbatim", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		t.Setenv("SESSION_SECRET", "from-env")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Session.Secret)
		assert.False(t, cfg.Session.SecretGenerated)
	})

	t.Run("sender falls back to the smtp user", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		t.Setenv("MAIL_USERNAME", "bot@example.com")
		t.Setenv("MAIL_FROM", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "bot@example.com", cfg.Mail.From)
	})

	t.Run("production requires a session secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("SESSION_SECRET", "")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("invalid redis db", func(t *testing.T) {
		t.Setenv("REDIS_DB", "abc")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("logout username retention is configurable", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		t.Setenv("SESSION_CLEAR_USERNAME_ON_LOGOUT", "true")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.Session.ClearUsernameOnLogout)
	})
}

func TestDurations(t *testing.T) {
	assert.Equal(t, time.Duration(0), AppConfig{}.RequestTimeout())
	assert.Equal(t, 5*time.Second, AppConfig{RequestTimeoutSeconds: 5}.RequestTimeout())
	assert.Equal(t, 2*time.Hour, SessionConfig{}.TTL())
	assert.Equal(t, 30*time.Second, MailConfig{}.Timeout())
	assert.Equal(t, "127.0.0.1:9000", AppConfig{Host: "127.0.0.1", Port: "9000"}.Addr())
}
