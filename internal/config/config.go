package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the dashboard.
type Config struct {
	App     AppConfig
	Redis   RedisConfig
	Logger  LoggerConfig
	Session SessionConfig
	Mail    MailConfig
	Report  ReportConfig
	Notice  NoticeConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// RedisConfig holds Redis connection values. When disabled, sessions live in memory.
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// SessionConfig controls the browser session cookie and store.
type SessionConfig struct {
	Secret                string
	TTLMinutes            int
	CookieName            string
	CookieSecure          bool
	ClearUsernameOnLogout bool
	// SecretGenerated is set when no secret was configured and a per-process one was drawn.
	SecretGenerated       bool
}

// MailConfig holds the SMTP relay used for feedback delivery.
type MailConfig struct {
	Host           string
	Port           int
	Username       string
	Password       string
	From           string
	To             string
	TimeoutSeconds int
}

// ReportConfig points at the embedded BI report.
type ReportConfig struct {
	URL             string
	FrameWidth      string
	FrameHeight     string
	ContainerHeight int
}

// NoticeConfig controls how long transient notices stay on screen.
type NoticeConfig struct {
	DisplaySeconds int
}

const defaultReportURL = "https://app.powerbi.com/view?r=eyJrIjoiZTdhMDA1ZjYtNzUzNS00OTU4LTllNTAtZmEwN2Y1YWQ1Njk5IiwidCI6IjlkOTI5ODkyLTJlMGMtNGJhMS1iOWNjLTA0YmJlNjFlZjc1NSJ9"

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	mailUser := os.Getenv("MAIL_USERNAME")

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "air-quality-dashboard"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Session: SessionConfig{
			Secret:                os.Getenv("SESSION_SECRET"),
			TTLMinutes:            getEnvAsInt("SESSION_TTL_MINUTES", 120),
			CookieName:            getEnv("SESSION_COOKIE_NAME", "aq_session"),
			CookieSecure:          getEnvAsBool("SESSION_COOKIE_SECURE", false),
			ClearUsernameOnLogout: getEnvAsBool("SESSION_CLEAR_USERNAME_ON_LOGOUT", false),
		},
		Mail: MailConfig{
			Host:           getEnv("MAIL_HOST", "smtp.gmail.com"),
			Port:           getEnvAsInt("MAIL_PORT", 587),
			Username:       mailUser,
			Password:       os.Getenv("MAIL_PASSWORD"),
			From:           getEnv("MAIL_FROM", mailUser),
			To:             os.Getenv("MAIL_TO"),
			TimeoutSeconds: getEnvAsInt("MAIL_TIMEOUT_SECONDS", 30),
		},
		Report: ReportConfig{
			URL:             getEnv("REPORT_URL", defaultReportURL),
			FrameWidth:      "600",
			FrameHeight:     "373.5",
			ContainerHeight: 500,
		},
		Notice: NoticeConfig{
			DisplaySeconds: getEnvAsInt("NOTICE_DISPLAY_SECONDS", 2),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Session.Secret == "" {
		cfg.Session.Secret = uuid.NewString() + uuid.NewString()
		cfg.Session.SecretGenerated = true
	}

	return cfg, nil
}

// Validate rejects configurations that must not reach production.
func (c *Config) Validate() error {
	if c.Session.Secret == "" && !c.App.IsDevelopment() {
		return errors.New("SESSION_SECRET is required outside development")
	}
	if c.Mail.Port <= 0 {
		return fmt.Errorf("invalid MAIL_PORT: %d", c.Mail.Port)
	}
	return nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// IsDevelopment reports whether the service runs in a development environment.
func (a AppConfig) IsDevelopment() bool {
	switch strings.ToLower(a.Env) {
	case "development", "dev", "local", "test":
		return true
	}
	return false
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// TTL returns the idle lifetime of a stored session.
func (s SessionConfig) TTL() time.Duration {
	if s.TTLMinutes <= 0 {
		return 2 * time.Hour
	}
	return time.Duration(s.TTLMinutes) * time.Minute
}

// Timeout returns the SMTP dial and send timeout.
func (m MailConfig) Timeout() time.Duration {
	if m.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(m.TimeoutSeconds) * time.Second
}

// DisplayDuration returns how long a notice stays visible.
func (n NoticeConfig) DisplayDuration() time.Duration {
	if n.DisplaySeconds <= 0 {
		return 2 * time.Second
	}
	return time.Duration(n.DisplaySeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
