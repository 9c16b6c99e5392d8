package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all website configuration.
type Config struct {
	Port        int    `env:"WEBSITE_PORT" envDefault:"4002"`
	Address     string `env:"WEBSITE_ADDRESS" envDefault:"0.0.0.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"local"`
	PublicURL   string `env:"WEBSITE_PUBLIC_URL" envDefault:"http://localhost:4002"`

	LeadAPI LeadAPIConfig
	Session SessionConfig
	Email   EmailConfig
	SMS     SMSConfig
	Otel    OtelConfig

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LeadAPIConfig points at the voice backend that places and schedules calls.
type LeadAPIConfig struct {
	BaseURL string        `env:"LEAD_API_BASE_URL" envDefault:"http://localhost:8000"`
	Timeout time.Duration `env:"LEAD_API_TIMEOUT" envDefault:"30s"`

	// Per client IP
	RatePerMinute int `env:"LEAD_RATE_PER_MINUTE" envDefault:"6"`
	RateBurst     int `env:"LEAD_RATE_BURST" envDefault:"3"`
}

// SessionConfig holds the cookie keys. Empty keys are replaced with random
// ones at startup, which invalidates sessions on every restart.
type SessionConfig struct {
	Secret       string `env:"SESSION_SECRET"`
	CSRFKey      string `env:"CSRF_KEY"`
	CookieSecure bool   `env:"COOKIE_SECURE" envDefault:"false"`
}

// EmailConfig configures the sales notification sent through Mailgun.
type EmailConfig struct {
	MailgunDomain string `env:"MAILGUN_DOMAIN"`
	MailgunAPIKey string `env:"MAILGUN_API_KEY"`
	FromEmail     string `env:"EMAIL_FROM_ADDRESS" envDefault:"no-reply@ai-rd1.com"`
	FromName      string `env:"EMAIL_FROM_NAME" envDefault:"AI-RD1 Website"`
	SalesEmail    string `env:"SALES_EMAIL"`
}

// IsConfigured returns true when a sales email can be sent.
func (e EmailConfig) IsConfigured() bool {
	return e.MailgunDomain != "" && e.MailgunAPIKey != "" && e.SalesEmail != ""
}

// SMSConfig configures demo confirmations sent through Twilio.
type SMSConfig struct {
	AccountSID string `env:"TWILIO_ACCOUNT_SID"`
	AuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	FromNumber string `env:"TWILIO_FROM_NUMBER"`
}

// IsConfigured returns true when SMS confirmations can be sent.
func (s SMSConfig) IsConfigured() bool {
	return s.AccountSID != "" && s.AuthToken != "" && s.FromNumber != ""
}

// ListenAddr returns the host:port the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}

// IsProduction reports whether the site runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// NewConfig parses the environment. main loads .env files before fx starts.
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	log.Debug("config loaded",
		slog.String("environment", cfg.Environment),
		slog.String("listen", cfg.ListenAddr()),
		slog.Bool("email", cfg.Email.IsConfigured()),
		slog.Bool("sms", cfg.SMS.IsConfigured()),
		slog.Bool("tracing", cfg.Otel.Enabled()),
	)
	return cfg, nil
}
