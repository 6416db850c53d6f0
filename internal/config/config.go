package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
	validation "github.com/go-ozzo/ozzo-validation"
)

type Config struct {
	IsTestMode      bool          `env:"TEST_MODE"`
	APIURL          url.URL       `env:"SIGNUP_API_URL"`
	RequestTimeout  time.Duration `env:"SIGNUP_REQUEST_TIMEOUT" envDefault:"10s"`
	EntryRoute      string        `env:"SIGNUP_ENTRY_ROUTE" envDefault:"/"`
	NotificationTTL time.Duration `env:"SIGNUP_NOTIFICATION_TTL" envDefault:"5s"`
	LogFile         string        `env:"SIGNUP_LOG_FILE" envDefault:"stderr"`
	TraceFile       string        `env:"SIGNUP_TRACE_FILE"`

	DevPort           int           `env:"SIGNUP_DEV_PORT" envDefault:"8080"`
	DevAllowedOrigins []string      `env:"SIGNUP_DEV_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	DevEmailTTL       time.Duration `env:"SIGNUP_DEV_EMAIL_TTL" envDefault:"1h"`
	DevRateLimit      uint16        `env:"SIGNUP_DEV_RATE_LIMIT" envDefault:"10"`
	DevRedisURL       string        `env:"SIGNUP_DEV_REDIS_URL"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("could not parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.RequestTimeout, validation.Min(time.Millisecond)),
		validation.Field(&c.NotificationTTL, validation.Min(time.Millisecond)),
		validation.Field(&c.EntryRoute, validation.Required),
		validation.Field(&c.LogFile, validation.Required),
		validation.Field(&c.DevPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.DevRateLimit, validation.Required),
	)
}

// SetAPIURL overrides SIGNUP_API_URL.
func (c *Config) SetAPIURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid API URL: %w", err)
	}
	c.APIURL = *u
	return nil
}

// RequireAPIURL fails unless an absolute API URL has been configured.
func (c *Config) RequireAPIURL() error {
	if c.APIURL.Scheme == "" || c.APIURL.Host == "" {
		return fmt.Errorf("SIGNUP_API_URL must be set to an absolute URL, got %q", c.APIURL.String())
	}
	return nil
}
