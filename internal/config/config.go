package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"

	"github.com/Zachkp/portfolio/internal/feed"
)

// Config holds all application configuration, read from the environment
// (and a .env file when present).
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	GitHub GitHub
	Feed   Feed
	SMTP   SMTP
}

// GitHub configures the repository listing request.
type GitHub struct {
	Owner   string        `env:"GITHUB_OWNER" envDefault:"samyog7901"`
	BaseURL string        `env:"GITHUB_API_URL" envDefault:"https://api.github.com"`
	Token   string        `env:"GITHUB_TOKEN"`
	PerPage int           `env:"GITHUB_PER_PAGE" envDefault:"10"`
	Timeout time.Duration `env:"GITHUB_TIMEOUT" envDefault:"10s"`
}

// Feed configures classification and presentation of the projects grid.
type Feed struct {
	PageSize     int           `env:"FEED_PAGE_SIZE" envDefault:"6"`
	Filter       feed.Policy   `env:"FEED_FILTER" envDefault:"all"`
	Hosts        []string      `env:"FEED_HOSTS" envDefault:"vercel.app,netlify.app,github.io,pages.dev" envSeparator:","`
	StatusBadges bool          `env:"FEED_STATUS_BADGES" envDefault:"false"`
	MountTTL     time.Duration `env:"FEED_MOUNT_TTL" envDefault:"30m"`
	DSN          string        `env:"FEED_DSN" envDefault:":memory:"`
}

// SMTP configures contact form delivery.
type SMTP struct {
	Host    string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port    string `env:"SMTP_PORT" envDefault:"587"`
	User    string `env:"SMTP_USER"`
	Pass    string `env:"SMTP_PASS"`
	ToEmail string `env:"TO_EMAIL" envDefault:"samyog@example.com"`
}

// Load parses the process environment.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the server cannot run with.
func (c *Config) Validate() error {
	if c.GitHub.Owner == "" {
		return fmt.Errorf("GITHUB_OWNER must not be empty")
	}
	if c.GitHub.PerPage < 1 || c.GitHub.PerPage > 100 {
		return fmt.Errorf("GITHUB_PER_PAGE must be between 1 and 100, got %d", c.GitHub.PerPage)
	}
	if c.Feed.PageSize < 1 {
		return fmt.Errorf("FEED_PAGE_SIZE must be positive, got %d", c.Feed.PageSize)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// SMTPConfigured reports whether contact mail can be sent.
func (c *Config) SMTPConfigured() bool {
	return c.SMTP.User != "" && c.SMTP.Pass != ""
}
