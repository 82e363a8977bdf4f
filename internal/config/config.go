package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all client configuration
type Config struct {
	Env     string `envconfig:"APP_ENV" default:"development"`
	API     APIConfig
	Session SessionConfig
}

// remote platform API configuration
type APIConfig struct {
	BaseURL   string        `envconfig:"HIREON_API_BASE_URL" default:"https://api.hireon.app/api/v1"`
	Timeout   time.Duration `envconfig:"HIREON_API_TIMEOUT" default:"15s"`
	UserAgent string        `envconfig:"HIREON_USER_AGENT" default:"hireon-cli"`
}

// local session storage configuration
type SessionConfig struct {
	Path string `envconfig:"HIREON_SESSION_PATH" default:""`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.Session.Path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.Session.Path = filepath.Join(home, ".hireon", "session.db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid HIREON_API_BASE_URL: %q", c.API.BaseURL)
	}
	if c.API.Timeout < time.Second {
		return fmt.Errorf("HIREON_API_TIMEOUT must be at least 1s (got %s)", c.API.Timeout)
	}
	if c.Session.Path == "" {
		return fmt.Errorf("HIREON_SESSION_PATH must not be empty")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, API.BaseURL=%s, API.Timeout=%s, Session.Path=%s}",
		c.Env, c.API.BaseURL, c.API.Timeout, c.Session.Path)
}
