package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds the authentication module configuration
type Config struct {
	// MongoDB settings
	MongoDBURI   string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	DatabaseName string `env:"DATABASE_NAME" envDefault:"wedding_clickz"`

	// External identity provider
	IdentityProviderURL string        `env:"IDENTITY_PROVIDER_URL" envDefault:"https://demobackend.emergentagent.com/auth/v1/env/oauth/session-data"`
	IdentityTimeout     time.Duration `env:"IDENTITY_TIMEOUT" envDefault:"10s"`

	// Session settings
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"168h"`

	// Rate limiting for the session exchange endpoint
	LoginRateLimit  int           `env:"LOGIN_RATE_LIMIT" envDefault:"10"`
	LoginRateWindow time.Duration `env:"LOGIN_RATE_WINDOW" envDefault:"1m"`
}

// LoadConfig loads authentication configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse auth config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.MongoDBURI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	if c.DatabaseName == "" {
		return fmt.Errorf("DATABASE_NAME is required")
	}
	if c.IdentityProviderURL == "" {
		return fmt.Errorf("IDENTITY_PROVIDER_URL is required")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	return nil
}
