package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

var knownWeakSecrets = []string{
	"change-me", "dev-secret-change-me", "secret", "admin", "password",
}

type Config struct {
	Port                  int    `env:"PORT" envDefault:"8080"`
	AppEnv                string `env:"APP_ENV" envDefault:"development"`
	DatabaseURL           string `env:"DATABASE_URL,required"`
	RedisURL              string `env:"REDIS_URL"`
	SessionSecret         string `env:"SESSION_SECRET" envDefault:"dev-secret-change-me"`
	StaticDir             string `env:"STATIC_DIR" envDefault:"static"`
	AutoMigrate           bool   `env:"AUTO_MIGRATE" envDefault:"true"`
	LoginRateLimitPerMin  int    `env:"LOGIN_RATE_LIMIT_PER_MIN" envDefault:"5"`
	SubmitRateLimitPerMin int    `env:"SUBMIT_RATE_LIMIT_PER_MIN" envDefault:"10"`
	LogLevel              string `env:"LOG_LEVEL" envDefault:"info"`
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsProduction controls Secure cookies, HSTS and secret validation.
func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

func (c *Config) Validate() error {
	if c.AppEnv != EnvDevelopment && c.AppEnv != EnvProduction {
		return fmt.Errorf("APP_ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.AppEnv)
	}
	if c.LoginRateLimitPerMin <= 0 {
		return fmt.Errorf("LOGIN_RATE_LIMIT_PER_MIN must be positive")
	}
	if c.SubmitRateLimitPerMin <= 0 {
		return fmt.Errorf("SUBMIT_RATE_LIMIT_PER_MIN must be positive")
	}

	if c.IsProduction() {
		if err := validateSecret("SESSION_SECRET", c.SessionSecret); err != nil {
			return err
		}
		if c.RedisURL == "" {
			log.Warn().Msg("REDIS_URL is empty in production: rate limits are per-process only")
		}
	}

	return nil
}

func validateSecret(name, value string) error {
	for _, weak := range knownWeakSecrets {
		if value == weak {
			return fmt.Errorf("%s is a known weak default; set a strong secret in production", name)
		}
	}
	if len(value) < 32 {
		return fmt.Errorf("%s must be at least 32 characters in production (generate with: openssl rand -base64 32)", name)
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
