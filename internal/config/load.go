package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrInsecureJWTSecret is returned when the configured JWT secret is the
// shipped development default outside the development environment. This is
// a fatal boot-time condition, never a runtime path.
var ErrInsecureJWTSecret = errors.New("jwt secret is the development default and must be changed")

// Load reads configuration from environment variables and, when present, a
// config.yaml in the working directory. Environment variables take
// precedence and use the PROCRASTINANT_ prefix with underscores for
// nesting, e.g. PROCRASTINANT_AUTH_JWT_SECRET.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", "http://localhost:5173")
	// An explicit empty default so AutomaticEnv can bind the key; validation
	// rejects the empty value when the variable is missing.
	v.SetDefault("database.url", "")
	v.SetDefault("auth.jwt_secret", DefaultJWTSecret)
	v.SetDefault("auth.token_lifetime_minutes", 7*24*60)
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auth.hash_workers", 4)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; environment variables carry everything.
	}

	v.SetEnvPrefix("PROCRASTINANT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if !cfg.Server.IsDevelopment() && cfg.Auth.JWTSecret == DefaultJWTSecret {
		return nil, ErrInsecureJWTSecret
	}

	return &cfg, nil
}
