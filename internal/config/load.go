package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment variables read by Load, e.g.
// BOOKSHELF_SERVER_PORT or BOOKSHELF_AUTH_JWT_SECRET.
const envPrefix = "BOOKSHELF"

// defaultTokenLifetimeMinutes is 10 days, the fixed validity window of
// issued login tokens.
const defaultTokenLifetimeMinutes = 14400

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take precedence
// over file values. Returns a validated Config or an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("auth.token_lifetime_minutes", defaultTokenLifetimeMinutes)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars can carry everything.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv does not make viper aware of keys it has never seen, so
	// bind the ones without defaults explicitly.
	for _, key := range []string{"database.url", "auth.jwt_secret"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
