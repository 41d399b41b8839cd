// Package config loads and validates application configuration.
package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains token-signing settings. The signing key lives here so
// it is an explicitly constructed value injected at process start, not hidden
// package state.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes is the validity window of issued tokens.
	// The default of 14400 minutes is the contractual 10 days.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}
