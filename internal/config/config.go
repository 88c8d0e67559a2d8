// Package config loads server configuration from environment variables
// (STOICH_* prefix) and an optional YAML file, validating the result before
// any listener starts.
package config

// Config holds all server-facing configuration. CLI flags override these
// values where a corresponding flag exists.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	History HistoryConfig `mapstructure:"history"`
}

// ServerConfig contains HTTP/SSE listener settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// HistoryConfig controls recording of balanced equations.
type HistoryConfig struct {
	// RedisURL enables the Redis-backed store when non-empty
	// (e.g. "redis://localhost:6379/0"). Empty selects the in-memory store.
	RedisURL string `mapstructure:"redis_url" validate:"omitempty,uri"`

	// Size caps the number of retained entries.
	Size int `mapstructure:"size" validate:"gte=0"`
}
