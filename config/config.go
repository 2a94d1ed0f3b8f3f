// Package config loads and validates the GuidelineX backend configuration
// from environment variables with struct-tag defaults.
package config

import (
	"time"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Search    SearchConfig    `json:"search"`
	Cache     CacheConfig     `json:"cache"`
	Logging   LoggingConfig   `json:"logging"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout    time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DatabaseConfig struct {
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

// RateLimitConfig controls the fixed-window gate on /search traffic. All
// client counters reset together every window; this is deliberately not a
// per-client sliding window.
type RateLimitConfig struct {
	Threshold   int           `json:"threshold" env:"RATE_LIMIT_THRESHOLD" default:"50"`
	ResetWindow time.Duration `json:"reset_window" env:"RATE_LIMIT_RESET_WINDOW" default:"1m"`
}

type SearchConfig struct {
	DefaultPageSize int `json:"default_page_size" env:"SEARCH_DEFAULT_PAGE_SIZE" default:"20"`
	MaxPageSize     int `json:"max_page_size" env:"SEARCH_MAX_PAGE_SIZE" default:"50"`
}

type CacheConfig struct {
	CapabilitiesTTL time.Duration `json:"capabilities_ttl" env:"CACHE_CAPABILITIES_TTL" default:"24h"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

// NewConfig creates a new configuration by loading from environment variables
// with fallback to default values.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}
