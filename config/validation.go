package config

import "fmt"

func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateRateLimitConfig(&config.RateLimit); err != nil {
		return fmt.Errorf("rate limit config validation failed: %w", err)
	}

	if err := validateSearchConfig(&config.Search); err != nil {
		return fmt.Errorf("search config validation failed: %w", err)
	}

	if err := validateCacheConfig(&config.Cache); err != nil {
		return fmt.Errorf("cache config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(c *ServerConfig) error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("read timeout must be positive")
	}
	if c.WriteTimeout <= 0 {
		return fmt.Errorf("write timeout must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}
	return nil
}

func validateDatabaseConfig(c *DatabaseConfig) error {
	if c.MaxConnections <= 0 {
		return fmt.Errorf("max connections must be positive, got %d", c.MaxConnections)
	}
	if c.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive")
	}
	return nil
}

func validateRateLimitConfig(c *RateLimitConfig) error {
	if c.Threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %d", c.Threshold)
	}
	if c.ResetWindow <= 0 {
		return fmt.Errorf("reset window must be positive")
	}
	return nil
}

func validateSearchConfig(c *SearchConfig) error {
	if c.DefaultPageSize <= 0 {
		return fmt.Errorf("default page size must be positive, got %d", c.DefaultPageSize)
	}
	if c.MaxPageSize <= 0 {
		return fmt.Errorf("max page size must be positive, got %d", c.MaxPageSize)
	}
	if c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("default page size %d exceeds max page size %d", c.DefaultPageSize, c.MaxPageSize)
	}
	return nil
}

func validateCacheConfig(c *CacheConfig) error {
	if c.CapabilitiesTTL <= 0 {
		return fmt.Errorf("capabilities TTL must be positive")
	}
	return nil
}

func validateLoggingConfig(c *LoggingConfig) error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Level)
	}
	switch c.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", c.Format)
	}
	return nil
}
