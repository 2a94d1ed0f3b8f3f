package guidex_db

import (
	"fmt"
	"os"
	"strconv"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string

	MaxConns    int
	MinConns    int
	MaxConnLife string
}

func NewDatabaseConfigFromEnv() *DatabaseConfig {
	return &DatabaseConfig{
		Host:        getEnvOrDefault("DB_HOST", "localhost"),
		Port:        getEnvOrDefault("DB_PORT", "5432"),
		User:        getEnvOrDefault("DB_USER", "devuser"),
		Password:    getEnvOrDefault("DB_PASSWORD", "devpassword"),
		DBName:      getEnvOrDefault("DB_NAME", "guidelinex"),
		MaxConns:    getEnvIntOrDefault("DB_MAX_CONNS", 20),
		MinConns:    getEnvIntOrDefault("DB_MIN_CONNS", 5),
		MaxConnLife: getEnvOrDefault("DB_MAX_CONN_LIFE", "30m"),
	}
}

func (dc *DatabaseConfig) BuildConnectionString() string {
	connectTimeout := getEnvIntOrDefault("DB_CONNECT_TIMEOUT_SECONDS", 30)
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable search_path=public connect_timeout=%d pool_max_conns=%d pool_min_conns=%d pool_max_conn_lifetime=%s",
		dc.Host, dc.Port, dc.User, dc.Password, dc.DBName, connectTimeout, dc.MaxConns, dc.MinConns, dc.MaxConnLife,
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
