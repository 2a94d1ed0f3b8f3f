package guidex_db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDatabaseConfigFromEnv_Defaults(t *testing.T) {
	cfg := NewDatabaseConfigFromEnv()

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, "5432", cfg.Port)
	assert.Equal(t, "guidelinex", cfg.DBName)
	assert.Equal(t, 20, cfg.MaxConns)
	assert.Equal(t, 5, cfg.MinConns)
}

func TestNewDatabaseConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "15432")
	t.Setenv("DB_MAX_CONNS", "40")

	cfg := NewDatabaseConfigFromEnv()

	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, "15432", cfg.Port)
	assert.Equal(t, 40, cfg.MaxConns)
}

func TestBuildConnectionString(t *testing.T) {
	cfg := &DatabaseConfig{
		Host:        "db.internal",
		Port:        "5432",
		User:        "svc",
		Password:    "secret",
		DBName:      "guidelinex",
		MaxConns:    20,
		MinConns:    5,
		MaxConnLife: "30m",
	}

	conn := cfg.BuildConnectionString()
	assert.Contains(t, conn, "host=db.internal")
	assert.Contains(t, conn, "dbname=guidelinex")
	assert.Contains(t, conn, "pool_max_conns=20")
	assert.Contains(t, conn, "pool_min_conns=5")
	assert.Contains(t, conn, "pool_max_conn_lifetime=30m")
	assert.Contains(t, conn, "sslmode=disable")
}
