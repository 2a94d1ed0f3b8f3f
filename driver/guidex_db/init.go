package guidex_db

import (
	"context"

	"guidelinex/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InitDBConnectionPool connects to PostgreSQL using configuration from the
// environment and verifies the connection with a ping.
func InitDBConnectionPool(ctx context.Context) (*pgxpool.Pool, error) {
	cfg := NewDatabaseConfigFromEnv()

	pool, err := pgxpool.New(ctx, cfg.BuildConnectionString())
	if err != nil {
		logger.Logger.Error("Failed to create database pool", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Logger.Error("Failed to ping database", "error", err)
		pool.Close()
		return nil, err
	}

	logger.Logger.Info("Connected to database", "database", cfg.DBName, "host", cfg.Host)

	return pool, nil
}
