// Package guidex_db contains the PostgreSQL data access layer for the
// GuidelineX catalog, one file per query concern.
package guidex_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBPool is the subset of pgxpool.Pool the repository needs. pgxmock's pool
// interface satisfies it as well, which keeps the drivers testable without a
// live database.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type GuidexDBRepository struct {
	pool DBPool
}

func NewGuidexDBRepository(pool DBPool) *GuidexDBRepository {
	return &GuidexDBRepository{pool: pool}
}

// NewGuidexDBRepositoryWithPool returns a repository backed by a pgx pool, or
// nil when no pool is available so gateways can report the missing connection.
func NewGuidexDBRepositoryWithPool(pool *pgxpool.Pool) *GuidexDBRepository {
	if pool == nil {
		return nil
	}
	return &GuidexDBRepository{pool: pool}
}
