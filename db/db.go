package db

import (
	"context"
	"fmt"

	"roll-point/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pgx pool for the configured database. The pool is passed
// explicitly to the services that need it; there is no package-level handle.
func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
	)
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Database, err)
	}
	return pool, nil
}
