package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ParsePoolConfig parses databaseURL and, when enumType is not empty, hooks
// RegisterEnum into every new connection.
func ParsePoolConfig(databaseURL, enumType string) (*pgxpool.Config, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}

	if enumType != "" {
		config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
			return RegisterEnum(ctx, conn, enumType)
		}
	}
	return config, nil
}

// NewPool creates a PostgreSQL connection pool whose connections know the
// currency enum type, and pings it once.
func NewPool(ctx context.Context, databaseURL, enumType string) (*pgxpool.Pool, error) {
	config, err := ParsePoolConfig(databaseURL, enumType)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}
