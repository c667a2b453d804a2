package main

import (
	"context"

	"courtside/internal/infra/db"
	"courtside/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kelseyhightower/envconfig"
)

type dbPool = *pgxpool.Pool

// withPool needs only the DB_* settings, so migrations run before the rest is configured.
func withPool(parent context.Context, fn func(ctx context.Context, pool dbPool) error) error {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	var cfg config.DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return err
	}
	pool, cleanup, err := db.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	return fn(ctx, pool)
}
