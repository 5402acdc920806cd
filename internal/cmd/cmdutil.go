package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/bjarke-xyz/applications-api/internal/config"
	"github.com/bjarke-xyz/applications-api/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func newLogger(env string, service string) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	child := logger.With(slog.Group("service_info", slog.String("env", env), slog.String("service", service)))
	return child
}

// newDatabasePool migrates the schema and then opens the shared pool.
func newDatabasePool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	err := repository.Migrate("up", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	queryChar := "?"
	if strings.Contains(cfg.DatabaseURL, "?") {
		queryChar = "&"
	}
	url := fmt.Sprintf(
		"%s%vpool_max_conns=%d&pool_min_conns=%d",
		cfg.DatabaseURL,
		queryChar,
		cfg.DatabaseMaxConns,
		min(2, cfg.DatabaseMaxConns),
	)
	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}

	// Simple protocol keeps the pool usable behind pgbouncer
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolConfig.MaxConnLifetime = 1 * time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}
