// Package testutils sets up real Postgres-backed fixtures for integration
// tests: schema migrations, cleanup, and fake data generation.
package testutils

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	leaguemigrations "github.com/gridline-club/podium-bot/app/modules/league/infrastructure/repositories/migrations"
	predictionmigrations "github.com/gridline-club/podium-bot/app/modules/prediction/infrastructure/repositories/migrations"
	statisticsmigrations "github.com/gridline-club/podium-bot/app/modules/statistics/infrastructure/repositories/migrations"
)

// NewBunDB opens a bun connection to the given test database.
func NewBunDB(ctx context.Context, dsn string) (*bun.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping test database: %w", err)
	}
	return bun.NewDB(sqldb, pgdialect.New()), nil
}

// RunMigrations applies every module's migrations plus the River schema.
// league goes first; prediction and statistics reference its tables.
func RunMigrations(ctx context.Context, db *bun.DB, dsn string) error {
	migrator := migrate.NewMigrator(db, leaguemigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize migration tables: %w", err)
	}

	if err := runRiverMigrations(ctx, dsn); err != nil {
		return fmt.Errorf("failed to run River migrations: %w", err)
	}

	orderedModules := []struct {
		name       string
		migrations *migrate.Migrations
	}{
		{"league", leaguemigrations.Migrations},
		{"prediction", predictionmigrations.Migrations},
		{"statistics", statisticsmigrations.Migrations},
	}
	for _, mod := range orderedModules {
		m := migrate.NewMigrator(db, mod.migrations)
		if _, err := m.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to run %s migrations: %w", mod.name, err)
		}
	}
	return nil
}

func runRiverMigrations(ctx context.Context, dsn string) error {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("failed to parse DSN for River migrations: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to create pgx pool for River migrations: %w", err)
	}
	defer pool.Close()

	migrator, err := rivermigrate.New(riverpgxv5.New(pool), nil)
	if err != nil {
		return fmt.Errorf("failed to create River migrator: %w", err)
	}

	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{}); err != nil {
		return fmt.Errorf("failed to run River migrations: %w", err)
	}
	return nil
}

var appTables = []string{
	"predictions", "scoring_rules",
	"user_statistics", "recalculation_jobs",
	"event_results", "events", "seasons", "users",
}

// CleanupDatabase truncates every application table for a clean test slate.
func CleanupDatabase(ctx context.Context, db *bun.DB) error {
	for _, table := range appTables {
		if _, err := db.ExecContext(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}
