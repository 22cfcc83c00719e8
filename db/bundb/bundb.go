// Package bundb wires every module's repositories onto one bun connection.
package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	leaguedb "github.com/gridline-club/podium-bot/app/modules/league/infrastructure/repositories"
	predictiondb "github.com/gridline-club/podium-bot/app/modules/prediction/infrastructure/repositories"
	statisticsdb "github.com/gridline-club/podium-bot/app/modules/statistics/infrastructure/repositories"
	"github.com/gridline-club/podium-bot/config"
)

// DBService holds the repositories for every module.
type DBService struct {
	SeasonDB     *leaguedb.SeasonDBImpl
	EventDB      *leaguedb.EventDBImpl
	UserDB       *leaguedb.UserDBImpl
	PredictionDB *predictiondb.PredictionDBImpl
	RulesDB      *predictiondb.RulesDBImpl
	StatisticsDB *statisticsdb.StatisticsDBImpl
	JobDB        *statisticsdb.JobDBImpl
	db           *bun.DB
}

// GetDB returns the underlying database connection pool.
func (dbService *DBService) GetDB() *bun.DB {
	return dbService.db
}

// NewBunDBService initializes a new DBService with the provided Postgres
// configuration.
func NewBunDBService(ctx context.Context, cfg config.PostgresConfig) (*DBService, error) {
	sqldb, err := pgConn(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	db.RegisterModel(
		&leaguedb.Season{},
		&leaguedb.Event{},
		&leaguedb.EventResult{},
		&leaguedb.User{},
		&predictiondb.Prediction{},
		&predictiondb.ScoringRules{},
		&statisticsdb.UserStatistics{},
		&statisticsdb.RecalculationJob{},
	)

	return &DBService{
		SeasonDB:     &leaguedb.SeasonDBImpl{DB: db},
		EventDB:      &leaguedb.EventDBImpl{DB: db},
		UserDB:       &leaguedb.UserDBImpl{DB: db},
		PredictionDB: &predictiondb.PredictionDBImpl{DB: db},
		RulesDB:      &predictiondb.RulesDBImpl{DB: db},
		StatisticsDB: &statisticsdb.StatisticsDBImpl{DB: db},
		JobDB:        &statisticsdb.JobDBImpl{DB: db},
		db:           db,
	}, nil
}

func pgConn(ctx context.Context, dsn string) (*sql.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))

	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return sqldb, nil
}
