package statisticsqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	leaguedb "github.com/gridline-club/podium-bot/app/modules/league/infrastructure/repositories"
	statisticsservice "github.com/gridline-club/podium-bot/app/modules/statistics/application"
	"github.com/gridline-club/podium-bot/app/shared/attr"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

const statisticsQueueName = "statistics"

// QueueService schedules season recalculations through River.
type QueueService interface {
	// ScheduleSeasonRecalculation enqueues a one-off recalculation for a
	// season, deduplicated on the season ID.
	ScheduleSeasonRecalculation(ctx context.Context, seasonID sharedtypes.SeasonID, runAt time.Time) error
	// Start starts the queue service and its periodic sweep.
	Start(ctx context.Context) error
	// Stop stops the queue service.
	Stop(ctx context.Context) error
}

var _ QueueService = (*Service)(nil)

// Service handles recalculation scheduling using River.
type Service struct {
	client *river.Client[pgx.Tx]
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewService creates a River-based queue service. River needs its own pgx
// pool; the rest of the application talks to Postgres through bun.
func NewService(
	ctx context.Context,
	dsn string,
	sweepInterval time.Duration,
	logger *slog.Logger,
	service statisticsservice.Service,
	seasons leaguedb.SeasonRepository,
) (*Service, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewSeasonRecalculationWorker(logger, service))
	river.AddWorker(workers, NewRecalculationSweepWorker(logger, seasons))

	// A zero interval disables the periodic sweep; one-off scheduling
	// still works.
	var periodicJobs []*river.PeriodicJob
	if sweepInterval > 0 {
		periodicJobs = append(periodicJobs, river.NewPeriodicJob(
			river.PeriodicInterval(sweepInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return RecalculationSweepJob{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: false},
		))
	}

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 10},
			// Recalculations are heavy; one at a time is enough.
			statisticsQueueName: {MaxWorkers: 1},
		},
		Workers:      workers,
		PeriodicJobs: periodicJobs,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create River client: %w", err)
	}

	logger.InfoContext(ctx, "Statistics queue service initialized",
		attr.String("sweep_interval", sweepInterval.String()),
	)

	return &Service{
		client: riverClient,
		pool:   pool,
		logger: logger,
	}, nil
}

// ScheduleSeasonRecalculation enqueues a one-off recalculation for a season.
func (s *Service) ScheduleSeasonRecalculation(ctx context.Context, seasonID sharedtypes.SeasonID, runAt time.Time) error {
	_, err := s.client.Insert(ctx, SeasonRecalculationJob{SeasonID: seasonID}, &river.InsertOpts{
		Queue:       statisticsQueueName,
		ScheduledAt: runAt,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to schedule season recalculation: %w", err)
	}

	s.logger.InfoContext(ctx, "Season recalculation scheduled",
		attr.SeasonID("season_id", seasonID),
	)
	return nil
}

// Start starts the River client.
func (s *Service) Start(ctx context.Context) error {
	if err := s.client.Start(ctx); err != nil {
		return fmt.Errorf("failed to start River client: %w", err)
	}
	s.logger.InfoContext(ctx, "Statistics queue service started")
	return nil
}

// Stop stops the River client and releases its pool.
func (s *Service) Stop(ctx context.Context) error {
	if err := s.client.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop River client: %w", err)
	}
	s.pool.Close()
	s.logger.InfoContext(ctx, "Statistics queue service stopped")
	return nil
}
