package statisticsqueue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"

	leaguedb "github.com/gridline-club/podium-bot/app/modules/league/infrastructure/repositories"
	statisticsservice "github.com/gridline-club/podium-bot/app/modules/statistics/application"
	"github.com/gridline-club/podium-bot/app/shared/attr"
)

// SeasonRecalculationWorker runs one season's recompute when its job fires.
type SeasonRecalculationWorker struct {
	river.WorkerDefaults[SeasonRecalculationJob]
	logger  *slog.Logger
	service statisticsservice.Service
}

// NewSeasonRecalculationWorker creates a new SeasonRecalculationWorker.
func NewSeasonRecalculationWorker(logger *slog.Logger, service statisticsservice.Service) *SeasonRecalculationWorker {
	return &SeasonRecalculationWorker{logger: logger, service: service}
}

// Work kicks off the season recompute. The recompute itself tracks its
// outcome on the job record; a start failure is retried by River.
func (w *SeasonRecalculationWorker) Work(ctx context.Context, job *river.Job[SeasonRecalculationJob]) error {
	result, err := w.service.StartSeasonRecalculation(ctx, job.Args.SeasonID)
	if err != nil {
		return fmt.Errorf("failed to start season recalculation: %w", err)
	}
	if result.IsFailure() {
		return fmt.Errorf("failed to start season recalculation for %s: %s",
			job.Args.SeasonID, result.Failure.Reason)
	}

	w.logger.InfoContext(ctx, "Scheduled season recalculation started",
		attr.SeasonID("season_id", job.Args.SeasonID),
		attr.JobID("job_id", result.Success.JobID),
	)
	return nil
}

// RecalculationSweepWorker enqueues a recalculation job for every active
// season. One sweep job per interval keeps the per-season jobs deduplicated
// through River's unique options.
type RecalculationSweepWorker struct {
	river.WorkerDefaults[RecalculationSweepJob]
	logger  *slog.Logger
	seasons leaguedb.SeasonRepository
}

// NewRecalculationSweepWorker creates a new RecalculationSweepWorker.
func NewRecalculationSweepWorker(logger *slog.Logger, seasons leaguedb.SeasonRepository) *RecalculationSweepWorker {
	return &RecalculationSweepWorker{logger: logger, seasons: seasons}
}

func (w *RecalculationSweepWorker) Work(ctx context.Context, job *river.Job[RecalculationSweepJob]) error {
	seasons, err := w.seasons.ListActiveSeasons(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active seasons: %w", err)
	}

	client := river.ClientFromContext[pgx.Tx](ctx)
	for _, season := range seasons {
		_, err := client.Insert(ctx, SeasonRecalculationJob{SeasonID: season.ID}, &river.InsertOpts{
			Queue: statisticsQueueName,
			UniqueOpts: river.UniqueOpts{
				ByArgs: true,
			},
		})
		if err != nil {
			return fmt.Errorf("failed to enqueue recalculation for season %s: %w", season.ID, err)
		}
	}

	w.logger.InfoContext(ctx, "Recalculation sweep enqueued",
		attr.Int("seasons", len(seasons)),
	)
	return nil
}
