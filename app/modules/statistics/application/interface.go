package statisticsservice

import (
	"context"

	statisticsevents "github.com/gridline-club/podium-bot/app/modules/statistics/domain/events"
	"github.com/gridline-club/podium-bot/app/shared/results"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// StartRecalculationResult is the outcome of kicking off a season recompute.
type StartRecalculationResult = results.OperationResult[statisticsevents.SeasonRecalculationStartedPayloadV1, statisticsevents.SeasonRecalculationFailedPayloadV1]

// JobStatusResult is the outcome of polling a recalculation job.
type JobStatusResult = results.OperationResult[statisticsevents.JobStatusPayloadV1, statisticsevents.JobStatusNotFoundPayloadV1]

// Service defines the statistics module's operations.
type Service interface {
	// StartSeasonRecalculation creates a running job record and launches the
	// season-wide recompute in the background. The returned payload carries
	// the job ID to poll; the job record is the source of truth for progress
	// and outcome.
	StartSeasonRecalculation(ctx context.Context, seasonID sharedtypes.SeasonID) (StartRecalculationResult, error)

	// GetJobStatus returns the current state of a recalculation job.
	GetJobStatus(ctx context.Context, jobID sharedtypes.JobID) (JobStatusResult, error)

	// ExportSeasonStatistics renders the season's statistics table as an
	// xlsx workbook.
	ExportSeasonStatistics(ctx context.Context, seasonID sharedtypes.SeasonID) ([]byte, error)

	// RenderStandingsChart renders a PNG bar chart of the season's top
	// users by points.
	RenderStandingsChart(ctx context.Context, seasonID sharedtypes.SeasonID, limit int) ([]byte, error)
}

var _ Service = (*StatisticsService)(nil)
