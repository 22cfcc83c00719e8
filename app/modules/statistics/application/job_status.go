package statisticsservice

import (
	"context"

	statisticsevents "github.com/gridline-club/podium-bot/app/modules/statistics/domain/events"
	"github.com/gridline-club/podium-bot/app/shared/attr"
	"github.com/gridline-club/podium-bot/app/shared/results"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// GetJobStatus returns the current state of a recalculation job. An unknown
// job ID is a failure result, not an error.
func (s *StatisticsService) GetJobStatus(
	ctx context.Context,
	jobID sharedtypes.JobID,
) (JobStatusResult, error) {
	return withTelemetry(s, ctx, "GetJobStatus", func(ctx context.Context) (JobStatusResult, error) {
		job, err := s.jobRepo.Get(ctx, jobID)
		if err != nil {
			return JobStatusResult{}, err
		}
		if job == nil {
			s.logger.InfoContext(ctx, "Job status requested for unknown job",
				attr.ExtractCorrelationID(ctx),
				attr.JobID("job_id", jobID),
			)
			return results.Fail[statisticsevents.JobStatusPayloadV1](statisticsevents.JobStatusNotFoundPayloadV1{
				JobID: jobID,
			}), nil
		}

		return results.OK[statisticsevents.JobStatusPayloadV1, statisticsevents.JobStatusNotFoundPayloadV1](statisticsevents.JobStatusPayloadV1{
			Job: job.Info(),
		}), nil
	})
}
