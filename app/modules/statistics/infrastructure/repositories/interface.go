package statisticsdb

import (
	"context"

	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// Repository is the user statistics store.
type Repository interface {
	Upsert(ctx context.Context, stats *UserStatistics) error
	ListBySeason(ctx context.Context, seasonID sharedtypes.SeasonID) ([]UserStatistics, error)
}

// JobRepository is the recalculation job store. Get returns nil when the
// job is unknown.
type JobRepository interface {
	Save(ctx context.Context, job *RecalculationJob) error
	Update(ctx context.Context, job *RecalculationJob) error
	Get(ctx context.Context, jobID sharedtypes.JobID) (*RecalculationJob, error)
}
