package statisticsqueue

import (
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// SeasonRecalculationJob recomputes one season's statistics when it runs.
type SeasonRecalculationJob struct {
	SeasonID sharedtypes.SeasonID `json:"season_id"`
}

// Kind returns the job type identifier for River.
func (SeasonRecalculationJob) Kind() string { return "season_recalculation" }

// RecalculationSweepJob fans out a recalculation across every active season.
// It is enqueued periodically rather than on demand.
type RecalculationSweepJob struct{}

// Kind returns the job type identifier for River.
func (RecalculationSweepJob) Kind() string { return "recalculation_sweep" }
