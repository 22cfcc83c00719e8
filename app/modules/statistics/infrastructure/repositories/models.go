package statisticsdb

import (
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// UserStatistics is a user's fully recomputed season aggregate. Every
// recalculation run replaces the whole row; nothing is merged incrementally.
type UserStatistics struct {
	bun.BaseModel `bun:"table:user_statistics,alias:us"`

	SeasonID sharedtypes.SeasonID `bun:"season_id,pk"`
	UserID   sharedtypes.UserID   `bun:"user_id,pk"`
	Username string               `bun:"username,notnull"`

	TotalPoints int `bun:"total_points,notnull"`
	// BestResultsPoints is set only when the season configures a best-N
	// count; consumers fall back to TotalPoints when NULL.
	BestResultsPoints *int `bun:"best_results_points"`

	PredictionsCount int `bun:"predictions_count,notnull"`
	ExactMatches     int `bun:"exact_matches,notnull"`
	OneOffMatches    int `bun:"one_off_matches,notnull"`
	TwoOffMatches    int `bun:"two_off_matches,notnull"`

	LastUpdated time.Time `bun:"last_updated,notnull,default:current_timestamp"`
}

// RecalculationJob is one season-wide recompute attempt. Rows are never
// deleted; they transition pending → running → completed/failed.
type RecalculationJob struct {
	bun.BaseModel `bun:"table:recalculation_jobs,alias:rj"`

	ID             sharedtypes.JobID     `bun:"id,pk"`
	SeasonID       sharedtypes.SeasonID  `bun:"season_id,notnull"`
	Status         sharedtypes.JobStatus `bun:"status,notnull"`
	TotalUsers     int                   `bun:"total_users,notnull"`
	ProcessedUsers int                   `bun:"processed_users,notnull"`
	StartedAt      time.Time             `bun:"started_at,notnull"`
	CompletedAt    *time.Time            `bun:"completed_at"`
	ErrorMessage   *string               `bun:"error_message"`
}

// Info converts the row to the pollable shared view.
func (j *RecalculationJob) Info() sharedtypes.RecalculationJobInfo {
	return sharedtypes.RecalculationJobInfo{
		JobID:          j.ID,
		SeasonID:       j.SeasonID,
		Status:         j.Status,
		TotalUsers:     j.TotalUsers,
		ProcessedUsers: j.ProcessedUsers,
		StartedAt:      j.StartedAt,
		CompletedAt:    j.CompletedAt,
		ErrorMessage:   j.ErrorMessage,
	}
}
