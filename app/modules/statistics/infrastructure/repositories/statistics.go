package statisticsdb

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// StatisticsDBImpl implements Repository on bun.
type StatisticsDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*StatisticsDBImpl)(nil)

func (db *StatisticsDBImpl) Upsert(ctx context.Context, stats *UserStatistics) error {
	stats.LastUpdated = time.Now().UTC()

	_, err := db.DB.NewInsert().
		Model(stats).
		On("CONFLICT (season_id, user_id) DO UPDATE").
		Set("username = EXCLUDED.username").
		Set("total_points = EXCLUDED.total_points").
		Set("best_results_points = EXCLUDED.best_results_points").
		Set("predictions_count = EXCLUDED.predictions_count").
		Set("exact_matches = EXCLUDED.exact_matches").
		Set("one_off_matches = EXCLUDED.one_off_matches").
		Set("two_off_matches = EXCLUDED.two_off_matches").
		Set("last_updated = EXCLUDED.last_updated").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert statistics for season %s user %s: %w",
			stats.SeasonID, stats.UserID, err)
	}
	return nil
}

func (db *StatisticsDBImpl) ListBySeason(ctx context.Context, seasonID sharedtypes.SeasonID) ([]UserStatistics, error) {
	var stats []UserStatistics
	err := db.DB.NewSelect().
		Model(&stats).
		Where("season_id = ?", seasonID).
		Order("total_points DESC", "user_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list statistics for season %s: %w", seasonID, err)
	}
	return stats, nil
}

// JobDBImpl implements JobRepository on bun.
type JobDBImpl struct {
	DB *bun.DB
}

var _ JobRepository = (*JobDBImpl)(nil)

func (db *JobDBImpl) Save(ctx context.Context, job *RecalculationJob) error {
	_, err := db.DB.NewInsert().
		Model(job).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save recalculation job %s: %w", job.ID, err)
	}
	return nil
}

func (db *JobDBImpl) Update(ctx context.Context, job *RecalculationJob) error {
	res, err := db.DB.NewUpdate().
		Model(job).
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update recalculation job %s: %w", job.ID, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return fmt.Errorf("recalculation job %s: %w", job.ID, ErrNoRowsAffected)
	}
	return nil
}

func (db *JobDBImpl) Get(ctx context.Context, jobID sharedtypes.JobID) (*RecalculationJob, error) {
	var job RecalculationJob
	err := db.DB.NewSelect().
		Model(&job).
		Where("id = ?", jobID).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch recalculation job %s: %w", jobID, err)
	}
	return &job, nil
}
