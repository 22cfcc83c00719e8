package statisticsservice

import (
	"context"
	"errors"
	"testing"
	"time"

	statisticsdb "github.com/gridline-club/podium-bot/app/modules/statistics/infrastructure/repositories"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

func TestStatisticsService_GetJobStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the current job record state", func(t *testing.T) {
		f := newFixture()
		job := &statisticsdb.RecalculationJob{
			ID:             "job-1",
			SeasonID:       "2026",
			Status:         sharedtypes.JobStatusRunning,
			TotalUsers:     10,
			ProcessedUsers: 4,
			StartedAt:      time.Now().UTC(),
		}
		if err := f.jobs.Save(ctx, job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		result, err := f.svc.GetJobStatus(ctx, "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsSuccess() {
			t.Fatalf("expected success, got %+v", result)
		}
		got := result.Success.Job
		if got.Status != sharedtypes.JobStatusRunning || got.ProcessedUsers != 4 || got.TotalUsers != 10 {
			t.Errorf("job info = %+v, want running 4/10", got)
		}
	})

	t.Run("unknown job is a not-found result", func(t *testing.T) {
		f := newFixture()

		result, err := f.svc.GetJobStatus(ctx, "nope")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsFailure() {
			t.Fatalf("expected failure, got %+v", result)
		}
		if result.Failure.JobID != "nope" {
			t.Errorf("JobID = %s, want nope", result.Failure.JobID)
		}
	})

	t.Run("store failure surfaces as an error", func(t *testing.T) {
		f := newFixture()
		f.jobs.GetFunc = func(ctx context.Context, jobID sharedtypes.JobID) (*statisticsdb.RecalculationJob, error) {
			return nil, errors.New("store unavailable")
		}

		if _, err := f.svc.GetJobStatus(ctx, "job-1"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
