package statisticshandlers

import (
	"context"

	statisticsservice "github.com/gridline-club/podium-bot/app/modules/statistics/application"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// FakeStatisticsService provides a programmable stub for the statistics
// service interface.
type FakeStatisticsService struct {
	StartSeasonRecalculationFunc func(ctx context.Context, seasonID sharedtypes.SeasonID) (statisticsservice.StartRecalculationResult, error)
	GetJobStatusFunc             func(ctx context.Context, jobID sharedtypes.JobID) (statisticsservice.JobStatusResult, error)
	ExportSeasonStatisticsFunc   func(ctx context.Context, seasonID sharedtypes.SeasonID) ([]byte, error)
	RenderStandingsChartFunc     func(ctx context.Context, seasonID sharedtypes.SeasonID, limit int) ([]byte, error)
}

func (f *FakeStatisticsService) StartSeasonRecalculation(ctx context.Context, seasonID sharedtypes.SeasonID) (statisticsservice.StartRecalculationResult, error) {
	if f.StartSeasonRecalculationFunc != nil {
		return f.StartSeasonRecalculationFunc(ctx, seasonID)
	}
	return statisticsservice.StartRecalculationResult{}, nil
}

func (f *FakeStatisticsService) GetJobStatus(ctx context.Context, jobID sharedtypes.JobID) (statisticsservice.JobStatusResult, error) {
	if f.GetJobStatusFunc != nil {
		return f.GetJobStatusFunc(ctx, jobID)
	}
	return statisticsservice.JobStatusResult{}, nil
}

func (f *FakeStatisticsService) ExportSeasonStatistics(ctx context.Context, seasonID sharedtypes.SeasonID) ([]byte, error) {
	if f.ExportSeasonStatisticsFunc != nil {
		return f.ExportSeasonStatisticsFunc(ctx, seasonID)
	}
	return nil, nil
}

func (f *FakeStatisticsService) RenderStandingsChart(ctx context.Context, seasonID sharedtypes.SeasonID, limit int) ([]byte, error) {
	if f.RenderStandingsChartFunc != nil {
		return f.RenderStandingsChartFunc(ctx, seasonID, limit)
	}
	return nil, nil
}

var _ statisticsservice.Service = (*FakeStatisticsService)(nil)
