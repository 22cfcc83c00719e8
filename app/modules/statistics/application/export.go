package statisticsservice

import (
	"context"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	statisticsdb "github.com/gridline-club/podium-bot/app/modules/statistics/infrastructure/repositories"
	"github.com/gridline-club/podium-bot/app/shared/attr"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

const exportSheetName = "Standings"

// ExportSeasonStatistics renders the season's statistics table as an xlsx
// workbook, ordered by standing.
func (s *StatisticsService) ExportSeasonStatistics(ctx context.Context, seasonID sharedtypes.SeasonID) ([]byte, error) {
	stats, err := s.statsRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to load season statistics: %w", err)
	}
	sortByStanding(stats)

	f := excelize.NewFile()
	defer f.Close()

	sheet, err := f.NewSheet(exportSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(sheet)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headers := []string{"Rank", "User", "Total Points", "Best Results", "Predictions", "Exact", "One Off", "Two Off"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheetName, cell, header); err != nil {
			return nil, err
		}
	}

	for row, entry := range stats {
		values := []any{
			row + 1,
			entry.Username,
			entry.TotalPoints,
			nil,
			entry.PredictionsCount,
			entry.ExactMatches,
			entry.OneOffMatches,
			entry.TwoOffMatches,
		}
		if entry.BestResultsPoints != nil {
			values[3] = *entry.BestResultsPoints
		}
		for col, value := range values {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	s.logger.InfoContext(ctx, "Exported season statistics",
		attr.ExtractCorrelationID(ctx),
		attr.SeasonID("season_id", seasonID),
		attr.Int("rows", len(stats)),
	)
	return buf.Bytes(), nil
}

// sortByStanding orders statistics by the season's effective ranking metric:
// best-N points when present, total points otherwise, username as tiebreak.
func sortByStanding(stats []statisticsdb.UserStatistics) {
	sort.SliceStable(stats, func(i, j int) bool {
		pi, pj := effectivePoints(&stats[i]), effectivePoints(&stats[j])
		if pi != pj {
			return pi > pj
		}
		return stats[i].Username < stats[j].Username
	})
}

func effectivePoints(stats *statisticsdb.UserStatistics) int {
	if stats.BestResultsPoints != nil {
		return *stats.BestResultsPoints
	}
	return stats.TotalPoints
}
