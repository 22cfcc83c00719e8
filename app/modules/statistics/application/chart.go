package statisticsservice

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/gridline-club/podium-bot/app/shared/attr"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

const defaultChartLimit = 10

// RenderStandingsChart renders a PNG bar chart of the season's top users by
// their effective points (best-N when the season configures it).
func (s *StatisticsService) RenderStandingsChart(ctx context.Context, seasonID sharedtypes.SeasonID, limit int) ([]byte, error) {
	stats, err := s.statsRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to load season statistics: %w", err)
	}
	if len(stats) == 0 {
		return renderNoDataPlaceholder()
	}

	sortByStanding(stats)
	if limit <= 0 {
		limit = defaultChartLimit
	}
	if limit > len(stats) {
		limit = len(stats)
	}

	values := make([]chart.Value, 0, limit)
	for _, entry := range stats[:limit] {
		values = append(values, chart.Value{
			Label: entry.Username,
			Value: float64(effectivePoints(&entry)),
		})
	}

	graph := chart.BarChart{
		Title:    "Season Standings",
		Width:    800,
		Height:   400,
		BarWidth: 40,
		XAxis: chart.Style{
			TextRotationDegrees: 45,
		},
		Bars: values,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render standings chart: %w", err)
	}

	s.logger.InfoContext(ctx, "Rendered standings chart",
		attr.ExtractCorrelationID(ctx),
		attr.SeasonID("season_id", seasonID),
		attr.Int("bars", len(values)),
	)
	return buffer.Bytes(), nil
}

func renderNoDataPlaceholder() ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "No statistics recorded yet"
	)

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
