package statisticshandlers

import (
	"context"
	"errors"

	"github.com/ThreeDotsLabs/watermill/message"

	statisticsevents "github.com/gridline-club/podium-bot/app/modules/statistics/domain/events"
	"github.com/gridline-club/podium-bot/app/shared/utils"
)

// HandleStandingsChartRequested renders the season standings chart and
// publishes the PNG.
func (h *StatisticsHandlers) HandleStandingsChartRequested() message.HandlerFunc {
	return utils.WrapHandler(
		"HandleStandingsChartRequested",
		func() any { return &statisticsevents.StandingsChartRequestedPayloadV1{} },
		func(ctx context.Context, msg *message.Message, payload any) ([]utils.Result, error) {
			p, ok := payload.(*statisticsevents.StandingsChartRequestedPayloadV1)
			if !ok {
				return nil, errors.New("unexpected payload type")
			}

			image, err := h.service.RenderStandingsChart(ctx, p.SeasonID, p.Limit)
			if err != nil {
				return nil, err
			}

			return []utils.Result{
				{
					Topic: statisticsevents.StandingsChartRenderedV1,
					Payload: statisticsevents.StandingsChartRenderedPayloadV1{
						SeasonID: p.SeasonID,
						Image:    image,
					},
				},
			}, nil
		},
		h.logger, h.tracer, h.helpers,
	)
}
