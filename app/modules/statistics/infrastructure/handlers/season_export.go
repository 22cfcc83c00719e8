package statisticshandlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	statisticsevents "github.com/gridline-club/podium-bot/app/modules/statistics/domain/events"
	"github.com/gridline-club/podium-bot/app/shared/utils"
)

// HandleSeasonExportRequested renders the season standings workbook and
// publishes it.
func (h *StatisticsHandlers) HandleSeasonExportRequested() message.HandlerFunc {
	return utils.WrapHandler(
		"HandleSeasonExportRequested",
		func() any { return &statisticsevents.SeasonExportRequestedPayloadV1{} },
		func(ctx context.Context, msg *message.Message, payload any) ([]utils.Result, error) {
			p, ok := payload.(*statisticsevents.SeasonExportRequestedPayloadV1)
			if !ok {
				return nil, errors.New("unexpected payload type")
			}

			file, err := h.service.ExportSeasonStatistics(ctx, p.SeasonID)
			if err != nil {
				return nil, err
			}

			return []utils.Result{
				{
					Topic: statisticsevents.SeasonExportedV1,
					Payload: statisticsevents.SeasonExportedPayloadV1{
						SeasonID: p.SeasonID,
						Filename: fmt.Sprintf("season-%s-standings.xlsx", p.SeasonID),
						File:     file,
					},
				},
			}, nil
		},
		h.logger, h.tracer, h.helpers,
	)
}
