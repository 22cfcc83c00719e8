package statisticshandlers

import (
	"context"
	"errors"

	"github.com/ThreeDotsLabs/watermill/message"

	statisticsevents "github.com/gridline-club/podium-bot/app/modules/statistics/domain/events"
	"github.com/gridline-club/podium-bot/app/shared/utils"
)

// HandleSeasonRecalculationRequested kicks off a season-wide statistics
// recompute and publishes the pollable job ID.
func (h *StatisticsHandlers) HandleSeasonRecalculationRequested() message.HandlerFunc {
	return utils.WrapHandler(
		"HandleSeasonRecalculationRequested",
		func() any { return &statisticsevents.SeasonRecalculationRequestedPayloadV1{} },
		func(ctx context.Context, msg *message.Message, payload any) ([]utils.Result, error) {
			p, ok := payload.(*statisticsevents.SeasonRecalculationRequestedPayloadV1)
			if !ok {
				return nil, errors.New("unexpected payload type")
			}

			result, err := h.service.StartSeasonRecalculation(ctx, p.SeasonID)
			if err != nil && result.Failure == nil {
				return nil, err
			}

			if result.Failure != nil {
				return []utils.Result{
					{Topic: statisticsevents.SeasonRecalculationFailedV1, Payload: result.Failure},
				}, nil
			}

			return []utils.Result{
				{Topic: statisticsevents.SeasonRecalculationStartedV1, Payload: result.Success},
			}, nil
		},
		h.logger, h.tracer, h.helpers,
	)
}
