package leaguehandlers

import (
	"context"
	"errors"

	"github.com/ThreeDotsLabs/watermill/message"

	leagueevents "github.com/gridline-club/podium-bot/app/modules/league/domain/events"
	statisticsevents "github.com/gridline-club/podium-bot/app/modules/statistics/domain/events"
	"github.com/gridline-club/podium-bot/app/shared/utils"
)

// HandleSeasonRecalculationTrigger throttles and forwards a season
// recalculation request to the statistics module.
func (h *LeagueHandlers) HandleSeasonRecalculationTrigger() message.HandlerFunc {
	return utils.WrapHandler(
		"HandleSeasonRecalculationTrigger",
		func() any { return &leagueevents.SeasonRecalculationTriggerPayloadV1{} },
		func(ctx context.Context, msg *message.Message, payload any) ([]utils.Result, error) {
			p, ok := payload.(*leagueevents.SeasonRecalculationTriggerPayloadV1)
			if !ok {
				return nil, errors.New("unexpected payload type")
			}

			result, err := h.service.RequestSeasonRecalculation(ctx, p.SeasonID)
			if err != nil && result.Failure == nil {
				return nil, err
			}

			if result.Failure != nil {
				return []utils.Result{
					{Topic: leagueevents.SeasonRecalculationThrottledV1, Payload: result.Failure},
				}, nil
			}

			return []utils.Result{
				{Topic: statisticsevents.SeasonRecalculationRequestedV1, Payload: result.Success},
			}, nil
		},
		h.logger, h.tracer, h.helpers,
	)
}
