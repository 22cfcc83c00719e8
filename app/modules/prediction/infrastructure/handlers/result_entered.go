package predictionhandlers

import (
	"context"
	"errors"

	"github.com/ThreeDotsLabs/watermill/message"

	leagueevents "github.com/gridline-club/podium-bot/app/modules/league/domain/events"
	predictionevents "github.com/gridline-club/podium-bot/app/modules/prediction/domain/events"
	"github.com/gridline-club/podium-bot/app/shared/utils"
)

// HandleEventResultEntered rescores an event's predictions as soon as its
// actual podium is recorded or corrected.
func (h *PredictionHandlers) HandleEventResultEntered() message.HandlerFunc {
	return utils.WrapHandler(
		"HandleEventResultEntered",
		func() any { return &leagueevents.EventResultEnteredPayloadV1{} },
		func(ctx context.Context, msg *message.Message, payload any) ([]utils.Result, error) {
			p, ok := payload.(*leagueevents.EventResultEnteredPayloadV1)
			if !ok {
				return nil, errors.New("unexpected payload type")
			}

			result, err := h.service.RecalculateEventPredictions(ctx, p.EventID, p.SeasonID)
			if err != nil && result.Failure == nil {
				return nil, err
			}

			if result.Failure != nil {
				return []utils.Result{
					{Topic: predictionevents.EventRescoreFailedV1, Payload: result.Failure},
				}, nil
			}

			return []utils.Result{
				{Topic: predictionevents.EventRescoredV1, Payload: result.Success},
			}, nil
		},
		h.logger, h.tracer, h.helpers,
	)
}
