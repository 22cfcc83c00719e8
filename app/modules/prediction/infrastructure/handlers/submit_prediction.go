package predictionhandlers

import (
	"context"
	"errors"

	"github.com/ThreeDotsLabs/watermill/message"

	predictionevents "github.com/gridline-club/podium-bot/app/modules/prediction/domain/events"
	"github.com/gridline-club/podium-bot/app/shared/utils"
)

// HandleSubmitPrediction stores a user's podium prediction.
func (h *PredictionHandlers) HandleSubmitPrediction() message.HandlerFunc {
	return utils.WrapHandler(
		"HandleSubmitPrediction",
		func() any { return &predictionevents.SubmitRequestedPayloadV1{} },
		func(ctx context.Context, msg *message.Message, payload any) ([]utils.Result, error) {
			p, ok := payload.(*predictionevents.SubmitRequestedPayloadV1)
			if !ok {
				return nil, errors.New("unexpected payload type")
			}

			result, err := h.service.SubmitPrediction(ctx, p.EventID, p.UserID, p.Podium)
			if err != nil && result.Failure == nil {
				return nil, err
			}

			if result.Failure != nil {
				return []utils.Result{
					{Topic: predictionevents.SubmitFailedV1, Payload: result.Failure},
				}, nil
			}

			return []utils.Result{
				{Topic: predictionevents.SubmittedV1, Payload: result.Success},
			}, nil
		},
		h.logger, h.tracer, h.helpers,
	)
}
