package leaguehandlers

import (
	"context"
	"errors"

	"github.com/ThreeDotsLabs/watermill/message"

	leagueevents "github.com/gridline-club/podium-bot/app/modules/league/domain/events"
	"github.com/gridline-club/podium-bot/app/shared/utils"
)

// HandleEventResultEnterRequested records an event's actual podium and
// announces it so the prediction module can rescore.
func (h *LeagueHandlers) HandleEventResultEnterRequested() message.HandlerFunc {
	return utils.WrapHandler(
		"HandleEventResultEnterRequested",
		func() any { return &leagueevents.EventResultEnterRequestedPayloadV1{} },
		func(ctx context.Context, msg *message.Message, payload any) ([]utils.Result, error) {
			p, ok := payload.(*leagueevents.EventResultEnterRequestedPayloadV1)
			if !ok {
				return nil, errors.New("unexpected payload type")
			}

			result, err := h.service.RecordEventResult(ctx, p.EventID, p.SeasonID, p.Podium)
			if err != nil && result.Failure == nil {
				return nil, err
			}

			if result.Failure != nil {
				return []utils.Result{
					{Topic: leagueevents.EventResultEnterFailedV1, Payload: result.Failure},
				}, nil
			}

			return []utils.Result{
				{Topic: leagueevents.EventResultEnteredV1, Payload: result.Success},
			}, nil
		},
		h.logger, h.tracer, h.helpers,
	)
}
