package statisticshandlers

import (
	"context"
	"errors"

	"github.com/ThreeDotsLabs/watermill/message"

	statisticsevents "github.com/gridline-club/podium-bot/app/modules/statistics/domain/events"
	"github.com/gridline-club/podium-bot/app/shared/utils"
)

// HandleJobStatusRequested answers a poll for a recalculation job's state.
func (h *StatisticsHandlers) HandleJobStatusRequested() message.HandlerFunc {
	return utils.WrapHandler(
		"HandleJobStatusRequested",
		func() any { return &statisticsevents.JobStatusRequestedPayloadV1{} },
		func(ctx context.Context, msg *message.Message, payload any) ([]utils.Result, error) {
			p, ok := payload.(*statisticsevents.JobStatusRequestedPayloadV1)
			if !ok {
				return nil, errors.New("unexpected payload type")
			}

			result, err := h.service.GetJobStatus(ctx, p.JobID)
			if err != nil && result.Failure == nil {
				return nil, err
			}

			if result.Failure != nil {
				return []utils.Result{
					{Topic: statisticsevents.JobStatusNotFoundV1, Payload: result.Failure},
				}, nil
			}

			return []utils.Result{
				{Topic: statisticsevents.JobStatusV1, Payload: result.Success},
			}, nil
		},
		h.logger, h.tracer, h.helpers,
	)
}
