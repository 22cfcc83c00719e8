package predictionservice

import (
	"context"
	"strings"
	"time"

	predictionevents "github.com/gridline-club/podium-bot/app/modules/prediction/domain/events"
	predictiondb "github.com/gridline-club/podium-bot/app/modules/prediction/infrastructure/repositories"
	"github.com/gridline-club/podium-bot/app/shared/attr"
	"github.com/gridline-club/podium-bot/app/shared/results"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// SubmitPrediction stores a user's podium prediction. Resubmission replaces
// the earlier prediction; PointsEarned stays NULL until the event result is
// recorded and the event is rescored.
func (s *PredictionService) SubmitPrediction(
	ctx context.Context,
	eventID sharedtypes.EventID,
	userID sharedtypes.UserID,
	podium sharedtypes.Podium,
) (SubmitResult, error) {
	s.logger.InfoContext(ctx, "Submitting prediction",
		attr.ExtractCorrelationID(ctx),
		attr.EventID("event_id", eventID),
		attr.UserID("user_id", userID),
	)

	return withTelemetry(s, ctx, "SubmitPrediction", func(ctx context.Context) (SubmitResult, error) {
		names := podium.Names()
		blanks := 0
		for _, n := range names {
			if strings.TrimSpace(n) == "" {
				blanks++
			}
		}
		if blanks == 3 {
			return results.Fail[predictionevents.SubmittedPayloadV1](predictionevents.SubmitFailedPayloadV1{
				EventID: eventID,
				UserID:  userID,
				Reason:  "prediction must name at least one competitor",
			}), nil
		}

		event, err := s.eventRepo.GetEvent(ctx, eventID)
		if err != nil {
			return SubmitResult{}, err
		}
		if event == nil {
			return results.Fail[predictionevents.SubmittedPayloadV1](predictionevents.SubmitFailedPayloadV1{
				EventID: eventID,
				UserID:  userID,
				Reason:  "unknown event",
			}), nil
		}

		now := time.Now().UTC()
		prediction := &predictiondb.Prediction{
			EventID:    eventID,
			UserID:     userID,
			FirstID:    podium.First.CompetitorID,
			FirstName:  podium.First.Name,
			SecondID:   podium.Second.CompetitorID,
			SecondName: podium.Second.Name,
			ThirdID:    podium.Third.CompetitorID,
			ThirdName:  podium.Third.Name,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := s.repo.Upsert(ctx, prediction); err != nil {
			return results.Fail[predictionevents.SubmittedPayloadV1](predictionevents.SubmitFailedPayloadV1{
				EventID: eventID,
				UserID:  userID,
				Reason:  err.Error(),
			}), nil
		}

		return results.OK[predictionevents.SubmittedPayloadV1, predictionevents.SubmitFailedPayloadV1](predictionevents.SubmittedPayloadV1{
			EventID: eventID,
			UserID:  userID,
		}), nil
	})
}
