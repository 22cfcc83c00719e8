package predictionservice

import (
	"context"

	predictionevents "github.com/gridline-club/podium-bot/app/modules/prediction/domain/events"
	"github.com/gridline-club/podium-bot/app/modules/prediction/domain/scoring"
	"github.com/gridline-club/podium-bot/app/shared/attr"
	"github.com/gridline-club/podium-bot/app/shared/results"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// RecalculateEventPredictions rescores every prediction tied to an event
// against its recorded result, overwriting each prediction's points.
//
// A missing result is a successful no-op: there is nothing to score yet.
// Writes are independent upserts; if one fails, predictions already written
// in this pass keep their new points and the operation reports failure.
func (s *PredictionService) RecalculateEventPredictions(
	ctx context.Context,
	eventID sharedtypes.EventID,
	seasonID sharedtypes.SeasonID,
) (RescoreResult, error) {
	s.logger.InfoContext(ctx, "Recalculating event predictions",
		attr.ExtractCorrelationID(ctx),
		attr.EventID("event_id", eventID),
		attr.SeasonID("season_id", seasonID),
	)

	return withTelemetry(s, ctx, "RecalculateEventPredictions", func(ctx context.Context) (RescoreResult, error) {
		result, err := s.eventRepo.GetResult(ctx, eventID)
		if err != nil {
			return results.Fail[predictionevents.EventRescoredPayloadV1](predictionevents.EventRescoreFailedPayloadV1{
				EventID:  eventID,
				SeasonID: seasonID,
				Reason:   "failed to load event result: " + err.Error(),
			}), nil
		}
		if result == nil {
			s.logger.InfoContext(ctx, "No result recorded yet, nothing to score",
				attr.ExtractCorrelationID(ctx),
				attr.EventID("event_id", eventID),
			)
			return results.OK[predictionevents.EventRescoredPayloadV1, predictionevents.EventRescoreFailedPayloadV1](predictionevents.EventRescoredPayloadV1{
				EventID:  eventID,
				SeasonID: seasonID,
				Updated:  0,
			}), nil
		}

		rules, err := s.ResolveRules(ctx, seasonID)
		if err != nil {
			return results.Fail[predictionevents.EventRescoredPayloadV1](predictionevents.EventRescoreFailedPayloadV1{
				EventID:  eventID,
				SeasonID: seasonID,
				Reason:   err.Error(),
			}), nil
		}

		predictions, err := s.repo.ListByEvent(ctx, eventID)
		if err != nil {
			return results.Fail[predictionevents.EventRescoredPayloadV1](predictionevents.EventRescoreFailedPayloadV1{
				EventID:  eventID,
				SeasonID: seasonID,
				Reason:   err.Error(),
			}), nil
		}

		actual := result.ActualNames()
		updated := 0
		for i := range predictions {
			prediction := &predictions[i]
			points := scoring.CalculatePoints(prediction.PredictedNames(), actual, rules)
			prediction.PointsEarned = &points

			if err := s.repo.Upsert(ctx, prediction); err != nil {
				// No rollback: rows written before this one keep their
				// recalculated points.
				s.logger.ErrorContext(ctx, "Failed to persist recalculated points",
					attr.ExtractCorrelationID(ctx),
					attr.EventID("event_id", eventID),
					attr.UserID("user_id", prediction.UserID),
					attr.Int("updated_before_failure", updated),
					attr.Error(err),
				)
				return results.Fail[predictionevents.EventRescoredPayloadV1](predictionevents.EventRescoreFailedPayloadV1{
					EventID:  eventID,
					SeasonID: seasonID,
					Reason:   err.Error(),
				}), nil
			}
			updated++
		}

		return results.OK[predictionevents.EventRescoredPayloadV1, predictionevents.EventRescoreFailedPayloadV1](predictionevents.EventRescoredPayloadV1{
			EventID:  eventID,
			SeasonID: seasonID,
			Updated:  updated,
		}), nil
	})
}
