package predictionservice

import (
	"context"

	predictionevents "github.com/gridline-club/podium-bot/app/modules/prediction/domain/events"
	"github.com/gridline-club/podium-bot/app/modules/prediction/domain/scoring"
	"github.com/gridline-club/podium-bot/app/shared/results"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// SubmitResult is the outcome of storing a prediction.
type SubmitResult = results.OperationResult[predictionevents.SubmittedPayloadV1, predictionevents.SubmitFailedPayloadV1]

// RescoreResult is the outcome of an event-level rescoring pass.
type RescoreResult = results.OperationResult[predictionevents.EventRescoredPayloadV1, predictionevents.EventRescoreFailedPayloadV1]

// Service defines the prediction module's operations.
type Service interface {
	// SubmitPrediction stores (or replaces) a user's podium prediction for
	// an event. Points stay unset until the event result exists.
	SubmitPrediction(ctx context.Context, eventID sharedtypes.EventID, userID sharedtypes.UserID, podium sharedtypes.Podium) (SubmitResult, error)

	// RecalculateEventPredictions rescores every prediction for an event
	// against its recorded result. A missing result is a successful no-op.
	RecalculateEventPredictions(ctx context.Context, eventID sharedtypes.EventID, seasonID sharedtypes.SeasonID) (RescoreResult, error)

	// ResolveRules returns the season's scoring rules, falling back to the
	// documented defaults when the season has none configured.
	ResolveRules(ctx context.Context, seasonID sharedtypes.SeasonID) (scoring.Rules, error)

	// SetSeasonRules validates and stores season scoring rules.
	SetSeasonRules(ctx context.Context, seasonID sharedtypes.SeasonID, rules scoring.Rules) error
}

var _ Service = (*PredictionService)(nil)
