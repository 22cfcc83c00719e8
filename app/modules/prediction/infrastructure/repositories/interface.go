package predictiondb

import (
	"context"

	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// Repository is the prediction store.
type Repository interface {
	ListByEvent(ctx context.Context, eventID sharedtypes.EventID) ([]Prediction, error)
	// ListScoredForEvents returns every prediction for the given events that
	// already carries a non-NULL points value.
	ListScoredForEvents(ctx context.Context, eventIDs []sharedtypes.EventID) ([]Prediction, error)
	Upsert(ctx context.Context, prediction *Prediction) error
}

// RulesRepository is the per-season scoring rules store. GetForSeason
// returns nil (not an error) when the season has no configured rules.
type RulesRepository interface {
	GetForSeason(ctx context.Context, seasonID sharedtypes.SeasonID) (*ScoringRules, error)
	Upsert(ctx context.Context, rules *ScoringRules) error
}
