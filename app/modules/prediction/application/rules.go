package predictionservice

import (
	"context"
	"fmt"

	predictiondb "github.com/gridline-club/podium-bot/app/modules/prediction/infrastructure/repositories"
	"github.com/gridline-club/podium-bot/app/modules/prediction/domain/scoring"
	"github.com/gridline-club/podium-bot/app/shared/attr"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// ResolveRules fetches the season's configured scoring rules. Absence is
// not an error: unconfigured seasons score with the defaults.
func (s *PredictionService) ResolveRules(ctx context.Context, seasonID sharedtypes.SeasonID) (scoring.Rules, error) {
	stored, err := s.rulesRepo.GetForSeason(ctx, seasonID)
	if err != nil {
		return scoring.Rules{}, fmt.Errorf("failed to resolve scoring rules: %w", err)
	}
	if stored == nil {
		s.logger.DebugContext(ctx, "No scoring rules configured, using defaults",
			attr.SeasonID("season_id", seasonID),
		)
		return scoring.DefaultRules(), nil
	}
	return scoring.Rules{
		ExactMatchPoints: stored.ExactMatchPoints,
		OneOffPoints:     stored.OneOffPoints,
		TwoOffPoints:     stored.TwoOffPoints,
	}, nil
}

// SetSeasonRules validates and stores season scoring rules.
func (s *PredictionService) SetSeasonRules(ctx context.Context, seasonID sharedtypes.SeasonID, rules scoring.Rules) error {
	if err := rules.Validate(); err != nil {
		return fmt.Errorf("invalid scoring rules for season %s: %w", seasonID, err)
	}
	return s.rulesRepo.Upsert(ctx, &predictiondb.ScoringRules{
		SeasonID:         seasonID,
		ExactMatchPoints: rules.ExactMatchPoints,
		OneOffPoints:     rules.OneOffPoints,
		TwoOffPoints:     rules.TwoOffPoints,
	})
}
