package predictiondb

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// PredictionDBImpl implements Repository on bun.
type PredictionDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*PredictionDBImpl)(nil)

func (db *PredictionDBImpl) ListByEvent(ctx context.Context, eventID sharedtypes.EventID) ([]Prediction, error) {
	var predictions []Prediction
	err := db.DB.NewSelect().
		Model(&predictions).
		Where("event_id = ?", eventID).
		Order("user_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions for event %s: %w", eventID, err)
	}
	return predictions, nil
}

func (db *PredictionDBImpl) ListScoredForEvents(ctx context.Context, eventIDs []sharedtypes.EventID) ([]Prediction, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}

	var predictions []Prediction
	err := db.DB.NewSelect().
		Model(&predictions).
		Where("event_id IN (?)", bun.In(eventIDs)).
		Where("points_earned IS NOT NULL").
		Order("user_id ASC", "event_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scored predictions: %w", err)
	}
	return predictions, nil
}

func (db *PredictionDBImpl) Upsert(ctx context.Context, prediction *Prediction) error {
	prediction.UpdatedAt = time.Now().UTC()

	_, err := db.DB.NewInsert().
		Model(prediction).
		On("CONFLICT (event_id, user_id) DO UPDATE").
		Set("first_competitor_id = EXCLUDED.first_competitor_id").
		Set("first_name = EXCLUDED.first_name").
		Set("second_competitor_id = EXCLUDED.second_competitor_id").
		Set("second_name = EXCLUDED.second_name").
		Set("third_competitor_id = EXCLUDED.third_competitor_id").
		Set("third_name = EXCLUDED.third_name").
		Set("points_earned = EXCLUDED.points_earned").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert prediction for event %s user %s: %w",
			prediction.EventID, prediction.UserID, err)
	}
	return nil
}

// RulesDBImpl implements RulesRepository on bun.
type RulesDBImpl struct {
	DB *bun.DB
}

var _ RulesRepository = (*RulesDBImpl)(nil)

func (db *RulesDBImpl) GetForSeason(ctx context.Context, seasonID sharedtypes.SeasonID) (*ScoringRules, error) {
	var rules ScoringRules
	err := db.DB.NewSelect().
		Model(&rules).
		Where("season_id = ?", seasonID).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch scoring rules for season %s: %w", seasonID, err)
	}
	return &rules, nil
}

func (db *RulesDBImpl) Upsert(ctx context.Context, rules *ScoringRules) error {
	rules.UpdatedAt = time.Now().UTC()

	_, err := db.DB.NewInsert().
		Model(rules).
		On("CONFLICT (season_id) DO UPDATE").
		Set("exact_match_points = EXCLUDED.exact_match_points").
		Set("one_off_points = EXCLUDED.one_off_points").
		Set("two_off_points = EXCLUDED.two_off_points").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert scoring rules for season %s: %w", rules.SeasonID, err)
	}
	return nil
}
