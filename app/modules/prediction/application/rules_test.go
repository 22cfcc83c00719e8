package predictionservice

import (
	"context"
	"errors"
	"testing"

	predictiondb "github.com/gridline-club/podium-bot/app/modules/prediction/infrastructure/repositories"
	"github.com/gridline-club/podium-bot/app/modules/prediction/domain/scoring"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

func TestPredictionService_ResolveRules(t *testing.T) {
	ctx := context.Background()
	seasonID := sharedtypes.SeasonID("2026")

	t.Run("unconfigured season falls back to defaults", func(t *testing.T) {
		svc := newTestService(NewFakePredictionRepository(), &FakeRulesRepository{}, &FakeEventRepository{})

		rules, err := svc.ResolveRules(ctx, seasonID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rules != scoring.DefaultRules() {
			t.Errorf("rules = %+v, want defaults", rules)
		}
	})

	t.Run("configured season returns stored rules", func(t *testing.T) {
		repo := &FakeRulesRepository{
			GetForSeasonFunc: func(ctx context.Context, id sharedtypes.SeasonID) (*predictiondb.ScoringRules, error) {
				return &predictiondb.ScoringRules{SeasonID: id, ExactMatchPoints: 40, OneOffPoints: 25, TwoOffPoints: 10}, nil
			},
		}
		svc := newTestService(NewFakePredictionRepository(), repo, &FakeEventRepository{})

		rules, err := svc.ResolveRules(ctx, seasonID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := scoring.Rules{ExactMatchPoints: 40, OneOffPoints: 25, TwoOffPoints: 10}
		if rules != want {
			t.Errorf("rules = %+v, want %+v", rules, want)
		}
	})

	t.Run("store failure propagates", func(t *testing.T) {
		repo := &FakeRulesRepository{
			GetForSeasonFunc: func(ctx context.Context, id sharedtypes.SeasonID) (*predictiondb.ScoringRules, error) {
				return nil, errors.New("store unavailable")
			},
		}
		svc := newTestService(NewFakePredictionRepository(), repo, &FakeEventRepository{})

		if _, err := svc.ResolveRules(ctx, seasonID); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestPredictionService_SetSeasonRules(t *testing.T) {
	ctx := context.Background()
	seasonID := sharedtypes.SeasonID("2026")

	t.Run("valid rules are stored", func(t *testing.T) {
		repo := &FakeRulesRepository{}
		svc := newTestService(NewFakePredictionRepository(), repo, &FakeEventRepository{})

		err := svc.SetSeasonRules(ctx, seasonID, scoring.Rules{ExactMatchPoints: 30, OneOffPoints: 20, TwoOffPoints: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.LastUpserted == nil || repo.LastUpserted.ExactMatchPoints != 30 {
			t.Errorf("stored rules = %+v", repo.LastUpserted)
		}
	})

	t.Run("invalid rules are rejected before storage", func(t *testing.T) {
		repo := &FakeRulesRepository{}
		svc := newTestService(NewFakePredictionRepository(), repo, &FakeEventRepository{})

		err := svc.SetSeasonRules(ctx, seasonID, scoring.Rules{ExactMatchPoints: 5, OneOffPoints: 10})
		if !errors.Is(err, scoring.ErrExactNotMax) {
			t.Fatalf("err = %v, want ErrExactNotMax", err)
		}
		if repo.LastUpserted != nil {
			t.Error("invalid rules reached the store")
		}
	})
}
