package predictionservice

import (
	"context"
	"errors"
	"testing"

	leaguedb "github.com/gridline-club/podium-bot/app/modules/league/infrastructure/repositories"
	predictiondb "github.com/gridline-club/podium-bot/app/modules/prediction/infrastructure/repositories"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

func testSubmission() sharedtypes.Podium {
	return sharedtypes.Podium{
		First:  sharedtypes.PodiumSlot{CompetitorID: "d1", Name: "Verstappen"},
		Second: sharedtypes.PodiumSlot{CompetitorID: "d2", Name: "Norris"},
		Third:  sharedtypes.PodiumSlot{CompetitorID: "d3", Name: "Leclerc"},
	}
}

func TestPredictionService_SubmitPrediction(t *testing.T) {
	ctx := context.Background()
	eventID := sharedtypes.EventID("event-1")
	userID := sharedtypes.UserID("alice")

	t.Run("stores the prediction unscored", func(t *testing.T) {
		repo := NewFakePredictionRepository()
		svc := newTestService(repo, &FakeRulesRepository{}, &FakeEventRepository{})

		result, err := svc.SubmitPrediction(ctx, eventID, userID, testSubmission())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsSuccess() {
			t.Fatalf("expected success, got %+v", result)
		}
		if result.Success.EventID != eventID || result.Success.UserID != userID {
			t.Errorf("payload = %+v, want event %s user %s", result.Success, eventID, userID)
		}

		if len(repo.Upserted) != 1 {
			t.Fatalf("upserts = %d, want 1", len(repo.Upserted))
		}
		stored := repo.Upserted[0]
		if stored.FirstName != "Verstappen" || stored.SecondName != "Norris" || stored.ThirdName != "Leclerc" {
			t.Errorf("stored podium = %s/%s/%s", stored.FirstName, stored.SecondName, stored.ThirdName)
		}
		if stored.PointsEarned != nil {
			t.Errorf("PointsEarned = %v, want nil until the event is rescored", *stored.PointsEarned)
		}
	})

	t.Run("resubmission replaces the earlier prediction", func(t *testing.T) {
		repo := NewFakePredictionRepository()
		svc := newTestService(repo, &FakeRulesRepository{}, &FakeEventRepository{})

		if _, err := svc.SubmitPrediction(ctx, eventID, userID, testSubmission()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		corrected := testSubmission()
		corrected.Third = sharedtypes.PodiumSlot{CompetitorID: "d4", Name: "Hamilton"}
		result, err := svc.SubmitPrediction(ctx, eventID, userID, corrected)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsSuccess() {
			t.Fatalf("expected success, got %+v", result)
		}

		if len(repo.Upserted) != 2 {
			t.Fatalf("upserts = %d, want 2", len(repo.Upserted))
		}
		if got := repo.Upserted[1].ThirdName; got != "Hamilton" {
			t.Errorf("ThirdName = %q, want %q", got, "Hamilton")
		}
	})

	t.Run("partial podium is accepted", func(t *testing.T) {
		repo := NewFakePredictionRepository()
		svc := newTestService(repo, &FakeRulesRepository{}, &FakeEventRepository{})

		partial := sharedtypes.Podium{
			First: sharedtypes.PodiumSlot{CompetitorID: "d1", Name: "Verstappen"},
		}
		result, err := svc.SubmitPrediction(ctx, eventID, userID, partial)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsSuccess() {
			t.Fatalf("expected success, got %+v", result)
		}
	})

	t.Run("fully blank podium is rejected", func(t *testing.T) {
		repo := NewFakePredictionRepository()
		svc := newTestService(repo, &FakeRulesRepository{}, &FakeEventRepository{})

		result, err := svc.SubmitPrediction(ctx, eventID, userID, sharedtypes.Podium{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsFailure() {
			t.Fatalf("expected failure, got %+v", result)
		}
		if len(repo.Upserted) != 0 {
			t.Errorf("upserts = %d, want 0", len(repo.Upserted))
		}
	})

	t.Run("unknown event is rejected", func(t *testing.T) {
		repo := NewFakePredictionRepository()
		events := &FakeEventRepository{
			GetEventFunc: func(ctx context.Context, id sharedtypes.EventID) (*leaguedb.Event, error) {
				return nil, nil
			},
		}
		svc := newTestService(repo, &FakeRulesRepository{}, events)

		result, err := svc.SubmitPrediction(ctx, eventID, userID, testSubmission())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsFailure() {
			t.Fatalf("expected failure, got %+v", result)
		}
		if result.Failure.Reason != "unknown event" {
			t.Errorf("Reason = %q, want %q", result.Failure.Reason, "unknown event")
		}
	})

	t.Run("store failure surfaces as a failure result", func(t *testing.T) {
		repo := NewFakePredictionRepository()
		repo.UpsertFunc = func(ctx context.Context, _ *predictiondb.Prediction) error {
			return errors.New("connection reset")
		}
		svc := newTestService(repo, &FakeRulesRepository{}, &FakeEventRepository{})

		result, err := svc.SubmitPrediction(ctx, eventID, userID, testSubmission())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsFailure() {
			t.Fatalf("expected failure, got %+v", result)
		}
	})
}
