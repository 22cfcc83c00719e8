package leagueservice

import (
	"context"
	"testing"

	"golang.org/x/time/rate"

	leaguedb "github.com/gridline-club/podium-bot/app/modules/league/infrastructure/repositories"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

func TestLeagueService_RequestSeasonRecalculation(t *testing.T) {
	ctx := context.Background()
	seasonID := sharedtypes.SeasonID("2026")

	t.Run("forwards the trigger when allowed", func(t *testing.T) {
		svc := newTestService(&FakeSeasonRepository{}, &FakeEventRepository{}, nil)

		result, err := svc.RequestSeasonRecalculation(ctx, seasonID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsSuccess() {
			t.Fatalf("expected success, got %+v", result)
		}
		if result.Success.SeasonID != seasonID {
			t.Errorf("SeasonID = %s, want %s", result.Success.SeasonID, seasonID)
		}
	})

	t.Run("throttles once the limit is spent", func(t *testing.T) {
		// One token, no refill: the second trigger must be rejected.
		limiter := rate.NewLimiter(0, 1)
		svc := newTestService(&FakeSeasonRepository{}, &FakeEventRepository{}, limiter)

		first, err := svc.RequestSeasonRecalculation(ctx, seasonID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !first.IsSuccess() {
			t.Fatalf("first trigger rejected: %+v", first)
		}

		second, err := svc.RequestSeasonRecalculation(ctx, seasonID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !second.IsFailure() {
			t.Fatalf("expected throttled failure, got %+v", second)
		}
	})

	t.Run("rejects an unknown season", func(t *testing.T) {
		seasons := &FakeSeasonRepository{
			GetSeasonFunc: func(ctx context.Context, id sharedtypes.SeasonID) (*leaguedb.Season, error) {
				return nil, nil
			},
		}
		svc := newTestService(seasons, &FakeEventRepository{}, nil)

		result, err := svc.RequestSeasonRecalculation(ctx, "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsFailure() {
			t.Fatalf("expected failure, got %+v", result)
		}
	})
}
