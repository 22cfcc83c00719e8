package leagueservice

import (
	"context"

	leagueevents "github.com/gridline-club/podium-bot/app/modules/league/domain/events"
	statisticsevents "github.com/gridline-club/podium-bot/app/modules/statistics/domain/events"
	"github.com/gridline-club/podium-bot/app/shared/attr"
	"github.com/gridline-club/podium-bot/app/shared/results"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// RequestSeasonRecalculation forwards a recompute trigger to the statistics
// module. Triggers are rate limited so repeated admin requests or a
// misbehaving client cannot stack full-season recomputes.
func (s *LeagueService) RequestSeasonRecalculation(
	ctx context.Context,
	seasonID sharedtypes.SeasonID,
) (RecalcTriggerOutcome, error) {
	return withTelemetry(s, ctx, "RequestSeasonRecalculation", func(ctx context.Context) (RecalcTriggerOutcome, error) {
		fail := func(reason string) RecalcTriggerOutcome {
			return results.Fail[statisticsevents.SeasonRecalculationRequestedPayloadV1](leagueevents.SeasonRecalculationThrottledPayloadV1{
				SeasonID: seasonID,
				Reason:   reason,
			})
		}

		if !s.recalcLimit.Allow() {
			s.logger.WarnContext(ctx, "Season recalculation trigger throttled",
				attr.ExtractCorrelationID(ctx),
				attr.SeasonID("season_id", seasonID),
			)
			return fail("recalculation trigger rate limit exceeded"), nil
		}

		season, err := s.seasonRepo.GetSeason(ctx, seasonID)
		if err != nil {
			return fail("failed to load season: " + err.Error()), nil
		}
		if season == nil {
			return fail("unknown season: " + seasonID.String()), nil
		}

		return results.OK[statisticsevents.SeasonRecalculationRequestedPayloadV1, leagueevents.SeasonRecalculationThrottledPayloadV1](statisticsevents.SeasonRecalculationRequestedPayloadV1{
			SeasonID: seasonID,
		}), nil
	})
}
