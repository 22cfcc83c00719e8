package leagueservice

import (
	"context"

	leagueevents "github.com/gridline-club/podium-bot/app/modules/league/domain/events"
	statisticsevents "github.com/gridline-club/podium-bot/app/modules/statistics/domain/events"
	"github.com/gridline-club/podium-bot/app/shared/results"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// RecordResultOutcome is the outcome of recording an event podium.
type RecordResultOutcome = results.OperationResult[leagueevents.EventResultEnteredPayloadV1, leagueevents.EventResultEnterFailedPayloadV1]

// RecalcTriggerOutcome is the outcome of a throttled recalculation trigger.
// Success means the request is forwarded to the statistics module.
type RecalcTriggerOutcome = results.OperationResult[statisticsevents.SeasonRecalculationRequestedPayloadV1, leagueevents.SeasonRecalculationThrottledPayloadV1]

// Service defines the league module's operations.
type Service interface {
	// RecordEventResult stores (or corrects) the actual podium for an
	// event. The success payload is the trigger for prediction rescoring.
	RecordEventResult(ctx context.Context, eventID sharedtypes.EventID, seasonID sharedtypes.SeasonID, podium sharedtypes.Podium) (RecordResultOutcome, error)

	// RequestSeasonRecalculation validates and throttles a recompute
	// trigger before it reaches the statistics module.
	RequestSeasonRecalculation(ctx context.Context, seasonID sharedtypes.SeasonID) (RecalcTriggerOutcome, error)
}

var _ Service = (*LeagueService)(nil)
