// Package leagueevents defines the topics and payloads the league module
// publishes and consumes.
package leagueevents

import (
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

const (
	// EventResultEnterRequestedV1 asks the league module to record (or
	// correct) an event's actual podium.
	EventResultEnterRequestedV1 = "league.event.result.enter.requested.v1"

	// EventResultEnteredV1 announces a recorded podium; the prediction
	// module rescores the event's predictions on it.
	EventResultEnteredV1 = "league.event.result.entered.v1"

	// EventResultEnterFailedV1 reports a failed result recording.
	EventResultEnterFailedV1 = "league.event.result.enter.failed.v1"

	// SeasonRecalculationTriggerV1 is the admin-facing request to recompute
	// a season. It is throttled before being forwarded to statistics.
	SeasonRecalculationTriggerV1 = "league.season.recalculation.trigger.v1"

	// SeasonRecalculationThrottledV1 reports a trigger rejected by the rate
	// limiter or validation.
	SeasonRecalculationThrottledV1 = "league.season.recalculation.throttled.v1"
)

// EventResultEnterRequestedPayloadV1 carries an admin result entry.
type EventResultEnterRequestedPayloadV1 struct {
	EventID  sharedtypes.EventID  `json:"event_id"`
	SeasonID sharedtypes.SeasonID `json:"season_id"`
	Podium   sharedtypes.Podium   `json:"podium"`
}

// EventResultEnteredPayloadV1 announces the recorded podium.
type EventResultEnteredPayloadV1 struct {
	EventID  sharedtypes.EventID  `json:"event_id"`
	SeasonID sharedtypes.SeasonID `json:"season_id"`
	Podium   sharedtypes.Podium   `json:"podium"`
}

// EventResultEnterFailedPayloadV1 reports why recording failed.
type EventResultEnterFailedPayloadV1 struct {
	EventID  sharedtypes.EventID  `json:"event_id"`
	SeasonID sharedtypes.SeasonID `json:"season_id"`
	Reason   string               `json:"reason"`
}

// SeasonRecalculationTriggerPayloadV1 asks for a season recompute.
type SeasonRecalculationTriggerPayloadV1 struct {
	SeasonID sharedtypes.SeasonID `json:"season_id"`
}

// SeasonRecalculationThrottledPayloadV1 reports a rejected trigger.
type SeasonRecalculationThrottledPayloadV1 struct {
	SeasonID sharedtypes.SeasonID `json:"season_id"`
	Reason   string               `json:"reason"`
}
