// Package predictionevents defines the topics and payloads the prediction
// module publishes and consumes.
package predictionevents

import (
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

const (
	// SubmitRequestedV1 carries a user's podium prediction for an event.
	SubmitRequestedV1 = "prediction.submit.requested.v1"

	// SubmittedV1 confirms a stored prediction.
	SubmittedV1 = "prediction.submitted.v1"

	// SubmitFailedV1 reports a rejected or failed submission.
	SubmitFailedV1 = "prediction.submit.failed.v1"

	// EventRescoredV1 announces that all predictions for an event were
	// rescored after its result was entered or corrected.
	EventRescoredV1 = "prediction.event.rescored.v1"

	// EventRescoreFailedV1 reports a rescoring pass that hit a storage
	// error. Predictions written before the failure keep their new points.
	EventRescoreFailedV1 = "prediction.event.rescore.failed.v1"
)

// SubmitRequestedPayloadV1 is a user's predicted podium.
type SubmitRequestedPayloadV1 struct {
	EventID  sharedtypes.EventID `json:"event_id"`
	UserID   sharedtypes.UserID  `json:"user_id"`
	Podium   sharedtypes.Podium  `json:"podium"`
}

// SubmittedPayloadV1 confirms a stored prediction.
type SubmittedPayloadV1 struct {
	EventID sharedtypes.EventID `json:"event_id"`
	UserID  sharedtypes.UserID  `json:"user_id"`
}

// SubmitFailedPayloadV1 reports why a submission was not stored.
type SubmitFailedPayloadV1 struct {
	EventID sharedtypes.EventID `json:"event_id"`
	UserID  sharedtypes.UserID  `json:"user_id"`
	Reason  string              `json:"reason"`
}

// EventRescoredPayloadV1 summarizes a completed rescoring pass.
type EventRescoredPayloadV1 struct {
	EventID  sharedtypes.EventID  `json:"event_id"`
	SeasonID sharedtypes.SeasonID `json:"season_id"`
	// Updated is the number of predictions whose points were written.
	Updated int `json:"updated"`
}

// EventRescoreFailedPayloadV1 reports a failed rescoring pass.
type EventRescoreFailedPayloadV1 struct {
	EventID  sharedtypes.EventID  `json:"event_id"`
	SeasonID sharedtypes.SeasonID `json:"season_id"`
	Reason   string               `json:"reason"`
}
