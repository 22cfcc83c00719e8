package leagueservice

import (
	"context"
	"strings"
	"time"

	leagueevents "github.com/gridline-club/podium-bot/app/modules/league/domain/events"
	leaguedb "github.com/gridline-club/podium-bot/app/modules/league/infrastructure/repositories"
	"github.com/gridline-club/podium-bot/app/shared/attr"
	"github.com/gridline-club/podium-bot/app/shared/results"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// RecordEventResult stores the actual podium for an event. Recording the
// same event again overwrites the previous result; downstream rescoring
// makes corrections safe.
func (s *LeagueService) RecordEventResult(
	ctx context.Context,
	eventID sharedtypes.EventID,
	seasonID sharedtypes.SeasonID,
	podium sharedtypes.Podium,
) (RecordResultOutcome, error) {
	s.logger.InfoContext(ctx, "Recording event result",
		attr.ExtractCorrelationID(ctx),
		attr.EventID("event_id", eventID),
		attr.SeasonID("season_id", seasonID),
	)

	return withTelemetry(s, ctx, "RecordEventResult", func(ctx context.Context) (RecordResultOutcome, error) {
		fail := func(reason string) RecordResultOutcome {
			return results.Fail[leagueevents.EventResultEnteredPayloadV1](leagueevents.EventResultEnterFailedPayloadV1{
				EventID:  eventID,
				SeasonID: seasonID,
				Reason:   reason,
			})
		}

		for _, name := range podium.Names() {
			if strings.TrimSpace(name) == "" {
				return fail("podium must name all three positions"), nil
			}
		}

		event, err := s.eventRepo.GetEvent(ctx, eventID)
		if err != nil {
			return fail("failed to load event: " + err.Error()), nil
		}
		if event == nil {
			return fail("unknown event: " + eventID.String()), nil
		}

		result := &leaguedb.EventResult{
			EventID:    eventID,
			FirstID:    podium.First.CompetitorID,
			FirstName:  podium.First.Name,
			SecondID:   podium.Second.CompetitorID,
			SecondName: podium.Second.Name,
			ThirdID:    podium.Third.CompetitorID,
			ThirdName:  podium.Third.Name,
			UpdatedAt:  time.Now().UTC(),
		}
		if err := s.eventRepo.UpsertResult(ctx, result); err != nil {
			return fail("failed to store result: " + err.Error()), nil
		}

		return results.OK[leagueevents.EventResultEnteredPayloadV1, leagueevents.EventResultEnterFailedPayloadV1](leagueevents.EventResultEnteredPayloadV1{
			EventID:  eventID,
			SeasonID: seasonID,
			Podium:   podium,
		}), nil
	})
}
