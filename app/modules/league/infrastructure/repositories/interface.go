package leaguedb

import (
	"context"

	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// SeasonRepository is the season store. GetSeason returns nil when the
// season does not exist.
type SeasonRepository interface {
	GetSeason(ctx context.Context, seasonID sharedtypes.SeasonID) (*Season, error)
	ListActiveSeasons(ctx context.Context) ([]Season, error)
	Upsert(ctx context.Context, season *Season) error
}

// EventRepository is the event and event-result store. GetResult returns
// nil when no result has been recorded yet.
type EventRepository interface {
	ListBySeason(ctx context.Context, seasonID sharedtypes.SeasonID) ([]Event, error)
	GetEvent(ctx context.Context, eventID sharedtypes.EventID) (*Event, error)
	UpsertEvent(ctx context.Context, event *Event) error
	GetResult(ctx context.Context, eventID sharedtypes.EventID) (*EventResult, error)
	UpsertResult(ctx context.Context, result *EventResult) error
}

// UserRepository is the user store. GetUser returns nil when unknown.
type UserRepository interface {
	GetUser(ctx context.Context, userID sharedtypes.UserID) (*User, error)
	Upsert(ctx context.Context, user *User) error
}
