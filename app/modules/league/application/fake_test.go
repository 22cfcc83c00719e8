package leagueservice

import (
	"context"

	leaguedb "github.com/gridline-club/podium-bot/app/modules/league/infrastructure/repositories"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

type FakeSeasonRepository struct {
	GetSeasonFunc         func(ctx context.Context, seasonID sharedtypes.SeasonID) (*leaguedb.Season, error)
	ListActiveSeasonsFunc func(ctx context.Context) ([]leaguedb.Season, error)
	UpsertFunc            func(ctx context.Context, season *leaguedb.Season) error
}

func (f *FakeSeasonRepository) GetSeason(ctx context.Context, seasonID sharedtypes.SeasonID) (*leaguedb.Season, error) {
	if f.GetSeasonFunc != nil {
		return f.GetSeasonFunc(ctx, seasonID)
	}
	return &leaguedb.Season{ID: seasonID, Name: string(seasonID)}, nil
}

func (f *FakeSeasonRepository) ListActiveSeasons(ctx context.Context) ([]leaguedb.Season, error) {
	if f.ListActiveSeasonsFunc != nil {
		return f.ListActiveSeasonsFunc(ctx)
	}
	return nil, nil
}

func (f *FakeSeasonRepository) Upsert(ctx context.Context, season *leaguedb.Season) error {
	if f.UpsertFunc != nil {
		return f.UpsertFunc(ctx, season)
	}
	return nil
}

var _ leaguedb.SeasonRepository = (*FakeSeasonRepository)(nil)

type FakeEventRepository struct {
	ListBySeasonFunc func(ctx context.Context, seasonID sharedtypes.SeasonID) ([]leaguedb.Event, error)
	GetEventFunc     func(ctx context.Context, eventID sharedtypes.EventID) (*leaguedb.Event, error)
	UpsertEventFunc  func(ctx context.Context, event *leaguedb.Event) error
	GetResultFunc    func(ctx context.Context, eventID sharedtypes.EventID) (*leaguedb.EventResult, error)
	UpsertResultFunc func(ctx context.Context, result *leaguedb.EventResult) error

	// UpsertedResults records every result written, in order.
	UpsertedResults []leaguedb.EventResult
}

func (f *FakeEventRepository) ListBySeason(ctx context.Context, seasonID sharedtypes.SeasonID) ([]leaguedb.Event, error) {
	if f.ListBySeasonFunc != nil {
		return f.ListBySeasonFunc(ctx, seasonID)
	}
	return nil, nil
}

func (f *FakeEventRepository) GetEvent(ctx context.Context, eventID sharedtypes.EventID) (*leaguedb.Event, error) {
	if f.GetEventFunc != nil {
		return f.GetEventFunc(ctx, eventID)
	}
	return &leaguedb.Event{ID: eventID}, nil
}

func (f *FakeEventRepository) UpsertEvent(ctx context.Context, event *leaguedb.Event) error {
	if f.UpsertEventFunc != nil {
		return f.UpsertEventFunc(ctx, event)
	}
	return nil
}

func (f *FakeEventRepository) GetResult(ctx context.Context, eventID sharedtypes.EventID) (*leaguedb.EventResult, error) {
	if f.GetResultFunc != nil {
		return f.GetResultFunc(ctx, eventID)
	}
	return nil, nil
}

func (f *FakeEventRepository) UpsertResult(ctx context.Context, result *leaguedb.EventResult) error {
	if f.UpsertResultFunc != nil {
		if err := f.UpsertResultFunc(ctx, result); err != nil {
			return err
		}
	}
	f.UpsertedResults = append(f.UpsertedResults, *result)
	return nil
}

var _ leaguedb.EventRepository = (*FakeEventRepository)(nil)

type FakeUserRepository struct {
	GetUserFunc func(ctx context.Context, userID sharedtypes.UserID) (*leaguedb.User, error)
	UpsertFunc  func(ctx context.Context, user *leaguedb.User) error
}

func (f *FakeUserRepository) GetUser(ctx context.Context, userID sharedtypes.UserID) (*leaguedb.User, error) {
	if f.GetUserFunc != nil {
		return f.GetUserFunc(ctx, userID)
	}
	return &leaguedb.User{ID: userID, Username: "user-" + string(userID)}, nil
}

func (f *FakeUserRepository) Upsert(ctx context.Context, user *leaguedb.User) error {
	if f.UpsertFunc != nil {
		return f.UpsertFunc(ctx, user)
	}
	return nil
}

var _ leaguedb.UserRepository = (*FakeUserRepository)(nil)
