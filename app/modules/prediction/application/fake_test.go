package predictionservice

import (
	"context"

	leaguedb "github.com/gridline-club/podium-bot/app/modules/league/infrastructure/repositories"
	predictiondb "github.com/gridline-club/podium-bot/app/modules/prediction/infrastructure/repositories"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// ------------------------
// Fake Prediction Repo
// ------------------------

// FakePredictionRepository provides a programmable stub for the
// predictiondb.Repository interface.
type FakePredictionRepository struct {
	trace []string

	ListByEventFunc         func(ctx context.Context, eventID sharedtypes.EventID) ([]predictiondb.Prediction, error)
	ListScoredForEventsFunc func(ctx context.Context, eventIDs []sharedtypes.EventID) ([]predictiondb.Prediction, error)
	UpsertFunc              func(ctx context.Context, prediction *predictiondb.Prediction) error

	// Upserted records every prediction written, in order.
	Upserted []predictiondb.Prediction
}

func NewFakePredictionRepository() *FakePredictionRepository {
	return &FakePredictionRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakePredictionRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakePredictionRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakePredictionRepository) ListByEvent(ctx context.Context, eventID sharedtypes.EventID) ([]predictiondb.Prediction, error) {
	f.record("ListByEvent")
	if f.ListByEventFunc != nil {
		return f.ListByEventFunc(ctx, eventID)
	}
	return nil, nil
}

func (f *FakePredictionRepository) ListScoredForEvents(ctx context.Context, eventIDs []sharedtypes.EventID) ([]predictiondb.Prediction, error) {
	f.record("ListScoredForEvents")
	if f.ListScoredForEventsFunc != nil {
		return f.ListScoredForEventsFunc(ctx, eventIDs)
	}
	return nil, nil
}

func (f *FakePredictionRepository) Upsert(ctx context.Context, prediction *predictiondb.Prediction) error {
	f.record("Upsert")
	if f.UpsertFunc != nil {
		if err := f.UpsertFunc(ctx, prediction); err != nil {
			return err
		}
	}
	f.Upserted = append(f.Upserted, *prediction)
	return nil
}

var _ predictiondb.Repository = (*FakePredictionRepository)(nil)

// ------------------------
// Fake Rules Repo
// ------------------------

type FakeRulesRepository struct {
	GetForSeasonFunc func(ctx context.Context, seasonID sharedtypes.SeasonID) (*predictiondb.ScoringRules, error)
	UpsertFunc       func(ctx context.Context, rules *predictiondb.ScoringRules) error
	LastUpserted     *predictiondb.ScoringRules
}

func (f *FakeRulesRepository) GetForSeason(ctx context.Context, seasonID sharedtypes.SeasonID) (*predictiondb.ScoringRules, error) {
	if f.GetForSeasonFunc != nil {
		return f.GetForSeasonFunc(ctx, seasonID)
	}
	return nil, nil
}

func (f *FakeRulesRepository) Upsert(ctx context.Context, rules *predictiondb.ScoringRules) error {
	f.LastUpserted = rules
	if f.UpsertFunc != nil {
		return f.UpsertFunc(ctx, rules)
	}
	return nil
}

var _ predictiondb.RulesRepository = (*FakeRulesRepository)(nil)

// ------------------------
// Fake Event Repo (league collaborator)
// ------------------------

type FakeEventRepository struct {
	ListBySeasonFunc func(ctx context.Context, seasonID sharedtypes.SeasonID) ([]leaguedb.Event, error)
	GetEventFunc     func(ctx context.Context, eventID sharedtypes.EventID) (*leaguedb.Event, error)
	UpsertEventFunc  func(ctx context.Context, event *leaguedb.Event) error
	GetResultFunc    func(ctx context.Context, eventID sharedtypes.EventID) (*leaguedb.EventResult, error)
	UpsertResultFunc func(ctx context.Context, result *leaguedb.EventResult) error
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
		return f.UpsertResultFunc(ctx, result)
	}
	return nil
}

var _ leaguedb.EventRepository = (*FakeEventRepository)(nil)
