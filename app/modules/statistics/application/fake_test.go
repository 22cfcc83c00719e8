package statisticsservice

import (
	"context"

	leaguedb "github.com/gridline-club/podium-bot/app/modules/league/infrastructure/repositories"
	predictiondb "github.com/gridline-club/podium-bot/app/modules/prediction/infrastructure/repositories"
	statisticsdb "github.com/gridline-club/podium-bot/app/modules/statistics/infrastructure/repositories"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// ------------------------
// Fake Statistics Repo
// ------------------------

type FakeStatisticsRepository struct {
	UpsertFunc       func(ctx context.Context, stats *statisticsdb.UserStatistics) error
	ListBySeasonFunc func(ctx context.Context, seasonID sharedtypes.SeasonID) ([]statisticsdb.UserStatistics, error)

	// Upserted records every statistics row written, in order.
	Upserted []statisticsdb.UserStatistics
}

func (f *FakeStatisticsRepository) Upsert(ctx context.Context, stats *statisticsdb.UserStatistics) error {
	if f.UpsertFunc != nil {
		if err := f.UpsertFunc(ctx, stats); err != nil {
			return err
		}
	}
	f.Upserted = append(f.Upserted, *stats)
	return nil
}

func (f *FakeStatisticsRepository) ListBySeason(ctx context.Context, seasonID sharedtypes.SeasonID) ([]statisticsdb.UserStatistics, error) {
	if f.ListBySeasonFunc != nil {
		return f.ListBySeasonFunc(ctx, seasonID)
	}
	return nil, nil
}

var _ statisticsdb.Repository = (*FakeStatisticsRepository)(nil)

// ------------------------
// Fake Job Repo
// ------------------------

// FakeJobRepository stores jobs in memory and snapshots every write so tests
// can assert on the progression of the job record.
type FakeJobRepository struct {
	SaveFunc   func(ctx context.Context, job *statisticsdb.RecalculationJob) error
	UpdateFunc func(ctx context.Context, job *statisticsdb.RecalculationJob) error
	GetFunc    func(ctx context.Context, jobID sharedtypes.JobID) (*statisticsdb.RecalculationJob, error)

	jobs      map[sharedtypes.JobID]statisticsdb.RecalculationJob
	Snapshots []statisticsdb.RecalculationJob
}

func NewFakeJobRepository() *FakeJobRepository {
	return &FakeJobRepository{jobs: map[sharedtypes.JobID]statisticsdb.RecalculationJob{}}
}

func (f *FakeJobRepository) Save(ctx context.Context, job *statisticsdb.RecalculationJob) error {
	if f.SaveFunc != nil {
		if err := f.SaveFunc(ctx, job); err != nil {
			return err
		}
	}
	f.jobs[job.ID] = *job
	f.Snapshots = append(f.Snapshots, *job)
	return nil
}

func (f *FakeJobRepository) Update(ctx context.Context, job *statisticsdb.RecalculationJob) error {
	if f.UpdateFunc != nil {
		if err := f.UpdateFunc(ctx, job); err != nil {
			return err
		}
	}
	f.jobs[job.ID] = *job
	f.Snapshots = append(f.Snapshots, *job)
	return nil
}

func (f *FakeJobRepository) Get(ctx context.Context, jobID sharedtypes.JobID) (*statisticsdb.RecalculationJob, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, jobID)
	}
	job, ok := f.jobs[jobID]
	if !ok {
		return nil, nil
	}
	return &job, nil
}

var _ statisticsdb.JobRepository = (*FakeJobRepository)(nil)

// ------------------------
// Fake league collaborators
// ------------------------

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

// ------------------------
// Fake Prediction Repo (prediction collaborator)
// ------------------------

type FakePredictionRepository struct {
	ListByEventFunc         func(ctx context.Context, eventID sharedtypes.EventID) ([]predictiondb.Prediction, error)
	ListScoredForEventsFunc func(ctx context.Context, eventIDs []sharedtypes.EventID) ([]predictiondb.Prediction, error)
	UpsertFunc              func(ctx context.Context, prediction *predictiondb.Prediction) error
}

func (f *FakePredictionRepository) ListByEvent(ctx context.Context, eventID sharedtypes.EventID) ([]predictiondb.Prediction, error) {
	if f.ListByEventFunc != nil {
		return f.ListByEventFunc(ctx, eventID)
	}
	return nil, nil
}

func (f *FakePredictionRepository) ListScoredForEvents(ctx context.Context, eventIDs []sharedtypes.EventID) ([]predictiondb.Prediction, error) {
	if f.ListScoredForEventsFunc != nil {
		return f.ListScoredForEventsFunc(ctx, eventIDs)
	}
	return nil, nil
}

func (f *FakePredictionRepository) Upsert(ctx context.Context, prediction *predictiondb.Prediction) error {
	if f.UpsertFunc != nil {
		return f.UpsertFunc(ctx, prediction)
	}
	return nil
}

var _ predictiondb.Repository = (*FakePredictionRepository)(nil)
