package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	leaguedb "github.com/gridline-club/podium-bot/app/modules/league/infrastructure/repositories"
	predictiondb "github.com/gridline-club/podium-bot/app/modules/prediction/infrastructure/repositories"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// DataGenerator creates realistic test rows with fresh random identifiers.
type DataGenerator struct {
	faker *gofakeit.Faker
}

// NewDataGenerator creates a seeded generator; the same seed reproduces the
// same data.
func NewDataGenerator(seed uint64) *DataGenerator {
	return &DataGenerator{faker: gofakeit.New(seed)}
}

// GenerateSeason creates a season, optionally with a best-N count.
func (g *DataGenerator) GenerateSeason(bestResultsCount *int) *leaguedb.Season {
	return &leaguedb.Season{
		ID:               sharedtypes.SeasonID(uuid.New().String()),
		Name:             fmt.Sprintf("%s %d", g.faker.Word(), g.faker.Year()),
		BestResultsCount: bestResultsCount,
		Active:           true,
		CreatedAt:        time.Now().UTC(),
	}
}

// GenerateEvent creates an event in the given season.
func (g *DataGenerator) GenerateEvent(seasonID sharedtypes.SeasonID) *leaguedb.Event {
	return &leaguedb.Event{
		ID:       sharedtypes.EventID(uuid.New().String()),
		SeasonID: seasonID,
		Name:     g.faker.City() + " Grand Prix",
		StartsAt: g.faker.DateRange(time.Now().AddDate(0, -6, 0), time.Now()),
	}
}

// GenerateUser creates a user with a fake username.
func (g *DataGenerator) GenerateUser() *leaguedb.User {
	return &leaguedb.User{
		ID:        sharedtypes.UserID(uuid.New().String()),
		Username:  g.faker.Username(),
		CreatedAt: time.Now().UTC(),
	}
}

// GeneratePodium creates three distinct competitors.
func (g *DataGenerator) GeneratePodium() sharedtypes.Podium {
	return sharedtypes.Podium{
		First:  g.podiumSlot(),
		Second: g.podiumSlot(),
		Third:  g.podiumSlot(),
	}
}

func (g *DataGenerator) podiumSlot() sharedtypes.PodiumSlot {
	return sharedtypes.PodiumSlot{
		CompetitorID: uuid.New().String(),
		Name:         g.faker.LastName(),
	}
}

// GeneratePrediction creates an unscored prediction for the given event and
// user.
func (g *DataGenerator) GeneratePrediction(eventID sharedtypes.EventID, userID sharedtypes.UserID) *predictiondb.Prediction {
	podium := g.GeneratePodium()
	now := time.Now().UTC()
	return &predictiondb.Prediction{
		EventID:    eventID,
		UserID:     userID,
		FirstID:    podium.First.CompetitorID,
		FirstName:  podium.First.Name,
		SecondID:   podium.Second.CompetitorID,
		SecondName: podium.Second.Name,
		ThirdID:    podium.Third.CompetitorID,
		ThirdName:  podium.Third.Name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// GenerateEventResult records a podium as the event's actual result.
func (g *DataGenerator) GenerateEventResult(eventID sharedtypes.EventID, podium sharedtypes.Podium) *leaguedb.EventResult {
	return &leaguedb.EventResult{
		EventID:    eventID,
		FirstID:    podium.First.CompetitorID,
		FirstName:  podium.First.Name,
		SecondID:   podium.Second.CompetitorID,
		SecondName: podium.Second.Name,
		ThirdID:    podium.Third.CompetitorID,
		ThirdName:  podium.Third.Name,
		UpdatedAt:  time.Now().UTC(),
	}
}
