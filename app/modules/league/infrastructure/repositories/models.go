package leaguedb

import (
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// Season is one competition season. BestResultsCount, when set, selects the
// "best N" secondary ranking metric for the season's statistics.
type Season struct {
	bun.BaseModel `bun:"table:seasons,alias:s"`

	ID               sharedtypes.SeasonID `bun:"id,pk"`
	Name             string               `bun:"name,notnull"`
	BestResultsCount *int                 `bun:"best_results_count"`
	Active           bool                 `bun:"active,notnull,default:true"`
	CreatedAt        time.Time            `bun:"created_at,notnull,default:current_timestamp"`
}

// Event is a single competitive event within a season.
type Event struct {
	bun.BaseModel `bun:"table:events,alias:e"`

	ID       sharedtypes.EventID  `bun:"id,pk"`
	SeasonID sharedtypes.SeasonID `bun:"season_id,notnull"`
	Name     string               `bun:"name,notnull"`
	StartsAt time.Time            `bun:"starts_at,notnull"`
}

// EventResult is the authoritative actual podium for one event. At most one
// row per event; admin corrections overwrite it.
type EventResult struct {
	bun.BaseModel `bun:"table:event_results,alias:er"`

	EventID    sharedtypes.EventID `bun:"event_id,pk"`
	FirstID    string              `bun:"first_competitor_id,notnull"`
	FirstName  string              `bun:"first_name,notnull"`
	SecondID   string              `bun:"second_competitor_id,notnull"`
	SecondName string              `bun:"second_name,notnull"`
	ThirdID    string              `bun:"third_competitor_id,notnull"`
	ThirdName  string              `bun:"third_name,notnull"`
	UpdatedAt  time.Time           `bun:"updated_at,notnull,default:current_timestamp"`
}

// ActualNames returns the recorded podium names in finishing order.
func (r *EventResult) ActualNames() [3]string {
	return [3]string{r.FirstName, r.SecondName, r.ThirdName}
}

// Podium converts the stored result to the shared podium type.
func (r *EventResult) Podium() sharedtypes.Podium {
	return sharedtypes.Podium{
		First:  sharedtypes.PodiumSlot{CompetitorID: r.FirstID, Name: r.FirstName},
		Second: sharedtypes.PodiumSlot{CompetitorID: r.SecondID, Name: r.SecondName},
		Third:  sharedtypes.PodiumSlot{CompetitorID: r.ThirdID, Name: r.ThirdName},
	}
}

// User is a registered player; Username is denormalized into statistics.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        sharedtypes.UserID `bun:"id,pk"`
	Username  string             `bun:"username,notnull"`
	CreatedAt time.Time          `bun:"created_at,notnull,default:current_timestamp"`
}
