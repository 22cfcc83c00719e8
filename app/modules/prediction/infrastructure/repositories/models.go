package predictiondb

import (
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// Prediction is a user's guessed podium for one event. PointsEarned stays
// NULL until the event's result is recorded; rescoring always overwrites it.
type Prediction struct {
	bun.BaseModel `bun:"table:predictions,alias:p"`

	EventID    sharedtypes.EventID `bun:"event_id,pk"`
	UserID     sharedtypes.UserID  `bun:"user_id,pk"`
	FirstID    string              `bun:"first_competitor_id,notnull"`
	FirstName  string              `bun:"first_name,notnull"`
	SecondID   string              `bun:"second_competitor_id,notnull"`
	SecondName string              `bun:"second_name,notnull"`
	ThirdID    string              `bun:"third_competitor_id,notnull"`
	ThirdName  string              `bun:"third_name,notnull"`

	PointsEarned *int `bun:"points_earned"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// PredictedNames returns the predicted display names in podium order.
func (p *Prediction) PredictedNames() [3]string {
	return [3]string{p.FirstName, p.SecondName, p.ThirdName}
}

// ScoringRules are the per-season point constants. Absence of a row means
// the defaults apply.
type ScoringRules struct {
	bun.BaseModel `bun:"table:scoring_rules,alias:sr"`

	SeasonID         sharedtypes.SeasonID `bun:"season_id,pk"`
	ExactMatchPoints int                  `bun:"exact_match_points,notnull"`
	OneOffPoints     int                  `bun:"one_off_points,notnull"`
	TwoOffPoints     int                  `bun:"two_off_points,notnull"`
	UpdatedAt        time.Time            `bun:"updated_at,notnull,default:current_timestamp"`
}
