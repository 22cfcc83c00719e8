package leaguedb

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// SeasonDBImpl implements SeasonRepository on bun.
type SeasonDBImpl struct {
	DB *bun.DB
}

var _ SeasonRepository = (*SeasonDBImpl)(nil)

func (db *SeasonDBImpl) GetSeason(ctx context.Context, seasonID sharedtypes.SeasonID) (*Season, error) {
	var season Season
	err := db.DB.NewSelect().
		Model(&season).
		Where("id = ?", seasonID).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch season %s: %w", seasonID, err)
	}
	return &season, nil
}

func (db *SeasonDBImpl) ListActiveSeasons(ctx context.Context) ([]Season, error) {
	var seasons []Season
	err := db.DB.NewSelect().
		Model(&seasons).
		Where("active = TRUE").
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active seasons: %w", err)
	}
	return seasons, nil
}

func (db *SeasonDBImpl) Upsert(ctx context.Context, season *Season) error {
	_, err := db.DB.NewInsert().
		Model(season).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("best_results_count = EXCLUDED.best_results_count").
		Set("active = EXCLUDED.active").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert season %s: %w", season.ID, err)
	}
	return nil
}

// EventDBImpl implements EventRepository on bun.
type EventDBImpl struct {
	DB *bun.DB
}

var _ EventRepository = (*EventDBImpl)(nil)

func (db *EventDBImpl) ListBySeason(ctx context.Context, seasonID sharedtypes.SeasonID) ([]Event, error) {
	var events []Event
	err := db.DB.NewSelect().
		Model(&events).
		Where("season_id = ?", seasonID).
		Order("starts_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for season %s: %w", seasonID, err)
	}
	return events, nil
}

func (db *EventDBImpl) GetEvent(ctx context.Context, eventID sharedtypes.EventID) (*Event, error) {
	var event Event
	err := db.DB.NewSelect().
		Model(&event).
		Where("id = ?", eventID).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch event %s: %w", eventID, err)
	}
	return &event, nil
}

func (db *EventDBImpl) UpsertEvent(ctx context.Context, event *Event) error {
	_, err := db.DB.NewInsert().
		Model(event).
		On("CONFLICT (id) DO UPDATE").
		Set("season_id = EXCLUDED.season_id").
		Set("name = EXCLUDED.name").
		Set("starts_at = EXCLUDED.starts_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert event %s: %w", event.ID, err)
	}
	return nil
}

func (db *EventDBImpl) GetResult(ctx context.Context, eventID sharedtypes.EventID) (*EventResult, error) {
	var result EventResult
	err := db.DB.NewSelect().
		Model(&result).
		Where("event_id = ?", eventID).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch result for event %s: %w", eventID, err)
	}
	return &result, nil
}

func (db *EventDBImpl) UpsertResult(ctx context.Context, result *EventResult) error {
	result.UpdatedAt = time.Now().UTC()

	_, err := db.DB.NewInsert().
		Model(result).
		On("CONFLICT (event_id) DO UPDATE").
		Set("first_competitor_id = EXCLUDED.first_competitor_id").
		Set("first_name = EXCLUDED.first_name").
		Set("second_competitor_id = EXCLUDED.second_competitor_id").
		Set("second_name = EXCLUDED.second_name").
		Set("third_competitor_id = EXCLUDED.third_competitor_id").
		Set("third_name = EXCLUDED.third_name").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert result for event %s: %w", result.EventID, err)
	}
	return nil
}

// UserDBImpl implements UserRepository on bun.
type UserDBImpl struct {
	DB *bun.DB
}

var _ UserRepository = (*UserDBImpl)(nil)

func (db *UserDBImpl) GetUser(ctx context.Context, userID sharedtypes.UserID) (*User, error) {
	var user User
	err := db.DB.NewSelect().
		Model(&user).
		Where("id = ?", userID).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}
	return &user, nil
}

func (db *UserDBImpl) Upsert(ctx context.Context, user *User) error {
	_, err := db.DB.NewInsert().
		Model(user).
		On("CONFLICT (id) DO UPDATE").
		Set("username = EXCLUDED.username").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert user %s: %w", user.ID, err)
	}
	return nil
}
