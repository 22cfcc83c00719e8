package leaguemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	leaguedb "github.com/gridline-club/podium-bot/app/modules/league/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating league tables...")

		for _, model := range []any{
			(*leaguedb.Season)(nil),
			(*leaguedb.Event)(nil),
			(*leaguedb.EventResult)(nil),
			(*leaguedb.User)(nil),
		} {
			if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
				return err
			}
		}

		if _, err := db.NewCreateIndex().
			Model((*leaguedb.Event)(nil)).
			Index("idx_events_season").
			Column("season_id").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		fmt.Println("League tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping league tables...")

		for _, model := range []any{
			(*leaguedb.User)(nil),
			(*leaguedb.EventResult)(nil),
			(*leaguedb.Event)(nil),
			(*leaguedb.Season)(nil),
		} {
			if _, err := db.NewDropTable().Model(model).IfExists().Exec(ctx); err != nil {
				return err
			}
		}

		fmt.Println("League tables dropped successfully!")
		return nil
	})
}
