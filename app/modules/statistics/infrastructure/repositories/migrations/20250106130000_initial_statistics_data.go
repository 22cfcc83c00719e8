package statisticsmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	statisticsdb "github.com/gridline-club/podium-bot/app/modules/statistics/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating statistics tables...")

		if _, err := db.NewCreateTable().Model((*statisticsdb.UserStatistics)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*statisticsdb.RecalculationJob)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateIndex().
			Model((*statisticsdb.RecalculationJob)(nil)).
			Index("idx_recalculation_jobs_season").
			Column("season_id").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Statistics tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping statistics tables...")

		if _, err := db.NewDropTable().Model((*statisticsdb.RecalculationJob)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*statisticsdb.UserStatistics)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Statistics tables dropped successfully!")
		return nil
	})
}
