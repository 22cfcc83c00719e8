package predictionmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	predictiondb "github.com/gridline-club/podium-bot/app/modules/prediction/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating prediction tables...")

		if _, err := db.NewCreateTable().Model((*predictiondb.Prediction)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*predictiondb.ScoringRules)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateIndex().
			Model((*predictiondb.Prediction)(nil)).
			Index("idx_predictions_event_scored").
			Column("event_id").
			Where("points_earned IS NOT NULL").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Prediction tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping prediction tables...")

		if _, err := db.NewDropTable().Model((*predictiondb.ScoringRules)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*predictiondb.Prediction)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Prediction tables dropped successfully!")
		return nil
	})
}
