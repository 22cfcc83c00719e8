package predictionmigrations

import "github.com/uptrace/bun/migrate"

var Migrations = migrate.NewMigrations()

func init() {
	// Enable automatic discovery of the caller file name so each migration
	// registered with MustRegister gets a stable ID from its file name.
	if err := Migrations.DiscoverCaller(); err != nil {
		panic(err)
	}
}
