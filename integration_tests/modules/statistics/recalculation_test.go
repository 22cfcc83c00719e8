package statisticsintegration

import (
	"context"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	leaguedb "github.com/gridline-club/podium-bot/app/modules/league/infrastructure/repositories"
	predictiondb "github.com/gridline-club/podium-bot/app/modules/prediction/infrastructure/repositories"
	statisticsservice "github.com/gridline-club/podium-bot/app/modules/statistics/application"
	statisticsdb "github.com/gridline-club/podium-bot/app/modules/statistics/infrastructure/repositories"
	"github.com/gridline-club/podium-bot/app/shared/observability"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
	"github.com/gridline-club/podium-bot/integration_tests/containers"
	"github.com/gridline-club/podium-bot/integration_tests/testutils"
)

// TestSeasonRecalculationEndToEnd runs a full recalculation against a real
// Postgres schema: seed league data and scored predictions, run the job,
// and read the statistics back.
func TestSeasonRecalculationEndToEnd(t *testing.T) {
	if testing.Short() || os.Getenv("SKIP_DOCKER_TESTS") != "" {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	pgContainer, dsn, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		t.Fatalf("failed to start postgres: %v", err)
	}
	t.Cleanup(func() { pgContainer.Terminate(context.Background()) })

	db, err := testutils.NewBunDB(ctx, dsn)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := testutils.RunMigrations(ctx, db, dsn); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	seasonRepo := &leaguedb.SeasonDBImpl{DB: db}
	eventRepo := &leaguedb.EventDBImpl{DB: db}
	userRepo := &leaguedb.UserDBImpl{DB: db}
	predictionRepo := &predictiondb.PredictionDBImpl{DB: db}
	statsRepo := &statisticsdb.StatisticsDBImpl{DB: db}
	jobRepo := &statisticsdb.JobDBImpl{DB: db}

	gen := testutils.NewDataGenerator(42)

	bestN := 2
	season := gen.GenerateSeason(&bestN)
	if err := seasonRepo.Upsert(ctx, season); err != nil {
		t.Fatalf("failed to seed season: %v", err)
	}

	user := gen.GenerateUser()
	if err := userRepo.Upsert(ctx, user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	// Three events with scored predictions worth 25, 15, and 0. Best-2
	// should pick 40 of the 40 total anyway, but leave the 0 out.
	points := []int{25, 15, 0}
	for _, p := range points {
		event := gen.GenerateEvent(season.ID)
		if err := eventRepo.UpsertEvent(ctx, event); err != nil {
			t.Fatalf("failed to seed event: %v", err)
		}

		podium := gen.GeneratePodium()
		if err := eventRepo.UpsertResult(ctx, gen.GenerateEventResult(event.ID, podium)); err != nil {
			t.Fatalf("failed to seed result: %v", err)
		}

		prediction := gen.GeneratePrediction(event.ID, user.ID)
		earned := p
		prediction.PointsEarned = &earned
		if err := predictionRepo.Upsert(ctx, prediction); err != nil {
			t.Fatalf("failed to seed prediction: %v", err)
		}
	}

	obs := observability.NewNoOp()
	svc := statisticsservice.NewStatisticsService(
		statsRepo, jobRepo, predictionRepo,
		seasonRepo, eventRepo, userRepo,
		obs.Logger, observability.NoOpMetrics{}, obs.Tracer,
	)

	result, err := svc.StartSeasonRecalculation(ctx, season.ID)
	if err != nil {
		t.Fatalf("failed to start recalculation: %v", err)
	}
	if !result.IsSuccess() {
		t.Fatalf("start failed: %+v", result)
	}
	svc.Wait()

	job, err := jobRepo.Get(ctx, result.Success.JobID)
	if err != nil {
		t.Fatalf("failed to load job: %v", err)
	}
	if job == nil || job.Status != sharedtypes.JobStatusCompleted {
		t.Fatalf("job = %+v, want completed", job)
	}
	if job.TotalUsers != 1 || job.ProcessedUsers != 1 {
		t.Errorf("progress = %d/%d, want 1/1", job.ProcessedUsers, job.TotalUsers)
	}

	stats, err := statsRepo.ListBySeason(ctx, season.ID)
	if err != nil {
		t.Fatalf("failed to list statistics: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("statistics rows = %d, want 1", len(stats))
	}

	got := stats[0]
	if got.UserID != user.ID || got.Username != user.Username {
		t.Errorf("row identity = %s/%s, want %s/%s", got.UserID, got.Username, user.ID, user.Username)
	}
	if got.TotalPoints != 40 {
		t.Errorf("TotalPoints = %d, want 40", got.TotalPoints)
	}
	if got.BestResultsPoints == nil || *got.BestResultsPoints != 40 {
		t.Errorf("BestResultsPoints = %v, want 40", got.BestResultsPoints)
	}
	if got.PredictionsCount != 3 {
		t.Errorf("PredictionsCount = %d, want 3", got.PredictionsCount)
	}
	if got.LastUpdated.After(time.Now().Add(time.Minute)) {
		t.Errorf("LastUpdated in the future: %v", got.LastUpdated)
	}
}
