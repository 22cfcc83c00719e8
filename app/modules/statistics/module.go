// Package statistics wires the statistics module: repositories, the
// recalculation service, its watermill handlers, and the River scheduler.
package statistics

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	"github.com/gridline-club/podium-bot/app/eventbus"
	leaguedb "github.com/gridline-club/podium-bot/app/modules/league/infrastructure/repositories"
	predictiondb "github.com/gridline-club/podium-bot/app/modules/prediction/infrastructure/repositories"
	statisticsservice "github.com/gridline-club/podium-bot/app/modules/statistics/application"
	statisticshandlers "github.com/gridline-club/podium-bot/app/modules/statistics/infrastructure/handlers"
	statisticsqueue "github.com/gridline-club/podium-bot/app/modules/statistics/infrastructure/queue"
	statisticsrouter "github.com/gridline-club/podium-bot/app/modules/statistics/infrastructure/router"
	statisticsdb "github.com/gridline-club/podium-bot/app/modules/statistics/infrastructure/repositories"
	"github.com/gridline-club/podium-bot/app/shared/observability"
	"github.com/gridline-club/podium-bot/app/shared/utils"
	"github.com/gridline-club/podium-bot/config"
)

// Module represents the statistics module.
type Module struct {
	Service    statisticsservice.Service
	Router     *statisticsrouter.StatisticsRouter
	Queue      statisticsqueue.QueueService
	service    *statisticsservice.StatisticsService
	logger     *slog.Logger
	cancelFunc context.CancelFunc
}

// NewStatisticsModule creates a new statistics module instance.
func NewStatisticsModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	metrics observability.OperationMetrics,
	statsRepo statisticsdb.Repository,
	jobRepo statisticsdb.JobRepository,
	predictionRepo predictiondb.Repository,
	seasonRepo leaguedb.SeasonRepository,
	eventRepo leaguedb.EventRepository,
	userRepo leaguedb.UserRepository,
	bus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
	tracer trace.Tracer,
) (*Module, error) {
	service := statisticsservice.NewStatisticsService(
		statsRepo, jobRepo, predictionRepo,
		seasonRepo, eventRepo, userRepo,
		obs.Logger, metrics, tracer,
	)

	handlers := statisticshandlers.NewStatisticsHandlers(service, obs.Logger, tracer, helpers)

	moduleRouter := statisticsrouter.NewStatisticsRouter(obs.Logger, router, bus)
	if err := moduleRouter.Configure(ctx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure statistics router: %w", err)
	}

	queue, err := statisticsqueue.NewService(
		ctx,
		cfg.Postgres.DSN,
		cfg.Recalculation.ScheduleInterval,
		obs.Logger,
		service,
		seasonRepo,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create statistics queue service: %w", err)
	}

	return &Module{
		Service: service,
		Router:  moduleRouter,
		Queue:   queue,
		service: service,
		logger:  obs.Logger,
	}, nil
}

// Run starts the scheduler and keeps the module alive until the context is
// canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	if err := m.Queue.Start(ctx); err != nil {
		m.logger.Error("Failed to start statistics queue", slog.Any("error", err))
	}

	<-ctx.Done()
	m.logger.Info("Statistics module stopped")
}

// Close stops the scheduler and drains in-flight recalculation workers.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}

	stopCtx := context.Background()
	if err := m.Queue.Stop(stopCtx); err != nil {
		m.logger.Error("Failed to stop statistics queue", slog.Any("error", err))
	}

	m.service.Wait()
	return nil
}
