// Package app assembles the application: configuration, observability,
// storage, the event bus, the shared watermill router, and the modules.
package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmmetrics "github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gridline-club/podium-bot/app/eventbus"
	"github.com/gridline-club/podium-bot/app/modules/league"
	"github.com/gridline-club/podium-bot/app/modules/prediction"
	"github.com/gridline-club/podium-bot/app/modules/statistics"
	"github.com/gridline-club/podium-bot/app/shared/attr"
	"github.com/gridline-club/podium-bot/app/shared/observability"
	"github.com/gridline-club/podium-bot/app/shared/utils"
	"github.com/gridline-club/podium-bot/config"
	"github.com/gridline-club/podium-bot/db/bundb"
)

// App holds the assembled application.
type App struct {
	Config          *config.Config
	Observability   *observability.Observability
	WatermillRouter *message.Router
	EventBus        eventbus.EventBus

	LeagueModule     *league.Module
	PredictionModule *prediction.Module
	StatisticsModule *statistics.Module

	db            *bundb.DBService
	helpers       utils.Helpers
	metricsServer *http.Server
	cancelFunc    context.CancelFunc
}

// Initialize builds every component and wires the modules onto one shared
// router. Nothing starts processing until Run.
func (app *App) Initialize(ctx context.Context, cfg *config.Config, obs *observability.Observability) error {
	app.Config = cfg
	app.Observability = obs
	app.helpers = utils.NewHelpers()

	metrics := observability.NewOperationMetrics(obs.Registry)

	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("failed to initialize database service: %w", err)
	}
	app.db = dbService

	bus, err := eventbus.NewEventBus(ctx, cfg.NATS.URL, obs.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize event bus: %w", err)
	}
	app.EventBus = bus

	router, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(obs.Logger))
	if err != nil {
		return fmt.Errorf("failed to create watermill router: %w", err)
	}
	// Middleware is applied once here; module routers only add handlers.
	router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
		middleware.Retry{
			MaxRetries:      3,
			InitialInterval: 100 * time.Millisecond,
			Logger:          watermill.NewSlogLogger(obs.Logger),
		}.Middleware,
	)
	addRouterMetrics(router, obs.Registry)
	app.WatermillRouter = router

	leagueModule, err := league.NewLeagueModule(
		ctx, cfg, obs, metrics,
		dbService.SeasonDB, dbService.EventDB, dbService.UserDB,
		bus, router, app.helpers, obs.Tracer,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize league module: %w", err)
	}
	app.LeagueModule = leagueModule

	predictionModule, err := prediction.NewPredictionModule(
		ctx, obs, metrics,
		dbService.PredictionDB, dbService.RulesDB, dbService.EventDB,
		bus, router, app.helpers, obs.Tracer,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize prediction module: %w", err)
	}
	app.PredictionModule = predictionModule

	statisticsModule, err := statistics.NewStatisticsModule(
		ctx, cfg, obs, metrics,
		dbService.StatisticsDB, dbService.JobDB, dbService.PredictionDB,
		dbService.SeasonDB, dbService.EventDB, dbService.UserDB,
		bus, router, app.helpers, obs.Tracer,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize statistics module: %w", err)
	}
	app.StatisticsModule = statisticsModule

	app.metricsServer = &http.Server{
		Addr:    cfg.Observability.MetricsAddress,
		Handler: obs.MetricsHandler(),
	}

	return nil
}

// addRouterMetrics instruments every handler on the shared router with the
// watermill Prometheus metrics (handler execution time, publish counters).
func addRouterMetrics(router *message.Router, registry *prometheus.Registry) {
	builder := wmmetrics.NewPrometheusMetricsBuilder(registry, "", "")
	builder.AddPrometheusRouterMetrics(router)
}

// Run starts the router, the modules, and the metrics endpoint, then blocks
// until the context is canceled.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	app.cancelFunc = cancel
	defer cancel()

	logger := app.Observability.Logger

	go func() {
		logger.Info("Serving metrics", attr.String("address", app.metricsServer.Addr))
		if err := app.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Metrics server stopped", attr.Error(err))
		}
	}()

	var wg sync.WaitGroup
	wg.Add(3)
	go app.LeagueModule.Run(ctx, &wg)
	go app.PredictionModule.Run(ctx, &wg)
	go app.StatisticsModule.Run(ctx, &wg)

	routerDone := make(chan error, 1)
	go func() {
		routerDone <- app.WatermillRouter.Run(ctx)
	}()

	select {
	case err := <-routerDone:
		if err != nil {
			return fmt.Errorf("watermill router stopped: %w", err)
		}
	case <-ctx.Done():
	}

	wg.Wait()
	return nil
}

// Close shuts everything down in reverse order of startup.
func (app *App) Close() {
	logger := app.Observability.Logger

	if app.cancelFunc != nil {
		app.cancelFunc()
	}

	if app.WatermillRouter != nil {
		if err := app.WatermillRouter.Close(); err != nil {
			logger.Error("Failed to close watermill router", attr.Error(err))
		}
	}

	for name, closer := range map[string]func() error{
		"league module":     app.LeagueModule.Close,
		"prediction module": app.PredictionModule.Close,
		"statistics module": app.StatisticsModule.Close,
	} {
		if err := closer(); err != nil {
			logger.Error("Failed to close "+name, attr.Error(err))
		}
	}

	if app.EventBus != nil {
		if err := app.EventBus.Close(); err != nil {
			logger.Error("Failed to close event bus", attr.Error(err))
		}
	}

	if app.db != nil {
		if err := app.db.GetDB().Close(); err != nil {
			logger.Error("Failed to close database", attr.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down metrics server", attr.Error(err))
	}
}
