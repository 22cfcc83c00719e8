// Package prediction wires the prediction module: repositories, the
// scoring service, and its watermill handlers.
package prediction

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	"github.com/gridline-club/podium-bot/app/eventbus"
	leaguedb "github.com/gridline-club/podium-bot/app/modules/league/infrastructure/repositories"
	predictionservice "github.com/gridline-club/podium-bot/app/modules/prediction/application"
	predictionhandlers "github.com/gridline-club/podium-bot/app/modules/prediction/infrastructure/handlers"
	predictionrouter "github.com/gridline-club/podium-bot/app/modules/prediction/infrastructure/router"
	predictiondb "github.com/gridline-club/podium-bot/app/modules/prediction/infrastructure/repositories"
	"github.com/gridline-club/podium-bot/app/shared/observability"
	"github.com/gridline-club/podium-bot/app/shared/utils"
)

// Module represents the prediction module.
type Module struct {
	Service    predictionservice.Service
	Router     *predictionrouter.PredictionRouter
	logger     *slog.Logger
	cancelFunc context.CancelFunc
}

// NewPredictionModule creates a new prediction module instance.
func NewPredictionModule(
	ctx context.Context,
	obs *observability.Observability,
	metrics observability.OperationMetrics,
	repo predictiondb.Repository,
	rulesRepo predictiondb.RulesRepository,
	eventRepo leaguedb.EventRepository,
	bus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
	tracer trace.Tracer,
) (*Module, error) {
	service := predictionservice.NewPredictionService(repo, rulesRepo, eventRepo, obs.Logger, metrics, tracer)

	handlers := predictionhandlers.NewPredictionHandlers(service, obs.Logger, tracer, helpers)

	moduleRouter := predictionrouter.NewPredictionRouter(obs.Logger, router, bus)
	if err := moduleRouter.Configure(ctx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure prediction router: %w", err)
	}

	return &Module{
		Service: service,
		Router:  moduleRouter,
		logger:  obs.Logger,
	}, nil
}

// Run keeps the module alive until the context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	m.logger.Info("Prediction module stopped")
}

// Close cancels any running operations.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
