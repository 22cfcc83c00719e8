// Package league wires the league module: repositories, the result entry
// service, and its watermill handlers.
package league

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/gridline-club/podium-bot/app/eventbus"
	leagueservice "github.com/gridline-club/podium-bot/app/modules/league/application"
	leaguehandlers "github.com/gridline-club/podium-bot/app/modules/league/infrastructure/handlers"
	leaguerouter "github.com/gridline-club/podium-bot/app/modules/league/infrastructure/router"
	leaguedb "github.com/gridline-club/podium-bot/app/modules/league/infrastructure/repositories"
	"github.com/gridline-club/podium-bot/app/shared/observability"
	"github.com/gridline-club/podium-bot/app/shared/utils"
	"github.com/gridline-club/podium-bot/config"
)

// Module represents the league module.
type Module struct {
	Service    leagueservice.Service
	Router     *leaguerouter.LeagueRouter
	logger     *slog.Logger
	cancelFunc context.CancelFunc
}

// NewLeagueModule creates a new league module instance.
func NewLeagueModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	metrics observability.OperationMetrics,
	seasonRepo leaguedb.SeasonRepository,
	eventRepo leaguedb.EventRepository,
	userRepo leaguedb.UserRepository,
	bus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
	tracer trace.Tracer,
) (*Module, error) {
	perMinute := cfg.Recalculation.TriggerRatePerMinute
	recalcLimit := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)

	service := leagueservice.NewLeagueService(seasonRepo, eventRepo, userRepo, recalcLimit, obs.Logger, metrics, tracer)

	handlers := leaguehandlers.NewLeagueHandlers(service, obs.Logger, tracer, helpers)

	moduleRouter := leaguerouter.NewLeagueRouter(obs.Logger, router, bus)
	if err := moduleRouter.Configure(ctx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure league router: %w", err)
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
	m.logger.Info("League module stopped")
}

// Close cancels any running operations.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
