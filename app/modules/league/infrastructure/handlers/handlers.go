package leaguehandlers

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	leagueservice "github.com/gridline-club/podium-bot/app/modules/league/application"
	"github.com/gridline-club/podium-bot/app/shared/utils"
)

// Handlers exposes the league module's watermill handlers.
type Handlers interface {
	HandleEventResultEnterRequested() message.HandlerFunc
	HandleSeasonRecalculationTrigger() message.HandlerFunc
}

// LeagueHandlers handles league-related events.
type LeagueHandlers struct {
	service leagueservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
	helpers utils.Helpers
}

// NewLeagueHandlers creates a new LeagueHandlers.
func NewLeagueHandlers(
	service leagueservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
	helpers utils.Helpers,
) Handlers {
	return &LeagueHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
		helpers: helpers,
	}
}
