package statisticshandlers

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	statisticsservice "github.com/gridline-club/podium-bot/app/modules/statistics/application"
	"github.com/gridline-club/podium-bot/app/shared/utils"
)

// Handlers exposes the statistics module's watermill handlers.
type Handlers interface {
	HandleSeasonRecalculationRequested() message.HandlerFunc
	HandleJobStatusRequested() message.HandlerFunc
	HandleSeasonExportRequested() message.HandlerFunc
	HandleStandingsChartRequested() message.HandlerFunc
}

// StatisticsHandlers handles statistics-related events.
type StatisticsHandlers struct {
	service statisticsservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
	helpers utils.Helpers
}

// NewStatisticsHandlers creates a new StatisticsHandlers.
func NewStatisticsHandlers(
	service statisticsservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
	helpers utils.Helpers,
) Handlers {
	return &StatisticsHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
		helpers: helpers,
	}
}
