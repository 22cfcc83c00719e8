package predictionhandlers

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	predictionservice "github.com/gridline-club/podium-bot/app/modules/prediction/application"
	"github.com/gridline-club/podium-bot/app/shared/utils"
)

// Handlers exposes the prediction module's watermill handlers.
type Handlers interface {
	HandleEventResultEntered() message.HandlerFunc
	HandleSubmitPrediction() message.HandlerFunc
}

// PredictionHandlers handles prediction-related events.
type PredictionHandlers struct {
	service predictionservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
	helpers utils.Helpers
}

// NewPredictionHandlers creates a new PredictionHandlers.
func NewPredictionHandlers(
	service predictionservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
	helpers utils.Helpers,
) Handlers {
	return &PredictionHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
		helpers: helpers,
	}
}
