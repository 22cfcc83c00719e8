package predictionrouter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/gridline-club/podium-bot/app/eventbus"
	leagueevents "github.com/gridline-club/podium-bot/app/modules/league/domain/events"
	predictionevents "github.com/gridline-club/podium-bot/app/modules/prediction/domain/events"
	predictionhandlers "github.com/gridline-club/podium-bot/app/modules/prediction/infrastructure/handlers"
	"github.com/gridline-club/podium-bot/app/shared/attr"
	"github.com/gridline-club/podium-bot/app/shared/utils"
)

// PredictionRouter registers the prediction module's handlers on the shared
// watermill router.
type PredictionRouter struct {
	logger *slog.Logger
	Router *message.Router
	bus    eventbus.EventBus
}

// NewPredictionRouter creates a new PredictionRouter.
func NewPredictionRouter(logger *slog.Logger, router *message.Router, bus eventbus.EventBus) *PredictionRouter {
	return &PredictionRouter{
		logger: logger,
		Router: router,
		bus:    bus,
	}
}

// Configure registers the module's handlers.
func (r *PredictionRouter) Configure(ctx context.Context, handlers predictionhandlers.Handlers) error {
	eventsToHandlers := map[string]message.HandlerFunc{
		leagueevents.EventResultEnteredV1:  handlers.HandleEventResultEntered(),
		predictionevents.SubmitRequestedV1: handlers.HandleSubmitPrediction(),
	}

	for topic, handlerFunc := range eventsToHandlers {
		handlerName := fmt.Sprintf("prediction.%s", topic)
		r.Router.AddHandler(
			handlerName,
			topic,
			r.bus.Subscriber(),
			"",
			nil,
			r.publishingHandler(ctx, handlerName, handlerFunc),
		)
	}
	return nil
}

// publishingHandler publishes each handler-produced message to the topic
// recorded in its metadata.
func (r *PredictionRouter) publishingHandler(ctx context.Context, handlerName string, handlerFunc message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		messages, err := handlerFunc(msg)
		if err != nil {
			return nil, err
		}
		for _, m := range messages {
			topic := m.Metadata.Get(utils.TopicMetadataKey)
			if topic == "" {
				r.logger.ErrorContext(ctx, "handler message missing publish topic - dropped",
					attr.String("handler", handlerName),
					attr.String("message_id", m.UUID),
				)
				continue
			}
			if err := r.bus.Publish(msg.Context(), topic, m); err != nil {
				return nil, fmt.Errorf("failed to publish to %s: %w", topic, err)
			}
		}
		return nil, nil
	}
}
