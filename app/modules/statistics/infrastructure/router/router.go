package statisticsrouter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/gridline-club/podium-bot/app/eventbus"
	statisticsevents "github.com/gridline-club/podium-bot/app/modules/statistics/domain/events"
	statisticshandlers "github.com/gridline-club/podium-bot/app/modules/statistics/infrastructure/handlers"
	"github.com/gridline-club/podium-bot/app/shared/attr"
	"github.com/gridline-club/podium-bot/app/shared/utils"
)

// StatisticsRouter registers the statistics module's handlers on the shared
// watermill router.
type StatisticsRouter struct {
	logger *slog.Logger
	Router *message.Router
	bus    eventbus.EventBus
}

// NewStatisticsRouter creates a new StatisticsRouter.
func NewStatisticsRouter(logger *slog.Logger, router *message.Router, bus eventbus.EventBus) *StatisticsRouter {
	return &StatisticsRouter{
		logger: logger,
		Router: router,
		bus:    bus,
	}
}

// Configure registers the module's handlers.
func (r *StatisticsRouter) Configure(ctx context.Context, handlers statisticshandlers.Handlers) error {
	eventsToHandlers := map[string]message.HandlerFunc{
		statisticsevents.SeasonRecalculationRequestedV1: handlers.HandleSeasonRecalculationRequested(),
		statisticsevents.JobStatusRequestedV1:           handlers.HandleJobStatusRequested(),
		statisticsevents.SeasonExportRequestedV1:        handlers.HandleSeasonExportRequested(),
		statisticsevents.StandingsChartRequestedV1:      handlers.HandleStandingsChartRequested(),
	}

	for topic, handlerFunc := range eventsToHandlers {
		handlerName := fmt.Sprintf("statistics.%s", topic)
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
func (r *StatisticsRouter) publishingHandler(ctx context.Context, handlerName string, handlerFunc message.HandlerFunc) message.HandlerFunc {
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
