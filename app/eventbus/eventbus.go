// Package eventbus provides the NATS JetStream-backed event bus every
// module publishes and subscribes through.
package eventbus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	wmnats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/gridline-club/podium-bot/app/shared/attr"
)

// EventBus is the messaging surface modules depend on.
type EventBus interface {
	Publish(ctx context.Context, topic string, msg *message.Message) error
	Subscriber() message.Subscriber
	Publisher() message.Publisher
	Close() error
}

type eventBus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	natsConn   *nc.Conn
	logger     *slog.Logger
}

// NewEventBus connects to NATS, ensures the application stream exists, and
// returns watermill publisher/subscriber pairs over JetStream.
func NewEventBus(ctx context.Context, natsURL string, logger *slog.Logger) (EventBus, error) {
	natsConn, err := nc.Connect(natsURL, nc.RetryOnFailedConnect(true))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(natsConn)
	if err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("failed to initialize JetStream: %w", err)
	}

	if err := InitializeStreams(ctx, js, logger); err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("failed to initialize streams: %w", err)
	}

	watermillLogger := watermill.NewSlogLogger(logger)
	marshaler := &wmnats.NATSMarshaler{}

	publisher, err := wmnats.NewPublisher(
		wmnats.PublisherConfig{
			URL:       natsURL,
			Marshaler: marshaler,
			NatsOptions: []nc.Option{
				nc.RetryOnFailedConnect(true),
			},
		},
		watermillLogger,
	)
	if err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("failed to create watermill publisher: %w", err)
	}

	subscriber, err := wmnats.NewSubscriber(
		wmnats.SubscriberConfig{
			URL:         natsURL,
			Unmarshaler: marshaler,
			NatsOptions: []nc.Option{
				nc.RetryOnFailedConnect(true),
			},
		},
		watermillLogger,
	)
	if err != nil {
		natsConn.Close()
		publisher.Close()
		return nil, fmt.Errorf("failed to create watermill subscriber: %w", err)
	}

	return &eventBus{
		publisher:  publisher,
		subscriber: subscriber,
		natsConn:   natsConn,
		logger:     logger,
	}, nil
}

func (eb *eventBus) Publish(ctx context.Context, topic string, msg *message.Message) error {
	if msg.UUID == "" {
		msg.UUID = watermill.NewUUID()
	}

	eb.logger.DebugContext(ctx, "Publishing message",
		attr.String("topic", topic),
		attr.String("message_id", msg.UUID),
		attr.CorrelationIDFromMsg(msg),
	)

	if err := eb.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

func (eb *eventBus) Subscriber() message.Subscriber {
	return eb.subscriber
}

func (eb *eventBus) Publisher() message.Publisher {
	return eb.publisher
}

func (eb *eventBus) Close() error {
	var firstErr error
	if err := eb.publisher.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := eb.subscriber.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	eb.natsConn.Close()
	return firstErr
}
