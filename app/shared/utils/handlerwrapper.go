package utils

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	"github.com/gridline-club/podium-bot/app/shared/attr"
)

// HandlerFunc is the typed handler signature wrapped by WrapHandler. The
// payload passed in is the unmarshaled instance produced by newPayload.
type HandlerFunc func(ctx context.Context, msg *message.Message, payload any) ([]Result, error)

// WrapHandler adapts a typed handler into a watermill HandlerFunc, adding
// tracing, logging, payload unmarshaling, and result-message construction.
func WrapHandler(
	handlerName string,
	newPayload func() any,
	handlerFunc HandlerFunc,
	logger *slog.Logger,
	tracer trace.Tracer,
	helpers Helpers,
) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		ctx, span := tracer.Start(msg.Context(), handlerName)
		defer span.End()

		correlationID := msg.Metadata.Get(attr.CorrelationIDMetadataKey)
		ctx = attr.WithCorrelationID(ctx, correlationID)

		start := time.Now()
		logger.InfoContext(ctx, handlerName+" triggered",
			attr.CorrelationIDFromMsg(msg),
			attr.String("message_id", msg.UUID),
		)

		var payload any
		if newPayload != nil {
			payload = newPayload()
			if err := helpers.UnmarshalPayload(msg, payload); err != nil {
				logger.ErrorContext(ctx, "Failed to unmarshal payload",
					attr.CorrelationIDFromMsg(msg),
					attr.Error(err),
				)
				span.RecordError(err)
				return nil, fmt.Errorf("%s: %w", handlerName, err)
			}
		}

		res, err := handlerFunc(ctx, msg, payload)
		if err != nil {
			logger.ErrorContext(ctx, "Error in "+handlerName,
				attr.CorrelationIDFromMsg(msg),
				attr.Error(err),
			)
			span.RecordError(err)
			return nil, err
		}

		out := make([]*message.Message, 0, len(res))
		for _, r := range res {
			m, err := helpers.CreateResultMessage(msg, r.Payload, r.Topic)
			if err != nil {
				span.RecordError(err)
				return nil, fmt.Errorf("%s: %w", handlerName, err)
			}
			out = append(out, m)
		}

		logger.InfoContext(ctx, handlerName+" completed",
			attr.CorrelationIDFromMsg(msg),
			attr.Int("result_count", len(out)),
			attr.Float64("duration_seconds", time.Since(start).Seconds()),
		)
		return out, nil
	}
}
