// Package attr holds slog attribute helpers shared by every module.
package attr

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"

	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// CorrelationIDKey is the context key under which the correlation ID travels.
type correlationIDKeyType struct{}

var CorrelationIDKey = correlationIDKeyType{}

// CorrelationIDMetadataKey is the watermill metadata key for correlation IDs.
const CorrelationIDMetadataKey = "correlation_id"

func String(key, value string) slog.Attr         { return slog.String(key, value) }
func Int(key string, value int) slog.Attr        { return slog.Int(key, value) }
func Bool(key string, value bool) slog.Attr      { return slog.Bool(key, value) }
func Any(key string, value any) slog.Attr        { return slog.Any(key, value) }
func Error(err error) slog.Attr                  { return slog.Any("error", err) }
func Float64(key string, value float64) slog.Attr { return slog.Float64(key, value) }

func SeasonID(key string, id sharedtypes.SeasonID) slog.Attr {
	return slog.String(key, id.String())
}

func EventID(key string, id sharedtypes.EventID) slog.Attr {
	return slog.String(key, id.String())
}

func UserID(key string, id sharedtypes.UserID) slog.Attr {
	return slog.String(key, id.String())
}

func JobID(key string, id sharedtypes.JobID) slog.Attr {
	return slog.String(key, id.String())
}

// ExtractCorrelationID pulls the correlation ID out of the context, logging
// an empty value when none is present rather than omitting the attribute.
func ExtractCorrelationID(ctx context.Context) slog.Attr {
	if id, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return slog.String(CorrelationIDMetadataKey, id)
	}
	return slog.String(CorrelationIDMetadataKey, "")
}

// CorrelationIDFromMsg reads the correlation ID from watermill metadata.
func CorrelationIDFromMsg(msg *message.Message) slog.Attr {
	return slog.String(CorrelationIDMetadataKey, msg.Metadata.Get(CorrelationIDMetadataKey))
}

// WithCorrelationID stores the correlation ID on the context for downstream
// service logging.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}
