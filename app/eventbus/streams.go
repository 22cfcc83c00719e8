package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go/jetstream"
)

// InitializeStreams creates the JetStream streams the application needs at
// startup. One stream per module keeps retention independent.
func InitializeStreams(ctx context.Context, js jetstream.JetStream, logger *slog.Logger) error {
	streamConfigs := []jetstream.StreamConfig{
		{
			Name:     "league",
			Subjects: []string{"league.>"},
		},
		{
			Name:     "prediction",
			Subjects: []string{"prediction.>"},
		},
		{
			Name:     "statistics",
			Subjects: []string{"statistics.>"},
		},
	}

	for _, streamConfig := range streamConfigs {
		_, err := js.Stream(ctx, streamConfig.Name)
		if errors.Is(err, jetstream.ErrStreamNotFound) {
			if _, err := js.CreateStream(ctx, streamConfig); err != nil {
				return fmt.Errorf("failed to create stream %s: %w", streamConfig.Name, err)
			}
			logger.Info("Created JetStream stream", slog.String("stream", streamConfig.Name))
		} else if err != nil {
			return fmt.Errorf("failed to check stream %s: %w", streamConfig.Name, err)
		}
	}
	return nil
}
