package app

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/prometheus/client_golang/prometheus"
)

// TestAddRouterMetrics runs a handler through an instrumented router and
// checks the registry actually collected watermill metrics for it.
func TestAddRouterMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	logger := watermill.NopLogger{}

	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer router.Close()

	addRouterMetrics(router, registry)

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, logger)
	handled := make(chan struct{})
	router.AddNoPublisherHandler(
		"record_message",
		"metrics.test",
		pubSub,
		func(msg *message.Message) error {
			close(handled)
			return nil
		},
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	go func() {
		_ = router.Run(ctx)
	}()
	<-router.Running()

	if err := pubSub.Publish("metrics.test", message.NewMessage(watermill.NewUUID(), nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case <-handled:
	case <-ctx.Done():
		t.Fatal("timed out waiting for handler")
	}

	// The metrics middleware observes after the handler returns; poll until
	// the registry has something to report.
	deadline := time.Now().Add(5 * time.Second)
	for {
		families, err := registry.Gather()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(families) > 0 {
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("no router metrics collected")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
