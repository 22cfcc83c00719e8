package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gridline-club/podium-bot/app"
	"github.com/gridline-club/podium-bot/app/shared/observability"
	"github.com/gridline-club/podium-bot/config"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	obs := observability.New("podium-bot", cfg.Observability.Environment)

	application := &app.App{}
	if err := application.Initialize(ctx, cfg, obs); err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	go func() {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
		<-interrupt
		obs.Logger.Info("Shutdown signal received")
		cancel()
	}()

	if err := application.Run(ctx); err != nil {
		obs.Logger.Error("Application stopped with error", "error", err)
	}

	application.Close()
	obs.Logger.Info("Application shut down gracefully")
}
