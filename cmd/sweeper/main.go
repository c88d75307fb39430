package main

// Standalone expiry sweeper, for deployments where the API process
// should not own background cleanup.

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/james-eo/portfolio/internal/bootstrap"
	"github.com/james-eo/portfolio/internal/shared/config"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	if app.DB != nil {
		defer app.DB.Close()
	}

	log.Printf("Starting sweeper, interval=%s", cfg.SweepInterval)
	app.Sweeper.Run(ctx)
}
