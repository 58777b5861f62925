// Command api serves the VoyageWise REST API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) with
// environment overrides. SIGINT/SIGTERM trigger a graceful shutdown.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/voyagewise-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("api: %v", err)
	}
}
