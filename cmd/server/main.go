// Command server runs the beetracker HTTP API.
//
// Configuration comes from CONFIG_PATH (YAML) and environment variables.
// SIGINT and SIGTERM trigger a graceful shutdown that flushes pending
// progress writes before exiting.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/beetracker-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
