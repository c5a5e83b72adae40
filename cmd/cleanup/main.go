// Command cleanup removes anonymous users, together with their sessions and
// words, that have not been seen for the configured retention period. It is
// intended to be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/beetracker-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/beetracker-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/beetracker-backend/internal/app"
	"github.com/heartmarshall/beetracker-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	threshold := time.Now().AddDate(0, 0, -cfg.Cleanup.AnonymousRetentionDays)

	deleted, err := userrepo.New(pool).DeleteStaleAnonymous(ctx, threshold)
	if err != nil {
		logger.Error("anonymous cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		pool.Close()
		os.Exit(1)
	}

	logger.Info("anonymous cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
