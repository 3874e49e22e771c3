// Command reap-families deletes family groups that no longer have any
// members. Account deletion reaps the families it empties itself; this
// sweep catches groups orphaned by interrupted runs or by hand edits. It is
// intended to be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/medvault/medvault-backend/internal/app"
	"github.com/medvault/medvault-backend/internal/config"
)

func main() {
	limit := flag.Int("limit", 500, "maximum number of families to reap")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	stack, err := app.NewStack(ctx, cfg, logger, nil)
	if err != nil {
		logger.Error("connect deletion stack", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer stack.Close()

	reaped, err := stack.Service.SweepOrphans(ctx, *limit)
	if err != nil {
		logger.Error("family sweep failed",
			slog.String("error", err.Error()),
			slog.Int("limit", *limit),
		)
		stack.Close()
		os.Exit(1)
	}

	logger.Info("family sweep completed",
		slog.Int("reaped", len(reaped)),
		slog.Int("limit", *limit),
	)
}
