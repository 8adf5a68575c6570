package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mico/crypto-sentiment-analysis/internal/app"
	"github.com/mico/crypto-sentiment-analysis/internal/config"
	"github.com/mico/crypto-sentiment-analysis/internal/database"
	"github.com/mico/crypto-sentiment-analysis/internal/logging"
	"github.com/mico/crypto-sentiment-analysis/internal/reddit"
	"github.com/mico/crypto-sentiment-analysis/internal/sentiment"
	"github.com/mico/crypto-sentiment-analysis/internal/version"
)

// The fetcher runs one collection cycle and exits. Scheduling is left to
// cron or a Kubernetes CronJob.
func main() {
	clock := clockwork.NewRealClock()

	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Fetcher starting", "env", cfg.AppEnv, "version", version.Version)

	appCfg, err := config.LoadAppConfig(cfg.ConfigPath)
	if err != nil {
		slog.Error("Failed to load app config", "path", cfg.ConfigPath, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	err = database.RunMigrationsWithLock(ctx, pool)
	cancel()
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	source, err := reddit.NewClient(cfg)
	if err != nil {
		slog.Error("Failed to create reddit client", "error", err)
		os.Exit(1)
	}

	posts := database.NewPostRepo(pool)
	scorer := sentiment.NewScorer()

	svc := app.NewService(source, posts, scorer, appCfg, clock)

	stats, err := svc.RunCycle(context.Background())
	if err != nil {
		slog.Error("Fetch cycle failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Fetch cycle complete",
		"fetched", stats.Fetched,
		"skipped", stats.Skipped,
		"stored", stats.Stored,
		"duplicates", stats.Duplicates,
		"errors", stats.Errors,
	)
}
