package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ldanko/idleheroes/internal/concurrency"
	"github.com/ldanko/idleheroes/internal/config"
	"github.com/ldanko/idleheroes/internal/database"
	"github.com/ldanko/idleheroes/internal/database/postgres"
	"github.com/ldanko/idleheroes/internal/engine"
	"github.com/ldanko/idleheroes/internal/event"
	"github.com/ldanko/idleheroes/internal/handler"
	"github.com/ldanko/idleheroes/internal/hero"
	"github.com/ldanko/idleheroes/internal/metrics"
	"github.com/ldanko/idleheroes/internal/notification"
	"github.com/ldanko/idleheroes/internal/quest"
	"github.com/ldanko/idleheroes/internal/scheduler"
	"github.com/ldanko/idleheroes/internal/server"
	"github.com/ldanko/idleheroes/internal/worker"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	handler.InitValidator()

	slog.Info("Starting idleheroes", "version", version, "environment", cfg.Environment)

	pool, err := database.NewPool(cfg.GetDBConnString(), 10, 5*time.Minute, 30*time.Minute)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := pool.Ping(ctx); err != nil {
		cancel()
		log.Fatalf("Failed to connect to database: %v", err)
	}
	cancel()

	// Repositories
	heroRepo := postgres.NewHeroRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	questRepo := postgres.NewQuestRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	guildRepo := postgres.NewGuildRepository(pool)

	// Event bus with retrying publisher; metrics are fed off the bus.
	bus := event.NewMemoryBus()
	publisher := event.NewResilientPublisher(bus, event.ResilientConfig{
		MaxRetries:     3,
		RetryDelay:     2 * time.Second,
		DeadLetterPath: "dead_letter_events.jsonl",
	})
	metrics.NewEventMetricsCollector().Register(bus)

	// Services
	notifier := notification.New(notificationRepo)
	heroService := hero.NewService(heroRepo, itemRepo, notifier, publisher)
	questService := quest.NewService(questRepo, guildRepo, notifier, publisher)

	// Turn engine with its per-hero locks
	locks := concurrency.NewLockManager()
	eng := engine.New(heroRepo, heroService, questService, notifier, publisher, locks)

	// Background ticking
	workerPool := worker.NewPool(cfg.WorkerCount, cfg.QueueSize)
	workerPool.Start()

	sched := scheduler.New(workerPool)
	sched.Schedule(cfg.TickInterval, &worker.TickJob{Engine: eng})
	sched.Schedule(cfg.GlobalEventInterval, &worker.GlobalEventJob{Engine: eng})
	slog.Info("Scheduler started",
		"tick_interval", cfg.TickInterval,
		"global_event_interval", cfg.GlobalEventInterval)

	srv := server.NewServer(cfg.Port, pool, heroService, questService, eng)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	sched.Stop()
	workerPool.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
	slog.Info("Shutdown complete")
}
