package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"

	"content_orchestrator/internal/config"
	"content_orchestrator/internal/domain"
	"content_orchestrator/internal/engine"
	"content_orchestrator/internal/generation"
	"content_orchestrator/internal/lifecycle"
	"content_orchestrator/internal/metrics"
	"content_orchestrator/internal/notify"
	"content_orchestrator/internal/platform"
	"content_orchestrator/internal/scheduler"
	"content_orchestrator/internal/storage/postgres"
	"content_orchestrator/internal/sweep"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	notifier, err := notify.NewRabbitMQ(notify.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, collector, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer notifier.Close()

	// Stores
	contentStore := postgres.NewContentStore(db)
	reviewStore := postgres.NewReviewStore(db)
	brandStore := postgres.NewBrandStore(db)
	taskStore := postgres.NewTaskStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Platform adapters
	adapters := platform.NewRegistry()
	for name, pc := range cfg.Platforms {
		p := domain.Platform(name)
		adapters.Register(p, platform.NewWebhookAdapter(p, platform.WebhookConfig{
			URL:     pc.WebhookURL,
			Token:   pc.Token,
			Timeout: pc.Timeout,
		}, logger))
	}
	logger.Info("platform adapters registered", "platforms", adapters.Configured())

	orch := lifecycle.New(contentStore, reviewStore, txManager, cfg.Engine.MaxRetries, logger)

	eng := engine.New(adapters, orch, notifier, collector, cfg.Engine.PublishTimeout, logger)

	generator := generation.NewClient(generation.Config{
		BaseURL:        cfg.Generation.BaseURL,
		APIKey:         cfg.Generation.APIKey,
		Timeout:        cfg.Generation.Timeout,
		MaxAttempts:    cfg.Generation.Retry.MaxAttempts,
		InitialBackoff: cfg.Generation.Retry.InitialBackoff,
		MaxBackoff:     cfg.Generation.Retry.MaxBackoff,
	}, logger)

	// Triggers
	sched := scheduler.New(taskStore, collector, logger)
	sched.Every("publish_sweep", cfg.Scheduler.PublishInterval,
		sweep.NewPublishSweep(contentStore, eng, cfg.Scheduler.PublishLookback, cfg.Scheduler.MaxConcurrency, logger))
	sched.Every("reminder_sweep", cfg.Scheduler.ReminderInterval,
		sweep.NewReminderSweep(contentStore, notifier, cfg.Scheduler.ReminderLookahead, logger))
	sched.Every("retry_sweep", cfg.Scheduler.RetryInterval,
		sweep.NewRetrySweep(contentStore, eng, cfg.Scheduler.RetryWindow, cfg.Engine.MaxRetries, cfg.Scheduler.MaxConcurrency, logger))
	if err := sched.Cron("generation_sweep", cfg.Scheduler.GenerationWindows,
		sweep.NewGenerationSweep(brandStore, contentStore, generator, orch, notifier, logger)); err != nil {
		logger.Error("failed to register generation trigger", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	metricsSrv := serveMetrics(cfg.Metrics.Addr, registry, db, logger)

	logger.Info("starting content orchestrator",
		"publish_interval", cfg.Scheduler.PublishInterval,
		"reminder_interval", cfg.Scheduler.ReminderInterval,
		"retry_interval", cfg.Scheduler.RetryInterval,
		"generation_windows", cfg.Scheduler.GenerationWindows,
	)

	sched.Start(ctx)
	<-ctx.Done()
	sched.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown failed", "error", err)
	}
}

// serveMetrics exposes /metrics and /healthz on a side listener.
func serveMetrics(addr string, registry *prometheus.Registry, db *sqlx.DB, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(registry))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()
	return srv
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
