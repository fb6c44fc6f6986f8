package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"

	"post_publisher/internal/config"
	"post_publisher/internal/github"
	"post_publisher/internal/hugo"
	"post_publisher/internal/media"
	"post_publisher/internal/observability"
	"post_publisher/internal/runner"
	"post_publisher/internal/scheduler"
	"post_publisher/internal/service"
	"post_publisher/internal/source/wordpress"
	"post_publisher/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
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

	// Initialize RabbitMQ job runner
	jobRunner, err := runner.NewRabbitMQ(runner.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer jobRunner.Close()

	// Initialize stores
	stateStore := postgres.NewSyncStateStore(db)
	lockStore := postgres.NewLockStore(db)

	// Initialize WordPress source
	wpSource := wordpress.New(wordpress.Config{
		BaseURL:        cfg.WordPress.BaseURL,
		Timeout:        cfg.WordPress.Timeout,
		MaxAttempts:    cfg.WordPress.Retry.MaxAttempts,
		InitialBackoff: cfg.WordPress.Retry.InitialBackoff,
		MaxBackoff:     cfg.WordPress.Retry.MaxBackoff,
	}, logger)

	// Initialize GitHub client and verify access before consuming jobs
	repoClient := github.New(github.Config{
		Repository:        cfg.GitHub.Repository,
		Branch:            cfg.GitHub.Branch,
		BaseURL:           cfg.GitHub.BaseURL,
		Token:             cfg.GitHub.Token,
		Timeout:           cfg.GitHub.Timeout,
		CommitTimeout:     cfg.GitHub.CommitTimeout,
		RequestsPerSecond: cfg.GitHub.RequestsPerSecond,
	}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := repoClient.TestConnection(ctx); err != nil {
		logger.Error("github connection check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("github connection verified", "repository", cfg.GitHub.Repository)

	mediaPipeline := media.New(media.Config{
		SiteURL:         cfg.WordPress.BaseURL,
		Formats:         cfg.Media.Formats,
		Quality:         cfg.Media.Quality,
		DownloadTimeout: cfg.Media.DownloadTimeout,
		TempDir:         cfg.Media.TempDir,
	}, logger)

	renderer := hugo.NewRenderer(hugo.NewMarkdownConverter())

	registry := prometheus.NewRegistry()
	metrics := observability.New(registry)

	orchestrator := service.NewOrchestrator(
		wpSource,
		repoClient,
		mediaPipeline,
		renderer,
		stateStore,
		logger,
		cfg.Sync,
	)

	queue := service.NewQueue(
		wpSource,
		stateStore,
		lockStore,
		jobRunner,
		orchestrator,
		metrics,
		logger,
		cfg.Sync,
	)

	sched := scheduler.NewScheduler(queue, cfg.Sync.RetryInterval, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	go func() {
		if err := sched.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("scheduler error", "error", err)
		}
	}()

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", observability.Handler(registry))
		logger.Info("metrics endpoint listening", "addr", cfg.Metrics.Addr)
		if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
			logger.Error("metrics endpoint failed", "error", err)
		}
	}()

	logger.Info("starting post syncer",
		"wordpress", cfg.WordPress.BaseURL,
		"repository", cfg.GitHub.Repository,
		"branch", cfg.GitHub.Branch,
	)

	if err := jobRunner.Consume(ctx, queue.Process); err != nil && err != context.Canceled {
		logger.Error("consumer error", "error", err)
		os.Exit(1)
	}
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
