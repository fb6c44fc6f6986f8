package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/spf13/viper"

	"post_publisher/internal/config"
	"post_publisher/internal/github"
	"post_publisher/internal/hugo"
	"post_publisher/internal/media"
	"post_publisher/internal/runner"
	"post_publisher/internal/service"
	"post_publisher/internal/source/wordpress"
	"post_publisher/internal/storage/postgres"
)

// app bundles the wired pipeline components a CLI command needs. Commands
// talk to the same stores and broker as the syncer daemon, so a job queued
// here is picked up by whichever worker is running.
type app struct {
	cfg          *config.Config
	db           *sqlx.DB
	jobRunner    *runner.RabbitMQ
	repo         *github.Client
	queue        *service.Queue
	orchestrator *service.Orchestrator
	logger       *slog.Logger
}

func newApp() (*app, error) {
	path := viper.GetString("config")
	if path == "" {
		path = "config.yaml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Commands print their own output; keep the log stream to warnings.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	jobRunner, err := runner.NewRabbitMQ(runner.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	wpSource := wordpress.New(wordpress.Config{
		BaseURL:        cfg.WordPress.BaseURL,
		Timeout:        cfg.WordPress.Timeout,
		MaxAttempts:    cfg.WordPress.Retry.MaxAttempts,
		InitialBackoff: cfg.WordPress.Retry.InitialBackoff,
		MaxBackoff:     cfg.WordPress.Retry.MaxBackoff,
	}, logger)

	repoClient := github.New(github.Config{
		Repository:        cfg.GitHub.Repository,
		Branch:            cfg.GitHub.Branch,
		BaseURL:           cfg.GitHub.BaseURL,
		Token:             cfg.GitHub.Token,
		Timeout:           cfg.GitHub.Timeout,
		CommitTimeout:     cfg.GitHub.CommitTimeout,
		RequestsPerSecond: cfg.GitHub.RequestsPerSecond,
	}, logger)

	mediaPipeline := media.New(media.Config{
		SiteURL:         cfg.WordPress.BaseURL,
		Formats:         cfg.Media.Formats,
		Quality:         cfg.Media.Quality,
		DownloadTimeout: cfg.Media.DownloadTimeout,
		TempDir:         cfg.Media.TempDir,
	}, logger)

	stateStore := postgres.NewSyncStateStore(db)
	lockStore := postgres.NewLockStore(db)
	renderer := hugo.NewRenderer(hugo.NewMarkdownConverter())

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
		nil,
		logger,
		cfg.Sync,
	)

	return &app{
		cfg:          cfg,
		db:           db,
		jobRunner:    jobRunner,
		repo:         repoClient,
		queue:        queue,
		orchestrator: orchestrator,
		logger:       logger,
	}, nil
}

func (a *app) Close() {
	a.jobRunner.Close()
	a.db.Close()
}
