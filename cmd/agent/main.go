package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"jobpilot/internal/browser"
	"jobpilot/internal/config"
	"jobpilot/internal/document"
	"jobpilot/internal/publisher"
	"jobpilot/internal/scheduler"
	"jobpilot/internal/scraper"
	"jobpilot/internal/service"
	"jobpilot/internal/storage/postgres"
	"jobpilot/internal/submitter"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	submitUser := flag.Int64("user", 0, "submit an application for this user id and exit (requires -job)")
	submitJob := flag.Int64("job", 0, "listing id to apply to (requires -user)")
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

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:                  cfg.RabbitMQ.URL,
		Exchange:             cfg.RabbitMQ.Exchange,
		ListingRoutingKey:    cfg.RabbitMQ.ListingRoutingKey,
		ListingQueue:         cfg.RabbitMQ.ListingQueue,
		SubmissionRoutingKey: cfg.RabbitMQ.SubmissionRoutingKey,
		SubmissionQueue:      cfg.RabbitMQ.SubmissionQueue,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	sourceStore := postgres.NewSourceStore(db)
	listingStore := postgres.NewListingStore(db)
	applicationStore := postgres.NewApplicationStore(db)
	profileStore := postgres.NewProfileStore(db)
	txManager := postgres.NewTransactionManager(db)

	driver, err := browser.NewRodDriver(browser.Config{
		ControlURL: cfg.Browser.ControlURL,
		UserAgent:  cfg.Browser.UserAgent,
	})
	if err != nil {
		logger.Error("failed to start browser", "error", err)
		os.Exit(1)
	}
	defer driver.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if *submitUser != 0 || *submitJob != 0 {
		if *submitUser == 0 || *submitJob == 0 {
			logger.Error("-user and -job must be set together")
			os.Exit(1)
		}

		submitService := service.NewSubmitService(
			listingStore,
			profileStore,
			applicationStore,
			txManager,
			document.NewCustomizer(logger),
			submitter.NewFormRunner(driver, cfg.Submit.NavTimeout, cfg.Submit.FieldTimeout, logger),
			rabbitMQ,
			logger,
		)

		if err := submitService.Submit(ctx, *submitUser, *submitJob); err != nil {
			os.Exit(1)
		}
		return
	}

	scrapeService := service.NewScrapeService(
		scraper.NewRunner(driver, cfg.Browser.NavTimeout, logger),
		scraper.NewFilter(cfg.Filter),
		listingStore,
		rabbitMQ,
		logger,
	)

	sched := scheduler.NewScheduler(
		scrapeService,
		sourceStore,
		cfg.Scrape.Interval,
		cfg.Scrape.CycleTimeout,
		cfg.Scrape.Concurrency,
		logger,
	)

	logger.Info("starting scrape agent",
		"interval", cfg.Scrape.Interval,
		"concurrency", cfg.Scrape.Concurrency,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
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
