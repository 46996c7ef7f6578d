package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"TechSentinel/internal/collector"
	"TechSentinel/internal/config"
	"TechSentinel/internal/logger"
	"TechSentinel/internal/metrics"
	"TechSentinel/internal/notifier"
	"TechSentinel/internal/recorder"
	"TechSentinel/internal/scheduler"
	"TechSentinel/internal/watch"
)

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("config validation", zap.Error(err))
	}
	log.Info("TechSentinel starting",
		zap.Strings("watchlist", cfg.Watchlist.Symbols),
		zap.String("period", cfg.Watchlist.Period))

	// Init fetcher
	var fetcher collector.Fetcher
	switch {
	case cfg.DataSource.CSVDir != "":
		fetcher = &collector.CSVFetcher{Dir: cfg.DataSource.CSVDir}
	case cfg.DataSource.BaseURL != "":
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	default:
		fetcher = collector.NewYahooFetcher(cfg.Proxy, cfg.DataSource.RequestsPerMinute)
	}
	log.Info("data source selected", zap.String("fetcher", fetcher.Name()))

	col := collector.NewCollector(fetcher, log)

	if err := os.MkdirAll(filepath.Dir(cfg.State.File), 0o755); err != nil {
		log.Fatal("create state dir", zap.Error(err))
	}
	tracker, err := watch.NewTracker(cfg.State.File, log)
	if err != nil {
		log.Fatal("init watch tracker", zap.Error(err))
	}

	tn, err := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)
	if err != nil {
		log.Fatal("init telegram notifier", zap.Error(err))
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
		if err != nil {
			log.Warn("init sqlite recorder failed, using noop", zap.Error(err))
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	m := metrics.New()

	// Context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Metrics.Addr != "" {
		go func() {
			if err := m.Serve(ctx, cfg.Metrics.Addr, log); err != nil {
				log.Error("metrics server", zap.Error(err))
			}
		}()
	}

	sched := scheduler.NewScheduler(ctx, scheduler.Options{
		Analyzer: col,
		Tracker:  tracker,
		Notifier: tn,
		Recorder: rec,
		Metrics:  m,
		Symbols:  cfg.Watchlist.Symbols,
		Period:   cfg.Watchlist.Period,
		Workers:  cfg.Schedule.Workers,
	}, log)
	if err := sched.RegisterAll(cfg.Schedule.ScanCron); err != nil {
		log.Fatal("register cron tasks", zap.Error(err))
	}
	sched.Start()
	defer sched.Stop()

	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Info("telegram polling started")

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Info("RUN_ON_START enabled, executing scan now")
		go sched.RunScanNow()
	}

	log.Info("TechSentinel is running, press Ctrl+C to stop")
	<-ctx.Done()
	log.Info("shutdown signal received, stopping")
}
