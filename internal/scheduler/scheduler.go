package scheduler

import (
	"context"
	"fmt"
	"html"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"TechSentinel/internal/analysis"
	"TechSentinel/internal/logger"
	"TechSentinel/internal/metrics"
	"TechSentinel/internal/model"
	"TechSentinel/internal/notifier"
	"TechSentinel/internal/recorder"
	"TechSentinel/internal/watch"
)

// Analyzer produces a snapshot for one symbol.
type Analyzer interface {
	Collect(ctx context.Context, symbol, period string) (*model.AnalysisSnapshot, error)
}

// Notifier delivers text messages.
type Notifier interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Options configures a Scheduler. Analyzer and Notifier are required;
// NewScheduler fills in the rest.
type Options struct {
	Analyzer Analyzer
	Tracker  *watch.Tracker
	Notifier Notifier
	Recorder recorder.Recorder
	Metrics  *metrics.Metrics
	Symbols  []string
	Period   string
	Workers  int
}

// Scheduler runs watchlist scans on a cron schedule and answers bot commands.
type Scheduler struct {
	Cron *cron.Cron
	Ctx  context.Context
	Options

	scanMu sync.Mutex
	log    *logger.Logger
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, opts Options, log *logger.Logger) *Scheduler {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Recorder == nil {
		opts.Recorder = recorder.NewNoopRecorder()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if opts.Tracker == nil {
		opts.Tracker = watch.NewMemoryTracker(log)
	}
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Ctx:     ctx,
		Options: opts,
		log:     log.Named("scheduler"),
	}
}

// RegisterAll registers the watchlist scan.
func (s *Scheduler) RegisterAll(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info("scheduler started", zap.Int("entries", len(s.Cron.Entries())))
}

// Stop stops the cron scheduler and waits for a running scan to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.log.Info("scheduler stopped")
}

// RunScanNow executes the scan task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	results := s.Scan(s.Ctx)
	s.notifyTransitions(s.Ctx, results)
	s.trySend(notifier.FormatScanReport(results))
}

// Scan analyzes every watchlist symbol concurrently. A failing symbol is
// reported in its result and never aborts the others. Overlapping scans are
// serialized.
func (s *Scheduler) Scan(ctx context.Context) []model.ScanResult {
	s.scanMu.Lock()
	defer s.scanMu.Unlock()

	start := time.Now()
	runID := recorder.NewRunID()
	s.log.Info("running watchlist scan",
		zap.String("run_id", runID),
		zap.Int("symbols", len(s.Symbols)),
		zap.Int("workers", s.Workers))

	results := make([]model.ScanResult, len(s.Symbols))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Workers)
	for i, symbol := range s.Symbols {
		g.Go(func() error {
			results[i] = s.analyzeOne(gctx, runID, symbol)
			return nil
		})
	}
	_ = g.Wait()

	s.Tracker.CompleteScan(time.Now())
	s.Metrics.ObserveScan(start, len(s.Symbols))
	s.log.Info("watchlist scan finished",
		zap.String("run_id", runID),
		zap.Duration("elapsed", time.Since(start)))
	return results
}

func (s *Scheduler) analyzeOne(ctx context.Context, runID, symbol string) model.ScanResult {
	result := model.ScanResult{Symbol: symbol}

	snap, err := s.Analyzer.Collect(ctx, symbol, s.Period)
	if err != nil {
		status := "fetch_error"
		if analysis.IsInputError(err) {
			status = "input_error"
		}
		s.Metrics.ObserveFailure(status)
		s.log.Warn("symbol analysis failed", zap.String("symbol", symbol), zap.String("status", status), zap.Error(err))
		result.Err = err
		return result
	}
	result.Snapshot = snap
	s.Metrics.ObserveSnapshot(snap)

	if err := s.Recorder.RecordSnapshot(runID, snap); err != nil {
		s.log.Error("record snapshot", zap.String("symbol", symbol), zap.Error(err))
	}

	if tr, changed := s.Tracker.Observe(snap); changed {
		result.Transition = &tr
		s.Metrics.ObserveTransition(tr)
		if err := s.Recorder.RecordTransition(runID, tr); err != nil {
			s.log.Error("record transition", zap.String("symbol", symbol), zap.Error(err))
		}
	}
	return result
}

func (s *Scheduler) notifyTransitions(ctx context.Context, results []model.ScanResult) {
	for _, r := range results {
		if r.Transition == nil {
			continue
		}
		if err := s.Notifier.SendWithRetry(ctx, notifier.FormatTransition(*r.Transition), 3); err != nil {
			s.log.Error("send transition", zap.String("symbol", r.Symbol), zap.Error(err))
		}
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(ctx context.Context, command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return notifier.FormatHelp()
	}
	// Group chats address commands as /cmd@BotName.
	name, _, _ := strings.Cut(strings.ToLower(fields[0]), "@")
	args := fields[1:]

	switch name {
	case "/analyze":
		if len(args) == 0 {
			return "Usage: /analyze SYMBOL [PERIOD]"
		}
		symbol := strings.ToUpper(args[0])
		period := s.Period
		if len(args) > 1 {
			period = args[1]
		}
		snap, err := s.Analyzer.Collect(ctx, symbol, period)
		if err != nil {
			return fmt.Sprintf("❌ analyze %s failed: %s", symbol, html.EscapeString(err.Error()))
		}
		return notifier.FormatSummary(snap)
	case "/scan":
		results := s.Scan(ctx)
		s.notifyTransitions(ctx, results)
		return notifier.FormatScanReport(results)
	case "/watchlist":
		return notifier.FormatWatchState(s.Tracker.State())
	case "/history":
		if len(args) == 0 {
			return "Usage: /history SYMBOL"
		}
		symbol := strings.ToUpper(args[0])
		rows, err := s.Recorder.History(symbol, 10)
		if err != nil {
			return fmt.Sprintf("❌ history %s failed: %s", symbol, html.EscapeString(err.Error()))
		}
		return notifier.FormatHistory(symbol, rows)
	default:
		return notifier.FormatHelp()
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		s.log.Error("send notification", zap.Error(err))
	}
}
