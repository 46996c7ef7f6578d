package collector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"TechSentinel/internal/analysis"
	"TechSentinel/internal/logger"
	"TechSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Count int
	Bars  []model.Bar
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(_ context.Context, _ string, _ string) ([]model.Bar, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	count := m.Count
	if count == 0 {
		count = 252
	}
	return generateMockBars(m.Price, count), nil
}

func generateMockBars(basePrice float64, count int) []model.Bar {
	end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   end.AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector fetches a symbol's history and runs the analysis engine on it.
type Collector struct {
	Fetcher Fetcher
	log     *logger.Logger
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, log *logger.Logger) *Collector {
	return &Collector{Fetcher: fetcher, log: log.Named("collector")}
}

// Collect fetches daily bars for symbol over period and analyzes them.
func (c *Collector) Collect(ctx context.Context, symbol, period string) (*model.AnalysisSnapshot, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	period = NormalizePeriod(period)

	bars, err := c.Fetcher.FetchBars(ctx, symbol, period)
	if err != nil {
		return nil, fmt.Errorf("fetch %s bars (%s): %w", symbol, period, err)
	}

	snap, err := analysis.Analyze(model.PriceSeries{Symbol: symbol, Period: period, Bars: bars})
	if err != nil {
		c.log.Warn("series rejected",
			zap.String("symbol", symbol),
			zap.String("source", c.Fetcher.Name()),
			zap.Error(err))
		return nil, fmt.Errorf("analyze %s: %w", symbol, err)
	}

	c.log.Debug("analysis complete",
		zap.String("symbol", symbol),
		zap.String("period", period),
		zap.Int("bars", snap.Bars),
		zap.String("trend", string(snap.Trend)),
		zap.String("signal", string(snap.Signal)))
	return snap, nil
}
