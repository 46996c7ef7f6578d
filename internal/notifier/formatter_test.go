package notifier

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/assert"

	"TechSentinel/internal/model"
	"TechSentinel/internal/recorder"
)

func fullSnapshot() *model.AnalysisSnapshot {
	return &model.AnalysisSnapshot{
		Symbol: "AAPL",
		Period: "1y",
		AsOf:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		Bars:   1250,
		Indicators: model.IndicatorSet{
			CurrentPrice:   optional.Some(101.456),
			SMA20:          optional.Some(100.0),
			SMA50:          optional.Some(98.765),
			SMA200:         optional.None[float64](),
			MACDDiff:       optional.Some(0.123456),
			MACDDiffAlt:    optional.Some(-0.5),
			RSI14:          optional.Some(55.555),
			BollingerUpper: optional.Some(105.0),
			BollingerMid:   optional.Some(100.0),
			BollingerLower: optional.Some(95.0),
			OBV:            optional.Some(1234567.4),
			Volatility20:   optional.Some(0.234567),
			Momentum20:     optional.Some(1.5),
		},
		Extrema: model.ExtremumSet{Support: []float64{95, 96.5}},
		Trend:   model.TrendPotentialUptrend,
		Signal:  model.SignalBuy,
	}
}

func TestFormatSummary(t *testing.T) {
	out := FormatSummary(fullSnapshot())

	assert.Contains(t, out, "<b>AAPL</b> | 1y | as of 2025-01-31 (1,250 bars)")
	assert.Contains(t, out, "Price: 101.46")
	assert.Contains(t, out, "SMA20: 100.00 | SMA50: 98.77 | SMA200: n/a")
	assert.Contains(t, out, "RSI14: 55.56")
	assert.Contains(t, out, "MACD(12,26,9): +0.1235 | MACD(10,20,9): -0.5000")
	assert.Contains(t, out, "Bollinger: 95.00 / 100.00 / 105.00")
	assert.Contains(t, out, "OBV: 1,234,567")
	assert.Contains(t, out, "Volatility(20d, ann.): 0.2346")
	assert.Contains(t, out, "Momentum(20d): +1.50")
	assert.Contains(t, out, "Support: 95.00, 96.50")
	assert.Contains(t, out, "Resistance: none")
	assert.Contains(t, out, "Trend: <b>Potential Uptrend</b>")
	assert.Contains(t, out, "Signal: <b>Buy</b>")
}

func TestFormatSummary_AllAbsent(t *testing.T) {
	snap := &model.AnalysisSnapshot{
		Symbol: "NEW",
		Period: "1mo",
		Bars:   5,
		Trend:  model.TrendInsufficientData,
		Signal: model.SignalInsufficientData,
	}
	out := FormatSummary(snap)
	assert.Contains(t, out, "Price: n/a")
	assert.Contains(t, out, "OBV: n/a")
	assert.Contains(t, out, "Momentum(20d): n/a")
	assert.Contains(t, out, "Signal: <b>Insufficient Data</b>")
}

func TestFormatTransition(t *testing.T) {
	out := FormatTransition(model.Transition{
		Symbol:     "MSFT",
		FromTrend:  model.TrendNeutral,
		ToTrend:    model.TrendNeutral,
		FromSignal: model.SignalHold,
		ToSignal:   model.SignalStrongSell,
		Price:      410.1,
	})
	assert.Contains(t, out, "<b>MSFT</b> @ 410.10")
	assert.Contains(t, out, "Signal: Hold → Strong Sell")
	assert.NotContains(t, out, "Trend:")
}

func TestFormatScanReport(t *testing.T) {
	out := FormatScanReport([]model.ScanResult{
		{Symbol: "ZZZ", Err: errors.New("fetch <failed>")},
		{Symbol: "AAPL", Snapshot: fullSnapshot()},
	})
	assert.Contains(t, out, "🟢 AAPL: 101.46 | Potential Uptrend | Buy")
	assert.Contains(t, out, "❌ ZZZ: fetch &lt;failed&gt;")
	assert.Contains(t, out, "1 analyzed, 1 failed")
	assert.Less(t, strings.Index(out, "AAPL"), strings.Index(out, "ZZZ"))
}

func TestFormatWatchState(t *testing.T) {
	assert.Contains(t, FormatWatchState(model.WatchState{}), "empty")

	out := FormatWatchState(model.WatchState{
		Symbols: map[string]model.SymbolState{
			"MSFT": {Trend: model.TrendNeutral, Signal: model.SignalHold, Price: 400, ObservedAt: time.Now()},
			"AAPL": {Trend: model.TrendStrongUptrend, Signal: model.SignalBuy, Price: 190, ObservedAt: time.Now()},
		},
		Scans:    3,
		LastScan: time.Now().Add(-2 * time.Hour),
	})
	assert.Contains(t, out, "AAPL: 190.00 | Strong Uptrend | Buy")
	assert.Contains(t, out, "Scans: 3, last 2 hours ago")
	assert.Less(t, strings.Index(out, "AAPL"), strings.Index(out, "MSFT"))
}

func TestFormatHistory(t *testing.T) {
	assert.Equal(t, "No history recorded for AAPL.", FormatHistory("AAPL", nil))

	price := 101.0
	out := FormatHistory("AAPL", []recorder.HistoryRow{
		{AsOf: "2025-01-31", Price: &price, Trend: model.TrendNeutral, Signal: model.SignalHold},
	})
	assert.Contains(t, out, "2025-01-31: 101.00 | RSI n/a | Neutral | Hold")
}
