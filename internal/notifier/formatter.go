package notifier

import (
	"fmt"
	"html"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"

	"TechSentinel/internal/model"
	"TechSentinel/internal/recorder"
)

const na = "n/a"

func fixed(v optional.Option[float64], places int32) string {
	if v.IsNone() {
		return na
	}
	return decimal.NewFromFloat(v.Unwrap()).StringFixed(places)
}

func signed(v optional.Option[float64], places int32) string {
	if v.IsNone() {
		return na
	}
	d := decimal.NewFromFloat(v.Unwrap()).Round(places)
	if d.IsPositive() {
		return "+" + d.StringFixed(places)
	}
	return d.StringFixed(places)
}

func volume(v optional.Option[float64]) string {
	if v.IsNone() {
		return na
	}
	return humanize.Comma(int64(math.Round(v.Unwrap())))
}

func levelList(levels []float64) string {
	if len(levels) == 0 {
		return "none"
	}
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = decimal.NewFromFloat(l).StringFixed(2)
	}
	return strings.Join(parts, ", ")
}

// FormatSummary renders a snapshot as a short text report.
func FormatSummary(snap *model.AnalysisSnapshot) string {
	ind := snap.Indicators
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s | as of %s (%s bars)\n\n",
		snap.Symbol, snap.Period, snap.AsOf.Format("2006-01-02"), humanize.Comma(int64(snap.Bars))))

	b.WriteString(fmt.Sprintf("Price: %s\n", fixed(ind.CurrentPrice, 2)))
	b.WriteString(fmt.Sprintf("SMA20: %s | SMA50: %s | SMA200: %s\n",
		fixed(ind.SMA20, 2), fixed(ind.SMA50, 2), fixed(ind.SMA200, 2)))
	b.WriteString(fmt.Sprintf("RSI14: %s\n", fixed(ind.RSI14, 2)))
	b.WriteString(fmt.Sprintf("MACD(12,26,9): %s | MACD(10,20,9): %s\n",
		signed(ind.MACDDiff, 4), signed(ind.MACDDiffAlt, 4)))
	b.WriteString(fmt.Sprintf("Bollinger: %s / %s / %s\n",
		fixed(ind.BollingerLower, 2), fixed(ind.BollingerMid, 2), fixed(ind.BollingerUpper, 2)))
	b.WriteString(fmt.Sprintf("OBV: %s\n", volume(ind.OBV)))
	b.WriteString(fmt.Sprintf("Volatility(20d, ann.): %s\n", fixed(ind.Volatility20, 4)))
	b.WriteString(fmt.Sprintf("Momentum(20d): %s\n", signed(ind.Momentum20, 2)))
	b.WriteString(fmt.Sprintf("Support: %s\n", levelList(snap.Extrema.Support)))
	b.WriteString(fmt.Sprintf("Resistance: %s\n\n", levelList(snap.Extrema.Resistance)))

	b.WriteString(fmt.Sprintf("Trend: <b>%s</b>\n", snap.Trend))
	b.WriteString(fmt.Sprintf("Signal: <b>%s</b>", snap.Signal))
	return b.String()
}

// FormatTransition announces a trend or signal change.
func FormatTransition(tr model.Transition) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔔 <b>%s</b> @ %s\n", tr.Symbol, decimal.NewFromFloat(tr.Price).StringFixed(2)))
	if tr.TrendChanged() {
		b.WriteString(fmt.Sprintf("Trend: %s → %s\n", tr.FromTrend, tr.ToTrend))
	}
	if tr.SignalChanged() {
		b.WriteString(fmt.Sprintf("Signal: %s → %s\n", tr.FromSignal, tr.ToSignal))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatScanReport lists the outcome of a watchlist scan, one line per symbol.
func FormatScanReport(results []model.ScanResult) string {
	sorted := make([]model.ScanResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Symbol < sorted[j].Symbol })

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📋 <b>Watchlist scan</b> | %s\n\n", time.Now().Format("2006-01-02 15:04")))
	failed := 0
	for _, r := range sorted {
		if r.Err != nil {
			failed++
			b.WriteString(fmt.Sprintf("❌ %s: %s\n", r.Symbol, html.EscapeString(r.Err.Error())))
			continue
		}
		s := r.Snapshot
		b.WriteString(fmt.Sprintf("%s %s: %s | %s | %s\n",
			signalIcon(s.Signal), s.Symbol, fixed(s.Indicators.CurrentPrice, 2), s.Trend, s.Signal))
	}
	b.WriteString(fmt.Sprintf("\n%d analyzed, %d failed", len(sorted)-failed, failed))
	return b.String()
}

func signalIcon(s model.SignalLabel) string {
	switch s {
	case model.SignalStrongBuy, model.SignalBuy:
		return "🟢"
	case model.SignalStrongSell, model.SignalSell:
		return "🔴"
	case model.SignalHold:
		return "⚪"
	default:
		return "❔"
	}
}

// FormatWatchState shows the last labels recorded for each symbol.
func FormatWatchState(state model.WatchState) string {
	if len(state.Symbols) == 0 {
		return "Watchlist state is empty, no scan has completed yet."
	}
	symbols := make([]string, 0, len(state.Symbols))
	for s := range state.Symbols {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	var b strings.Builder
	b.WriteString("👀 <b>Watchlist</b>\n\n")
	for _, sym := range symbols {
		st := state.Symbols[sym]
		b.WriteString(fmt.Sprintf("%s: %s | %s | %s (%s)\n",
			sym, decimal.NewFromFloat(st.Price).StringFixed(2), st.Trend, st.Signal, humanize.Time(st.ObservedAt)))
	}
	if !state.LastScan.IsZero() {
		b.WriteString(fmt.Sprintf("\nScans: %d, last %s", state.Scans, humanize.Time(state.LastScan)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatHistory renders stored snapshots for one symbol, newest first.
func FormatHistory(symbol string, rows []recorder.HistoryRow) string {
	if len(rows) == 0 {
		return fmt.Sprintf("No history recorded for %s.", symbol)
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🗂 <b>%s history</b>\n\n", symbol))
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%s: %s | RSI %s | %s | %s\n",
			r.AsOf, ptrFixed(r.Price), ptrFixed(r.RSI), r.Trend, r.Signal))
	}
	return strings.TrimRight(b.String(), "\n")
}

func ptrFixed(v *float64) string {
	if v == nil {
		return na
	}
	return decimal.NewFromFloat(*v).StringFixed(2)
}

// FormatHelp lists the supported bot commands.
func FormatHelp() string {
	return "🤖 <b>TechSentinel commands</b>\n\n" +
		"/analyze SYMBOL [PERIOD] - analyze one symbol (periods: 1mo 3mo 6mo 1y 2y 5y 10y ytd max)\n" +
		"/scan - run the watchlist scan now\n" +
		"/watchlist - last labels per watched symbol\n" +
		"/history SYMBOL - recent stored snapshots\n" +
		"/help - this message"
}
