package collector

import (
	"context"

	"TechSentinel/internal/model"
)

// Fetcher defines the interface for fetching daily market data.
type Fetcher interface {
	FetchBars(ctx context.Context, symbol, period string) ([]model.Bar, error)
	Name() string
}

// DefaultPeriod is used when a requested lookback is not recognised.
const DefaultPeriod = "1y"

var periods = map[string]string{
	"1mo": "1mo",
	"3mo": "3mo",
	"6mo": "6mo",
	"6m":  "6mo",
	"1y":  "1y",
	"2y":  "2y",
	"5y":  "5y",
	"10y": "10y",
	"ytd": "ytd",
	"max": "max",
}

// NormalizePeriod maps a user-supplied lookback onto the supported vocabulary,
// falling back to DefaultPeriod.
func NormalizePeriod(period string) string {
	if p, ok := periods[period]; ok {
		return p
	}
	return DefaultPeriod
}
