// Package analysis turns a daily price series into an immutable snapshot of
// technical indicators, support/resistance levels, a trend label and a signal.
//
// Analyze is pure: it performs no I/O, keeps no state between calls and may be
// called from any number of goroutines on independent series.
package analysis

import (
	"TechSentinel/internal/model"
	"TechSentinel/internal/strategy"
)

// Analyze validates the series and assembles its snapshot.
// The only error it returns is an *InputError from validation.
func Analyze(series model.PriceSeries) (*model.AnalysisSnapshot, error) {
	valid, err := Validate(series)
	if err != nil {
		return nil, err
	}

	indicators := ComputeIndicators(valid)
	extrema := DetectExtrema(valid)

	return &model.AnalysisSnapshot{
		Symbol:     valid.Symbol,
		Period:     valid.Period,
		AsOf:       valid.Last().Time,
		Bars:       valid.Len(),
		Indicators: indicators,
		Extrema:    extrema,
		Trend:      strategy.ClassifyTrend(indicators),
		Signal:     strategy.GenerateSignal(indicators),
	}, nil
}
