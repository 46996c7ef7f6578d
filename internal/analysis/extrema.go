package analysis

import (
	"TechSentinel/internal/calculator"
	"TechSentinel/internal/model"
)

const (
	// ExtremumSpacing is the minimum distance in bars between two kept peaks (or troughs).
	ExtremumSpacing = 20
	// MaxLevels caps how many support and resistance levels are reported.
	MaxLevels = 3
)

// DetectExtrema turns spaced local peaks and troughs of the closing prices into
// resistance and support levels, most recent three of each, oldest first.
func DetectExtrema(series model.PriceSeries) model.ExtremumSet {
	closes := series.Closes()
	return model.ExtremumSet{
		Support:    levelsAt(closes, calculator.FindTroughs(closes, ExtremumSpacing)),
		Resistance: levelsAt(closes, calculator.FindPeaks(closes, ExtremumSpacing)),
	}
}

func levelsAt(closes []float64, indices []int) []float64 {
	if len(indices) > MaxLevels {
		indices = indices[len(indices)-MaxLevels:]
	}
	levels := make([]float64, len(indices))
	for i, idx := range indices {
		levels[i] = closes[idx]
	}
	return levels
}
