package analysis

import (
	"time"

	"TechSentinel/internal/model"
)

var day0 = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

func seriesFromCloses(closes []float64) model.PriceSeries {
	bars := make([]model.Bar, len(closes))
	for i, c := range closes {
		bars[i] = model.Bar{
			Time:   day0.AddDate(0, 0, i),
			Open:   c,
			High:   c * 1.01,
			Low:    c * 0.99,
			Close:  c,
			Volume: float64(1000 + i),
		}
	}
	return model.PriceSeries{Symbol: "TEST", Period: "1y", Bars: bars}
}

func rampSeries(n int, start, step float64) model.PriceSeries {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = start + step*float64(i)
	}
	return seriesFromCloses(closes)
}

// wavySeries oscillates around a gentle drift so every indicator has a non-trivial value.
func wavySeries(n int) model.PriceSeries {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100 + 0.05*float64(i) + 5*float64((i*7)%13)/13
	}
	return seriesFromCloses(closes)
}
